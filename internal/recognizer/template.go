package recognizer

import (
	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

// Template is a normalized exemplar of a gesture class. Its geometry is
// computed once in newTemplate and never changes.
type Template struct {
	Name string
	stroke.Canonical

	builtin bool
}

func newTemplate(name string, points []models.Point, n int, size float64) (*Template, error) {
	c, err := stroke.Normalize(points, n, size)
	if err != nil {
		return nil, err
	}
	return &Template{Name: name, Canonical: c}, nil
}

// clone copies t including its geometry, so callers cannot reach the stored
// slices.
func (t *Template) clone() *Template {
	c := *t
	c.Points = append([]models.Point(nil), t.Points...)
	c.Vector = append([]float64(nil), t.Vector...)
	return &c
}

// Builtin reports whether the template came from the recognizer's original
// template set rather than a later AddTemplate call.
func (t *Template) Builtin() bool {
	return t.builtin
}
