package stroke

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ThatOtherAndrew/dollar/internal/models"
)

// ParsePoints reads the "x1,y1;x2,y2;...;xn,yn" form used by template
// libraries and fixtures.
func ParsePoints(s string) ([]models.Point, error) {
	if s == "" {
		return nil, fmt.Errorf("empty point list: %w", ErrMalformedPoints)
	}
	pairs := strings.Split(s, ";")
	points := make([]models.Point, 0, len(pairs))
	for i, pair := range pairs {
		x, y, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("point %d %q: %w", i, pair, ErrMalformedPoints)
		}
		px, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d x %q: %w", i, x, ErrMalformedPoints)
		}
		py, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return nil, fmt.Errorf("point %d y %q: %w", i, y, ErrMalformedPoints)
		}
		if math.IsNaN(px) || math.IsInf(px, 0) || math.IsNaN(py) || math.IsInf(py, 0) {
			return nil, fmt.Errorf("point %d %q is not finite: %w", i, pair, ErrMalformedPoints)
		}
		points = append(points, models.Point{X: px, Y: py})
	}
	return points, nil
}

// FormatPoints is the inverse of ParsePoints.
func FormatPoints(points []models.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
	}
	return b.String()
}

// MustParsePoints is ParsePoints for literals known to be valid.
func MustParsePoints(s string) []models.Point {
	points, err := ParsePoints(s)
	if err != nil {
		panic(err)
	}
	return points
}
