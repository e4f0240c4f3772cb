package gestures

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

const MAX_POINTS = 2048

// Recorder collects pointer samples into a stroke. Samples within 2px of the
// previous one are dropped, and only the newest MAX_POINTS are kept.
type Recorder struct {
	points []models.Point
}

func (r *Recorder) AddPoint(x, y float64) bool {
	newPoint := models.Point{X: x, Y: y}

	if len(r.points) > 0 {
		lastPoint := r.points[len(r.points)-1]
		dx := newPoint.X - lastPoint.X
		dy := newPoint.Y - lastPoint.Y
		if dx*dx+dy*dy <= 4 {
			return false
		}
	}

	r.points = append(r.points, newPoint)
	if len(r.points) > MAX_POINTS {
		r.points = r.points[len(r.points)-MAX_POINTS:]
	}
	return true
}

func (r *Recorder) Points() []models.Point {
	return append([]models.Point(nil), r.points...)
}

func (r *Recorder) Len() int { return len(r.points) }

func (r *Recorder) Reset() { r.points = nil }

// Record feeds one "x,y" (or "x y") sample per line of src through a
// Recorder. Blank lines and lines starting with # are skipped.
func Record(src io.Reader) ([]models.Point, error) {
	var rec Recorder
	scanner := bufio.NewScanner(src)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: %q: %w", line, text, stroke.ErrMalformedPoints)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("line %d: %q: %w", line, text, stroke.ErrMalformedPoints)
		}
		rec.AddPoint(x, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rec.Points(), nil
}
