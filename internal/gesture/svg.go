package gestures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

var ErrNoStroke = errors.New("no polyline or polygon found")

// ParseSVG reads the points of the first <polyline> or <polygon> in document
// order. A polygon is closed by repeating its first point.
func ParseSVG(r io.Reader) ([]models.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	el := firstShape(root)
	if el == nil {
		return nil, ErrNoStroke
	}

	points, err := parsePointsAttr(el.Attributes["points"])
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", el.Name, err)
	}
	if el.Name == "polygon" && len(points) > 1 && points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}
	return points, nil
}

func LoadSVG(path string) ([]models.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSVG(f)
}

func firstShape(el *svgparser.Element) *svgparser.Element {
	if el == nil {
		return nil
	}
	if el.Name == "polyline" || el.Name == "polygon" {
		return el
	}
	for _, child := range el.Children {
		if found := firstShape(child); found != nil {
			return found
		}
	}
	return nil
}

// parsePointsAttr accepts the SVG points grammar: numbers separated by
// commas and/or whitespace, taken in x,y pairs.
func parsePointsAttr(s string) ([]models.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 || len(fields)%2 != 0 {
		return nil, fmt.Errorf("points %q: odd or empty coordinate list: %w", s, stroke.ErrMalformedPoints)
	}

	points := make([]models.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", fields[i], stroke.ErrMalformedPoints)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", fields[i+1], stroke.ErrMalformedPoints)
		}
		points = append(points, models.Point{X: x, Y: y})
	}
	return points, nil
}
