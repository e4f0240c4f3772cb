// https://depts.washington.edu/acelab/proj/dollar/dollar.pdf

package stroke

import (
	"fmt"
	"math"

	"github.com/ThatOtherAndrew/dollar/internal/models"
)

// Every a*b+c below is written with an explicit float64 conversion on the
// product so the compiler cannot fuse it into an FMA. Canonical geometry has
// to come out bit-identical on every architecture.

// Canonical is a stroke after resampling, rotation, scaling and translation,
// together with its unit vector form.
type Canonical struct {
	Points []models.Point
	Vector []float64
}

// Normalize runs the full pipeline on points, which is left untouched.
func Normalize(points []models.Point, n int, size float64) (Canonical, error) {
	resampled, err := Resample(points, n)
	if err != nil {
		return Canonical{}, err
	}
	radians := IndicativeAngle(resampled)
	rotated := RotateBy(resampled, -radians)
	scaled, err := ScaleTo(rotated, size)
	if err != nil {
		return Canonical{}, err
	}
	translated := TranslateTo(scaled, models.Point{})
	vector, err := Vectorize(translated)
	if err != nil {
		return Canonical{}, err
	}
	return Canonical{Points: translated, Vector: vector}, nil
}

// Step 1

func Resample(points []models.Point, n int) ([]models.Point, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("resample %d point(s): %w", len(points), ErrInsufficientPoints)
	}
	if n < 2 {
		return nil, fmt.Errorf("resample to %d point(s): %w", n, ErrInsufficientPoints)
	}
	length := PathLength(points)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, fmt.Errorf("resample path of length %v: %w", length, ErrDegenerateGeometry)
	}

	interval := length / float64(n-1)
	D := 0.0
	newPoints := make([]models.Point, 1, n)
	newPoints[0] = points[0]

	prev := points[0]
	for i := 1; i < len(points) && len(newPoints) < n; {
		cur := points[i]
		d := Distance(prev, cur)
		if D+d >= interval {
			t := (interval - D) / d
			q := models.Point{
				X: prev.X + float64(t*(cur.X-prev.X)),
				Y: prev.Y + float64(t*(cur.Y-prev.Y)),
			}
			newPoints = append(newPoints, q)
			// the rest of this segment starts at q
			prev = q
			D = 0
		} else {
			D += d
			prev = cur
			i++
		}
	}

	last := points[len(points)-1]
	for len(newPoints) < n {
		newPoints = append(newPoints, last)
	}
	return newPoints, nil
}

func PathLength(points []models.Point) float64 {
	d := 0.0
	for i := 1; i < len(points); i++ {
		d += Distance(points[i-1], points[i])
	}
	return d
}

func Distance(a, b models.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(float64(dx*dx) + float64(dy*dy))
}

// Step 2

// IndicativeAngle is the angle from the first point to the centroid.
func IndicativeAngle(points []models.Point) float64 {
	c := Centroid(points)
	return math.Atan2(c.Y-points[0].Y, c.X-points[0].X)
}

// RotateBy rotates points about their centroid.
func RotateBy(points []models.Point, radians float64) []models.Point {
	c := Centroid(points)
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	newPoints := make([]models.Point, len(points))
	for i, p := range points {
		dx := p.X - c.X
		dy := p.Y - c.Y
		newPoints[i] = models.Point{
			X: float64(dx*cos) - float64(dy*sin) + c.X,
			Y: float64(dx*sin) + float64(dy*cos) + c.Y,
		}
	}
	return newPoints
}

// Step 3

// ScaleTo stretches points non-uniformly so their bounding box becomes
// size x size. Strokes with no width or no height (straight lines parallel to
// an axis, single points) cannot be scaled.
func ScaleTo(points []models.Point, size float64) ([]models.Point, error) {
	B := BoundingBox(points)
	if B.Width == 0 || B.Height == 0 {
		return nil, fmt.Errorf("scale %.4gx%.4g box: %w", B.Width, B.Height, ErrDegenerateGeometry)
	}
	newPoints := make([]models.Point, len(points))
	for i, p := range points {
		newPoints[i] = models.Point{
			X: p.X * (size / B.Width),
			Y: p.Y * (size / B.Height),
		}
	}
	return newPoints, nil
}

// TranslateTo moves points so their centroid lands on k.
func TranslateTo(points []models.Point, k models.Point) []models.Point {
	c := Centroid(points)
	newPoints := make([]models.Point, len(points))
	for i, p := range points {
		newPoints[i] = models.Point{
			X: p.X + k.X - c.X,
			Y: p.Y + k.Y - c.Y,
		}
	}
	return newPoints
}

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func BoundingBox(points []models.Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func Centroid(points []models.Point) models.Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return models.Point{X: x / n, Y: y / n}
}

// Step 4

// Vectorize flattens points into [x0, y0, x1, y1, ...] scaled to unit length.
func Vectorize(points []models.Point) ([]float64, error) {
	sum := 0.0
	vector := make([]float64, 0, 2*len(points))
	for _, p := range points {
		vector = append(vector, p.X, p.Y)
		sum += float64(p.X*p.X) + float64(p.Y*p.Y)
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return nil, fmt.Errorf("vectorize magnitude %v: %w", magnitude, ErrDegenerateVector)
	}
	for i := range vector {
		vector[i] /= magnitude
	}
	return vector, nil
}

// PathDistance is the mean distance between points at the same index. Both
// slices must have the same length.
func PathDistance(a, b []models.Point) float64 {
	d := 0.0
	for i := range a {
		d += Distance(a[i], b[i])
	}
	return d / float64(len(a))
}
