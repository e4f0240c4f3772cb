package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

var phi = 0.5 * (-1.0 + math.Sqrt(5.0))

type goldenSection struct {
	angleRange     float64
	anglePrecision float64
	halfDiagonal   float64
}

func (g goldenSection) distance(input stroke.Canonical, t *Template) float64 {
	return distanceAtBestAngle(input.Points, t.Points, g.angleRange, -g.angleRange, g.anglePrecision)
}

// score is unclamped and goes negative once the distance exceeds half the
// diagonal of the reference square.
func (g goldenSection) score(distance float64) float64 {
	return 1.0 - distance/g.halfDiagonal
}

// distanceAtBestAngle narrows [a, b] around the rotation of points that best
// fits T, assuming the distance is unimodal over the bracket.
func distanceAtBestAngle(points, T []models.Point, a, b, threshold float64) float64 {
	x1 := float64(phi*a) + float64((1.0-phi)*b)
	f1 := distanceAtAngle(points, T, x1)
	x2 := float64((1.0-phi)*a) + float64(phi*b)
	f2 := distanceAtAngle(points, T, x2)
	for math.Abs(b-a) > threshold {
		if f1 < f2 {
			b = x2
			x2 = x1
			f2 = f1
			x1 = float64(phi*a) + float64((1.0-phi)*b)
			f1 = distanceAtAngle(points, T, x1)
		} else {
			a = x1
			x1 = x2
			f1 = f2
			x2 = float64((1.0-phi)*a) + float64(phi*b)
			f2 = distanceAtAngle(points, T, x2)
		}
	}
	return math.Min(f1, f2)
}

func distanceAtAngle(points, T []models.Point, radians float64) float64 {
	return stroke.PathDistance(stroke.RotateBy(points, radians), T)
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}
