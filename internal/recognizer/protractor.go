package recognizer

import (
	"math"

	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

// ExactMatchScore stands in for 1/0 when a protractor distance is exactly zero.
const ExactMatchScore = math.MaxFloat64

type protractor struct{}

func (protractor) distance(input stroke.Canonical, t *Template) float64 {
	return optimalCosineDistance(t.Vector, input.Vector)
}

func (protractor) score(distance float64) float64 {
	if distance == 0 {
		return ExactMatchScore
	}
	return 1.0 / distance
}

// optimalCosineDistance returns the angle between v1 and v2 after rotating
// one of them by the angle that maximises their cosine similarity. Both are
// unit vectors of interleaved x, y pairs.
func optimalCosineDistance(v1, v2 []float64) float64 {
	a := 0.0
	b := 0.0
	for i := 0; i+1 < len(v1); i += 2 {
		a += float64(v1[i]*v2[i]) + float64(v1[i+1]*v2[i+1])
		b += float64(v1[i]*v2[i+1]) - float64(v1[i+1]*v2[i])
	}

	// b/a is 0/0 only for vectors orthogonal under every rotation
	angle := 0.0
	if a != 0 || b != 0 {
		angle = math.Atan(b / a)
	}
	cosine := float64(a*math.Cos(angle)) + float64(b*math.Sin(angle))
	// rounding can push the cosine of near-identical vectors just past 1
	cosine = math.Max(-1, math.Min(1, cosine))
	return math.Acos(cosine)
}
