package recognizer

import (
	"fmt"
	"strings"

	"github.com/ThatOtherAndrew/dollar/internal/stroke"
)

// Metric selects how an input is compared against each template.
type Metric int

const (
	// Classic searches for the best rotation with a golden-section search and
	// scores by average point distance.
	Classic Metric = iota
	// Protractor computes the optimal rotation in closed form and scores by
	// angular distance between unit vectors.
	Protractor
)

func (m Metric) String() string {
	switch m {
	case Classic:
		return "classic"
	case Protractor:
		return "protractor"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

func (m Metric) Valid() bool {
	return m == Classic || m == Protractor
}

// ParseMetric accepts "classic" (or "golden") and "protractor", ignoring case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "golden":
		return Classic, nil
	case "protractor":
		return Protractor, nil
	default:
		return Classic, fmt.Errorf("unknown metric %q", s)
	}
}

type strategy interface {
	distance(input stroke.Canonical, t *Template) float64
	score(distance float64) float64
}

func (r *Recognizer) strategyFor(m Metric) strategy {
	switch m {
	case Protractor:
		return protractor{}
	case Classic:
		return goldenSection{
			angleRange:     r.angleRange,
			anglePrecision: r.anglePrecision,
			halfDiagonal:   r.halfDiagonal,
		}
	default:
		panic(fmt.Sprintf("recognizer: unhandled %v", m))
	}
}
