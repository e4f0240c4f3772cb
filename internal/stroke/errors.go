package stroke

import "errors"

var (
	// ErrInsufficientPoints means a stroke has fewer than two points.
	ErrInsufficientPoints = errors.New("stroke: insufficient points")
	// ErrDegenerateGeometry means a stroke has no path length, or a bounding
	// box with zero width or height.
	ErrDegenerateGeometry = errors.New("stroke: degenerate geometry")
	// ErrDegenerateVector means a stroke vectorized to zero magnitude.
	ErrDegenerateVector = errors.New("stroke: degenerate vector")
	ErrMalformedPoints  = errors.New("stroke: malformed point list")
)
