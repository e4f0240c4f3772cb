package stroke

import (
	"fmt"
	"math"
	"testing"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

var (
	circle = MustParsePoints("47,33;37,33;28,40;25,49;25,61;32,71;40,76;50,76;64,75;72,70;76,60;75,48;70,37;61,34;55,33;50,33")
	check  = MustParsePoints("19,62;27,72;32,79;37,86;43,76;49,69;55,61;62,51;68,44;73,35")
	zigzag = MustParsePoints("307,216;333,186;356,215;375,186;399,216;418,186")
)

func TestPrimitives(t *testing.T) {
	a := models.Point{X: 0, Y: 0}
	b := models.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, 5.0, Distance(b, a))

	path := []models.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 10}}
	assert.Equal(t, 11.0, PathLength(path))
	assert.Equal(t, 0.0, PathLength(path[:1]))

	c := Centroid([]models.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}})
	assert.Equal(t, models.Point{X: 2, Y: 1}, c)

	box := BoundingBox([]models.Point{{X: 5, Y: -1}, {X: -2, Y: 3}, {X: 1, Y: 7}})
	assert.Equal(t, Rect{X: -2, Y: -1, Width: 7, Height: 8}, box)
}

func TestBoundingBoxFirstPointExtremal(t *testing.T) {
	// The first point is the maximum on both axes.
	box := BoundingBox([]models.Point{{X: 10, Y: 10}, {X: 2, Y: 3}, {X: 1, Y: 1}})
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 9, Height: 9}, box)
}

func TestResampleLength(t *testing.T) {
	strokes := map[string][]models.Point{
		"circle":  circle,
		"check":   check,
		"zig-zag": zigzag,
		"segment": {{X: 0, Y: 0}, {X: 10, Y: 0}},
	}
	for name, points := range strokes {
		for _, n := range []int{2, 3, 16, 32, 64, 100, 257} {
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				resampled, err := Resample(points, n)
				require.NoError(t, err)
				assert.Len(t, resampled, n)
				assert.Equal(t, points[0], resampled[0])
			})
		}
	}
}

func TestResampleEvenSpacing(t *testing.T) {
	points := []models.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 9}}
	resampled, err := Resample(points, 5)
	require.NoError(t, err)
	require.Len(t, resampled, 5)
	assert.Equal(t, models.Point{X: 3, Y: 0}, resampled[1])
	for i := 1; i < len(resampled); i++ {
		assert.InDelta(t, 3.0, Distance(resampled[i-1], resampled[i]), epsilon)
	}
	assert.InDelta(t, 3.0, resampled[4].X, epsilon)
	assert.InDelta(t, 9.0, resampled[4].Y, epsilon)
}

func TestResampleLeavesInputAlone(t *testing.T) {
	points := append([]models.Point(nil), check...)
	_, err := Resample(points, 64)
	require.NoError(t, err)
	assert.Equal(t, check, points)
}

func TestResampleErrors(t *testing.T) {
	_, err := Resample(nil, 64)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = Resample([]models.Point{{X: 1, Y: 1}}, 64)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = Resample(check, 1)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = Resample([]models.Point{{X: 4, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 4}}, 64)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestRotateBy(t *testing.T) {
	points := []models.Point{{X: -1, Y: 0}, {X: 1, Y: 0}}
	rotated := RotateBy(points, math.Pi/2)
	assert.InDelta(t, 0, rotated[0].X, epsilon)
	assert.InDelta(t, -1, rotated[0].Y, epsilon)
	assert.InDelta(t, 0, rotated[1].X, epsilon)
	assert.InDelta(t, 1, rotated[1].Y, epsilon)
}

func TestIndicativeAngle(t *testing.T) {
	points := []models.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}
	assert.InDelta(t, math.Pi/4, IndicativeAngle(points), epsilon)

	aligned := RotateBy(points, -IndicativeAngle(points))
	assert.InDelta(t, 0, IndicativeAngle(aligned), epsilon)
}

func TestScaleToDegenerate(t *testing.T) {
	horizontal := []models.Point{{X: 0, Y: 5}, {X: 10, Y: 5}}
	_, err := ScaleTo(horizontal, 250)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	vertical := []models.Point{{X: 5, Y: 0}, {X: 5, Y: 10}}
	_, err = ScaleTo(vertical, 250)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestVectorize(t *testing.T) {
	vector, err := Vectorize([]models.Point{{X: 3, Y: 0}, {X: 0, Y: 4}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0, 0, 0.8}, vector, epsilon)

	_, err = Vectorize([]models.Point{{X: 0, Y: 0}, {X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func assertCanonical(t *testing.T, c Canonical, n int, size float64) {
	t.Helper()
	require.Len(t, c.Points, n)
	require.Len(t, c.Vector, 2*n)

	centroid := Centroid(c.Points)
	assert.InDelta(t, 0, centroid.X, 1e-6)
	assert.InDelta(t, 0, centroid.Y, 1e-6)

	box := BoundingBox(c.Points)
	assert.InDelta(t, size, box.Width, 1e-6)
	assert.InDelta(t, size, box.Height, 1e-6)

	var norm float64
	for _, v := range c.Vector {
		norm += v * v
	}
	assert.InDelta(t, 1, norm, 1e-9)
}

func TestNormalize(t *testing.T) {
	for _, n := range []int{16, 64, 128} {
		for _, size := range []float64{1, 250} {
			c, err := Normalize(circle, n, size)
			require.NoError(t, err)
			assertCanonical(t, c, n, size)
		}
	}
}

func TestNormalizeTwiceKeepsFrame(t *testing.T) {
	first, err := Normalize(zigzag, 64, 250)
	require.NoError(t, err)
	second, err := Normalize(first.Points, 64, 250)
	require.NoError(t, err)
	assertCanonical(t, second, 64, 250)
	assert.InDelta(t, 0, IndicativeAngle(second.Points), 1e-6)
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := Normalize([]models.Point{{X: 1, Y: 1}}, 64, 250)
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = Normalize(MustParsePoints("1,1;2,1;3,1;4,1;5,1"), 64, 250)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = Normalize(MustParsePoints("7,7;7,7"), 64, 250)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestPathDistance(t *testing.T) {
	a := []models.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	b := []models.Point{{X: 3, Y: 4}, {X: 1, Y: 1}}
	assert.Equal(t, 2.5, PathDistance(a, b))
	assert.Equal(t, 0.0, PathDistance(a, a))
}
