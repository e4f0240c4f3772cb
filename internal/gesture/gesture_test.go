package gestures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGesturesMissingFile(t *testing.T) {
	gestures, err := LoadGestures(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, gestures)
	assert.NotNil(t, gestures)
}

func TestLoadGestures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gestures.yaml")
	data := `- name: zig
  command: notify-send zig
  templates:
    - "0,0;5,8;10,0;15,8"
    - "0,0;4,9;9,0;14,9"
- name: hook
  templates: ["0,0;0,10;5,12"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	gestures, err := LoadGestures(path)
	require.NoError(t, err)
	assert.Equal(t, []models.GestureConfig{
		{Name: "zig", Command: "notify-send zig", Templates: []string{"0,0;5,8;10,0;15,8", "0,0;4,9;9,0;14,9"}},
		{Name: "hook", Templates: []string{"0,0;0,10;5,12"}},
	}, gestures)
}

func TestLoadGesturesInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: [unterminated"), 0644))
	_, err := LoadGestures(bad)
	assert.Error(t, err)

	nameless := filepath.Join(dir, "nameless.yaml")
	require.NoError(t, os.WriteFile(nameless, []byte("- templates: [\"0,0;1,1\"]\n"), 0644))
	_, err = LoadGestures(nameless)
	assert.ErrorContains(t, err, "no name")
}

func TestSaveAndRemoveGesture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gestures.yaml")

	require.NoError(t, SaveGesture(path, models.GestureConfig{Name: "a", Templates: []string{"0,0;1,1"}}))
	require.NoError(t, SaveGesture(path, models.GestureConfig{Name: "b", Templates: []string{"0,0;2,2"}}))
	require.NoError(t, SaveGesture(path, models.GestureConfig{Name: "a", Command: "true", Templates: []string{"0,0;3,3"}}))

	gestures, err := LoadGestures(path)
	require.NoError(t, err)
	require.Len(t, gestures, 2)
	assert.Equal(t, "a", gestures[0].Name)
	assert.Equal(t, "true", gestures[0].Command)
	assert.Equal(t, []string{"0,0;3,3"}, gestures[0].Templates)

	require.NoError(t, RemoveGesture(path, "a"))
	gestures, err = LoadGestures(path)
	require.NoError(t, err)
	require.Len(t, gestures, 1)
	assert.Equal(t, "b", gestures[0].Name)

	assert.ErrorIs(t, RemoveGesture(path, "a"), ErrGestureNotFound)
}

func TestParseSVG(t *testing.T) {
	points, err := LoadSVG(filepath.Join("testdata", "check.svg"))
	require.NoError(t, err)
	require.Len(t, points, 12)
	assert.Equal(t, models.Point{X: 91, Y: 185}, points[0])
	assert.Equal(t, models.Point{X: 177, Y: 112}, points[11])
}

func TestParseSVGPolygonIsClosed(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0 0 10 0 10 10"/></svg>`
	points, err := ParseSVG(strings.NewReader(svg))
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, points)
}

func TestParseSVGErrors(t *testing.T) {
	_, err := ParseSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><circle cx="1" cy="1" r="1"/></svg>`))
	assert.ErrorIs(t, err, ErrNoStroke)

	_, err = ParseSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polyline points="1,2 3"/></svg>`))
	assert.ErrorIs(t, err, stroke.ErrMalformedPoints)

	_, err = ParseSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polyline points="1,2 a,4"/></svg>`))
	assert.ErrorIs(t, err, stroke.ErrMalformedPoints)

	_, err = LoadSVG(filepath.Join("testdata", "missing.svg"))
	assert.Error(t, err)
}
