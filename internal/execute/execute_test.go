package execute

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEmpty(t *testing.T) {
	assert.NoError(t, Command("", "circle"))
}

func TestCommandPassesGesture(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gesture")
	require.NoError(t, Command(`printf %s "$DOLLAR_GESTURE" > "`+out+`"`, "circle"))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(out)
		return err == nil && string(data) == "circle"
	}, 5*time.Second, 20*time.Millisecond)
}
