package tui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	obs := NewLogObserver(logger.With("user", "alice"))

	obs.LinesCleared(2, 200)
	obs.GameOver(1300, 11)

	out := buf.String()
	assert.Contains(t, out, "lines cleared")
	assert.Contains(t, out, "score=200")
	assert.Contains(t, out, "game over")
	assert.Contains(t, out, "score=1300")
	assert.Contains(t, out, "lines=11")
	assert.Contains(t, out, "user=alice")
}

func TestLogObserverSkipsDebugByDefault(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(log.New(&buf))

	obs.LinesCleared(1, 100)
	assert.Empty(t, buf.String())
}
