package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIModeWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Test", "hidden %d", 1)
	Info("Test", "loaded %d colours", 3)
	Error("Test", errors.New("boom"), "failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded 3 colours")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "error=boom")
}

func TestTUIModeSendsToChannel(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Warn("Grid", "cursor at %d", 7)

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "Grid", entry.Subsystem)
		assert.Equal(t, "cursor at 7", entry.Message)
	case <-time.After(time.Second):
		t.Fatal("expected log entry on TUI channel")
	}
}

func TestTUIModeDoesNotBlockWhenFull(t *testing.T) {
	InitForTUI(LevelInfo)
	defer CloseTUIChannel()

	for i := 0; i < tuiChannelBufferSize+10; i++ {
		Info("Flood", "line %d", i)
	}
	assert.Equal(t, int64(10), Dropped())
}

func TestCloseTUIChannel(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	CloseTUIChannel()

	_, open := <-ch
	require.False(t, open)

	// Logging after close must not panic.
	Info("Test", "after close")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestLogEntryString(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Clipboard",
		Message:   "copy failed",
		Err:       errors.New("no display"),
	}
	assert.Equal(t, "15:04:05 ERROR [Clipboard] copy failed: no display", entry.String())
}
