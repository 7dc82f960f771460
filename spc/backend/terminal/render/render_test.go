package render

import (
	"log/slog"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWraps(t *testing.T) {
	lb := NewLogBuffer(3)
	for i := 0; i < 5; i++ {
		lb.Add(LogEntry{Message: string(rune('a' + i))})
	}

	recent := lb.GetRecent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "e", recent[0].Message)
	assert.Equal(t, "c", recent[2].Message)

	assert.Len(t, lb.GetRecent(2), 2)

	lb.Clear()
	assert.Nil(t, lb.GetRecent(0))
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	logger := slog.New(NewLogBufferHandler(lb, level))

	logger.Debug("hidden")
	logger.With("song", "intro").WithGroup("voice").Info("Voice toggled", "index", 3)

	recent := lb.GetRecent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "Voice toggled song=intro voice.index=3", recent[0].Message)

	level.Set(slog.LevelDebug)
	logger.Debug("shown")
	assert.Equal(t, "shown", lb.GetRecent(1)[0].Message)
}

func TestFormatLogEntry(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2024, 1, 1, 13, 4, 5, 0, time.UTC),
		Level:   slog.LevelWarn,
		Message: "late",
	}
	assert.Equal(t, "13:04:05 [WRN] late", FormatLogEntry(entry))
}

func TestMeter(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		max      int
		expected string
	}{
		{"empty", 0, 100, "    "},
		{"full", 100, 100, "████"},
		{"over full", 200, 100, "████"},
		{"half", 50, 100, "██  "},
		{"negative", -50, 100, "██  "},
		{"partial", 10, 100, "▍   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Meter(tt.value, tt.max, 4)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, 4, utf8.RuneCountInString(got))
		})
	}
}
