package headless

import (
	"log/slog"

	"github.com/valerio/go-spc/spc/backend"
	"github.com/valerio/go-spc/spc/debug"
)

// Backend implements the Backend interface for batch playback. It logs
// progress and asks to quit after maxFrames updates; zero runs forever.
type Backend struct {
	config     backend.Config
	frameCount int
	maxFrames  int
	logEvery   int
	lastActive int
}

func New(maxFrames int) *Backend {
	return &Backend{
		maxFrames: maxFrames,
		logEvery:  64,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config
	slog.Info("Running headless mode",
		"title", config.Title,
		"frames", h.maxFrames)
	return nil
}

// Update logs voice activity changes and periodic progress.
func (h *Backend) Update(snapshot *debug.Snapshot) ([]backend.Event, error) {
	h.frameCount++

	if snapshot != nil {
		active := snapshot.ActiveVoices()
		if active != h.lastActive {
			slog.Debug("Voice activity", "frame", h.frameCount, "voices", formatMask(active))
			h.lastActive = active
		}
	}

	if h.frameCount%h.logEvery == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.maxFrames > 0 && h.frameCount >= h.maxFrames {
		slog.Info("Headless execution completed", "frames", h.frameCount)
		return []backend.Event{{Action: backend.ActionQuit}}, nil
	}
	return nil, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Frames returns the number of updates seen so far.
func (h *Backend) Frames() int {
	return h.frameCount
}

func formatMask(mask int) string {
	out := []byte("--------")
	for i := range out {
		if mask&(1<<i) != 0 {
			out[i] = byte('0' + i)
		}
	}
	return string(out)
}

var _ backend.Backend = (*Backend)(nil)
