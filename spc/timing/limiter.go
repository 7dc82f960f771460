// Package timing paces emulation frames to wall clock time for front ends
// that have no audio device to block on.
package timing

import (
	"time"

	"github.com/valerio/go-spc/spc"
)

// FramePairs is the default number of sample pairs rendered per frame,
// 16 ms of audio.
const FramePairs = 512

// Limiter controls frame pacing.
type Limiter interface {
	// WaitForNextFrame blocks until the next frame is due. It returns
	// immediately when running behind.
	WaitForNextFrame()

	// Reset restarts pacing, used after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that never waits.
func NewNoOpLimiter() Limiter {
	return noOpLimiter{}
}

type noOpLimiter struct{}

func (noOpLimiter) WaitForNextFrame() {}
func (noOpLimiter) Reset()            {}

// FrameDuration is the play time of a frame of pairs sample pairs. Tempo
// changes how fast the song runs, not the sample rate, so it plays no part.
func FrameDuration(pairs int) time.Duration {
	return time.Duration(pairs) * time.Second / spc.SampleRate
}
