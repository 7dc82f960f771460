package timing

import (
	"log/slog"
	"time"
)

// AdaptiveLimiter sleeps for most of the wait and spins for the rest,
// correcting long-term drift.
type AdaptiveLimiter struct {
	frame        time.Duration
	next         time.Time
	started      time.Time
	frameCounter int64
	now          func() time.Time
	sleep        func(time.Duration)
}

func NewAdaptiveLimiter(frame time.Duration) *AdaptiveLimiter {
	a := &AdaptiveLimiter{
		frame: frame,
		now:   time.Now,
		sleep: time.Sleep,
	}
	a.Reset()
	return a
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := a.now()
	wait := a.next.Sub(now)

	switch {
	case wait >= 2*time.Millisecond:
		a.sleep(wait - time.Millisecond)
		for a.now().Before(a.next) {
		}
	case wait > 0:
		for a.now().Before(a.next) {
		}
	case wait < -5*a.frame:
		// far behind, e.g. after the process was stopped; don't try to catch up
		slog.Debug("Frame pacing fell behind", "behind_ms", (-wait).Milliseconds())
		a.next = now
	}

	a.next = a.next.Add(a.frame)
	a.frameCounter++

	if a.frameCounter%64 == 0 {
		expected := a.started.Add(time.Duration(a.frameCounter-1) * a.frame)
		drift := a.now().Sub(expected)
		if drift.Abs() > 10*time.Millisecond {
			a.next = a.next.Add(-drift / 10)
			slog.Debug("Frame timing drift correction", "drift_ms", drift.Milliseconds(), "frames", a.frameCounter)
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.started = a.now()
	a.next = a.started
	a.frameCounter = 0
}

var _ Limiter = (*AdaptiveLimiter)(nil)
