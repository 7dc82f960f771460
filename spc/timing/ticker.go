package timing

import "time"

// TickerLimiter paces with a time.Ticker. It drops frames instead of
// catching up, which suits UI refresh.
type TickerLimiter struct {
	frame  time.Duration
	ticker *time.Ticker
}

func NewTickerLimiter(frame time.Duration) *TickerLimiter {
	return &TickerLimiter{
		frame:  frame,
		ticker: time.NewTicker(frame),
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(t.frame)
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}

var _ Limiter = (*TickerLimiter)(nil)
