package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc/state"
)

func newTestTimer(prescaler int, target uint8) *Timer {
	t := &Timer{}
	t.SetPrescaler(prescaler)
	t.Configure(target, true, 0)
	t.Reset()
	return t
}

// expectedCounter models the timer from scratch: one divider step at time 1
// and every prescaler clocks after it.
func expectedCounter(time, prescaler, period int) uint8 {
	if time < 1 {
		return 0
	}
	steps := (time-1)/prescaler + 1
	return uint8((steps / period) & 0x0F)
}

func TestPrescalers(t *testing.T) {
	tests := []struct {
		name     string
		tempo    int
		expected [3]int
	}{
		{"normal", TempoUnit, [3]int{128, 128, 16}},
		{"double", TempoUnit * 2, [3]int{64, 64, 8}},
		{"half", TempoUnit / 2, [3]int{256, 256, 32}},
		{"capped at 4x", TempoUnit * 16, [3]int{32, 32, 4}},
		{"zero treated as slowest", 0, [3]int{32768, 32768, 4096}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Prescalers(tt.tempo))
		})
	}
}

func TestTimerCounts(t *testing.T) {
	tests := []struct {
		name      string
		prescaler int
		target    uint8
		time      int
	}{
		{"fast timer short period", 16, 2, 1000},
		{"slow timer", 128, 3, 128 * 40},
		{"target zero is 256", 16, 0, 16*256*3 + 5},
		{"counter wraps at 16", 16, 1, 16*20 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := newTestTimer(tt.prescaler, tt.target)
			period := int(tt.target)
			if period == 0 {
				period = 256
			}
			timer.Run(tt.time)
			assert.Equal(t, expectedCounter(tt.time, tt.prescaler, period), timer.Counter())
		})
	}
}

func TestTimerStepwiseMatchesDirect(t *testing.T) {
	direct := newTestTimer(16, 5)
	stepwise := newTestTimer(16, 5)

	direct.Run(5000)
	for time := 0; time <= 5000; time += 7 {
		stepwise.Run(time)
	}
	stepwise.Run(5000)

	assert.Equal(t, direct.Counter(), stepwise.Counter())
	assert.Equal(t, direct.Divider(), stepwise.Divider())
	assert.Equal(t, direct.NextTime(), stepwise.NextTime())
}

func TestTimerReadClears(t *testing.T) {
	timer := newTestTimer(16, 1)

	first := timer.ReadOutput(16*3 + 1)
	assert.Equal(t, uint8(4), first)
	assert.Equal(t, uint8(0), timer.ReadOutput(16*3+1), "second read at the same time sees a cleared counter")
	assert.Equal(t, uint8(1), timer.ReadOutput(16*4+1))
}

func TestTimerClearOutput(t *testing.T) {
	timer := newTestTimer(16, 1)
	timer.ClearOutput(16*3 + 2)
	assert.Equal(t, uint8(0), timer.Counter())
}

func TestTimerTargetTakesEffectOnReload(t *testing.T) {
	timer := newTestTimer(1, 4)
	// steps at times 1..n, one per clock
	timer.Run(2)
	require.Equal(t, 2, timer.Divider())

	timer.SetTarget(2)
	assert.Equal(t, 4, timer.Period(), "running cycle keeps its period")

	timer.Run(4)
	assert.Equal(t, uint8(1), timer.Counter())
	assert.Equal(t, 2, timer.Period())

	timer.Run(8)
	assert.Equal(t, uint8(3), timer.Counter())
}

func TestTimerDisabledHoldsZero(t *testing.T) {
	timer := newTestTimer(16, 1)
	timer.Run(16 * 2)
	require.NotZero(t, timer.Counter())
	timer.SetEnabled(16*2, false)

	timer.Run(16 * 50)
	assert.Equal(t, uint8(0), timer.ReadOutput(16*50))
	assert.Greater(t, timer.NextTime(), 16*50, "prescaler phase keeps running")
}

func TestTimerConfigureDisabledIgnoresCounter(t *testing.T) {
	timer := &Timer{}
	timer.SetPrescaler(16)
	timer.Configure(1, false, 0x0F)

	assert.Equal(t, uint8(0), timer.Counter())
}

func TestTimerEnableResetsCount(t *testing.T) {
	timer := newTestTimer(16, 1)
	timer.Run(16 * 5)
	timer.SetEnabled(16*5, false)
	timer.SetEnabled(16*6, true)

	assert.Equal(t, uint8(0), timer.Counter())
	assert.Equal(t, 0, timer.Divider())
}

func TestTimerShift(t *testing.T) {
	a := newTestTimer(16, 3)
	b := newTestTimer(16, 3)

	a.Run(700)
	b.Shift(-300)
	b.Run(400)

	assert.Equal(t, a.Counter(), b.Counter())
	assert.Equal(t, a.NextTime()-300, b.NextTime())
}

func TestTimerSaveLoad(t *testing.T) {
	timer := newTestTimer(128, 7)
	timer.Run(12345)
	timer.SetTarget(9)

	buf := make([]byte, 64)
	w := state.NewWriter(buf)
	timer.Save(w)
	require.NoError(t, w.Err())

	var restored Timer
	r := state.NewReader(buf[:w.Len()])
	restored.Load(r)
	require.NoError(t, r.Err())
	assert.Equal(t, *timer, restored)
}

func TestTimerLoadRejectsGarbage(t *testing.T) {
	buf := make([]byte, 64)
	var restored Timer
	r := state.NewReader(buf)
	restored.Load(r)
	assert.Error(t, r.Err())
}

func BenchmarkTimerRun(b *testing.B) {
	timer := newTestTimer(16, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		timer.Run(i * 32)
	}
}
