package memory

import (
	"github.com/valerio/go-spc/spc/state"
)

const (
	// TempoUnit is normal playback speed for Prescalers.
	TempoUnit = 0x100

	// counters are 4 bits wide and wrap silently
	counterMask = 0x0F
)

// Prescalers returns the number of clocks per divider step of each timer.
// At TempoUnit timers 0 and 1 step every 128 clocks (8 kHz) and timer 2
// every 16 clocks (64 kHz). Faster tempos shorten the steps, capped at
// four times normal speed.
func Prescalers(tempo int) [3]int {
	if tempo <= 0 {
		tempo = 1
	}
	rate := (16*TempoUnit + tempo/2) / tempo
	if rate < 4 {
		rate = 4
	}
	return [3]int{rate << 3, rate << 3, rate}
}

// Timer is one of the three SPC-700 countdown timers. Times are relative
// clock values supplied by the owner; the timer only ever moves forward to
// the time it is asked about.
type Timer struct {
	nextTime  int
	prescaler int
	period    int
	pending   int
	divider   int
	enabled   bool
	counter   int
}

// Reset restarts the prescaler phase.
func (t *Timer) Reset() {
	t.nextTime = 1
	t.divider = 0
}

// Configure loads the timer from register values.
func (t *Timer) Configure(target uint8, enabled bool, counter uint8) {
	t.period = targetPeriod(target)
	t.pending = t.period
	t.enabled = enabled
	t.counter = int(counter) & counterMask
	if !enabled {
		t.counter = 0
	}
}

func (t *Timer) SetPrescaler(clocks int) {
	t.prescaler = clocks
}

// Shift moves the timer's notion of time by delta clocks, used when the
// owner rebases its time origin.
func (t *Timer) Shift(delta int) {
	t.nextTime += delta
}

// Run brings the timer up to date with time.
func (t *Timer) Run(time int) {
	if time < t.nextTime {
		return
	}
	elapsed := (time-t.nextTime)/t.prescaler + 1
	t.nextTime += elapsed * t.prescaler
	if !t.enabled {
		return
	}

	for elapsed > 0 {
		remain := ((t.period - t.divider - 1) & 0xFF) + 1
		if elapsed < remain {
			t.divider += elapsed
			break
		}
		elapsed -= remain
		t.divider = 0
		t.counter = (t.counter + 1) & counterMask
		t.period = t.pending

		// the period is stable from here on, skip whole cycles at once
		n := elapsed / t.period
		t.counter = (t.counter + n) & counterMask
		elapsed -= n * t.period
	}
	t.divider &= 0xFF
}

// ReadOutput catches the timer up and returns the 4-bit counter, clearing it.
func (t *Timer) ReadOutput(time int) uint8 {
	t.Run(time)
	v := uint8(t.counter)
	t.counter = 0
	return v
}

// ClearOutput handles a CPU write to the counter register.
func (t *Timer) ClearOutput(time int) {
	t.Run(time - 1)
	t.counter = 0
}

// SetTarget latches a new target. It becomes the period at the next reload,
// a target of 0 counts 256 steps.
func (t *Timer) SetTarget(target uint8) {
	t.pending = targetPeriod(target)
}

// SetEnabled starts or stops the timer. A stopped timer's counter is held
// at zero. Starting clears the divider; the prescaler keeps running either
// way.
func (t *Timer) SetEnabled(time int, enabled bool) {
	if t.enabled == enabled {
		return
	}
	t.Run(time)
	t.enabled = enabled
	t.counter = 0
	if enabled {
		t.divider = 0
		t.period = t.pending
	}
}

// Counter returns the counter without clearing it.
func (t *Timer) Counter() uint8 {
	return uint8(t.counter)
}

func (t *Timer) Enabled() bool {
	return t.enabled
}

func (t *Timer) Period() int {
	return t.period
}

func (t *Timer) PendingPeriod() int {
	return t.pending
}

func (t *Timer) Divider() int {
	return t.divider
}

func (t *Timer) NextTime() int {
	return t.nextTime
}

func (t *Timer) Prescaler() int {
	return t.prescaler
}

func (t *Timer) Save(w *state.Writer) {
	w.WriteInt(t.nextTime)
	w.WriteInt(t.prescaler)
	w.Write16(uint16(t.period))
	w.Write16(uint16(t.pending))
	w.Write8(uint8(t.divider))
	w.WriteBool(t.enabled)
	w.Write8(uint8(t.counter))
}

func (t *Timer) Load(r *state.Reader) {
	t.nextTime = r.ReadInt()
	t.prescaler = r.ReadInt()
	t.period = int(r.Read16())
	t.pending = int(r.Read16())
	t.divider = int(r.Read8())
	t.enabled = r.ReadBool()
	t.counter = int(r.Read8()) & counterMask
	if !t.enabled {
		t.counter = 0
	}
	if t.prescaler <= 0 || t.period < 1 || t.period > 256 || t.pending < 1 || t.pending > 256 {
		r.Fail(errBadTimer)
	}
}

var _ state.Stater = (*Timer)(nil)

func targetPeriod(target uint8) int {
	if target == 0 {
		return 256
	}
	return int(target)
}
