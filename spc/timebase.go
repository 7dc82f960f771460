package spc

import (
	"errors"
	"fmt"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/cpu"
)

// skipThreshold is the sample count above which Skip stops synthesizing
// audio for most of the interval.
const skipThreshold = 2 * SampleRate * 2

// RunUntil runs the SPC-700 up to time t without touching the ports.
func (a *APU) RunUntil(t int) {
	a.runUntil(t)
}

// runUntil moves the CPU forward to end. While the CPU runs, the DSP and
// timer cursors are rebased so that end is time 0; an instruction that
// would finish after end is left for the next call.
func (a *APU) runUntil(end int) {
	rel := a.spcTime - end
	check(rel <= 0, "time went backwards: %d -> %d", a.spcTime, end)

	a.spcTime = end
	a.dspTime += rel
	for i := range a.timers {
		a.timers[i].Shift(rel)
	}

	rel, err := a.cpu.Run(rel)
	if err != nil {
		switch {
		case errors.Is(err, cpu.ErrStopped):
			err = ErrCPU
		case errors.Is(err, cpu.ErrPCWrapped):
			err = fmt.Errorf("%w: %w", ErrCPU, err)
		}
		a.setCPUError(err)
	}

	a.spcTime += rel
	a.dspTime -= rel
	for i := range a.timers {
		a.timers[i].Shift(-rel)
	}
}

// runDSP brings the synthesis engine up to time, expressed like dspTime.
func (a *APU) runDSP(time int) {
	if a.skipping || time <= a.dspTime {
		return
	}
	a.dsp.Run(a.ram.Bytes(), time-a.dspTime)
	a.dspTime = time
}

// EndFrame runs to end and starts a new frame at time 0. The output buffer
// given to SetOutput is forgotten.
func (a *APU) EndFrame(end int) {
	// the last instruction may not fit, the CPU then starts the next frame
	// slightly in the past
	if end > a.spcTime {
		a.runUntil(end)
	}
	a.spcTime -= end
	a.extraClocks += end

	for i := range a.timers {
		a.timers[i].Run(0)
	}

	a.runDSP(0)

	if a.out != nil {
		a.saveExtra()
	}
}

// SetOutput directs samples into out, which is filled with interleaved
// stereo pairs. Samples left over from the previous frame are copied in
// first. A nil out discards samples.
func (a *APU) SetOutput(out []int16) {
	check(len(out)%2 == 0, "output size %d is odd", len(out))
	a.extraClocks &= ClocksPerSample - 1

	if out == nil {
		a.resetBuf()
		return
	}

	a.out = out
	n := copy(out, a.extraBuf[:a.extraLen])
	if n < a.extraLen {
		// output is already full, the DSP continues in its own extra buffer
		rest := copy(a.dsp.Extra(), a.extraBuf[n:a.extraLen])
		a.dsp.SetOutput(nil, rest)
		return
	}
	a.dsp.SetOutput(out, n)
}

// SampleCount returns the number of samples written to the output since
// SetOutput. It counts both channels.
func (a *APU) SampleCount() int {
	return (a.extraClocks >> 5) * 2
}

// resetBuf drops the output and primes the extra buffer with a little
// silence.
func (a *APU) resetBuf() {
	for i := 0; i < extraSize/2; i++ {
		a.extraBuf[i] = 0
	}
	a.extraLen = extraSize / 2
	a.out = nil
	a.dsp.SetOutput(nil, 0)
}

// saveExtra keeps the samples generated past the end of the frame.
func (a *APU) saveExtra() {
	mainEnd := len(a.out)
	dspEnd := 0
	if a.dsp.InExtra() {
		dspEnd = a.dsp.OutPos()
	} else {
		mainEnd = a.dsp.OutPos()
	}

	n := 0
	for i := a.SampleCount(); i < mainEnd && n < extraSize; i++ {
		a.extraBuf[n] = a.out[i]
		n++
	}
	extra := a.dsp.Extra()
	for i := 0; i < dspEnd && n < extraSize; i++ {
		a.extraBuf[n] = extra[i]
		n++
	}
	a.extraLen = n
}

// Play runs for count samples (both channels, so count must be even) and
// writes them to out, or discards them when out is nil. It returns and
// clears the latent CPU error.
func (a *APU) Play(count int, out []int16) error {
	check(count%2 == 0, "sample count %d is odd", count)
	if count > 0 {
		if out != nil {
			out = out[:count]
		}
		a.SetOutput(out)
		a.EndFrame(count * (ClocksPerSample / 2))
	}

	err := a.cpuError
	a.cpuError = nil
	return err
}

// Skip runs for count samples without output. Long skips leave the DSP
// idle and replay the key on/off writes made meanwhile once at the end.
func (a *APU) Skip(count int) error {
	if count > skipThreshold {
		a.SetOutput(nil)

		// skip a multiple of 4 samples, keeping a second of real output to
		// let voices settle
		end := count
		count = count&3 + SampleRate*2
		end = (end - count) * (ClocksPerSample / 2)

		a.skippedKON = 0
		a.skippedKOFF = 0

		oldDSPTime := a.dspTime + a.spcTime
		a.skipping = true
		a.EndFrame(end)
		a.skipping = false
		a.dspTime = oldDSPTime - a.spcTime

		a.dsp.Write(addr.KOFF, a.skippedKOFF&^a.skippedKON)
		a.dsp.Write(addr.KON, a.skippedKON)
		a.ClearEcho()
	}
	return a.Play(count, nil)
}
