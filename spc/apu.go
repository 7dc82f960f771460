// Package spc emulates the SNES sound module: the SPC-700 CPU, its
// register file and timers, and the S-DSP, driven by timestamps from a host.
//
// Times passed to the host-facing methods are clocks of the 1.024 MHz SPC
// clock counted from the start of the current frame. They must not decrease
// within a frame; EndFrame starts a new one.
package spc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/cpu"
	"github.com/valerio/go-spc/spc/dsp"
	"github.com/valerio/go-spc/spc/memory"
)

const (
	// ClockRate is the number of SPC clocks per second.
	ClockRate = 1024000
	// SampleRate is the number of stereo sample pairs generated per second.
	SampleRate = dsp.SampleRate
	// ClocksPerSample is the number of clocks per stereo sample pair.
	ClocksPerSample = dsp.ClocksPerSample

	// TempoUnit is normal playback speed.
	TempoUnit = memory.TempoUnit

	timerCount = 3
	extraSize  = dsp.ExtraSize
)

// ErrCPU is the latent error reported by Play when the program halted the
// CPU or ran off the end of memory.
var ErrCPU = errors.New("spc emulation error")

// APU is the complete sound module. It is not safe for concurrent use.
type APU struct {
	cpu    *cpu.CPU
	ram    memory.RAM
	dsp    dsp.DSP
	timers [timerCount]memory.Timer

	// regs holds values last written by the SPC-700, regsIn the values it
	// reads back: host port input, $F8/$F9 and timer outputs.
	regs   [addr.RegCount]uint8
	regsIn [addr.RegCount]uint8

	// spcTime is the frame time the CPU has reached. dspTime and the timers'
	// next times are kept relative to it between runs.
	spcTime int
	dspTime int

	echoAccessed bool
	tempo        int

	skipping    bool
	skippedKON  uint8
	skippedKOFF uint8

	cpuError error

	extraClocks int
	out         []int16
	extraBuf    [extraSize]int16
	extraLen    int
}

// New creates an APU in its power-on state.
func New(opts ...Option) (*APU, error) {
	a := &APU{tempo: TempoUnit}
	a.dsp.Reset()
	a.cpu = cpu.New((*smpBus)(a))

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("configuring apu: %w", err)
		}
	}

	a.Reset()
	return a, nil
}

// Reset restores the power-on state: RAM filled with $FF, the IPL ROM
// mapped and the DSP reset. The output buffer is dropped, SetOutput must be
// called again.
func (a *APU) Reset() {
	a.ram.Fill(0xFF)
	a.ramLoaded()
	a.resetCommon(0x0F)
	a.dsp.Reset()
}

// SoftReset emulates the console's reset switch, keeping RAM.
func (a *APU) SoftReset() {
	a.resetCommon(0)
	a.dsp.SoftReset()
}

func (a *APU) resetCommon(timerCounter uint8) {
	for i := range a.timers {
		a.regsIn[addr.T0Out+i] = timerCounter
	}

	a.cpu.Reset()

	a.regs[addr.Test] = 0x0A
	a.regs[addr.Control] = addr.ControlROMEnable | addr.ControlClear23 | addr.ControlClear01
	for i := 0; i < addr.PortCount; i++ {
		a.regsIn[addr.CPUIO0+i] = 0
	}

	a.resetTimeRegs()
}

// ramLoaded takes the register file from RAM $F0-$FF, as after a RAM image
// was loaded.
func (a *APU) ramLoaded() {
	a.ram.EnableROM(false)
	var regs [addr.RegCount]uint8
	copy(regs[:], a.ram.Bytes()[addr.RegStart:])
	a.loadRegs(regs)
}

func (a *APU) loadRegs(in [addr.RegCount]uint8) {
	a.regs = in
	a.regsIn = in

	// these always read back as 0
	a.regsIn[addr.Test] = 0
	a.regsIn[addr.Control] = 0
	a.regsIn[addr.T0Target] = 0
	a.regsIn[addr.T1Target] = 0
	a.regsIn[addr.T2Target] = 0
}

func (a *APU) resetTimeRegs() {
	a.cpuError = nil
	a.echoAccessed = false
	a.spcTime = 0
	a.dspTime = 0
	a.skipping = false

	for i := range a.timers {
		a.timers[i].Reset()
	}

	a.regsLoaded()

	a.extraClocks = 0
	a.resetBuf()
}

// regsLoaded applies CONTROL and the timer registers after the register
// file was replaced.
func (a *APU) regsLoaded() {
	a.ram.EnableROM(a.regs[addr.Control]&addr.ControlROMEnable != 0)

	control := a.regs[addr.Control]
	for i := range a.timers {
		a.timers[i].Configure(a.regs[addr.T0Target+i], control>>i&1 != 0, a.regsIn[addr.T0Out+i])
	}
	a.SetTempo(a.tempo)
}

// SetTempo scales the timers, TempoUnit is normal speed.
func (a *APU) SetTempo(tempo int) {
	a.tempo = tempo
	for i, p := range memory.Prescalers(tempo) {
		a.timers[i].SetPrescaler(p)
	}
}

func (a *APU) Tempo() int {
	return a.tempo
}

// MuteVoices silences the voices whose bit is set in mask.
func (a *APU) MuteVoices(mask int) {
	a.dsp.MuteVoices(mask)
}

func (a *APU) DisableSurround(disable bool) {
	a.dsp.DisableSurround(disable)
}

func (a *APU) DisableEcho(disable bool) {
	a.dsp.DisableEcho(disable)
}

func (a *APU) EchoDisabled() bool {
	return a.dsp.EchoDisabled()
}

// CheckKON reports whether a voice was keyed on since the last call.
func (a *APU) CheckKON() bool {
	return a.dsp.CheckKON()
}

// SkippedKeys returns the voices keyed on and off during the idle part of
// the last long Skip.
func (a *APU) SkippedKeys() (kon, koff uint8) {
	return a.skippedKON, a.skippedKOFF
}

// DSP gives front ends access to voice status and mute controls.
func (a *APU) DSP() *dsp.DSP {
	return &a.dsp
}

// Registers returns the SPC-700 register set.
func (a *APU) Registers() cpu.Registers {
	return a.cpu.Registers
}

// RAM exposes the 64 KiB address space without the ROM overlay.
func (a *APU) RAM() []byte {
	return a.ram.Bytes()
}

// ROM returns the IPL ROM image.
func (a *APU) ROM() []byte {
	return a.ram.ROM()
}

// ROMEnabled reports whether the IPL ROM is mapped.
func (a *APU) ROMEnabled() bool {
	return a.ram.ROMEnabled()
}

// EchoAccessed reports whether the program touched the echo buffer or its
// configuration, which usually means the echo region holds live data.
func (a *APU) EchoAccessed() bool {
	return a.echoAccessed
}

// TimerStatus is a snapshot of one timer for monitors.
type TimerStatus struct {
	Enabled   bool
	Period    int
	// Pending is the period latched by the last target write.
	Pending   int
	Divider   int
	Counter   uint8
	Prescaler int
}

func (a *APU) Timer(i int) TimerStatus {
	t := &a.timers[i]
	return TimerStatus{
		Enabled:   t.Enabled(),
		Period:    t.Period(),
		Pending:   t.PendingPeriod(),
		Divider:   t.Divider(),
		Counter:   t.Counter(),
		Prescaler: t.Prescaler(),
	}
}

// Ports returns the values last written by the SPC-700 (out) and by the
// host (in).
func (a *APU) Ports() (out, in [addr.PortCount]uint8) {
	copy(out[:], a.regs[addr.CPUIO0:])
	copy(in[:], a.regsIn[addr.CPUIO0:])
	return out, in
}

func (a *APU) setCPUError(err error) {
	if a.cpuError != nil {
		return
	}
	slog.Warn("SPC CPU error", "err", err, "pc", fmt.Sprintf("0x%04X", a.cpu.PC))
	a.cpuError = err
}
