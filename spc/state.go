package spc

import (
	"errors"
	"fmt"

	"github.com/valerio/go-spc/spc/state"
)

const (
	// StateSize is the most SaveState ever writes.
	StateSize = 67 * 1024

	stateMagic   = "SPCS"
	stateVersion = 1
)

var (
	ErrBadState            = errors.New("bad spc state")
	ErrStateBufferTooSmall = errors.New("state buffer too small")
)

// SaveState writes the complete machine into buf and returns the number of
// bytes used. Output routing is not saved, call SetOutput after loading.
func (a *APU) SaveState(buf []byte) (int, error) {
	w := state.NewWriter(buf)

	w.WriteData([]byte(stateMagic))
	w.Write8(stateVersion)

	a.ram.Save(w)
	w.WriteData(a.regs[:])
	w.WriteData(a.regsIn[:])

	r := a.cpu.Registers
	w.Write16(r.PC)
	w.Write8(r.A)
	w.Write8(r.X)
	w.Write8(r.Y)
	w.Write8(r.PSW)
	w.Write8(r.SP)

	for i := range a.timers {
		a.timers[i].Save(w)
	}

	w.WriteInt(a.spcTime)
	w.WriteInt(a.dspTime)
	w.WriteInt(a.extraClocks)
	w.WriteInt(a.tempo)
	w.WriteBool(a.echoAccessed)
	w.Write8(a.skippedKON)
	w.Write8(a.skippedKOFF)

	w.Write8(uint8(a.extraLen))
	for _, s := range a.extraBuf {
		w.Write16(uint16(s))
	}

	cpuError := ""
	if a.cpuError != nil {
		cpuError = a.cpuError.Error()
	}
	w.WriteString(cpuError)

	a.dsp.Serialize(w)

	if err := w.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStateBufferTooSmall, err)
	}
	return w.Len(), nil
}

// LoadState restores a machine saved by SaveState. On error the APU is left
// in an unspecified state and should be reset or reloaded.
func (a *APU) LoadState(buf []byte) error {
	r := state.NewReader(buf)

	var magic [len(stateMagic)]byte
	r.ReadData(magic[:])
	version := r.Read8()
	if err := r.Err(); err != nil {
		return fmt.Errorf("reading state header: %w", err)
	}
	if string(magic[:]) != stateMagic {
		return fmt.Errorf("%w: missing magic", ErrBadState)
	}
	if version != stateVersion {
		return fmt.Errorf("%w: version %d, expected %d", ErrBadState, version, stateVersion)
	}

	a.ram.Load(r)
	r.ReadData(a.regs[:])
	r.ReadData(a.regsIn[:])

	regs := &a.cpu.Registers
	regs.PC = r.Read16()
	regs.A = r.Read8()
	regs.X = r.Read8()
	regs.Y = r.Read8()
	regs.PSW = r.Read8()
	regs.SP = r.Read8()

	for i := range a.timers {
		a.timers[i].Load(r)
	}

	a.spcTime = r.ReadInt()
	a.dspTime = r.ReadInt()
	a.extraClocks = r.ReadInt()
	a.tempo = r.ReadInt()
	a.echoAccessed = r.ReadBool()
	a.skippedKON = r.Read8()
	a.skippedKOFF = r.Read8()

	a.extraLen = int(r.Read8())
	for i := range a.extraBuf {
		a.extraBuf[i] = int16(r.Read16())
	}
	if a.extraLen > extraSize {
		r.Fail(fmt.Errorf("%w: %d extra samples", ErrBadState, a.extraLen))
	}

	a.cpuError = nil
	if msg := r.ReadString(); msg != "" {
		a.cpuError = errors.New(msg)
	}

	a.dsp.Deserialize(r)

	if err := r.Err(); err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	a.skipping = false
	a.out = nil
	a.dsp.SetOutput(nil, 0)
	return nil
}
