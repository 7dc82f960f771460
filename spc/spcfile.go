package spc

import (
	"fmt"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/cpu"
	"github.com/valerio/go-spc/spc/spcfile"
)

// LoadSPC resets the machine and loads a .spc music file into it. Invalid
// data is rejected before anything is changed. The file's IPL image is
// ignored, the ROM given to New stays in place.
func (a *APU) LoadSPC(data []byte) error {
	if err := spcfile.Validate(data); err != nil {
		return fmt.Errorf("loading spc: %w", err)
	}

	a.Reset()

	r := spcfile.ReadRegisters(data)
	a.cpu.Registers = cpu.Registers{PC: r.PC, A: r.A, X: r.X, Y: r.Y, PSW: r.PSW, SP: r.SP}

	copy(a.ram.Bytes(), data[spcfile.OffsetRAM:spcfile.OffsetRAM+spcfile.RAMSize])
	a.ramLoaded()

	var dspRegs [addr.DSPRegCount]uint8
	copy(dspRegs[:], data[spcfile.OffsetDSP:])
	a.dsp.Load(dspRegs)

	a.resetTimeRegs()
	return nil
}

// SaveSPC writes the machine as a .spc file into out, which must hold
// spcfile.FileSize bytes. The header text is left alone, see
// spcfile.InitHeader.
func (a *APU) SaveSPC(out []byte) {
	_ = out[spcfile.FileSize-1]

	r := a.cpu.Registers
	spcfile.WriteRegisters(out, spcfile.Registers{PC: r.PC, A: r.A, X: r.X, Y: r.Y, PSW: r.PSW, SP: r.SP})

	ram := out[spcfile.OffsetRAM : spcfile.OffsetRAM+spcfile.RAMSize]
	copy(ram, a.ram.Bytes())
	a.saveRegs(ram[addr.RegStart : addr.RegStart+addr.RegCount])
	for i := 0; i < addr.PortCount; i++ {
		ram[addr.RegStart+addr.CPUIO0+uint16(i)] = a.regsIn[addr.CPUIO0+i]
	}

	dspRegs := a.dsp.Regs()
	copy(out[spcfile.OffsetDSP:], dspRegs[:])

	clear(out[spcfile.OffsetUnused : spcfile.OffsetUnused+spcfile.UnusedSize])
	copy(out[spcfile.OffsetIPL:], a.ram.ROM())
}

// saveRegs writes the last written register values with live timer
// counters.
func (a *APU) saveRegs(out []byte) {
	copy(out, a.regs[:addr.T0Out])
	for i := range a.timers {
		out[addr.T0Out+i] = a.timers[i].Counter()
	}
}
