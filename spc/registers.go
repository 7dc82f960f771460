package spc

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-spc/spc/addr"
)

// ReadPort returns the value the SPC-700 last wrote to port 0-3, after
// running it up to time t.
func (a *APU) ReadPort(t int, port int) uint8 {
	check(port >= 0 && port < addr.PortCount, "port %d out of range", port)
	a.runUntil(t)
	return a.regs[addr.CPUIO0+port]
}

// WritePort makes v readable by the SPC-700 on port 0-3 from time t.
func (a *APU) WritePort(t int, port int, v uint8) {
	check(port >= 0 && port < addr.PortCount, "port %d out of range", port)
	a.runUntil(t)
	a.regsIn[addr.CPUIO0+port] = v
}

// smpBus is the APU as seen by the SPC-700.
type smpBus APU

func (b *smpBus) Read(address uint16, time int) uint8 {
	a := (*APU)(b)
	if address >= addr.RegStart && address <= addr.RegEnd {
		return a.readRegister(uint8(address-addr.RegStart), time)
	}
	a.checkEchoAccess(address)
	return a.ram.Read(address)
}

func (b *smpBus) Write(address uint16, value uint8, time int) {
	a := (*APU)(b)
	// registers are backed by RAM as well
	a.ram.Write(address, value)
	if address >= addr.RegStart && address <= addr.RegEnd {
		a.writeRegister(uint8(address-addr.RegStart), value, time)
		return
	}
	a.checkEchoAccess(address)
}

func (b *smpBus) Fetch(address uint16) uint8 {
	return (*APU)(b).ram.Read(address)
}

func (a *APU) readRegister(reg uint8, time int) uint8 {
	switch reg {
	case addr.T0Out, addr.T1Out, addr.T2Out:
		return a.timers[reg-addr.T0Out].ReadOutput(time)
	case addr.DSPAddr:
		return a.regs[addr.DSPAddr]
	case addr.DSPData:
		return a.dspRead(time)
	default:
		return a.regsIn[reg]
	}
}

func (a *APU) writeRegister(reg uint8, value uint8, time int) {
	a.regs[reg] = value

	switch reg {
	case addr.DSPData:
		a.dspWrite(value, time)
	case addr.T0Target, addr.T1Target, addr.T2Target:
		t := &a.timers[reg-addr.T0Target]
		t.Run(time)
		t.SetTarget(value)
	case addr.T0Out, addr.T1Out, addr.T2Out:
		slog.Debug("SPC wrote to timer counter", "timer", reg-addr.T0Out)
		a.timers[reg-addr.T0Out].ClearOutput(time)
	case addr.F8, addr.F9:
		a.regsIn[reg] = value
	case addr.Test:
		if value != 0x0A {
			slog.Warn("SPC wrote to test register", "value", fmt.Sprintf("0x%02X", value))
		}
	case addr.Control:
		a.writeControl(value, time)
	}
	// DSPAddr and the ports only latch into regs
}

func (a *APU) writeControl(value uint8, time int) {
	if value&addr.ControlClear01 != 0 {
		a.regsIn[addr.CPUIO0] = 0
		a.regsIn[addr.CPUIO1] = 0
	}
	if value&addr.ControlClear23 != 0 {
		a.regsIn[addr.CPUIO2] = 0
		a.regsIn[addr.CPUIO3] = 0
	}

	for i := range a.timers {
		a.timers[i].SetEnabled(time, value>>i&1 != 0)
	}

	a.ram.EnableROM(value&addr.ControlROMEnable != 0)
}

func (a *APU) dspRead(time int) uint8 {
	reg := a.regs[addr.DSPAddr] & 0x7F
	if reg == addr.ESA || reg == addr.EDL {
		a.echoAccessed = true
	}
	a.runDSP(time)
	return a.dsp.Read(reg)
}

func (a *APU) dspWrite(value uint8, time int) {
	reg := a.regs[addr.DSPAddr]

	if a.skipping {
		switch reg {
		case addr.KON:
			a.skippedKON |= value &^ a.dsp.Read(addr.KOFF)
		case addr.KOFF:
			a.skippedKOFF |= value
			a.skippedKON &^= value
		}
	}

	a.runDSP(time)

	if reg >= addr.DSPRegCount {
		slog.Debug("SPC wrote to read-only DSP mirror", "reg", fmt.Sprintf("0x%02X", reg))
		return
	}
	a.dsp.Write(reg, value)
}
