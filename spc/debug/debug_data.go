// Package debug extracts read-only views of a running APU for monitors.
package debug

import (
	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/dsp"
)

const (
	VoiceCount = 8
	TimerCount = 3
)

// CPUState contains all SPC-700 register information for debugging
type CPUState struct {
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	PSW uint8
	SP  uint8
}

// Flags renders PSW as NVPBHIZC, lower case for clear bits.
func (c CPUState) Flags() string {
	const names = "NVPBHIZC"
	out := []byte(names)
	for i := range out {
		if c.PSW&(0x80>>i) == 0 {
			out[i] += 'a' - 'A'
		}
	}
	return string(out)
}

// PlayerState represents the current monitor state
type PlayerState int

const (
	PlayerRunning PlayerState = iota
	PlayerPaused
	PlayerStepFrame
)

func (s PlayerState) String() string {
	switch s {
	case PlayerPaused:
		return "PAUSED"
	case PlayerStepFrame:
		return "STEP"
	}
	return "RUNNING"
}

// Snapshot contains all debug information needed by monitor displays
type Snapshot struct {
	CPU          CPUState
	Voices       [VoiceCount]dsp.VoiceStatus
	Timers       [TimerCount]spc.TimerStatus
	PortsOut     [addr.PortCount]uint8
	PortsIn      [addr.PortCount]uint8
	Disassembly  []DisasmLine
	Tempo        int
	MuteMask     int
	ROMEnabled   bool
	EchoAccessed bool
	State        PlayerState
}

// Extract captures the APU state. disasmLines instructions are decoded
// starting at PC; zero skips disassembly.
func Extract(a *spc.APU, disasmLines int) *Snapshot {
	regs := a.Registers()
	s := &Snapshot{
		CPU: CPUState{
			PC:  regs.PC,
			A:   regs.A,
			X:   regs.X,
			Y:   regs.Y,
			PSW: regs.PSW,
			SP:  regs.SP,
		},
		Tempo:        a.Tempo(),
		MuteMask:     a.DSP().MuteMask(),
		ROMEnabled:   a.ROMEnabled(),
		EchoAccessed: a.EchoAccessed(),
	}

	for i := range s.Voices {
		s.Voices[i] = a.DSP().Voice(i)
	}
	for i := range s.Timers {
		s.Timers[i] = a.Timer(i)
	}
	s.PortsOut, s.PortsIn = a.Ports()

	if disasmLines > 0 {
		s.Disassembly = CreateDisassembly(NewMemoryReader(a), regs.PC, disasmLines)
	}
	return s
}

// ActiveVoices returns a bitmask of voices whose envelope is above zero.
func (s *Snapshot) ActiveVoices() int {
	mask := 0
	for i, v := range s.Voices {
		if v.Env > 0 {
			mask |= 1 << i
		}
	}
	return mask
}
