package cpu

import (
	"errors"
	"log/slog"

	"github.com/valerio/go-spc/spc/addr"
)

// ErrStopped is returned by Run when the program executed SLEEP or STOP.
// The CPU stays parked on the instruction until something moves PC.
var ErrStopped = errors.New("cpu: SLEEP/STOP executed")

// ErrPCWrapped is returned by Run when an instruction or its operands ran
// past $FFFF. The rest of the frame is spent idle.
var ErrPCWrapped = errors.New("cpu: PC wrapped past $FFFF")

// Bus is the CPU's view of memory. Times are relative clock values: Run is
// asked to execute up to time 0, starting from a negative time.
type Bus interface {
	// Read performs a data read with side effects (timers, DSP).
	Read(address uint16, time int) uint8
	Write(address uint16, value uint8, time int)
	// Fetch returns program bytes without side effects.
	Fetch(address uint16) uint8
}

// PSW flags
const (
	flagC uint8 = 0x01
	flagZ uint8 = 0x02
	flagI uint8 = 0x04
	flagH uint8 = 0x08
	flagB uint8 = 0x10
	flagP uint8 = 0x20
	flagV uint8 = 0x40
	flagN uint8 = 0x80
)

// Registers is the programmer visible register set.
type Registers struct {
	PC  uint16
	A   uint8
	X   uint8
	Y   uint8
	PSW uint8
	SP  uint8
}

// YA returns the 16 bit pair formed by Y (high) and A (low).
func (r *Registers) YA() uint16 {
	return uint16(r.Y)<<8 | uint16(r.A)
}

func (r *Registers) setYA(v uint16) {
	r.Y = uint8(v >> 8)
	r.A = uint8(v)
}

// CPU is the SPC-700 interpreter.
type CPU struct {
	Registers

	bus     Bus
	time    int
	opcode  uint8
	stopped bool
	wrapped bool
}

// New returns a CPU in its reset state, attached to bus.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset clears every register and points PC at the boot ROM.
func (c *CPU) Reset() {
	c.Registers = Registers{PC: addr.ROMStart}
	c.stopped = false
	c.wrapped = false
}

// Run executes instructions starting at the given relative time until time
// 0 is reached. An instruction that would end after time 0 is not started.
// It returns the time the CPU stopped at, which is at most 0.
func (c *CPU) Run(time int) (int, error) {
	c.time = time
	c.stopped = false
	c.wrapped = false

	for {
		op := c.bus.Fetch(c.PC)
		cycles := cycleTable[op]
		if c.time+cycles > 0 {
			break
		}

		c.opcode = op
		c.advancePC()
		c.time += cycles
		actual := opcodes[op](c)
		c.time -= cycles - actual

		if c.wrapped {
			c.time = 0
			slog.Debug("SPC ran off the end of memory", "pc", c.PC, "opcode", op)
			return c.time, ErrPCWrapped
		}
		if c.stopped {
			c.time = 0
			slog.Debug("SPC halted", "pc", c.PC, "opcode", op)
			return c.time, ErrStopped
		}
	}

	return c.time, nil
}

// advancePC moves past a program byte, noting a wrap from $FFFF to $0000.
func (c *CPU) advancePC() {
	if c.PC == 0xFFFF {
		c.wrapped = true
	}
	c.PC++
}

// Cycles returns the cost of an opcode, including the taken branch penalty
// for conditional branches.
func Cycles(opcode uint8) int {
	return cycleTable[opcode]
}

var cycleTable = [256]int{
	//  0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 4, 6, 8, // 0
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 6, 5, 2, 2, 4, 6, // 1
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 4, 7, 4, // 2
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 6, 5, 2, 2, 3, 8, // 3
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 4, 6, 6, // 4
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 4, 5, 2, 2, 4, 3, // 5
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 4, 7, 5, // 6
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 3, 6, // 7
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 2, 4, 5, // 8
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 12, 5, // 9
	3, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 2, 4, 4, // A
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 3, 4, // B
	3, 8, 4, 7, 4, 5, 4, 7, 2, 5, 6, 4, 5, 2, 4, 9, // C
	4, 8, 4, 7, 5, 6, 6, 7, 4, 5, 5, 5, 2, 2, 8, 3, // D
	2, 8, 4, 7, 3, 4, 3, 6, 2, 4, 5, 3, 4, 3, 4, 0, // E
	4, 8, 4, 7, 4, 5, 5, 6, 3, 4, 5, 4, 2, 2, 6, 0, // F
}
