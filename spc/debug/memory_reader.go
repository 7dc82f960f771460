package debug

import (
	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/addr"
)

// MemoryReader provides read-only access to APU memory for debug tools.
// Reads never touch I/O registers, so they have no side effects.
type MemoryReader struct {
	ram        []byte
	rom        []byte
	romEnabled bool
}

func NewMemoryReader(a *spc.APU) *MemoryReader {
	return &MemoryReader{
		ram:        a.RAM(),
		rom:        a.ROM(),
		romEnabled: a.ROMEnabled(),
	}
}

// Read returns the byte the CPU would fetch at addr.
func (m *MemoryReader) Read(address uint16) uint8 {
	if m.romEnabled && address >= addr.ROMStart && int(address-addr.ROMStart) < len(m.rom) {
		return m.rom[address-addr.ROMStart]
	}
	return m.ram[address]
}

// ReadBit reads a specific bit from a memory address
func (m *MemoryReader) ReadBit(bit uint8, address uint16) bool {
	return m.Read(address)&(1<<bit) != 0
}
