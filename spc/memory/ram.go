package memory

import (
	"fmt"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/state"
)

// RAM is the coprocessor's 64 KiB address space with the IPL ROM overlay.
// Writes always land in RAM, the overlay only changes what reads of
// $FFC0-$FFFF return, so toggling it any number of times is harmless.
type RAM struct {
	data       [addr.RAMSize]byte
	rom        [addr.ROMSize]byte
	hasROM     bool
	romEnabled bool
}

// SetROM installs the 64 byte boot ROM image. Without one the overlay
// stays disabled regardless of CONTROL bit 7.
func (m *RAM) SetROM(rom []byte) error {
	if len(rom) != addr.ROMSize {
		return fmt.Errorf("ipl rom must be %d bytes, got %d", addr.ROMSize, len(rom))
	}
	copy(m.rom[:], rom)
	m.hasROM = true
	return nil
}

// ROM returns the installed boot ROM image, all zero when none is set.
func (m *RAM) ROM() []byte {
	return m.rom[:]
}

func (m *RAM) HasROM() bool {
	return m.hasROM
}

// EnableROM maps or unmaps the boot ROM at addr.ROMStart.
func (m *RAM) EnableROM(enable bool) {
	m.romEnabled = enable && m.hasROM
}

func (m *RAM) ROMEnabled() bool {
	return m.romEnabled
}

// Read returns the byte visible to the CPU at address.
func (m *RAM) Read(address uint16) uint8 {
	if m.romEnabled && address >= addr.ROMStart {
		return m.rom[address-addr.ROMStart]
	}
	return m.data[address]
}

// Write stores into RAM; while the overlay is active the write is hidden
// behind the ROM until it is unmapped.
func (m *RAM) Write(address uint16, value uint8) {
	m.data[address] = value
}

// Read16 reads a little-endian word, wrapping at the end of memory.
func (m *RAM) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Bytes exposes the underlying RAM, ignoring the overlay.
func (m *RAM) Bytes() []byte {
	return m.data[:]
}

func (m *RAM) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

func (m *RAM) Save(w *state.Writer) {
	w.WriteData(m.data[:])
	w.WriteData(m.rom[:])
	w.WriteBool(m.hasROM)
	w.WriteBool(m.romEnabled)
}

func (m *RAM) Load(r *state.Reader) {
	r.ReadData(m.data[:])
	r.ReadData(m.rom[:])
	m.hasROM = r.ReadBool()
	m.romEnabled = r.ReadBool() && m.hasROM
}

var _ state.Stater = (*RAM)(nil)
