package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/state"
)

func testROM() []byte {
	rom := make([]byte, addr.ROMSize)
	for i := range rom {
		rom[i] = byte(0x80 + i)
	}
	return rom
}

func TestRAMReadWrite(t *testing.T) {
	var m RAM
	m.Write(0x1234, 0x56)
	assert.Equal(t, uint8(0x56), m.Read(0x1234))

	m.Write(0xFFFF, 0x12)
	m.Write(0x0000, 0x34)
	assert.Equal(t, uint16(0x3412), m.Read16(0xFFFF), "word reads wrap around")
}

func TestSetROMRejectsWrongSize(t *testing.T) {
	var m RAM
	assert.Error(t, m.SetROM(make([]byte, 10)))
	assert.False(t, m.HasROM())
}

func TestROMOverlay(t *testing.T) {
	var m RAM
	require.NoError(t, m.SetROM(testROM()))
	m.Write(0xFFC0, 0x11)

	m.EnableROM(true)
	assert.Equal(t, uint8(0x80), m.Read(0xFFC0))

	m.Write(0xFFC0, 0x22)
	assert.Equal(t, uint8(0x80), m.Read(0xFFC0), "writes are hidden behind the rom")

	m.EnableROM(false)
	assert.Equal(t, uint8(0x22), m.Read(0xFFC0))
}

func TestROMOverlayIdempotent(t *testing.T) {
	var m RAM
	require.NoError(t, m.SetROM(testROM()))
	for i := 0; i < addr.ROMSize; i++ {
		m.Write(addr.ROMStart+uint16(i), byte(i))
	}

	m.EnableROM(true)
	m.EnableROM(true)
	m.EnableROM(false)
	m.EnableROM(false)
	m.EnableROM(true)
	m.EnableROM(false)

	for i := 0; i < addr.ROMSize; i++ {
		assert.Equal(t, byte(i), m.Read(addr.ROMStart+uint16(i)))
	}
}

func TestROMOverlayWithoutROM(t *testing.T) {
	var m RAM
	m.Write(0xFFC0, 0x42)
	m.EnableROM(true)
	assert.False(t, m.ROMEnabled())
	assert.Equal(t, uint8(0x42), m.Read(0xFFC0))
}

func TestRAMSaveLoad(t *testing.T) {
	var m RAM
	require.NoError(t, m.SetROM(testROM()))
	m.Fill(0xFF)
	m.Write(0x200, 0x01)
	m.EnableROM(true)

	buf := make([]byte, addr.RAMSize+addr.ROMSize+2)
	w := state.NewWriter(buf)
	m.Save(w)
	require.NoError(t, w.Err())

	var restored RAM
	r := state.NewReader(buf)
	restored.Load(r)
	require.NoError(t, r.Err())
	assert.Equal(t, m, restored)
}
