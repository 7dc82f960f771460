package spcfile

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFile() []byte {
	data := make([]byte, FileSize)
	InitHeader(data)
	return data
}

func TestValidate(t *testing.T) {
	bad := newFile()
	copy(bad, "SNES-SPC701")

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{"full size", newFile(), nil},
		{"minimum size", newFile()[:MinFileSize], nil},
		{"too small", newFile()[:MinFileSize-1], ErrFileTooSmall},
		{"empty", nil, ErrFileTooSmall},
		{"bad signature", bad, ErrNotSPC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestHasIPL(t *testing.T) {
	assert.True(t, HasIPL(newFile()))
	assert.False(t, HasIPL(newFile()[:MinFileSize]))
	assert.False(t, HasIPL(newFile()[:FileSize-1]))
}

func TestValidateIgnoresVersionDigits(t *testing.T) {
	data := newFile()
	copy(data[SignatureCheckSize:], " v0.10")
	assert.NoError(t, Validate(data))
}

func TestInitHeader(t *testing.T) {
	data := make([]byte, FileSize)
	for i := range data {
		data[i] = 0xAA
	}

	InitHeader(data)

	assert.Equal(t, Signature, string(data[:SignatureSize]))
	assert.Equal(t, uint8(HasID666), data[OffsetHasID666])
	assert.Equal(t, uint8(Version), data[OffsetVersion])
	assert.Equal(t, make([]byte, TextSize), data[OffsetText:OffsetText+TextSize])
	assert.Equal(t, uint8(0xAA), data[OffsetPC], "registers untouched")
	assert.Equal(t, uint8(0xAA), data[OffsetRAM], "ram untouched")
}

func TestRegistersRoundTrip(t *testing.T) {
	data := newFile()
	regs := Registers{PC: 0x1234, A: 1, X: 2, Y: 3, PSW: 4, SP: 0xEF}

	WriteRegisters(data, regs)

	assert.Equal(t, uint8(0x34), data[OffsetPC])
	assert.Equal(t, uint8(0x12), data[OffsetPC+1])
	assert.Equal(t, regs, ReadRegisters(data))
}

func TestParseID666Text(t *testing.T) {
	data := newFile()
	copy(data[OffsetSong:], "Opening")
	copy(data[id666Game:], "Some Game")
	copy(data[id666Dumper:], "dumper")
	copy(data[id666Comment:], "hello")
	copy(data[id666Date:], "01/02/1999")
	copy(data[textSeconds:], "120")
	copy(data[textFade:], "10000")
	copy(data[textArtist:], "Composer")

	tags, ok := ParseID666(data)

	require.True(t, ok)
	assert.False(t, tags.Binary)
	assert.Equal(t, "Opening", tags.Song)
	assert.Equal(t, "Some Game", tags.Game)
	assert.Equal(t, "dumper", tags.Dumper)
	assert.Equal(t, "hello", tags.Comment)
	assert.Equal(t, "01/02/1999", tags.Date)
	assert.Equal(t, "Composer", tags.Artist)
	assert.Equal(t, 120, tags.Seconds)
	assert.Equal(t, 10000, tags.FadeMS)
	assert.Equal(t, 130*time.Second, tags.Length())
}

func TestParseID666Binary(t *testing.T) {
	data := newFile()
	copy(data[OffsetSong:], "Battle")
	data[id666Date] = 2
	data[id666Date+1] = 1
	binary.LittleEndian.PutUint16(data[id666Date+2:], 1999)
	data[binSeconds] = 90
	binary.LittleEndian.PutUint32(data[binFade:], 5000)
	copy(data[binArtist:], "Composer")

	tags, ok := ParseID666(data)

	require.True(t, ok)
	assert.True(t, tags.Binary)
	assert.Equal(t, "Battle", tags.Song)
	assert.Equal(t, "1/2/1999", tags.Date)
	assert.Equal(t, 90, tags.Seconds)
	assert.Equal(t, 5000, tags.FadeMS)
	assert.Equal(t, "Composer", tags.Artist)
}

func TestParseID666Missing(t *testing.T) {
	data := newFile()
	data[OffsetHasID666] = 27

	_, ok := ParseID666(data)

	assert.False(t, ok)
}
