package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/audio"
	"github.com/valerio/go-spc/spc/spcfile"
)

// delayedKeyOnProgram spins for about 400 sample pairs, then keys on voice 0.
var delayedKeyOnProgram = []byte{
	0x8F, 0x4C, 0xF2, // MOV $F2,#$4C
	0xCD, 0x08, // MOV X,#8
	0x8D, 0x00, // outer: MOV Y,#0
	0xFE, 0xFE, // DBNZ Y,self
	0x1D,       // DEC X
	0xD0, 0xF9, // BNE outer
	0x8F, 0x01, 0xF3, // MOV $F3,#$01
	0x2F, 0xFE, // BRA self
}

func buildSPC(program []byte) []byte {
	data := make([]byte, spcfile.FileSize)
	spcfile.InitHeader(data)
	spcfile.WriteRegisters(data, spcfile.Registers{PC: 0x0400, SP: 0xEF})
	copy(data[spcfile.OffsetRAM+0x0400:], program)
	data[spcfile.OffsetDSP+addr.FLG] = addr.FLGEchoDisable
	return data
}

func TestParseMask(t *testing.T) {
	tests := []struct {
		in       string
		expected int
		err      bool
	}{
		{"0", 0, false},
		{"255", 0xFF, false},
		{"0x81", 0x81, false},
		{"0b101", 5, false},
		{"256", 0, true},
		{"voices", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMask(tt.in)
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSongPairs(t *testing.T) {
	s := &song{length: 2 * time.Second, fade: 500 * time.Millisecond}

	total, fade := s.pairs()

	assert.Equal(t, 2*spc.SampleRate+spc.SampleRate/2, total)
	assert.Equal(t, audio.Fade{Start: 2 * spc.SampleRate, Length: spc.SampleRate / 2}, fade)
}

func TestTrimToKeyOn(t *testing.T) {
	a, err := spc.New()
	require.NoError(t, err)
	require.NoError(t, a.LoadSPC(buildSPC(delayedKeyOnProgram)))

	played, found := trimToKeyOn(a, spc.SampleRate)

	require.True(t, found)
	assert.Greater(t, played, 0)
	assert.Zero(t, played%64)
	assert.False(t, a.CheckKON(), "rewound to before the key-on")

	require.NoError(t, a.Play(128*audio.Channels, nil))
	assert.True(t, a.CheckKON(), "key-on follows right after the trim point")
}

func TestTrimWithoutKeyOn(t *testing.T) {
	a, err := spc.New()
	require.NoError(t, err)
	require.NoError(t, a.LoadSPC(buildSPC([]byte{0x2F, 0xFE})))

	played, found := trimToKeyOn(a, 256)

	assert.False(t, found)
	assert.Equal(t, 256, played)
}

func TestDigestSongDeterministic(t *testing.T) {
	s := &song{
		name:   "test.spc",
		data:   buildSPC(delayedKeyOnProgram),
		length: 100 * time.Millisecond,
		fade:   50 * time.Millisecond,
	}

	first, err := digestSong(s)
	require.NoError(t, err)
	second, err := digestSong(s)
	require.NoError(t, err)

	assert.Equal(t, first.Sum64(), second.Sum64())
	assert.Equal(t, audio.Pairs(150*time.Millisecond)*audio.Channels, first.Samples())
}
