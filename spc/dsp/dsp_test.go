package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/state"
)

// newVoiceDSP returns a DSP and RAM set up to key on voice 0 playing a
// looping block of constant samples at normal pitch.
func newVoiceDSP(tb testing.TB) (*DSP, []byte) {
	tb.Helper()
	ram := make([]byte, addr.RAMSize)

	// sample directory at $0200, source 0 starts and loops at $0300
	ram[0x200], ram[0x201] = 0x00, 0x03
	ram[0x202], ram[0x203] = 0x00, 0x03
	ram[0x300] = 0xB3 // shift 11, filter 0, loop, end
	for i := 1; i < brrBlockSize; i++ {
		ram[0x300+i] = 0x77
	}

	var regs [addr.DSPRegCount]uint8
	regs[addr.FLG] = addr.FLGEchoDisable
	regs[addr.MVOLL] = 0x7F
	regs[addr.MVOLR] = 0x7F
	regs[addr.DIR] = 0x02
	regs[addr.KON] = 0x01
	regs[addr.VVOLL] = 0x7F
	regs[addr.VVOLR] = 0x7F
	regs[addr.VPITCHH] = 0x10
	regs[addr.VGAIN] = 0x7F

	d := New()
	d.Load(regs)
	return d, ram
}

func render(d *DSP, ram []byte, pairs int) []int16 {
	out := make([]int16, pairs*2)
	d.SetOutput(out, 0)
	d.Run(ram, pairs*ClocksPerSample)
	return out
}

func countNonZero(samples []int16) int {
	n := 0
	for _, s := range samples {
		if s != 0 {
			n++
		}
	}
	return n
}

func TestNewPowerOnRegisters(t *testing.T) {
	d := New()
	assert.Equal(t, uint8(0xE0), d.Read(addr.FLG))
	assert.Equal(t, d.Read(addr.FLG), d.Read(addr.FLG|0x80), "upper half mirrors the registers")
}

func TestWriteENDXClears(t *testing.T) {
	d := New()
	d.regs[addr.ENDX] = 0xFF
	d.Write(addr.ENDX, 0x12)
	assert.Equal(t, uint8(0), d.Read(addr.ENDX))
}

func TestSilentWithoutKeyOn(t *testing.T) {
	d := New()
	ram := make([]byte, addr.RAMSize)
	out := render(d, ram, 256)
	assert.Zero(t, countNonZero(out))
}

func TestVoicePlays(t *testing.T) {
	d, ram := newVoiceDSP(t)
	out := render(d, ram, 64)

	assert.Greater(t, countNonZero(out[64:]), 0)
	assert.True(t, d.CheckKON())
	assert.False(t, d.CheckKON(), "flag clears on read")

	status := d.Voice(0)
	assert.Equal(t, 0x1000, status.Pitch)
	assert.Greater(t, status.Env, 0)
}

func TestMutedVoiceIsSilent(t *testing.T) {
	d, ram := newVoiceDSP(t)
	d.MuteVoices(0xFF)
	out := render(d, ram, 64)
	assert.Zero(t, countNonZero(out))
	assert.True(t, d.Voice(0).Muted)
}

func TestSoloAndToggle(t *testing.T) {
	d := New()
	d.SoloVoice(2)
	assert.Equal(t, 0xFB, d.MuteMask())
	d.ToggleVoice(2)
	assert.Equal(t, 0xFF, d.MuteMask())
	d.UnmuteAll()
	assert.Equal(t, 0, d.MuteMask())
	d.ToggleVoice(9)
	assert.Equal(t, 0, d.MuteMask())
}

func TestFLGMuteSilences(t *testing.T) {
	d, ram := newVoiceDSP(t)
	d.Write(addr.FLG, addr.FLGMute|addr.FLGEchoDisable)
	out := render(d, ram, 64)
	assert.Zero(t, countNonZero(out))
}

func TestOutputOverflowsIntoExtra(t *testing.T) {
	d := New()
	ram := make([]byte, addr.RAMSize)
	out := make([]int16, 8)
	d.SetOutput(out, 0)
	d.Run(ram, 4*ClocksPerSample)
	assert.True(t, d.InExtra())
	assert.Equal(t, 0, d.OutPos())

	d.Run(ram, 2*ClocksPerSample)
	assert.Equal(t, 4, d.OutPos())
}

func TestRunCarriesPhase(t *testing.T) {
	d := New()
	ram := make([]byte, addr.RAMSize)
	out := make([]int16, 64)
	d.SetOutput(out, 0)
	for i := 0; i < 8; i++ {
		d.Run(ram, ClocksPerSample/2)
	}
	assert.Equal(t, 8, d.OutPos())
}

func TestEchoWritesBuffer(t *testing.T) {
	tests := []struct {
		name         string
		flg          uint8
		disableEcho  bool
		expectChange bool
	}{
		{"echo enabled", 0x00, false, true},
		{"echo writes disabled by FLG", addr.FLGEchoDisable, false, false},
		{"echo disabled by config", 0x00, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ram := newVoiceDSP(t)
			d.DisableEcho(tt.disableEcho)
			d.Write(addr.FLG, tt.flg)
			d.Write(addr.ESA, 0x80)
			d.Write(addr.EDL, 0x01)
			d.Write(addr.EON, 0x01)
			d.Write(addr.EFB, 0x40)
			for i := 0x8000; i < 0x8800; i++ {
				ram[i] = 0x55
			}

			render(d, ram, 256)

			changed := false
			for i := 0x8000; i < 0x8800; i++ {
				if ram[i] != 0x55 {
					changed = true
					break
				}
			}
			assert.Equal(t, tt.expectChange, changed)
		})
	}
}

func TestGaussTableSums(t *testing.T) {
	for offset := 0; offset < 256; offset++ {
		sum := gauss[255-offset] + gauss[511-offset] + gauss[256+offset] + gauss[offset]
		assert.InDelta(t, 2048, sum, 40, "offset %d", offset)
	}
}

func TestDecodeBRR(t *testing.T) {
	tests := []struct {
		name     string
		header   int
		data     [2]byte
		expected [4]int
	}{
		{"shift 12 no filter", 0xC0, [2]byte{0x1F, 0x70}, [4]int{4096, -4096, 28672, 0}},
		{"invalid shift keeps sign", 0xF0, [2]byte{0x81, 0x00}, [4]int{-4096, 0, 0, 0}},
		{"shift 0 halves", 0x00, [2]byte{0x23, 0x00}, [4]int{2, 2, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			ram := make([]byte, addr.RAMSize)
			ram[0x401] = tt.data[0]
			ram[0x402] = tt.data[1]
			v := &voice{brrAddr: 0x400, brrOffset: 1}

			d.decodeBRR(ram, v, tt.header)
			assert.Equal(t, tt.expected[:], v.buf[:4])
			assert.Equal(t, 4, v.bufPos)
		})
	}
}

func TestEnvelopeRelease(t *testing.T) {
	d := New()
	d.Write(addr.FLG, 0)
	v := &d.voices[0]
	v.envMode = envRelease
	v.env = 0x10

	d.runEnvelope(0)
	assert.Equal(t, 0x08, v.env)
	d.runEnvelope(0)
	d.runEnvelope(0)
	assert.Equal(t, 0, v.env)
}

func TestEnvelopeAttackReachesDecay(t *testing.T) {
	d := New()
	d.Write(addr.VADSR1, 0x8F) // ADSR, fastest attack
	v := &d.voices[0]
	v.envMode = envAttack

	for i := 0; i < 4 && v.envMode == envAttack; i++ {
		d.runEnvelope(0)
	}
	assert.Equal(t, envDecay, v.envMode)
	assert.Equal(t, 0x7FF, v.env)
}

func TestSerializeRoundTrip(t *testing.T) {
	d, ram := newVoiceDSP(t)
	render(d, ram, 100)

	buf := make([]byte, 4096)
	w := state.NewWriter(buf)
	d.Serialize(w)
	require.NoError(t, w.Err())

	restored := New()
	r := state.NewReader(buf[:w.Len()])
	restored.Deserialize(r)
	require.NoError(t, r.Err())

	ramCopy := append([]byte(nil), ram...)
	expected := render(d, ram, 200)
	actual := render(restored, ramCopy, 200)
	assert.Equal(t, expected, actual)
}

func TestDeserializeShortBuffer(t *testing.T) {
	d := New()
	r := state.NewReader(make([]byte, 10))
	d.Deserialize(r)
	assert.ErrorIs(t, r.Err(), state.ErrShortBuffer)
}

func BenchmarkRun(b *testing.B) {
	d, ram := newVoiceDSP(b)
	out := make([]int16, 2*512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.SetOutput(out, 0)
		d.Run(ram, 511*ClocksPerSample)
	}
}
