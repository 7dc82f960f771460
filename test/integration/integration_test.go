package integration

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/addr"
	"github.com/valerio/go-spc/spc/audio"
	"github.com/valerio/go-spc/spc/loader"
	"github.com/valerio/go-spc/spc/spcfile"
)

const (
	programStart = 0x0400
	framePairs   = 512
)

// hostProgram answers the host: port 0 echoes back, port 1 returns the
// timer 0 tick total, and a write of $01 to port 2 keys on voice 0 and
// clears the port 2 input.
var hostProgram = []byte{
	0x8F, 0x20, 0xFA, // MOV $FA,#$20
	0x8F, 0x01, 0xF1, // MOV $F1,#$01
	0xE4, 0xF4, // loop: MOV A,$F4
	0xC4, 0xF4, // MOV $F4,A
	0xE4, 0xFD, // MOV A,$FD
	0x60,       // CLRC
	0x84, 0x10, // ADC A,$10
	0xC4, 0x10, // MOV $10,A
	0xC4, 0xF5, // MOV $F5,A
	0xE4, 0xF6, // MOV A,$F6
	0xF0, 0xEF, // BEQ loop
	0x8F, 0x4C, 0xF2, // MOV $F2,#$4C
	0xC4, 0xF3, // MOV $F3,A
	0x8F, 0x21, 0xF1, // MOV $F1,#$21
	0x2F, 0xE5, // BRA loop
}

// buildSPC returns a song running hostProgram with voice 0 set up to play a
// looping square-ish BRR sample and echo enabled.
func buildSPC() []byte {
	data := make([]byte, spcfile.FileSize)
	spcfile.InitHeader(data)
	spcfile.WriteRegisters(data, spcfile.Registers{PC: programStart, SP: 0xEF})
	copy(data[spcfile.OffsetSong:], "Integration")

	ram := data[spcfile.OffsetRAM : spcfile.OffsetRAM+spcfile.RAMSize]
	copy(ram[programStart:], hostProgram)

	// directory at $0300, source 0 starts and loops at $0500
	ram[0x300], ram[0x301] = 0x00, 0x05
	ram[0x302], ram[0x303] = 0x00, 0x05
	ram[0x500] = 0xC0
	for i := 1; i < 9; i++ {
		ram[0x500+i] = 0x77
	}
	ram[0x509] = 0xC3
	for i := 1; i < 9; i++ {
		ram[0x509+i] = 0x99
	}

	regs := data[spcfile.OffsetDSP : spcfile.OffsetDSP+spcfile.DSPSize]
	regs[addr.MVOLL] = 0x60
	regs[addr.MVOLR] = 0x60
	regs[addr.EVOLL] = 0x30
	regs[addr.EVOLR] = 0x30
	regs[addr.DIR] = 0x03
	regs[addr.ESA] = 0x80
	regs[addr.EDL] = 0x01
	regs[addr.EFB] = 0x40
	regs[addr.EON] = 0x01
	regs[addr.FIR] = 0x7F
	regs[addr.VVOLL] = 0x7F
	regs[addr.VVOLR] = 0x7F
	regs[addr.VPITCHH] = 0x08
	regs[addr.VADSR1] = 0x8F
	regs[addr.VADSR2] = 0xE0
	return data
}

// hostStep is one scripted port write at a clock within a frame.
type hostStep struct {
	Frame int
	Time  int
	Port  int
	Value uint8
}

var hostScript = []hostStep{
	{Frame: 0, Time: 100, Port: 0, Value: 0x11},
	{Frame: 1, Time: 2000, Port: 2, Value: 0x01},
	{Frame: 3, Time: 500, Port: 0, Value: 0x22},
	{Frame: 5, Time: 0, Port: 0, Value: 0x33},
	{Frame: 8, Time: 9000, Port: 2, Value: 0x01},
}

type run struct {
	reads   []uint8
	samples []int16
}

// drive plays frames of the script against a, recording port reads made
// at the end of every frame and all output.
func drive(t *testing.T, a *spc.APU, first, frames int) run {
	t.Helper()
	var r run
	out := make([]int16, framePairs*audio.Channels)
	clocks := framePairs * spc.ClocksPerSample

	for frame := first; frame < first+frames; frame++ {
		a.SetOutput(out)
		for _, s := range hostScript {
			if s.Frame == frame {
				a.WritePort(s.Time, s.Port, s.Value)
			}
		}
		r.reads = append(r.reads, a.ReadPort(clocks-1, 0), a.ReadPort(clocks-1, 1))
		a.EndFrame(clocks)
		require.Equal(t, len(out), a.SampleCount(), "frame %d", frame)
		r.samples = append(r.samples, out...)
	}
	return r
}

func newAPU(t *testing.T, data []byte) *spc.APU {
	t.Helper()
	a, err := spc.New()
	require.NoError(t, err)
	require.NoError(t, a.LoadSPC(data))
	a.ClearEcho()
	return a
}

func nonZero(samples []int16) int {
	n := 0
	for _, s := range samples {
		if s != 0 {
			n++
		}
	}
	return n
}

func TestEndToEndDeterminism(t *testing.T) {
	data := buildSPC()

	first := drive(t, newAPU(t, data), 0, 12)
	second := drive(t, newAPU(t, data), 0, 12)

	assert.Equal(t, first.reads, second.reads)
	assert.Equal(t, first.samples, second.samples)

	assert.Equal(t, uint8(0x11), first.reads[0], "port 0 echoes host input")
	assert.Equal(t, uint8(0x33), first.reads[2*5], "echo follows later writes")
	assert.Greater(t, nonZero(first.samples), 0, "scripted key-on produces sound")
}

func TestSnapshotResume(t *testing.T) {
	data := buildSPC()
	reference := drive(t, newAPU(t, data), 0, 10)

	a := newAPU(t, data)
	drive(t, a, 0, 4)
	buf := make([]byte, spc.StateSize)
	n, err := a.SaveState(buf)
	require.NoError(t, err)

	b, err := spc.New()
	require.NoError(t, err)
	require.NoError(t, b.LoadState(buf[:n]))
	resumed := drive(t, b, 4, 6)

	assert.Equal(t, reference.reads[2*4:], resumed.reads)
	assert.Equal(t, reference.samples[4*framePairs*audio.Channels:], resumed.samples)
}

func TestMusicFileResume(t *testing.T) {
	data := buildSPC()
	a := newAPU(t, data)
	drive(t, a, 0, 3)

	saved := make([]byte, spcfile.FileSize)
	copy(saved, data[:spcfile.OffsetRAM])
	a.SaveSPC(saved)
	require.NoError(t, spcfile.Validate(saved))

	b, err := spc.New()
	require.NoError(t, err)
	require.NoError(t, b.LoadSPC(saved))

	assert.Equal(t, a.Registers(), b.Registers())
	assert.Equal(t, a.RAM()[:addr.RegStart], b.RAM()[:addr.RegStart])
	assert.Equal(t, a.RAM()[addr.StackPage:], b.RAM()[addr.StackPage:])
	assert.Equal(t, a.DSP().Regs(), b.DSP().Regs())
	_, inA := a.Ports()
	_, inB := b.Ports()
	assert.Equal(t, inA, inB)

	tags, ok := spcfile.ParseID666(saved)
	require.True(t, ok)
	assert.Equal(t, "Integration", tags.Song, "header text carried over")
}

func TestArchiveDigestMatchesPlainFile(t *testing.T) {
	data := buildSPC()
	dir := t.TempDir()

	plain := filepath.Join(dir, "song.spc")
	require.NoError(t, os.WriteFile(plain, data, 0644))

	packed := filepath.Join(dir, "song.spc.gz")
	f, err := os.Create(packed)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	digest := func(path string) string {
		entry, err := loader.Load(path)
		require.NoError(t, err)
		a := newAPU(t, entry.Data)
		d := audio.NewDigest()
		require.NoError(t, audio.Pump(a, d, spc.SampleRate, framePairs, audio.Fade{}, nil))
		return d.String()
	}

	assert.Equal(t, digest(plain), digest(packed))
}

func TestMuteAllIsSilent(t *testing.T) {
	data := buildSPC()
	a := newAPU(t, data)
	a.MuteVoices(0xFF)
	a.DisableEcho(true)

	r := drive(t, a, 0, 12)

	assert.Zero(t, nonZero(r.samples))
}

// TestGoldenDigests renders every .spc under testdata/spc and compares the
// output digest with testdata/<name>.digest. Set SPC_GENERATE_GOLDEN=true
// to record new digests.
func TestGoldenDigests(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping golden digests in short mode")
	}

	files, err := filepath.Glob(filepath.Join("testdata", "spc", "*"))
	require.NoError(t, err)
	if len(files) == 0 {
		t.Skip("no songs in testdata/spc")
	}

	generate := os.Getenv("SPC_GENERATE_GOLDEN") == "true"

	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			entry, err := loader.Load(path)
			require.NoError(t, err)

			a := newAPU(t, entry.Data)
			d := audio.NewDigest()
			require.NoError(t, audio.Pump(a, d, 10*spc.SampleRate, framePairs, audio.Fade{}, nil))
			got := d.String()

			goldenPath := filepath.Join("testdata", fmt.Sprintf("%s.digest", name))
			if generate {
				require.NoError(t, os.WriteFile(goldenPath, []byte(got+"\n"), 0644))
				t.Logf("Reference digest generated: %s", got)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			if os.IsNotExist(err) {
				t.Fatalf("Digest file not found: %s. Run with SPC_GENERATE_GOLDEN=true first.", goldenPath)
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(string(expected)), got)
		})
	}
}
