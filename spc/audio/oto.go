//go:build !headless

package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	"github.com/ebitengine/oto/v3"

	"github.com/valerio/go-spc/spc"
)

// Available reports whether this build can play sound.
const Available = true

// Player plays samples on the default sound device. WriteSamples blocks
// while the device buffer is full, which paces the emulation to real time.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	pw     *io.PipeWriter
	buf    []byte
}

// NewPlayer opens the sound device. Only one Player may exist per process.
func NewPlayer(bufferPairs int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   spc.SampleRate,
		ChannelCount: Channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   Duration(bufferPairs),
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	pr, pw := io.Pipe()
	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(pr),
		pw:     pw,
	}
	p.player.Play()
	slog.Info("Audio output started", "rate", spc.SampleRate, "buffer_pairs", bufferPairs)
	return p, nil
}

func (p *Player) WriteSamples(samples []int16) error {
	p.buf = p.buf[:0]
	for _, s := range samples {
		p.buf = binary.LittleEndian.AppendUint16(p.buf, uint16(s))
	}
	_, err := p.pw.Write(p.buf)
	return err
}

func (p *Player) Close() error {
	p.pw.Close()
	return p.player.Close()
}

var _ Sink = (*Player)(nil)
