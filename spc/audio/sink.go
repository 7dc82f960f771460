// Package audio moves samples produced by the APU into files, hashes and
// the sound card.
package audio

import (
	"github.com/valerio/go-spc/spc"
)

// Channels is the number of interleaved channels in every buffer.
const Channels = 2

// Source produces interleaved stereo samples.
type Source interface {
	// Play fills out with count samples, both channels counted.
	Play(count int, out []int16) error
}

var _ Source = (*spc.APU)(nil)

// Sink consumes interleaved stereo samples at spc.SampleRate.
type Sink interface {
	WriteSamples(samples []int16) error
	Close() error
}

// Fade describes a linear fade-out, in sample pairs.
type Fade struct {
	Start  int
	Length int
}

// Apply scales samples, which start at pair pos, by the fade envelope.
func (f Fade) Apply(samples []int16, pos int) {
	if f.Length <= 0 {
		return
	}
	for i := 0; i < len(samples); i += Channels {
		p := pos + i/Channels - f.Start
		if p < 0 {
			continue
		}
		remain := f.Length - p
		if remain < 0 {
			remain = 0
		}
		for c := 0; c < Channels && i+c < len(samples); c++ {
			samples[i+c] = int16(int(samples[i+c]) * remain / f.Length)
		}
	}
}

// Pump renders pairs sample pairs from src into sink, frame pairs at a
// time. Latent emulation errors are passed to onError, which may be nil;
// they never stop rendering. It returns the first sink error.
func Pump(src Source, sink Sink, pairs, frame int, fade Fade, onError func(error)) error {
	buf := make([]int16, frame*Channels)
	for pos := 0; pos < pairs; pos += frame {
		n := min(frame, pairs-pos)
		out := buf[:n*Channels]
		if err := src.Play(len(out), out); err != nil && onError != nil {
			onError(err)
		}
		fade.Apply(out, pos)
		if err := sink.WriteSamples(out); err != nil {
			return err
		}
	}
	return nil
}

// Discard is a Sink that drops everything, for running without output.
type Discard struct{}

func (Discard) WriteSamples([]int16) error { return nil }
func (Discard) Close() error               { return nil }

var _ Sink = Discard{}
