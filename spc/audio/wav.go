package audio

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/valerio/go-spc/spc"
)

const (
	bitDepth      = 16
	wavFormatPCM  = 1
	wavBufferSize = 4096
)

// WAVWriter encodes samples as a 16 bit stereo PCM WAV file.
type WAVWriter struct {
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// NewWAVWriter writes a WAV stream to w. The header is completed by Close,
// so w must be seekable.
func NewWAVWriter(w io.WriteSeeker) *WAVWriter {
	return &WAVWriter{
		enc: wav.NewEncoder(w, spc.SampleRate, bitDepth, Channels, wavFormatPCM),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: Channels,
				SampleRate:  spc.SampleRate,
			},
			SourceBitDepth: bitDepth,
			Data:           make([]int, 0, wavBufferSize),
		},
	}
}

func (w *WAVWriter) WriteSamples(samples []int16) error {
	data := w.buf.Data[:0]
	for _, s := range samples {
		data = append(data, int(s))
	}
	w.buf.Data = data

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}

// Close finalizes the WAV header. It does not close the underlying writer.
func (w *WAVWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finishing wav: %w", err)
	}
	return nil
}

var _ Sink = (*WAVWriter)(nil)
