package spc

// Option configures an APU at construction.
type Option func(*APU) error

// WithROM installs the 64 byte IPL boot ROM. Without it the ROM overlay is
// never active, which is fine for playing .spc files.
func WithROM(rom []byte) Option {
	return func(a *APU) error {
		return a.ram.SetROM(rom)
	}
}

// WithTempo sets the initial tempo, see SetTempo.
func WithTempo(tempo int) Option {
	return func(a *APU) error {
		a.tempo = tempo
		return nil
	}
}

func WithMuteMask(mask int) Option {
	return func(a *APU) error {
		a.dsp.MuteVoices(mask)
		return nil
	}
}

func WithEchoDisabled() Option {
	return func(a *APU) error {
		a.dsp.DisableEcho(true)
		return nil
	}
}

func WithSurroundDisabled() Option {
	return func(a *APU) error {
		a.dsp.DisableSurround(true)
		return nil
	}
}
