//go:build headless

package audio

import "errors"

// Available reports whether this build can play sound.
const Available = false

// ErrNoAudio is returned by NewPlayer in headless builds.
var ErrNoAudio = errors.New("built without audio output (headless tag)")

type Player struct{}

func NewPlayer(int) (*Player, error) {
	return nil, ErrNoAudio
}

func (p *Player) WriteSamples([]int16) error { return ErrNoAudio }
func (p *Player) Close() error               { return nil }

var _ Sink = (*Player)(nil)
