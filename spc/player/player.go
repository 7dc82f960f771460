// Package player drives an APU in frames, feeding a sink and a monitor
// backend and applying the actions the backend reports.
package player

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/audio"
	"github.com/valerio/go-spc/spc/backend"
	"github.com/valerio/go-spc/spc/debug"
	"github.com/valerio/go-spc/spc/timing"
)

const (
	tempoStep = spc.TempoUnit / 8
	tempoMin  = spc.TempoUnit / 4
	tempoMax  = spc.TempoUnit * 4
)

type Config struct {
	// Pairs stops playback after this many sample pairs; zero plays until
	// the backend quits.
	Pairs       int
	FramePairs  int
	Fade        audio.Fade
	Limiter     timing.Limiter
	DisasmLines int

	// Restart reloads the song. ActionRestart is ignored when nil.
	Restart func(*spc.APU) error
}

type Player struct {
	apu  *spc.APU
	sink audio.Sink
	be   backend.Backend
	cfg  Config

	state debug.PlayerState
	pos   int
	buf   []int16
	quit  bool
	idle  timing.Limiter
}

func New(apu *spc.APU, sink audio.Sink, be backend.Backend, cfg Config) *Player {
	if cfg.FramePairs <= 0 {
		cfg.FramePairs = timing.FramePairs
	}
	if cfg.Limiter == nil {
		cfg.Limiter = timing.NewNoOpLimiter()
	}
	return &Player{
		apu:  apu,
		sink: sink,
		be:   be,
		cfg:  cfg,
		buf:  make([]int16, cfg.FramePairs*audio.Channels),
	}
}

// Position returns the number of sample pairs played.
func (p *Player) Position() int {
	return p.pos
}

func (p *Player) State() debug.PlayerState {
	return p.state
}

// Done reports whether playback reached its length or was quit.
func (p *Player) Done() bool {
	return p.quit || (p.cfg.Pairs > 0 && p.pos >= p.cfg.Pairs)
}

// Run plays frames until Done.
func (p *Player) Run() error {
	p.cfg.Limiter.Reset()
	for !p.Done() {
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step plays one frame unless paused, then updates the backend.
func (p *Player) Step() error {
	if p.state == debug.PlayerPaused {
		p.idleWait()
	} else {
		if err := p.playFrame(); err != nil {
			return err
		}
		if p.state == debug.PlayerStepFrame {
			p.state = debug.PlayerPaused
		}
		p.cfg.Limiter.WaitForNextFrame()
	}

	snapshot := debug.Extract(p.apu, p.cfg.DisasmLines)
	snapshot.State = p.state
	events, err := p.be.Update(snapshot)
	if err != nil {
		return fmt.Errorf("updating backend: %w", err)
	}
	for _, e := range events {
		p.Handle(e)
	}
	return nil
}

func (p *Player) playFrame() error {
	n := p.cfg.FramePairs
	if p.cfg.Pairs > 0 {
		n = min(n, p.cfg.Pairs-p.pos)
	}
	out := p.buf[:n*audio.Channels]

	if err := p.apu.Play(len(out), out); err != nil {
		slog.Warn("Emulation error", "err", err, "pair", p.pos)
	}
	p.cfg.Fade.Apply(out, p.pos)
	if err := p.sink.WriteSamples(out); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	p.pos += n
	return nil
}

func (p *Player) idleWait() {
	if p.idle == nil {
		p.idle = timing.NewTickerLimiter(timing.FrameDuration(p.cfg.FramePairs))
	}
	p.idle.WaitForNextFrame()
}

// Handle applies one backend action.
func (p *Player) Handle(e backend.Event) {
	dsp := p.apu.DSP()

	switch e.Action {
	case backend.ActionQuit:
		p.quit = true
	case backend.ActionPauseToggle:
		if p.state == debug.PlayerRunning {
			p.state = debug.PlayerPaused
		} else {
			p.state = debug.PlayerRunning
			p.cfg.Limiter.Reset()
		}
		slog.Info("Playback state", "state", p.state.String())
	case backend.ActionStepFrame:
		p.state = debug.PlayerStepFrame
	case backend.ActionRestart:
		if p.cfg.Restart == nil {
			return
		}
		if err := p.cfg.Restart(p.apu); err != nil {
			slog.Error("Restart failed", "err", err)
			return
		}
		p.pos = 0
		p.cfg.Limiter.Reset()
		slog.Info("Restarted")
	case backend.ActionToggleVoice:
		dsp.ToggleVoice(e.Voice)
		slog.Info("Voice toggled", "voice", e.Voice, "muted", dsp.MuteMask()&(1<<e.Voice) != 0)
	case backend.ActionSoloVoice:
		dsp.SoloVoice(e.Voice)
		slog.Info("Voice solo", "voice", e.Voice)
	case backend.ActionUnmuteAll:
		dsp.UnmuteAll()
	case backend.ActionTempoUp:
		p.setTempo(p.apu.Tempo() + tempoStep)
	case backend.ActionTempoDown:
		p.setTempo(p.apu.Tempo() - tempoStep)
	case backend.ActionTempoReset:
		p.setTempo(spc.TempoUnit)
	case backend.ActionEchoToggle:
		disabled := !p.apu.EchoDisabled()
		p.apu.DisableEcho(disabled)
		slog.Info("Echo", "disabled", disabled)
	default:
		slog.Debug("Action not handled by player", "action", e.Action.String())
	}
}

func (p *Player) setTempo(tempo int) {
	tempo = max(tempoMin, min(tempoMax, tempo))
	p.apu.SetTempo(tempo)
	slog.Info("Tempo", "percent", tempo*100/spc.TempoUnit)
}
