package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/audio"
	"github.com/valerio/go-spc/spc/loader"
	"github.com/valerio/go-spc/spc/spcfile"
)

const (
	defaultLength = 150 * time.Second
	defaultFade   = 8 * time.Second
)

// song is a loaded file together with the settings it plays with.
type song struct {
	name   string
	data   []byte
	tags   spcfile.Tags
	length time.Duration
	fade   time.Duration
	start  time.Duration

	opts     []spc.Option
	keepEcho bool
}

func loadSong(c *cli.Context) (*song, error) {
	path := c.Args().First()
	if path == "" {
		cli.ShowCommandHelp(c, c.Command.Name)
		return nil, fmt.Errorf("no input file provided")
	}
	entry, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return newSong(c, entry)
}

func newSong(c *cli.Context, entry loader.Entry) (*song, error) {
	if err := spcfile.Validate(entry.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Name, err)
	}

	opts, err := machineOptions(c)
	if err != nil {
		return nil, err
	}

	s := &song{
		name:     entry.Name,
		data:     entry.Data,
		length:   defaultLength,
		fade:     defaultFade,
		start:    seconds(c.Float64("start")),
		opts:     opts,
		keepEcho: c.Bool("keep-echo"),
	}

	if tags, ok := spcfile.ParseID666(entry.Data); ok {
		s.tags = tags
		if tags.Seconds > 0 {
			s.length = time.Duration(tags.Seconds) * time.Second
		}
		if tags.FadeMS > 0 {
			s.fade = time.Duration(tags.FadeMS) * time.Millisecond
		}
		if tags.Muted != 0 && c.String("mute") == "" {
			s.opts = append(s.opts, spc.WithMuteMask(int(tags.Muted)))
		}
	}
	if v := c.Float64("seconds"); v > 0 {
		s.length = seconds(v)
	}

	slog.Debug("Song settings", "name", s.name, "length", s.length, "fade", s.fade, "start", s.start)
	return s, nil
}

func machineOptions(c *cli.Context) ([]spc.Option, error) {
	var opts []spc.Option

	if path := c.GlobalString("ipl"); path != "" {
		rom, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading IPL ROM: %w", err)
		}
		opts = append(opts, spc.WithROM(rom))
	}

	if tempo := c.Float64("tempo"); tempo != 100 {
		if tempo <= 0 {
			return nil, fmt.Errorf("tempo must be positive, got %g", tempo)
		}
		opts = append(opts, spc.WithTempo(int(tempo*spc.TempoUnit/100+0.5)))
	}

	if m := c.String("mute"); m != "" {
		mask, err := parseMask(m)
		if err != nil {
			return nil, err
		}
		opts = append(opts, spc.WithMuteMask(mask))
	}

	if c.Bool("no-echo") {
		opts = append(opts, spc.WithEchoDisabled())
	}
	if c.Bool("no-surround") {
		opts = append(opts, spc.WithSurroundDisabled())
	}
	return opts, nil
}

func parseMask(s string) (int, error) {
	mask, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid mute mask %q: %w", s, err)
	}
	return int(mask), nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// newAPU creates a machine loaded with the song and skipped to its start.
func (s *song) newAPU() (*spc.APU, error) {
	a, err := spc.New(s.opts...)
	if err != nil {
		return nil, err
	}
	if err := s.load(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *song) load(a *spc.APU) error {
	if err := a.LoadSPC(s.data); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if !s.keepEcho {
		a.ClearEcho()
	}
	if s.start > 0 {
		if err := a.Skip(audio.Pairs(s.start) * audio.Channels); err != nil {
			slog.Warn("Emulation error while skipping", "err", err)
		}
	}
	return nil
}

// pairs returns the total output length and the fade, in sample pairs.
func (s *song) pairs() (int, audio.Fade) {
	start := audio.Pairs(s.length)
	fade := audio.Fade{Start: start, Length: audio.Pairs(s.fade)}
	return start + fade.Length, fade
}
