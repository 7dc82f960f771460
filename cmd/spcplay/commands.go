package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/audio"
	"github.com/valerio/go-spc/spc/backend"
	"github.com/valerio/go-spc/spc/backend/headless"
	"github.com/valerio/go-spc/spc/backend/terminal"
	"github.com/valerio/go-spc/spc/debug"
	"github.com/valerio/go-spc/spc/loader"
	"github.com/valerio/go-spc/spc/player"
	"github.com/valerio/go-spc/spc/spcfile"
	"github.com/valerio/go-spc/spc/timing"
)

const (
	monitorDisasmLines = 8
	// trimLimitSeconds bounds the search for the first key-on.
	trimLimitSeconds = 60
)

func runPlay(c *cli.Context) error {
	s, err := loadSong(c)
	if err != nil {
		return err
	}
	a, err := s.newAPU()
	if err != nil {
		return err
	}

	var (
		sink    audio.Sink = audio.Discard{}
		limiter            = timing.NewAdaptiveLimiter(timing.FrameDuration(timing.FramePairs))
	)
	if !c.Bool("no-audio") {
		if !audio.Available {
			return errors.New("this build has no audio output, use --no-audio or render")
		}
		p, err := audio.NewPlayer(c.Int("buffer"))
		if err != nil {
			return err
		}
		sink = p
	}
	defer sink.Close()

	var be backend.Backend = headless.New(0)
	disasmLines := 0
	if c.Bool("monitor") {
		be = terminal.New()
		disasmLines = monitorDisasmLines
	}

	cfg := backend.Config{Title: s.name, Tags: s.tags}
	if err := be.Init(cfg); err != nil {
		return err
	}
	defer be.Cleanup()

	pairs, fade := s.pairs()
	pcfg := player.Config{
		Pairs:       pairs,
		Fade:        fade,
		DisasmLines: disasmLines,
		Restart:     s.load,
	}
	if _, discard := sink.(audio.Discard); discard {
		pcfg.Limiter = limiter
	}

	slog.Info("Playing", "song", s.tags.Song, "file", s.name, "length", audio.Duration(pairs))
	return player.New(a, sink, be, pcfg).Run()
}

func runRender(c *cli.Context) error {
	s, err := loadSong(c)
	if err != nil {
		return err
	}
	a, err := s.newAPU()
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = strings.TrimSuffix(c.Args().First(), filepath.Ext(c.Args().First())) + ".wav"
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := audio.NewWAVWriter(f)
	pairs, fade := s.pairs()
	frames := (pairs + timing.FramePairs - 1) / timing.FramePairs

	be := headless.New(frames)
	if err := be.Init(backend.Config{Title: s.name, Tags: s.tags}); err != nil {
		return err
	}
	defer be.Cleanup()

	if err := player.New(a, w, be, player.Config{Pairs: pairs, Fade: fade}).Run(); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finishing %s: %w", out, err)
	}

	slog.Info("Rendered", "out", out, "length", audio.Duration(pairs))
	return nil
}

func runInfo(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowCommandHelp(c, c.Command.Name)
		return errors.New("no input file provided")
	}
	entries, err := loader.LoadAll(path)
	if err != nil {
		return err
	}

	for i, e := range entries {
		if i > 0 {
			fmt.Println()
		}
		if err := printInfo(c, e); err != nil {
			slog.Warn("Skipping file", "name", e.Name, "err", err)
		}
	}
	return nil
}

func printInfo(c *cli.Context, e loader.Entry) error {
	if err := spcfile.Validate(e.Data); err != nil {
		return err
	}

	fmt.Printf("File:     %s\n", e.Name)
	if tags, ok := spcfile.ParseID666(e.Data); ok {
		format := "text"
		if tags.Binary {
			format = "binary"
		}
		fmt.Printf("Tags:     ID666 (%s)\n", format)
		fmt.Printf("Song:     %s\n", tags.Song)
		fmt.Printf("Game:     %s\n", tags.Game)
		fmt.Printf("Artist:   %s\n", tags.Artist)
		fmt.Printf("Dumper:   %s\n", tags.Dumper)
		fmt.Printf("Date:     %s\n", tags.Date)
		fmt.Printf("Comment:  %s\n", tags.Comment)
		fmt.Printf("Length:   %ds, fade %dms\n", tags.Seconds, tags.FadeMS)
		if tags.Muted != 0 {
			fmt.Printf("Muted:    0x%02X\n", tags.Muted)
		}
	} else {
		fmt.Println("Tags:     none")
	}

	regs := spcfile.ReadRegisters(e.Data)
	fmt.Printf("CPU:      PC=%04X A=%02X X=%02X Y=%02X PSW=%02X SP=%02X\n",
		regs.PC, regs.A, regs.X, regs.Y, regs.PSW, regs.SP)
	if !spcfile.HasIPL(e.Data) {
		fmt.Println("IPL:      missing")
	}

	if n := c.Int("disasm"); n > 0 {
		a, err := spc.New()
		if err != nil {
			return err
		}
		if err := a.LoadSPC(e.Data); err != nil {
			return err
		}
		for _, l := range debug.Extract(a, n).Disassembly {
			fmt.Printf("  %04X  %s\n", l.Address, l.Instruction)
		}
	}
	return nil
}

func runTrim(c *cli.Context) error {
	s, err := loadSong(c)
	if err != nil {
		return err
	}
	a, err := s.newAPU()
	if err != nil {
		return err
	}

	played, found := trimToKeyOn(a, audio.Pairs(trimLimitSeconds*time.Second))
	if !found {
		return fmt.Errorf("no key-on within %d seconds", trimLimitSeconds)
	}

	out := make([]byte, spcfile.FileSize)
	copy(out, s.data[:spcfile.OffsetRAM])
	a.SaveSPC(out)

	path := c.String("out")
	if path == "" {
		in := c.Args().First()
		path = strings.TrimSuffix(in, filepath.Ext(in)) + "_trim.spc"
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return err
	}
	slog.Info("Trimmed", "out", path, "removed", audio.Duration(played))
	return nil
}

// trimToKeyOn plays until the program keys on a voice, at most limit
// pairs. It returns the pairs played before the key-on frame.
func trimToKeyOn(a *spc.APU, limit int) (int, bool) {
	const step = 64
	a.CheckKON()

	var snapshot [spc.StateSize]byte
	for played := 0; played < limit; played += step {
		n, err := a.SaveState(snapshot[:])
		if err != nil {
			slog.Error("Saving state", "err", err)
			return 0, false
		}
		if err := a.Play(step*audio.Channels, nil); err != nil {
			slog.Warn("Emulation error", "err", err)
		}
		if a.CheckKON() {
			// rewind to just before the frame with the key-on
			if err := a.LoadState(snapshot[:n]); err != nil {
				slog.Error("Restoring state", "err", err)
				return 0, false
			}
			return played, true
		}
	}
	return limit, false
}

func runDigest(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowCommandHelp(c, c.Command.Name)
		return errors.New("no input file provided")
	}
	entries, err := loader.LoadAll(path)
	if err != nil {
		return err
	}

	for _, e := range entries {
		s, err := newSong(c, e)
		if err != nil {
			slog.Warn("Skipping file", "name", e.Name, "err", err)
			continue
		}
		d, err := digestSong(s)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", d, e.Name)
	}
	return nil
}

func digestSong(s *song) (*audio.Digest, error) {
	a, err := s.newAPU()
	if err != nil {
		return nil, err
	}
	d := audio.NewDigest()
	pairs, fade := s.pairs()
	err = audio.Pump(a, d, pairs, timing.FramePairs, fade, func(err error) {
		slog.Warn("Emulation error", "song", s.name, "err", err)
	})
	return d, err
}
