package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "spcplay"
	app.Usage = "play, render and inspect SNES .spc music files"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
		cli.StringFlag{
			Name:  "ipl",
			Usage: "Path to a 64 byte IPL boot ROM image",
		},
	}
	app.Before = setupLogging
	app.Commands = []cli.Command{
		{
			Name:      "play",
			Usage:     "Play a song on the sound card",
			ArgsUsage: "<file>",
			Flags: append(machineFlags(),
				cli.BoolFlag{
					Name:  "monitor",
					Usage: "Show the terminal monitor (voices, timers, logs)",
				},
				cli.BoolFlag{
					Name:  "no-audio",
					Usage: "Run in real time without opening the sound card",
				},
				cli.IntFlag{
					Name:  "buffer",
					Usage: "Audio buffer size in sample pairs",
					Value: 2048,
				},
			),
			Action: runPlay,
		},
		{
			Name:      "render",
			Usage:     "Render a song to a WAV file",
			ArgsUsage: "<file>",
			Flags: append(machineFlags(),
				cli.StringFlag{
					Name:  "out",
					Usage: "Output WAV path (default: input name with .wav)",
				},
			),
			Action: runRender,
		},
		{
			Name:      "info",
			Usage:     "Print the ID666 tags and CPU registers of every song in a file or archive",
			ArgsUsage: "<file>",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "disasm",
					Usage: "Disassemble N instructions at PC",
				},
			},
			Action: runInfo,
		},
		{
			Name:      "trim",
			Usage:     "Rewrite a song so it starts at the first key-on",
			ArgsUsage: "<file>",
			Flags: append(machineFlags(),
				cli.StringFlag{
					Name:  "out",
					Usage: "Output .spc path (default: overwrite input name with _trim suffix)",
				},
			),
			Action: runTrim,
		},
		{
			Name:      "digest",
			Usage:     "Print an xxhash digest of the rendered output of every song in a file or archive",
			ArgsUsage: "<file>",
			Flags:     machineFlags(),
			Action:    runDigest,
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running spcplay", "error", err)
		os.Exit(1)
	}
}

func machineFlags() []cli.Flag {
	return []cli.Flag{
		cli.Float64Flag{
			Name:  "seconds",
			Usage: "Play length in seconds before the fade (default: from tags, else 150)",
		},
		cli.Float64Flag{
			Name:  "start",
			Usage: "Skip this many seconds before output starts",
		},
		cli.Float64Flag{
			Name:  "tempo",
			Usage: "Playback tempo in percent",
			Value: 100,
		},
		cli.StringFlag{
			Name:  "mute",
			Usage: "Voice mute mask, bit 0 is voice 1 (e.g. 0x81)",
		},
		cli.BoolFlag{
			Name:  "no-echo",
			Usage: "Disable the echo effect",
		},
		cli.BoolFlag{
			Name:  "no-surround",
			Usage: "Remove the surround phase inversion",
		},
		cli.BoolFlag{
			Name:  "keep-echo",
			Usage: "Keep the echo buffer contents from the file instead of clearing them",
		},
	}
}

func setupLogging(c *cli.Context) error {
	level := slog.LevelInfo
	if c.GlobalBool("verbose") {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}
