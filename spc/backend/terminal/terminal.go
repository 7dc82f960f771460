// Package terminal implements a tcell based monitor showing voices, timers,
// ports and logs of a playing APU.
package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/backend"
	"github.com/valerio/go-spc/spc/backend/terminal/render"
	"github.com/valerio/go-spc/spc/debug"
)

const (
	minTermWidth  = 80
	minTermHeight = 24

	voiceTop    = 2
	voiceHeight = debug.VoiceCount + 1
	debugWidth  = 30
	meterWidth  = 16
	logCapacity = 200
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen    tcell.Screen
	logBuffer *render.LogBuffer
	logLevel  *slog.LevelVar
	config    backend.Config
	events    []backend.Event
	signals   chan os.Signal
	ownScreen bool
}

// New creates a terminal backend drawing to the controlling terminal.
func New() *Backend {
	return &Backend{ownScreen: true}
}

// NewWithScreen creates a backend drawing to an existing screen, which
// the caller has initialized.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (t *Backend) Init(config backend.Config) error {
	t.config = config

	if t.ownScreen {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen

		t.signals = make(chan os.Signal, 1)
		signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	}

	t.logBuffer = render.NewLogBuffer(logCapacity)
	t.logLevel = new(slog.LevelVar)
	t.logLevel.Set(slog.LevelInfo)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, t.logLevel)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	slog.Info("Terminal backend initialized", "title", config.Title)
	return nil
}

// Update polls keys and redraws the monitor.
func (t *Backend) Update(snapshot *debug.Snapshot) ([]backend.Event, error) {
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	select {
	case sig := <-t.signals:
		slog.Info("Received signal", "signal", sig.String())
		t.events = append(t.events, backend.Event{Action: backend.ActionQuit})
	default:
	}

	events := t.events
	t.events = nil

	t.render(snapshot)
	t.screen.Show()
	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.ownScreen && t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.push(backend.ActionQuit, 0)
		return
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4,
		tcell.KeyF5, tcell.KeyF6, tcell.KeyF7, tcell.KeyF8:
		t.push(backend.ActionSoloVoice, int(ev.Key()-tcell.KeyF1))
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if r >= '1' && r <= '8' {
		t.push(backend.ActionToggleVoice, int(r-'1'))
		return
	}

	switch r {
	case 'q':
		t.push(backend.ActionQuit, 0)
	case ' ', 'p':
		t.push(backend.ActionPauseToggle, 0)
	case 'n':
		t.push(backend.ActionStepFrame, 0)
	case 'r':
		t.push(backend.ActionRestart, 0)
	case '0':
		t.push(backend.ActionUnmuteAll, 0)
	case '+':
		t.push(backend.ActionTempoUp, 0)
	case '-':
		t.push(backend.ActionTempoDown, 0)
	case '=':
		t.push(backend.ActionTempoReset, 0)
	case 'e':
		t.push(backend.ActionEchoToggle, 0)
	case 'd':
		t.config.ShowDebug = !t.config.ShowDebug
		t.screen.Clear()
	case ']':
		t.changeLogLevel(-4)
	case '[':
		t.changeLogLevel(4)
	}
}

func (t *Backend) push(a backend.Action, voice int) {
	t.events = append(t.events, backend.Event{Action: a, Voice: voice})
}

// changeLogLevel moves the threshold by delta; lower shows more.
func (t *Backend) changeLogLevel(delta int) {
	level := t.logLevel.Level() + slog.Level(delta)
	level = max(slog.LevelDebug, min(slog.LevelError, level))
	t.logLevel.Set(level)
	slog.Warn("Log level changed", "level", level.String())
}

// LogLevel returns the current threshold of the log panel.
func (t *Backend) LogLevel() slog.Level {
	return t.logLevel.Level()
}

var _ backend.Backend = (*Backend)(nil)

func (t *Backend) render(s *debug.Snapshot) {
	t.screen.Clear()
	width, height := t.screen.Size()

	if width < minTermWidth || height < minTermHeight {
		msg := fmt.Sprintf("Terminal too small: %dx%d (need %dx%d)", width, height, minTermWidth, minTermHeight)
		t.drawText(0, height/2, width, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
		return
	}

	t.drawTitle(width, s)
	if s == nil {
		return
	}

	voiceWidth := width
	if t.config.ShowDebug {
		voiceWidth = width - debugWidth - 1
		t.drawDebug(voiceWidth+1, voiceTop, debugWidth, s)
	}
	t.drawVoices(0, voiceTop, voiceWidth, s)

	logTop := voiceTop + voiceHeight + 1
	t.drawLogs(0, logTop, voiceWidth, height-1-logTop)
	t.drawHelp(width, height-1)
}

func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	col := 0
	for _, ch := range text {
		if col >= width {
			break
		}
		t.screen.SetContent(x+col, y, ch, nil, style)
		col++
	}
}

func (t *Backend) drawTitle(width int, s *debug.Snapshot) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	title := t.config.Title
	tags := t.config.Tags
	if tags.Song != "" {
		title = tags.Song
		if tags.Game != "" {
			title += " - " + tags.Game
		}
	}
	if tags.Artist != "" {
		title += " [" + tags.Artist + "]"
	}
	t.drawText(0, 0, width, title, style)

	if s == nil {
		return
	}
	status := fmt.Sprintf("%s  tempo %d%%", s.State, s.Tempo*100/spc.TempoUnit)
	t.drawText(width-len(status), 0, len(status), status, style)
}

func (t *Backend) drawVoices(x, y, width int, s *debug.Snapshot) {
	header := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	normal := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	muted := tcell.StyleDefault.Foreground(tcell.ColorGray)

	t.drawText(x, y, width, "V SRC PITCH  VOL L/R  ENV  MODE     OUT  LEVEL            FLAGS", header)

	for i, v := range s.Voices {
		style := normal
		if v.Muted {
			style = muted
		}
		flags := []byte("---")
		if v.Echo {
			flags[0] = 'E'
		}
		if v.Noise {
			flags[1] = 'N'
		}
		if v.Muted {
			flags[2] = 'M'
		}
		line := fmt.Sprintf("%d  %02X  %04X %4d %4d  %03X  %-8s %4d  %s %s",
			i+1, v.SRCN, v.Pitch, v.VolL, v.VolR, v.Env, v.EnvMode, v.Output,
			render.Meter(v.Env, 0x7FF, meterWidth), flags)
		t.drawText(x, y+1+i, width, line, style)
	}
}

func (t *Backend) drawDebug(x, y, width int, s *debug.Snapshot) {
	regStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	cpu := s.CPU

	lines := []string{
		fmt.Sprintf("PC %04X  SP %02X", cpu.PC, cpu.SP),
		fmt.Sprintf("A %02X X %02X Y %02X", cpu.A, cpu.X, cpu.Y),
		fmt.Sprintf("PSW %s", cpu.Flags()),
		fmt.Sprintf("OUT %02X %02X %02X %02X", s.PortsOut[0], s.PortsOut[1], s.PortsOut[2], s.PortsOut[3]),
		fmt.Sprintf("IN  %02X %02X %02X %02X", s.PortsIn[0], s.PortsIn[1], s.PortsIn[2], s.PortsIn[3]),
	}
	for i, tm := range s.Timers {
		state := "off"
		if tm.Enabled {
			state = "on "
		}
		line := fmt.Sprintf("T%d %s %3d/%3d c%X", i, state, tm.Divider, tm.Period, tm.Counter)
		if tm.Pending != tm.Period {
			line += fmt.Sprintf(" >%d", tm.Pending)
		}
		lines = append(lines, line)
	}
	for i, line := range lines {
		t.drawText(x, y+i, width, line, regStyle)
	}

	disasmStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	current := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	top := y + len(lines) + 1
	for i, l := range s.Disassembly {
		style := disasmStyle
		prefix := " "
		if l.IsCurrent {
			style = current
			prefix = "→"
		}
		t.drawText(x, top+i, width, fmt.Sprintf("%s%04X %s", prefix, l.Address, l.Instruction), style)
	}
}

func (t *Backend) drawLogs(x, y, width, height int) {
	if height <= 0 {
		return
	}

	styles := map[slog.Level]tcell.Style{
		slog.LevelDebug: tcell.StyleDefault.Foreground(tcell.ColorGray),
		slog.LevelInfo:  tcell.StyleDefault.Foreground(tcell.ColorBlue),
		slog.LevelWarn:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		slog.LevelError: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}

	for i, entry := range t.logBuffer.GetRecent(height) {
		style, ok := styles[entry.Level]
		if !ok {
			style = styles[slog.LevelInfo]
		}
		t.drawText(x, y+height-1-i, width, render.FormatLogEntry(entry), style)
	}
}

func (t *Backend) drawHelp(width, y int) {
	help := "q quit  space pause  n step  r restart  1-8 mute  F1-F8 solo  0 unmute  +/-/= tempo  e echo  d debug  [ ] log"
	t.drawText(0, y, width, help, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
