package terminal

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-spc/spc"
	"github.com/valerio/go-spc/spc/backend"
	"github.com/valerio/go-spc/spc/debug"
	"github.com/valerio/go-spc/spc/dsp"
	"github.com/valerio/go-spc/spc/spcfile"
)

func newTestBackend(t *testing.T, width, height int, config backend.Config) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	b := NewWithScreen(screen)
	require.NoError(t, b.Init(config))
	t.Cleanup(func() { b.Cleanup() })
	return b, screen
}

func screenText(screen tcell.SimulationScreen) []string {
	cells, width, height := screen.GetContents()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		for x := 0; x < width; x++ {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

func testSnapshot() *debug.Snapshot {
	s := &debug.Snapshot{
		CPU:   debug.CPUState{PC: 0x0400, A: 0x12, SP: 0xEF},
		Tempo: spc.TempoUnit,
		Disassembly: []debug.DisasmLine{
			{Address: 0x0400, Instruction: "MOV A,$F4", IsCurrent: true},
			{Address: 0x0402, Instruction: "MOV $F4,A"},
		},
	}
	for i := range s.Voices {
		s.Voices[i] = dsp.VoiceStatus{Index: i, EnvMode: "release"}
	}
	s.Voices[0].Env = 0x7F0
	s.Voices[0].Pitch = 0x1000
	s.Voices[3].Muted = true
	s.Timers[0] = spc.TimerStatus{Enabled: true, Period: 16, Pending: 16, Divider: 3, Counter: 2}
	s.Timers[2] = spc.TimerStatus{Period: 256, Pending: 8}
	return s
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected backend.Event
	}{
		{"quit", tcell.KeyRune, 'q', backend.Event{Action: backend.ActionQuit}},
		{"escape", tcell.KeyEscape, 0, backend.Event{Action: backend.ActionQuit}},
		{"pause", tcell.KeyRune, ' ', backend.Event{Action: backend.ActionPauseToggle}},
		{"step", tcell.KeyRune, 'n', backend.Event{Action: backend.ActionStepFrame}},
		{"restart", tcell.KeyRune, 'r', backend.Event{Action: backend.ActionRestart}},
		{"toggle first voice", tcell.KeyRune, '1', backend.Event{Action: backend.ActionToggleVoice, Voice: 0}},
		{"toggle last voice", tcell.KeyRune, '8', backend.Event{Action: backend.ActionToggleVoice, Voice: 7}},
		{"solo", tcell.KeyF3, 0, backend.Event{Action: backend.ActionSoloVoice, Voice: 2}},
		{"unmute", tcell.KeyRune, '0', backend.Event{Action: backend.ActionUnmuteAll}},
		{"tempo up", tcell.KeyRune, '+', backend.Event{Action: backend.ActionTempoUp}},
		{"tempo down", tcell.KeyRune, '-', backend.Event{Action: backend.ActionTempoDown}},
		{"tempo reset", tcell.KeyRune, '=', backend.Event{Action: backend.ActionTempoReset}},
		{"echo", tcell.KeyRune, 'e', backend.Event{Action: backend.ActionEchoToggle}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, screen := newTestBackend(t, 100, 30, backend.Config{})
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			events, err := b.Update(testSnapshot())
			require.NoError(t, err)
			assert.Equal(t, []backend.Event{tt.expected}, events)

			events, err = b.Update(testSnapshot())
			require.NoError(t, err)
			assert.Empty(t, events, "events are delivered once")
		})
	}
}

func TestUnmappedKeyIgnored(t *testing.T) {
	b, screen := newTestBackend(t, 100, 30, backend.Config{})
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyTab, 0, tcell.ModNone)

	events, err := b.Update(testSnapshot())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRenderShowsTagsAndVoices(t *testing.T) {
	config := backend.Config{
		Title: "song.spc",
		Tags:  spcfile.Tags{Song: "Intro", Game: "Demo", Artist: "Someone"},
	}
	b, screen := newTestBackend(t, 100, 30, config)

	_, err := b.Update(testSnapshot())
	require.NoError(t, err)

	rows := screenText(screen)
	assert.True(t, strings.HasPrefix(rows[0], "Intro - Demo [Someone]"), rows[0])
	assert.Contains(t, rows[0], "RUNNING  tempo 100%")
	assert.True(t, strings.HasPrefix(rows[voiceTop], "V SRC PITCH"), rows[voiceTop])
	assert.Contains(t, rows[voiceTop+1], "1000")
	assert.Contains(t, rows[voiceTop+1], "7F0")
	assert.Contains(t, rows[voiceTop+4], "--M")
	assert.True(t, strings.HasPrefix(rows[29], "q quit"), rows[29])
	assert.NotContains(t, strings.Join(rows, "\n"), "MOV A,$F4", "debug panel hidden by default")
}

func TestDebugPanelToggle(t *testing.T) {
	b, screen := newTestBackend(t, 120, 30, backend.Config{})

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	events, err := b.Update(testSnapshot())
	require.NoError(t, err)
	assert.Empty(t, events, "debug toggle is handled by the backend")

	all := strings.Join(screenText(screen), "\n")
	assert.Contains(t, all, "PC 0400  SP EF")
	assert.Contains(t, all, "→0400 MOV A,$F4")
	assert.Contains(t, all, " 0402 MOV $F4,A")
	assert.Contains(t, all, "T0 on    3/ 16 c2")
	assert.Contains(t, all, "T2 off   0/256 c0 >8")
}

func TestLogPanelAndLevel(t *testing.T) {
	b, screen := newTestBackend(t, 100, 30, backend.Config{})
	assert.Equal(t, slog.LevelInfo, b.LogLevel())

	slog.Debug("hidden message")
	slog.Info("visible message", "voice", 3)
	_, err := b.Update(testSnapshot())
	require.NoError(t, err)

	all := strings.Join(screenText(screen), "\n")
	assert.Contains(t, all, "[INF] visible message voice=3")
	assert.NotContains(t, all, "hidden message")

	screen.InjectKey(tcell.KeyRune, ']', tcell.ModNone)
	_, err = b.Update(testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, b.LogLevel())

	screen.InjectKey(tcell.KeyRune, '[', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '[', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '[', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '[', tcell.ModNone)
	_, err = b.Update(testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, b.LogLevel(), "clamped")
}

func TestTooSmallTerminal(t *testing.T) {
	b, screen := newTestBackend(t, 40, 10, backend.Config{})

	_, err := b.Update(testSnapshot())
	require.NoError(t, err)

	assert.Contains(t, screenText(screen)[5], "Terminal too small")
}
