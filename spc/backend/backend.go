// Package backend defines the front ends that show a playing APU and
// turn user input into player actions.
package backend

import (
	"github.com/valerio/go-spc/spc/debug"
	"github.com/valerio/go-spc/spc/spcfile"
)

// Backend represents a complete player front end (display + input).
// Backends are responsible for:
// - Showing the monitor snapshot in their specific output
// - Translating platform-specific input events to Actions
type Backend interface {
	// Init configures the backend with the provided configuration.
	// This is a required step before calling Update.
	Init(config Config) error

	// Update shows the latest snapshot and returns the actions requested
	// since the previous call.
	Update(snapshot *debug.Snapshot) ([]Event, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title     string
	Tags      spcfile.Tags
	ShowDebug bool // Backends may ignore unsupported features
	Callbacks Callbacks
}

// Callbacks allows backends to communicate with the player
type Callbacks struct {
	// Backend requests shutdown (e.g., terminal closed)
	OnQuit func()
}

// Action represents input actions that can be performed in the player
type Action int

const (
	ActionQuit Action = iota
	ActionPauseToggle
	ActionStepFrame
	ActionRestart
	ActionToggleVoice
	ActionSoloVoice
	ActionUnmuteAll
	ActionTempoUp
	ActionTempoDown
	ActionTempoReset
	ActionEchoToggle
	ActionDebugToggle
	ActionLogLevelIncrease
	ActionLogLevelDecrease
)

var actionNames = map[Action]string{
	ActionQuit:             "quit",
	ActionPauseToggle:      "pause",
	ActionStepFrame:        "step frame",
	ActionRestart:          "restart",
	ActionToggleVoice:      "toggle voice",
	ActionSoloVoice:        "solo voice",
	ActionUnmuteAll:        "unmute all",
	ActionTempoUp:          "tempo up",
	ActionTempoDown:        "tempo down",
	ActionTempoReset:       "tempo reset",
	ActionEchoToggle:       "toggle echo",
	ActionDebugToggle:      "toggle debug",
	ActionLogLevelIncrease: "log level up",
	ActionLogLevelDecrease: "log level down",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is a single requested action. Voice is set for the voice actions.
type Event struct {
	Action Action
	Voice  int
}
