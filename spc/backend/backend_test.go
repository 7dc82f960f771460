package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionQuit, "quit"},
		{ActionToggleVoice, "toggle voice"},
		{ActionLogLevelDecrease, "log level down"},
		{Action(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.action.String())
	}
}

func TestEveryActionNamed(t *testing.T) {
	for a := ActionQuit; a <= ActionLogLevelDecrease; a++ {
		assert.NotEqual(t, "unknown", a.String(), "action %d", a)
	}
}
