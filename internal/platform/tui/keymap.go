package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-whack/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case "r", "R":
		return core.ActionRestart
	case "ctrl+s":
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// MapMouse translates a mouse press to a pointer event in grid space.
// Releases, motion and wheel events are dropped.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, l Layout) (core.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Event{}, false
	}

	var button core.Button
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.ButtonPrimary
	case tea.MouseButtonRight:
		button = core.ButtonSecondary
	case tea.MouseButtonMiddle:
		button = core.ButtonMiddle
	default:
		return core.Event{}, false
	}

	x, y := l.ToGrid(msg.X, msg.Y)
	return core.Event{Kind: core.EventPointer, Button: button, X: x, Y: y}, true
}
