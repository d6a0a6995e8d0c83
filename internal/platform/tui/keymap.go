package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a play action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w", "k":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse treats a left click or tap anywhere on the field as a flap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionJump
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionLevel // A digit key picked a level directly
	MenuActionReset
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. For MenuActionLevel
// the second result is the zero-based level index.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) (MenuAction, int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit, 0
	case "w", "up", "k", "left", "h":
		return MenuActionUp, 0
	case "s", "down", "j", "right", "l":
		return MenuActionDown, 0
	case "enter", " ":
		return MenuActionSelect, 0
	case "r":
		return MenuActionReset, 0
	case "tab":
		return MenuActionScoreboard, 0
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return MenuActionLevel, int(key[0] - '1')
	}
	return MenuActionNone, 0
}
