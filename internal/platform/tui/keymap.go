package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mouse-dash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapAction translates a key message to a discrete game action.
// Movement keys are not actions; see MapDirection.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "q", "ctrl+c":
		return core.ActionQuit
	case "enter", " ":
		return core.ActionConfirm
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "m":
		return core.ActionMenu
	case "up", "k":
		return core.ActionUp
	case "down", "j":
		return core.ActionDown
	case "1":
		return core.ActionDifficulty1
	case "2":
		return core.ActionDifficulty2
	case "3":
		return core.ActionDifficulty3
	}
	return core.ActionNone
}

// MapDirection translates a key message to a movement direction mark.
// Returns the direction and whether the key was a movement key at all.
// Arrow keys and WASD both steer; arrows double as menu navigation, which
// the model disambiguates by game screen.
func (km *KeyMapper) MapDirection(msg tea.KeyMsg) (dir core.DirectionSet, ok bool) {
	switch msg.String() {
	case "up", "w":
		return core.DirectionSet{Up: true}, true
	case "down", "s":
		return core.DirectionSet{Down: true}, true
	case "left", "a":
		return core.DirectionSet{Left: true}, true
	case "right", "d":
		return core.DirectionSet{Right: true}, true
	}
	return core.DirectionSet{}, false
}
