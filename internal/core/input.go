package core

// Action represents a discrete, edge-triggered game event derived from a
// key press. Actions are delivered to the state machine synchronously as
// they arrive, independent of the per-frame movement snapshot.
type Action int

const (
	ActionNone        Action = iota
	ActionConfirm            // Enter, Space - start a run
	ActionPause              // P, Escape - pause/resume
	ActionRestart            // R - restart run (context dependent)
	ActionMenu               // M - back to menu
	ActionQuit               // Q - abort run / leave
	ActionUp                 // Up arrow - cycle difficulty up in menu
	ActionDown               // Down arrow - cycle difficulty down in menu
	ActionDifficulty1        // Digit 1 - select Easy and start
	ActionDifficulty2        // Digit 2 - select Normal and start
	ActionDifficulty3        // Digit 3 - select Hard and start
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionDifficulty1:
		return "Difficulty1"
	case ActionDifficulty2:
		return "Difficulty2"
	case ActionDifficulty3:
		return "Difficulty3"
	default:
		return "Unknown"
	}
}

// DirectionSet is a snapshot of the movement keys held during one frame.
// Opposite flags cancel out; diagonals combine. The platform builds one
// snapshot per tick from keyboard state.
type DirectionSet struct {
	Up, Down, Left, Right bool
}

// Vector collapses the held flags into a movement vector.
// The result is normalized so diagonal movement is not faster.
func (d DirectionSet) Vector() Vec2 {
	var v Vec2
	if d.Left {
		v.X--
	}
	if d.Right {
		v.X++
	}
	if d.Up {
		v.Y--
	}
	if d.Down {
		v.Y++
	}
	return v.Normalize()
}

// Any returns true if at least one movement key is held.
func (d DirectionSet) Any() bool {
	return d.Up || d.Down || d.Left || d.Right
}
