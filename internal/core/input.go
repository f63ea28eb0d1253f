package core

// Action represents a semantic input, abstracted from physical key presses.
// Hosts translate their own key events (terminal keys, browser key codes)
// into actions so the game never sees raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionStart        // Enter, Space - press the start/restart control
	ActionHelp         // ? - toggle the full key help
	ActionQuit         // Q, Esc, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action steers the snake.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
