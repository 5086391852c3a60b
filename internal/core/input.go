package core

import "strings"

// Action is a semantic command decoded from a line of player input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // w
	ActionDown         // s
	ActionLeft         // a
	ActionRight        // d
	ActionQuit         // q, handled by the loop and never by the game
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// NormalizeCommand trims surrounding whitespace and lower-cases a raw line.
func NormalizeCommand(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseAction maps an already normalised command to an action.
// Matching is exact: "W" or "up" are ActionNone.
func ParseAction(command string) Action {
	switch command {
	case "w":
		return ActionUp
	case "s":
		return ActionDown
	case "a":
		return ActionLeft
	case "d":
		return ActionRight
	case "q":
		return ActionQuit
	}
	return ActionNone
}

// IsQuit reports whether a raw input line asks to end the session.
func IsQuit(raw string) bool {
	return ParseAction(NormalizeCommand(raw)) == ActionQuit
}
