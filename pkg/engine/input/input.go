// Package input provides the input capability consumed by the simulation.
// Frontends translate device events into Actions; the core only ever asks
// whether an action is held or was pressed this tick.
package input

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionJump
	ActionLeft
	ActionRight
	ActionDown

	// Meta / UI
	ActionReset
	ActionConfirm
	ActionQuit
)

// Source is the per-tick input capability. Held reports level-triggered
// state, Pressed reports edge-triggered state (true for one tick only).
type Source interface {
	Held(a Action) bool
	Pressed(a Action) bool
}

// bindings maps device-specific raw codes to actions. Multiple codes may
// point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionJump,
	"space":       ActionJump,
	"w":           ActionJump,
	"arrow_left":  ActionLeft,
	"a":           ActionLeft,
	"arrow_right": ActionRight,
	"d":           ActionRight,
	"arrow_down":  ActionDown,
	"s":           ActionDown,

	"r":      ActionReset,
	"enter":  ActionConfirm,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapCode applies the current bindings to a raw device code.
func MapCode(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Move Left"
	case ActionRight:
		return "Move Right"
	case ActionDown:
		return "Move Down"
	case ActionReset:
		return "Reset"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}
