package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta / UI
	ActionRestart    // New maze (R)
	ActionResetLevel // Same maze again (F5)
	ActionHint       // Toggle the solution trail
	ActionQuit
	ActionDumpMaze   // Write the maze to maze.txt (F9)
	ActionScreenshot // Save an HTML snapshot (F12)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// IsMove reports whether the intent steers the ball.
func (i Intent) IsMove() bool {
	return i.Action >= ActionMoveNorth && i.Action <= ActionMoveEast
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "f5").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Letter codes are folded to lower case so W and w steer the same way.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	code := raw.Code
	if len(code) == 1 {
		code = strings.ToLower(code)
	}
	return DebouncedInput{
		Device: raw.Device,
		Code:   code,
	}
}

// reserved codes always keep their binding.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"escape":      true,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = defaultBindings()

func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement (WASD and arrows)
		"w":           ActionMoveNorth,
		"arrow_up":    ActionMoveNorth,
		"s":           ActionMoveSouth,
		"arrow_down":  ActionMoveSouth,
		"a":           ActionMoveWest,
		"arrow_left":  ActionMoveWest,
		"d":           ActionMoveEast,
		"arrow_right": ActionMoveEast,

		"r":  ActionRestart,
		"f5": ActionResetLevel,

		// Help / hint
		"?": ActionHint,
		"h": ActionHint,

		// Quit
		"q":      ActionQuit,
		"escape": ActionQuit,

		"f9":  ActionDumpMaze,
		"f12": ActionScreenshot,
	}
}

// ResetBindings restores the default key map.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Translate runs a raw event through every layer.
func Translate(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionRestart:
		return "New Maze"
	case ActionResetLevel:
		return "Reset Maze"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionDumpMaze:
		return "Dump Maze"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "None"
	}
}

// actionsByName holds the short names accepted by ParseAction.
var actionsByName = map[string]Action{
	"north":      ActionMoveNorth,
	"south":      ActionMoveSouth,
	"west":       ActionMoveWest,
	"east":       ActionMoveEast,
	"restart":    ActionRestart,
	"reset":      ActionResetLevel,
	"hint":       ActionHint,
	"quit":       ActionQuit,
	"dump":       ActionDumpMaze,
	"screenshot": ActionScreenshot,
}

// ParseAction looks up an action by its short name, e.g. "north" or "hint".
func ParseAction(name string) (Action, bool) {
	a, ok := actionsByName[strings.ToLower(name)]
	return a, ok
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable order so the help line doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and escape are reserved and can be neither removed nor rebound.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
