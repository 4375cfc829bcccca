package renderer

import (
	"mazeball/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Implementations own the frame loop: they read input, advance the game and
// draw until the player quits.
type Renderer interface {
	// Init prepares colors, fonts and the window or terminal.
	Init() error

	// Run drives g until it quits or the backend fails.
	Run(g *state.Game) error

	// Name is the value accepted by -renderer.
	Name() string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// FormatText formats a message with markup. Without an active renderer
// the markup is resolved without colors.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return Plain.Format(msg, args...)
}
