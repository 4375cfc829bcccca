// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "mazeball/pkg/engine/input"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

// Colors
var (
	colorBackground = color.RGBA{15, 15, 26, 255}
	colorText       = color.RGBA{240, 240, 255, 255}
	colorOverlay    = color.RGBA{15, 15, 26, 170}
	colorWall       = renderer.WallColor
	colorBall       = renderer.BallColor
	colorGoal       = renderer.GoalColor
	colorHint       = renderer.HintColor
)

// Key repeat timings for held movement keys.
const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)

// Font sizes
const (
	messageFontSize = 14.0
	bannerFontSize  = 48.0
)

// keyRepeatInfo tracks the timing for key repeat functionality
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when key was first pressed (ms)
	lastRepeat   int64 // Timestamp of last repeat trigger (ms)
}

// EbitenRenderer implements renderer.Renderer and ebiten.Game.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	fontSource  *text.GoTextFaceSource
	messageFace *text.GoTextFace
	bannerFace  *text.GoTextFace
	formatter   renderer.Formatter

	keyRepeatState map[string]keyRepeatInfo

	// Input channel between polling and the game logic, both on Update.
	inputChan chan engineinput.Intent

	game *state.Game

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
