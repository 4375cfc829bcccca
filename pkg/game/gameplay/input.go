package gameplay

import (
	engineinput "mazeball/pkg/engine/input"
	"mazeball/pkg/game/devtools"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

var formatText = renderer.FormatText

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if intent.IsMove() {
		Steer(g, intent.Action)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionHint:
		g.ShowHint = !g.ShowHint
		if g.ShowHint {
			logMessage(g, "GT{HINT_ON}")
		} else {
			logMessage(g, "GT{HINT_OFF}")
		}
		return

	case engineinput.ActionQuit:
		g.Quit = true
		return

	case engineinput.ActionRestart:
		if err := NewMaze(g); err != nil {
			logMessage(g, "DENIED{%v}", err)
		}
		return

	case engineinput.ActionResetLevel:
		if err := ResetLevel(g); err != nil {
			logMessage(g, "DENIED{%v}", err)
		}
		return

	case engineinput.ActionDumpMaze:
		path, err := devtools.DumpMazeToFile(g)
		if err != nil {
			logMessage(g, "GT{DUMP_FAILED}: %v", err)
		} else {
			logMessage(g, "GT{DUMP_WRITTEN} %s", path)
		}
		return

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g)
		if err != nil {
			logMessage(g, "GT{SCREENSHOT_FAILED}: %v", err)
		} else {
			logMessage(g, "GT{SCREENSHOT_SAVED} %s", path)
		}
		return
	}

	logMessage(g, "GT{UNKNOWN_COMMAND}")
}

// Steer sets one velocity component of the ball to the configured speed and
// keeps the other, so a diagonal roll comes from two key presses.
func Steer(g *state.Game, action engineinput.Action) {
	if g.Ball == nil {
		return
	}
	speed := g.Config.BallSpeed
	v := g.Ball.Vel

	switch action {
	case engineinput.ActionMoveNorth:
		v.Y = -speed
	case engineinput.ActionMoveSouth:
		v.Y = speed
	case engineinput.ActionMoveWest:
		v.X = -speed
	case engineinput.ActionMoveEast:
		v.X = speed
	default:
		return
	}

	g.Ball.Vel = v
}
