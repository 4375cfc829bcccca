package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"mazeball/pkg/engine/physics"
	"mazeball/pkg/game/state"
)

// offscreenMargin is how far below the viewport a released wall may fall
// before it is dropped from the world.
const offscreenMargin = 200

// Tick advances the simulation by dt ticks (1 tick = 1/60 s) and applies
// the win when the ball first touches the goal.
func Tick(g *state.Game, dt float64) {
	if g.World == nil {
		return
	}

	for _, c := range g.World.Step(dt) {
		if !g.Won && c.Has(state.LabelBall, state.LabelGoal) {
			Win(g)
		}
	}
	g.Ticks++

	if g.Won {
		pruneFallen(g)
	}
}

// Win marks the maze solved: the goal disappears, every inner wall is
// released to fall, and gravity switches to the win setting.
func Win(g *state.Game) {
	if g.Won {
		return
	}
	g.Won = true
	logMessage(g, "GOAL{%s}", gotext.Get("WIN_MESSAGE"))
	logMessage(g, "GT{PLAY_AGAIN}")

	if g.Goal != nil {
		g.World.Remove(g.Goal)
		g.Goal = nil
	}

	for _, w := range g.Walls {
		g.World.SetStatic(w, false)
	}
	g.World.Gravity = physics.Vec{Y: g.Config.WinGravity}
}

// pruneFallen drops released walls that have left the viewport.
func pruneFallen(g *state.Game) {
	limit := g.Scene.Height + offscreenMargin
	kept := g.Walls[:0]
	for _, w := range g.Walls {
		if w.Pos.Y-w.H/2 > limit {
			g.World.Remove(w)
			continue
		}
		kept = append(kept, w)
	}
	g.Walls = kept
}
