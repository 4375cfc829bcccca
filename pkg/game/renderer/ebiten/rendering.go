package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"mazeball/pkg/engine/physics"
	"mazeball/pkg/game/geometry"
	"mazeball/pkg/game/renderer"
	"mazeball/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	g := e.game
	screen.Fill(colorBackground)
	if g == nil || g.World == nil {
		return
	}

	if g.ShowHint && !g.Won {
		e.drawHint(screen, g)
	}

	for _, b := range g.World.Bodies() {
		switch b.Label {
		case state.LabelBorder, state.LabelWall:
			drawRect(screen, b, colorWall)
		case state.LabelGoal:
			drawRect(screen, b, colorGoal)
		case state.LabelBall:
			vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.R), colorBall, true)
		}
	}

	e.drawMessages(screen, g)

	if g.Won {
		e.drawWinBanner(screen, g)
	}
}

func drawRect(screen *ebiten.Image, b *physics.Body, clr color.Color) {
	vector.DrawFilledRect(screen,
		float32(b.Pos.X-b.W/2), float32(b.Pos.Y-b.H/2),
		float32(b.W), float32(b.H),
		clr, true)
}

// drawHint marks the solution from the ball's cell to the goal.
func (e *EbitenRenderer) drawHint(screen *ebiten.Image, g *state.Game) {
	u := g.Scene.Unit
	r := float32(min(u.W, u.H) / 10)
	for _, p := range g.Solution() {
		x, y := geometry.CellCenter(p, u)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, colorHint, true)
	}
}

// drawMessages renders the message log in the top-left corner.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, g *state.Game) {
	if e.messageFace == nil {
		return
	}
	lineHeight := messageFontSize * 1.4
	y := 12.0
	for _, msg := range g.Messages {
		msg = renderer.StripANSI(msg)
		w, _ := text.Measure(msg, e.messageFace, 0)
		vector.DrawFilledRect(screen, 6, float32(y-2), float32(w+12), float32(lineHeight), colorOverlay, false)

		// text.Draw uses baseline positioning, so add fontSize to Y coordinate
		op := &text.DrawOptions{}
		op.GeoM.Translate(12, y+messageFontSize-2)
		op.ColorScale.ScaleWithColor(colorText)
		text.Draw(screen, msg, e.messageFace, op)
		y += lineHeight
	}
}

// drawWinBanner shows the winner message centered over the collapsing maze.
func (e *EbitenRenderer) drawWinBanner(screen *ebiten.Image, g *state.Game) {
	if e.bannerFace == nil {
		return
	}
	message := gotext.Get("WIN_MESSAGE")
	sub := gotext.Get("PLAY_AGAIN")

	w, h := g.Scene.Width, g.Scene.Height
	mw, _ := text.Measure(message, e.bannerFace, 0)
	sw, _ := text.Measure(sub, e.messageFace, 0)

	vector.DrawFilledRect(screen, 0, float32(h/2-bannerFontSize), float32(w), float32(bannerFontSize*2), colorOverlay, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(w/2-mw/2, h/2-bannerFontSize/2)
	op.ColorScale.ScaleWithColor(colorGoal)
	text.Draw(screen, message, e.bannerFace, op)

	op2 := &text.DrawOptions{}
	op2.GeoM.Translate(w/2-sw/2, h/2+bannerFontSize/2)
	op2.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, sub, e.messageFace, op2)
}
