package state

import (
	"mazeball/pkg/engine/physics"
	"mazeball/pkg/engine/world"
	"mazeball/pkg/game/config"
	"mazeball/pkg/game/geometry"
)

// Body labels shared by gameplay and the renderers.
const (
	LabelBorder = "border"
	LabelWall   = "wall"
	LabelGoal   = "goal"
	LabelBall   = "ball"
)

// Game represents one maze session. It is owned by the game loop goroutine.
type Game struct {
	Config config.Config

	Grid  *world.Grid
	Scene geometry.Scene
	World *physics.World

	Ball  *physics.Body
	Goal  *physics.Body
	Walls []*physics.Body // one per closed edge, in Scene.Walls order

	Seed  int64 // seed the current maze was generated from
	Start world.Position

	Won      bool
	ShowHint bool
	Quit     bool

	Ticks int // simulation ticks since the maze was built

	Messages []string
}

// NewGame creates a new game instance
func NewGame(cfg config.Config) *Game {
	return &Game{
		Config:   cfg,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// BallCell returns the grid cell under the ball's center.
func (g *Game) BallCell() world.Position {
	if g.Ball == nil || g.Grid == nil {
		return world.Position{}
	}
	rows, cols := g.Grid.Dimensions()
	return geometry.CellAt(g.Ball.Pos.X, g.Ball.Pos.Y, g.Scene.Unit, rows, cols)
}

// GoalCell returns the grid cell holding the goal.
func (g *Game) GoalCell() world.Position {
	return geometry.GoalCell(g.Grid)
}

// Solution returns the passage from the ball's cell to the goal.
func (g *Game) Solution() []world.Position {
	if g.Grid == nil {
		return nil
	}
	return g.Grid.Path(g.BallCell(), g.GoalCell())
}
