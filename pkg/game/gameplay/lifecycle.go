// Package gameplay provides core game logic: building mazes, steering the
// ball and detecting the win.
package gameplay

import (
	"fmt"
	"time"

	"mazeball/pkg/engine/physics"
	"mazeball/pkg/game/config"
	"mazeball/pkg/game/generator"
	"mazeball/pkg/game/geometry"
	"mazeball/pkg/game/state"
)

// BuildGame creates a new game with a maze filling a width x height viewport.
// A zero cfg.Seed seeds from the clock.
func BuildGame(cfg config.Config, width, height float64) (*state.Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("viewport %vx%v must be positive", width, height)
	}

	g := state.NewGame(cfg)
	g.Scene.Width, g.Scene.Height = width, height

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := buildLevel(g, seed); err != nil {
		return nil, err
	}

	logMessage(g, "GT{WELCOME}")
	logMessage(g, "ACTION{W}ACTION{A}ACTION{S}ACTION{D} GT{CONTROLS}")
	return g, nil
}

// buildLevel generates the maze for seed and populates the physics world.
// The column draw and the maze share one source so a seed reproduces both.
func buildLevel(g *state.Game, seed int64) error {
	cfg := g.Config
	width, height := g.Scene.Width, g.Scene.Height

	src := generator.NewSource(seed)
	rows, cols := cfg.Dimensions(int(width), int(height), src)

	gen := generator.NewBacktracker(src)
	grid, err := gen.Generate(rows, cols)
	if err != nil {
		return fmt.Errorf("generate %dx%d maze: %w", rows, cols, err)
	}

	style := geometry.DefaultStyle()
	if cfg.WallThickness > 0 {
		style.WallThickness = cfg.WallThickness
	}
	scene := geometry.Layout(grid, width, height, style)

	w := physics.NewWorld(physics.Vec{Y: cfg.Gravity})
	w.AirFriction = cfg.AirFriction

	for _, r := range scene.Border {
		w.Add(physics.NewRect(state.LabelBorder, r.X, r.Y, r.W, r.H, true))
	}

	walls := make([]*physics.Body, 0, len(scene.Walls))
	for _, wall := range scene.Walls {
		walls = append(walls, w.Add(physics.NewRect(state.LabelWall, wall.X, wall.Y, wall.W, wall.H, true)))
	}

	goal := physics.NewRect(state.LabelGoal, scene.Goal.X, scene.Goal.Y, scene.Goal.W, scene.Goal.H, true)
	goal.Sensor = true
	w.Add(goal)

	ball := w.Add(physics.NewCircle(state.LabelBall, scene.Ball.X, scene.Ball.Y, scene.Ball.R))

	g.Grid = grid
	g.Scene = scene
	g.World = w
	g.Ball = ball
	g.Goal = goal
	g.Walls = walls
	g.Seed = seed
	g.Start = gen.LastStart()
	g.Won = false
	g.Ticks = 0

	return nil
}

// NewMaze replaces the maze with a freshly seeded one.
func NewMaze(g *state.Game) error {
	seed := time.Now().UnixNano()
	if seed == g.Seed {
		seed++
	}
	if err := buildLevel(g, seed); err != nil {
		return err
	}
	g.ClearMessages()
	logMessage(g, "GT{NEW_MAZE}")
	return nil
}

// ResetLevel rebuilds the current maze from its seed and puts the ball back
// at the start.
func ResetLevel(g *state.Game) error {
	if err := buildLevel(g, g.Seed); err != nil {
		return err
	}
	g.ClearMessages()
	logMessage(g, "GT{MAZE_RESET}")
	return nil
}

// Resize rebuilds the current maze for a new viewport.
func Resize(g *state.Game, width, height float64) error {
	if width == g.Scene.Width && height == g.Scene.Height {
		return nil
	}
	g.Scene.Width, g.Scene.Height = width, height
	return buildLevel(g, g.Seed)
}

// logMessage formats msg with the active renderer's markup and appends it
// to the message log.
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(formatText(msg, a...))
}
