package geometry

import (
	"math"
	"testing"

	"mazeball/pkg/engine/world"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// twoByTwo returns a 2x2 grid with passages right, down, left from (0,0).
func twoByTwo(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range []world.Edge{
		{Kind: world.EdgeVertical, Row: 0, Col: 0},
		{Kind: world.EdgeHorizontal, Row: 0, Col: 1},
		{Kind: world.EdgeVertical, Row: 1, Col: 0},
	} {
		if err := g.Open(e); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestLayout_OneWallPerClosedEdge(t *testing.T) {
	g := twoByTwo(t)
	s := Layout(g, 200, 100, DefaultStyle())

	if len(s.Walls) != 1 {
		t.Fatalf("len(Walls) = %d, want 1 (only horizontal(0,0) is closed)", len(s.Walls))
	}
	w := s.Walls[0]
	if w.Edge != (world.Edge{Kind: world.EdgeHorizontal, Row: 0, Col: 0}) {
		t.Errorf("wall edge = %v, want horizontal(0,0)", w.Edge)
	}
	// unit is 100 x 50: horizontal wall centered at (50, 50), 100 wide
	if !approx(w.X, 50) || !approx(w.Y, 50) || !approx(w.W, 100) || !approx(w.H, DefaultWallThickness) {
		t.Errorf("wall rect = %+v, want center (50,50) size 100x%.1f", w.Rect, DefaultWallThickness)
	}
}

func TestWallFor_Vertical(t *testing.T) {
	u := Unit{W: 40, H: 30}
	r := WallFor(world.Edge{Kind: world.EdgeVertical, Row: 2, Col: 3}, u, 4)
	if !approx(r.X, 160) || !approx(r.Y, 75) || !approx(r.W, 4) || !approx(r.H, 30) {
		t.Errorf("WallFor(vertical(2,3)) = %+v, want center (160,75) size 4x30", r)
	}
}

func TestLayout_GoalAndBall(t *testing.T) {
	g := twoByTwo(t)
	s := Layout(g, 200, 100, DefaultStyle())

	// smaller unit side is 50
	if !approx(s.Goal.X, 150) || !approx(s.Goal.Y, 75) || !approx(s.Goal.W, 35) {
		t.Errorf("Goal = %+v, want center (150,75) side 35", s.Goal)
	}
	if !approx(s.Ball.X, 50) || !approx(s.Ball.Y, 25) || !approx(s.Ball.R, 12.5) {
		t.Errorf("Ball = %+v, want center (50,25) r 12.5", s.Ball)
	}
	if CellAt(s.Goal.X, s.Goal.Y, s.Unit, 2, 2) != GoalCell(g) {
		t.Errorf("goal center is not in GoalCell %v", GoalCell(g))
	}
	if CellAt(s.Ball.X, s.Ball.Y, s.Unit, 2, 2) != StartCell() {
		t.Error("ball center is not in StartCell")
	}
}

func TestLayout_Border(t *testing.T) {
	g := twoByTwo(t)
	s := Layout(g, 300, 120, Style{WallThickness: 2, BorderThickness: 6})
	top, bottom, left, right := s.Border[0], s.Border[1], s.Border[2], s.Border[3]
	if !approx(top.Y, 0) || !approx(top.W, 300) || !approx(top.H, 6) {
		t.Errorf("top border = %+v", top)
	}
	if !approx(bottom.Y, 120) {
		t.Errorf("bottom border = %+v", bottom)
	}
	if !approx(left.X, 0) || !approx(left.H, 120) || !approx(right.X, 300) {
		t.Errorf("side borders = %+v %+v", left, right)
	}
}

func TestCellAt_Clamps(t *testing.T) {
	u := Unit{W: 10, H: 10}
	if p := CellAt(-5, 500, u, 3, 4); p != (world.Position{Row: 2, Col: 0}) {
		t.Errorf("CellAt(-5, 500) = %v, want 2:0", p)
	}
	if p := CellAt(35, 15, u, 3, 4); p != (world.Position{Row: 1, Col: 3}) {
		t.Errorf("CellAt(35, 15) = %v, want 1:3", p)
	}
}
