package world

import "strings"

// String provides a textual representation of the maze.
//
//	+---+---+
//	|       |
//	+---+   +
//	|       |
//	+---+---+
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render draws the maze like String, letting mark fill cell interiors.
// mark returns a single rune for the cell or 0 to leave it blank.
func (g *Grid) Render(mark func(p Position) rune) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		// Cell row
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			b.WriteString(" ")
			r := rune(0)
			if mark != nil {
				r = mark(Position{Row: row, Col: col})
			}
			if r == 0 {
				b.WriteString(" ")
			} else {
				b.WriteRune(r)
			}
			b.WriteString(" ")

			if col < g.cols-1 && g.verticals[row][col] {
				b.WriteString(" ")
			} else {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for col := 0; col < g.cols; col++ {
			if row < g.rows-1 && g.horizontals[row][col] {
				b.WriteString("   +")
			} else {
				b.WriteString("---+")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
