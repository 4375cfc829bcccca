package world

// Direction is one of the four moves between orthogonally adjacent cells.
// The numeric order (up, right, down, left) is the order in which the
// generator lists neighbor candidates before shuffling.
type Direction int

const (
	North Direction = iota // up
	East                   // right
	South                  // down
	West                   // left
)

var directionNames = [...]string{"North", "East", "South", "West"}

var directionDeltas = [...][2]int{
	{-1, 0},
	{0, 1},
	{1, 0},
	{0, -1},
}

// AllDirections returns the directions in candidate order.
func AllDirections() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Vertical reports whether moving in d crosses a vertical edge (left/right).
func (d Direction) Vertical() bool {
	return d == East || d == West
}
