// Package physics is a small 2D rigid-body step: static and falling
// rectangles, circles that collide with static rectangles, and sensor
// overlap events. Units are pixels and frames (1 tick = 1/60 s).
package physics

import "math"

// Vec is a 2D vector.
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Dot returns the dot product
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the magnitude
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Shape selects how a body's extent is interpreted.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Body is a simulated object. Rectangles use W and H around Pos (their
// center); circles use R.
type Body struct {
	ID    int
	Label string
	Shape Shape

	Pos Vec
	Vel Vec

	W, H float64
	R    float64

	Static bool // never moves, blocks circles
	Sensor bool // reports overlap, never blocks
}

// NewRect creates a rectangle body centered at (x, y).
func NewRect(label string, x, y, w, h float64, static bool) *Body {
	return &Body{Label: label, Shape: ShapeRect, Pos: Vec{x, y}, W: w, H: h, Static: static}
}

// NewCircle creates a dynamic circle body centered at (x, y).
func NewCircle(label string, x, y, r float64) *Body {
	return &Body{Label: label, Shape: ShapeCircle, Pos: Vec{x, y}, R: r}
}

// closestPoint returns the point of rectangle b nearest to p.
func (b *Body) closestPoint(p Vec) Vec {
	hw, hh := b.W/2, b.H/2
	return Vec{
		X: math.Max(b.Pos.X-hw, math.Min(p.X, b.Pos.X+hw)),
		Y: math.Max(b.Pos.Y-hh, math.Min(p.Y, b.Pos.Y+hh)),
	}
}

// Overlaps reports whether circle c intersects rectangle r.
func Overlaps(c, r *Body) bool {
	d := c.Pos.Sub(r.closestPoint(c.Pos))
	return d.Dot(d) < c.R*c.R
}
