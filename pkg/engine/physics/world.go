package physics

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Collision is a contact that started during a Step. A is always the circle.
type Collision struct {
	A *Body
	B *Body
}

// Has reports whether the pair carries both labels, in either order.
func (c Collision) Has(labelA, labelB string) bool {
	return (c.A.Label == labelA && c.B.Label == labelB) ||
		(c.A.Label == labelB && c.B.Label == labelA)
}

type pair struct {
	a, b int
}

// World holds bodies and integrates them.
type World struct {
	Gravity     Vec     // acceleration in px/tick²
	AirFriction float64 // fraction of velocity lost per tick
	Restitution float64 // bounce factor for circle-vs-wall contacts

	bodies   []*Body
	nextID   int
	contacts mapset.Set[pair]
}

// NewWorld creates an empty world.
func NewWorld(gravity Vec) *World {
	return &World{
		Gravity:  gravity,
		contacts: mapset.New[pair](),
	}
}

// Add inserts b and assigns it an ID.
func (w *World) Add(b *Body) *Body {
	w.nextID++
	b.ID = w.nextID
	w.bodies = append(w.bodies, b)
	return b
}

// Remove deletes b from the world. Removing an absent body is a no-op.
func (w *World) Remove(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.contacts.Each(func(p pair) {
		if p.a == b.ID || p.b == b.ID {
			w.contacts.Remove(p)
		}
	})
}

// Bodies returns the bodies in insertion order. The slice must not be modified.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// SetStatic pins or releases a body. Released bodies fall under gravity
// and stop blocking circles.
func (w *World) SetStatic(b *Body, static bool) {
	b.Static = static
	if !static {
		b.Vel = Vec{}
	}
}

// Step advances the simulation by dt ticks and returns the contacts that
// started during it. Movement is split into substeps so a circle never
// travels more than half its radius at once.
func (w *World) Step(dt float64) []Collision {
	substeps := 1
	for _, b := range w.bodies {
		if b.Static || b.Shape != ShapeCircle || b.R <= 0 {
			continue
		}
		travel := b.Vel.Len()*dt + 0.5*w.Gravity.Len()*dt*dt
		if n := int(math.Ceil(travel / (b.R / 2))); n > substeps {
			substeps = n
		}
	}

	h := dt / float64(substeps)
	var started []Collision
	for i := 0; i < substeps; i++ {
		w.integrate(h)
		started = append(started, w.collide()...)
	}

	if w.AirFriction > 0 {
		damp := math.Pow(1-w.AirFriction, dt)
		for _, b := range w.bodies {
			if !b.Static {
				b.Vel = b.Vel.Scale(damp)
			}
		}
	}

	return started
}

func (w *World) integrate(h float64) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Vel = b.Vel.Add(w.Gravity.Scale(h))
		b.Pos = b.Pos.Add(b.Vel.Scale(h))
	}
}

// collide resolves circle-vs-static-rect penetration and tracks sensor and
// wall contacts.
func (w *World) collide() []Collision {
	var started []Collision
	touching := mapset.New[pair]()

	for _, c := range w.bodies {
		if c.Static || c.Shape != ShapeCircle {
			continue
		}
		for _, r := range w.bodies {
			if r.Shape != ShapeRect || !(r.Static || r.Sensor) {
				continue
			}
			if !Overlaps(c, r) {
				continue
			}

			p := pair{c.ID, r.ID}
			touching.Put(p)
			if !w.contacts.Has(p) {
				w.contacts.Put(p)
				started = append(started, Collision{A: c, B: r})
			}

			if !r.Sensor {
				w.resolve(c, r)
			}
		}
	}

	// drop pairs that separated
	w.contacts.Each(func(p pair) {
		if !touching.Has(p) {
			w.contacts.Remove(p)
		}
	})

	return started
}

// resolve pushes circle c out of rectangle r and cancels the inward
// component of its velocity.
func (w *World) resolve(c, r *Body) {
	closest := r.closestPoint(c.Pos)
	d := c.Pos.Sub(closest)
	dist := d.Len()

	var normal Vec
	var depth float64

	if dist > 0 {
		normal = d.Scale(1 / dist)
		depth = c.R - dist
	} else {
		// Center inside the rectangle: leave by the nearest face.
		left := c.Pos.X - (r.Pos.X - r.W/2)
		right := (r.Pos.X + r.W/2) - c.Pos.X
		top := c.Pos.Y - (r.Pos.Y - r.H/2)
		bottom := (r.Pos.Y + r.H/2) - c.Pos.Y

		normal, depth = Vec{-1, 0}, left
		if right < depth {
			normal, depth = Vec{1, 0}, right
		}
		if top < depth {
			normal, depth = Vec{0, -1}, top
		}
		if bottom < depth {
			normal, depth = Vec{0, 1}, bottom
		}
		depth += c.R
	}

	c.Pos = c.Pos.Add(normal.Scale(depth))

	if vn := c.Vel.Dot(normal); vn < 0 {
		c.Vel = c.Vel.Sub(normal.Scale((1 + w.Restitution) * vn))
	}
}
