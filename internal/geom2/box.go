package geom2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is an axis-aligned 2D bounding box, stored as an unordered (min, max)
// pair the way the source's BoundingBox = pair<Vector2,Vector2> is. Adapted
// from the teacher's internal/d2.Box.
type Box struct {
	Min, Max r2.Vec
}

// NewBox returns the box spanning the two given corners, in either order.
func NewBox(a, b r2.Vec) Box {
	return Box{Min: MinElem(a, b), Max: MaxElem(a, b)}
}

// Include enlarges b to include v.
func (b Box) Include(v r2.Vec) Box {
	return Box{Min: MinElem(b.Min, v), Max: MaxElem(b.Max, v)}
}

// Union returns the smallest box containing both a and b.
func (a Box) Union(b Box) Box {
	return Box{Min: MinElem(a.Min, b.Min), Max: MaxElem(a.Max, b.Max)}
}

// Size returns the width/height of the box.
func (b Box) Size() r2.Vec {
	return r2.Sub(b.Max, b.Min)
}

// Area returns the box's area; degenerate (zero-size) boxes return 0.
func (b Box) Area() float64 {
	s := b.Size()
	if s.X <= 0 || s.Y <= 0 {
		return 0
	}
	return s.X * s.Y
}

// Degenerate reports whether the box area is below the spec's 1e-5 gate.
func (b Box) Degenerate() bool {
	return b.Area() < 1e-5
}

// Overlapping reports whether a and b overlap with positive area. Following
// the source, boxes that only touch along an edge ('=' case) count as
// adjacent, not overlapping.
func (a Box) Overlapping(b Box) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// Adjacent reports whether a and b share a border segment of positive
// length without overlapping.
func (a Box) Adjacent(b Box) bool {
	const epsilon = 1e-5
	return (absf(a.Max.X-b.Min.X) < epsilon && a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y) ||
		(absf(a.Min.X-b.Max.X) < epsilon && b.Min.Y <= a.Max.Y && b.Max.Y >= a.Min.Y) ||
		(absf(a.Max.Y-b.Min.Y) < epsilon && a.Min.X <= b.Max.X && a.Max.X >= b.Min.X) ||
		(absf(a.Min.Y-b.Max.Y) < epsilon && b.Min.X <= a.Max.X && b.Max.X >= a.Min.X)
}

// Diag returns the box's diagonal length.
func (b Box) Diag() float64 {
	s := b.Size()
	return math.Hypot(s.X, s.Y)
}

func absf(v float64) float64 {
	return math.Abs(v)
}
