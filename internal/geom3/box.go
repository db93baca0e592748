package geom3

import "gonum.org/v1/gonum/spatial/r3"

// Box is a 3D axis-aligned bounding box. Adapted from the teacher's
// internal/d3.Box.
type Box struct {
	Min, Max r3.Vec
}

// NewBox returns the box spanning the two given corners, in either order.
func NewBox(a, b r3.Vec) Box {
	return Box{Min: MinElem(a, b), Max: MaxElem(a, b)}
}

// Include enlarges a to include v.
func (a Box) Include(v r3.Vec) Box {
	return Box{Min: MinElem(a.Min, v), Max: MaxElem(a.Max, v)}
}

// Union returns the smallest box containing both a and b.
func (a Box) Union(b Box) Box {
	return Box{Min: MinElem(a.Min, b.Min), Max: MaxElem(a.Max, b.Max)}
}

// Size returns the box's extent along each axis.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the box's center point.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}

// Contains reports whether v lies within the box, bounds inclusive.
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		a.Max.X >= v.X && a.Max.Y >= v.Y && a.Max.Z >= v.Z
}

// DiagSquared returns the squared length of the box's diagonal.
func (a Box) DiagSquared() float64 {
	s := a.Size()
	return r3.Dot(s, s)
}
