// Package geom3 provides small 3D vector and bounding-box helpers used by
// the mesh data model and the spatial opening index. Adapted from the
// teacher's internal/d3 package, trimmed to the operations this module
// actually exercises.
package geom3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// EqualWithin reports whether a and b are equal within tol on every axis.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem returns a vector with the minimum of each component of a and b.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem returns a vector with the maximum of each component of a and b.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Newell accumulates one edge's contribution to Newell's-method polygon
// normal: given consecutive loop vertices cur and next, it adds their
// cross-sum contribution to acc and returns the updated accumulator.
func Newell(acc r3.Vec, cur, next r3.Vec) r3.Vec {
	return r3.Vec{
		X: acc.X + (cur.Y-next.Y)*(cur.Z+next.Z),
		Y: acc.Y + (cur.Z-next.Z)*(cur.X+next.X),
		Z: acc.Z + (cur.X-next.X)*(cur.Y+next.Y),
	}
}
