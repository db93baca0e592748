// Package geom2 provides small 2D vector and bounding-box helpers shared by
// the plane-projection and opening-resolution code. It is adapted from the
// teacher's internal/d2 package, trimmed to the operations this module
// actually exercises.
package geom2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MinElem returns a vector with the minimum of each component of a and b.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem returns a vector with the maximum of each component of a and b.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// EqualWithin reports whether a and b are equal within tol on every axis.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// SquareDist returns the squared distance between a and b.
func SquareDist(a, b r2.Vec) float64 {
	d := r2.Sub(a, b)
	return d.X*d.X + d.Y*d.Y
}

// One is the (1,1) vector, the upper corner of the normalized projection square.
var One = r2.Vec{X: 1, Y: 1}

// Clamp01 clamps v to the unit square [0,1]^2, absorbing the small
// numeric overshoot that floating point projection tends to introduce.
func Clamp01(v r2.Vec) r2.Vec {
	return MaxElem(r2.Vec{}, MinElem(v, One))
}
