// Package fixedpoint converts between normalized floating-point 2D
// coordinates and the 64-bit integer lattice the polygon boolean engine
// operates on. It is the single place raw scaling happens; every call into
// internal/boolean passes through here.
package fixedpoint

import "gonum.org/v1/gonum/spatial/r2"

// Scale is the ceiling of the integer range the boolean engine can
// multiply two coordinates within without overflowing a 64-bit
// accumulator, matching the teacher's fixed-point convention for
// geometry that has already been normalized to [0,1]^2.
const Scale = 1_518_500_249

// Point is a single fixed-point lattice point.
type Point struct {
	X, Y int64
}

// ToFixed scales a normalized float vector onto the integer lattice.
func ToFixed(v r2.Vec) Point {
	return Point{
		X: int64(v.X * Scale),
		Y: int64(v.Y * Scale),
	}
}

// FromFixed reverses ToFixed.
func FromFixed(p Point) r2.Vec {
	return r2.Vec{
		X: float64(p.X) / Scale,
		Y: float64(p.Y) / Scale,
	}
}

// ToFixedLoop scales every vertex of a polygon loop.
func ToFixedLoop(loop []r2.Vec) []Point {
	out := make([]Point, len(loop))
	for i, v := range loop {
		out[i] = ToFixed(v)
	}
	return out
}

// FromFixedLoop reverses ToFixedLoop.
func FromFixedLoop(loop []Point) []r2.Vec {
	out := make([]r2.Vec, len(loop))
	for i, p := range loop {
		out[i] = FromFixed(p)
	}
	return out
}
