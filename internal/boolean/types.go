// Package boolean implements the integer polygon clipper that
// internal/fixedpoint feeds: union, difference, intersection and
// orientation normalization over simple (non-self-intersecting) polygons,
// using a non-zero fill rule. It is grounded on the Greiner-Hormann
// polygon-clipping algorithm rather than a full Vatti-style scanline
// clipper, since the contract only ever hands it well-formed,
// non-self-intersecting input.
package boolean

import (
	"errors"

	"github.com/rodrigob/assimp/internal/fixedpoint"
)

// Point is a vertex on the fixed-point lattice.
type Point = fixedpoint.Point

// Orientation classifies a closed loop's winding.
type Orientation int

const (
	CW Orientation = iota
	CCW
)

// ExPolygon is an outer contour plus its holes, the engine's standard
// result shape for union/difference/intersection.
type ExPolygon struct {
	Outer []Point
	Holes [][]Point
}

// ErrEngine reports a failure internal to the clipper (degenerate input
// that could not be resolved into a consistent result), surfaced through a
// reported-failure channel rather than a panic.
var ErrEngine = errors.New("boolean: engine failure")

// SignedArea returns twice the polygon's signed area (shoelace sum); its
// sign gives the winding direction.
func SignedArea(loop []Point) int64 {
	var sum int64
	n := len(loop)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// OrientationOf reports the winding of loop.
func OrientationOf(loop []Point) Orientation {
	if SignedArea(loop) < 0 {
		return CW
	}
	return CCW
}

// Normalize returns loop with the winding want, reversing it if necessary.
func Normalize(loop []Point, want Orientation) []Point {
	if OrientationOf(loop) == want {
		return loop
	}
	return reversed(loop)
}

func reversed(loop []Point) []Point {
	out := make([]Point, len(loop))
	n := len(loop)
	for i, p := range loop {
		out[n-1-i] = p
	}
	return out
}

// NormalizeExPolygon returns ep with its outer contour CCW and every hole
// CW, the convention PolygonBoolean callers must present before invoking
// the engine.
func NormalizeExPolygon(ep ExPolygon) ExPolygon {
	out := ExPolygon{Outer: Normalize(ep.Outer, CCW)}
	for _, h := range ep.Holes {
		out.Holes = append(out.Holes, Normalize(h, CW))
	}
	return out
}
