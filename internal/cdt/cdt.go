// Package cdt triangulates a polygon with holes, the fallback path used
// when the quadrify pipeline cannot resolve a wall face's openings. It
// implements ear-clipping with hole-bridging rather than a true
// constrained Delaunay triangulation: the contract only requires a
// reasonable triangulation of a simple region, and ear-clipping is far
// less failure-prone to get right without a reference implementation to
// check against.
package cdt

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrTriangulation reports a triangulation failure (degenerate or
// self-intersecting input), the reported-failure channel callers fall
// back from instead of a panic.
var ErrTriangulation = errors.New("cdt: triangulation failed")

// Triangle is three vertex indices into the input passed to Triangulate,
// in the bridged-and-flattened vertex order it returns alongside Points.
type Triangle [3]int

// Triangulate triangulates outer (CCW) with the given holes (each CW),
// returning the flattened vertex list and the triangle indices into it.
func Triangulate(outer []r2.Vec, holes [][]r2.Vec) (points []r2.Vec, tris []Triangle, err error) {
	if len(outer) < 3 {
		return nil, nil, ErrTriangulation
	}
	poly := bridgeHoles(outer, holes)
	if len(poly) < 3 {
		return nil, nil, ErrTriangulation
	}
	tris, err = earClip(poly)
	if err != nil {
		return nil, nil, err
	}
	return poly, tris, nil
}

// bridgeHoles splices each hole into outer via a zero-width bridge edge
// to the hole vertex nearest the outer loop, turning the polygon-with-
// holes into a single simple polygon ear-clipping can consume directly.
func bridgeHoles(outer []r2.Vec, holes [][]r2.Vec) []r2.Vec {
	poly := append([]r2.Vec{}, outer...)
	for _, hole := range holes {
		if len(hole) < 3 {
			continue
		}
		poly = bridgeOne(poly, hole)
	}
	return poly
}

func bridgeOne(poly, hole []r2.Vec) []r2.Vec {
	bestI, bestJ := 0, 0
	bestDist := -1.0
	for i, p := range poly {
		for j, h := range hole {
			d := sqDist(p, h)
			if bestDist < 0 || d < bestDist {
				bestDist, bestI, bestJ = d, i, j
			}
		}
	}
	rotatedHole := make([]r2.Vec, 0, len(hole)+1)
	for k := 0; k <= len(hole); k++ {
		rotatedHole = append(rotatedHole, hole[(bestJ+k)%len(hole)])
	}
	out := make([]r2.Vec, 0, len(poly)+len(rotatedHole)+2)
	out = append(out, poly[:bestI+1]...)
	out = append(out, rotatedHole...)
	out = append(out, poly[bestI:]...)
	return out
}

func sqDist(a, b r2.Vec) float64 {
	d := r2.Sub(a, b)
	return d.X*d.X + d.Y*d.Y
}

// earClip triangulates a simple polygon (possibly with bridge edges
// introduced by bridgeHoles) by repeatedly clipping convex, empty ears.
func earClip(poly []r2.Vec) ([]Triangle, error) {
	n := len(poly)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var tris []Triangle
	guard := 0
	for len(idx) > 3 {
		guard++
		if guard > 4*n+16 {
			return nil, ErrTriangulation
		}
		clipped := false
		for i := 0; i < len(idx); i++ {
			ia := idx[(i-1+len(idx))%len(idx)]
			ib := idx[i]
			ic := idx[(i+1)%len(idx)]
			a, b, c := poly[ia], poly[ib], poly[ic]
			if cross(r2.Sub(b, a), r2.Sub(c, a)) <= 0 {
				continue
			}
			if anyPointInTriangle(poly, idx, ia, ib, ic, a, b, c) {
				continue
			}
			tris = append(tris, Triangle{ia, ib, ic})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, ErrTriangulation
		}
	}
	if len(idx) == 3 {
		tris = append(tris, Triangle{idx[0], idx[1], idx[2]})
	}
	return tris, nil
}

func anyPointInTriangle(poly []r2.Vec, idx []int, ia, ib, ic int, a, b, c r2.Vec) bool {
	for _, k := range idx {
		if k == ia || k == ib || k == ic {
			continue
		}
		// Bridge edges duplicate vertices; a copy of a corner is not
		// inside the ear.
		if p := poly[k]; p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(poly[k], a, b, c) {
			return true
		}
	}
	return false
}

func pointInTriangle(p, a, b, c r2.Vec) bool {
	d1 := cross(r2.Sub(b, a), r2.Sub(p, a))
	d2 := cross(r2.Sub(c, b), r2.Sub(p, b))
	d3 := cross(r2.Sub(a, c), r2.Sub(p, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}
