package ifcgeom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/rodrigob/assimp/internal/geom2"
)

// insertWindowContours replaces each quadrified bounding-box hole with the
// true polygonal opening contour, per step 9 of the opening pipeline.
// Contours that already coincide with their bounding box are left alone;
// everything else is walked and re-traced against the box's rim.
func insertWindowContours(work *mesh2D, contours []ProjectedWindowContour, log Logger) {
	for _, c := range contours {
		if !c.Valid {
			continue
		}
		if isPerfectBoxFit(c.Contour, c.BB) {
			continue
		}
		ring, ok := reconstructRing(c.Contour, c.BB, log)
		if !ok {
			continue
		}
		work.append(ring)
	}
}

// isPerfectBoxFit reports whether contour is a 4-gon coinciding with bb's
// corners within diag/1000 — the case where the quad hole already
// represents the opening exactly and no extra ring is needed.
func isPerfectBoxFit(contour []r2.Vec, bb geom2.Box) bool {
	if len(contour) != 4 {
		return false
	}
	eps := bb.Diag() / 1000
	corners := boxCorners(bb)
	for _, v := range contour {
		matched := false
		for _, c := range corners {
			if geom2.SquareDist(v, c) <= eps*eps {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func boxCorners(bb geom2.Box) [4]r2.Vec {
	return [4]r2.Vec{
		{X: bb.Min.X, Y: bb.Min.Y},
		{X: bb.Max.X, Y: bb.Min.Y},
		{X: bb.Max.X, Y: bb.Max.Y},
		{X: bb.Min.X, Y: bb.Max.Y},
	}
}

// hitEdge classifies which of bb's four edges (0 bottom, 1 right, 2 top,
// 3 left) p lies on within eps; ok is false if p touches none of them.
func hitEdge(p r2.Vec, bb geom2.Box, eps float64) (edge int, ok bool) {
	switch {
	case math.Abs(p.Y-bb.Min.Y) <= eps && p.X >= bb.Min.X-eps && p.X <= bb.Max.X+eps:
		return 0, true
	case math.Abs(p.X-bb.Max.X) <= eps && p.Y >= bb.Min.Y-eps && p.Y <= bb.Max.Y+eps:
		return 1, true
	case math.Abs(p.Y-bb.Max.Y) <= eps && p.X >= bb.Min.X-eps && p.X <= bb.Max.X+eps:
		return 2, true
	case math.Abs(p.X-bb.Min.X) <= eps && p.Y >= bb.Min.Y-eps && p.Y <= bb.Max.Y+eps:
		return 3, true
	default:
		return 0, false
	}
}

// cornerOf returns the corner of bb reached by walking counter-clockwise
// (bottom, right, top, left) off the end of edge, the synthesized vertex inserted when a hit changes edges.
func cornerOf(bb geom2.Box, edge int) r2.Vec {
	c := boxCorners(bb)
	return c[(edge+1)%4]
}

// distToEdgeSquared measures how far p strays from bb's edge numbered
// edge, feeding the self-intersection-artifact filter.
func distToEdgeSquared(p r2.Vec, bb geom2.Box, edge int) float64 {
	switch edge {
	case 0:
		d := p.Y - bb.Min.Y
		return d * d
	case 1:
		d := p.X - bb.Max.X
		return d * d
	case 2:
		d := p.Y - bb.Max.Y
		return d * d
	default:
		d := p.X - bb.Min.X
		return d * d
	}
}

// reconstructRing walks contour, emitting a hole-oriented face that hugs
// the true opening shape and snaps to bb's corners wherever the contour
// itself never reaches them. The walk wraps around the contour (up to
// 2*len(contour) steps) rather than stopping dead at index n-1, so a
// contour whose first vertex sits ahead of the box rim still gets its
// leading points picked up on the second lap instead of being dropped;
// the walk closes as soon as it returns to the index where it first hit
// the rim. If it never hits the rim at all, it runs out the full bound
// and logs a topology error.
func reconstructRing(contour []r2.Vec, bb geom2.Box, log Logger) ([]r2.Vec, bool) {
	n := len(contour)
	diag := bb.Diag()
	eps := diag / 1000
	maxSq := 0.7 * diag * diag
	maxIterations := 2 * n

	var ring []r2.Vec
	curEdge := -1
	closeAt := -1
	i := 0
	for ; i < maxIterations; i++ {
		idx := i % n
		if idx == closeAt {
			break
		}
		p := contour[idx]
		if edge, ok := hitEdge(p, bb, eps); ok {
			if curEdge == -1 {
				closeAt = idx
			} else if edge != curEdge {
				ring = append(ring, cornerOf(bb, curEdge))
			}
			curEdge = edge
			ring = append(ring, p)
			continue
		}
		if curEdge == -1 {
			continue
		}
		if distToEdgeSquared(p, bb, curEdge) > maxSq {
			continue
		}
		ring = append(ring, p)
	}
	if i >= maxIterations {
		log.Error("opening contour reconstruction exceeded its iteration bound", "contour_len", n)
	}
	if len(ring) < 3 {
		return nil, false
	}
	reversed := make([]r2.Vec, len(ring))
	for i, v := range ring {
		reversed[len(ring)-1-i] = v
	}
	return reversed, true
}
