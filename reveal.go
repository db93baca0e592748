package ifcgeom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/xform"
)

const revealBorderEpsilon = 1e-4

// closeWindows is the per-face half of the wall reveal step. It is called
// once per wall face; the first call, every originating opening still has
// an empty WallPoints and this only collects contour vertices into it. The
// second call, WallPoints is already populated from the first face and
// this emits the quads connecting the two faces' contours across the wall.
func closeWindows(face *TempMesh, contours []ProjectedWindowContour, contourOpenings ContourToOpenings, openings []*TempOpening, minv xform.Transform) {
	for ci, c := range contours {
		if !c.Valid || ci >= len(contourOpenings) {
			continue
		}
		owners := contourOpenings[ci]
		if len(owners) == 0 {
			continue
		}
		if wallPointsEmpty(owners, openings) {
			populateWallPoints(c.Contour, owners, openings, minv)
			continue
		}
		emitRevealQuads(face, c.Contour, owners, openings, minv)
	}
}

func wallPointsEmpty(owners []int, openings []*TempOpening) bool {
	for _, oi := range owners {
		if oi < 0 || oi >= len(openings) {
			continue
		}
		if len(openings[oi].WallPoints) > 0 {
			return false
		}
	}
	return true
}

func populateWallPoints(contour []r2.Vec, owners []int, openings []*TempOpening, minv xform.Transform) {
	for _, p := range contour {
		world := Unproject(p, minv)
		for _, oi := range owners {
			if oi < 0 || oi >= len(openings) {
				continue
			}
			openings[oi].WallPoints = append(openings[oi].WallPoints, world)
		}
	}
}

// emitRevealQuads connects contour, on the second face, to the nearest
// wall point recorded on the first face for each vertex, dropping any
// edge that lies on the outer boundary of the projection square — those
// are door-threshold edges meant to stay open. A run of consecutive
// border edges is dropped as a single streak rather than edge by edge, so
// a streak straddling the contour's start/end seam does not degenerate
// into a zero-width sliver quad on one side of the seam. The scan starts
// at the first non-border vertex it finds and walks the contour from
// there, so the final edge closure re-reads its pair starting from that
// saved index instead of an arbitrary index 0.
func emitRevealQuads(face *TempMesh, contour []r2.Vec, owners []int, openings []*TempOpening, minv xform.Transform) {
	n := len(contour)
	if n < 2 {
		return
	}
	world := make([]r3.Vec, n)
	near := make([]r3.Vec, n)
	for i, p := range contour {
		world[i] = Unproject(p, minv)
		near[i] = nearestWallPoint(world[i], owners, openings)
	}
	border := make([]bool, n)
	for i := 0; i < n; i++ {
		border[i] = isBorderEdge(contour[i], contour[(i+1)%n])
	}
	start := 0
	for start < n && border[start] {
		start++
	}
	if start == n {
		return // every edge is a border streak; nothing to reveal.
	}
	for k := 0; k < n; k++ {
		i := (start + k) % n
		if border[i] {
			continue
		}
		j := (i + 1) % n
		face.Append([]r3.Vec{world[i], world[j], near[j], near[i]})
	}
}

func nearestWallPoint(p r3.Vec, owners []int, openings []*TempOpening) r3.Vec {
	var best r3.Vec
	bestSq := math.Inf(1)
	for _, oi := range owners {
		if oi < 0 || oi >= len(openings) {
			continue
		}
		for _, wp := range openings[oi].WallPoints {
			d := r3.Norm2(r3.Sub(p, wp))
			if d < bestSq {
				bestSq = d
				best = wp
			}
		}
	}
	return best
}

// isBorderEdge reports whether both endpoints of an edge lie on the same
// side of the [0,1]^2 projection square, within revealBorderEpsilon.
func isBorderEdge(a, b r2.Vec) bool {
	const eps = revealBorderEpsilon
	near := func(v float64) bool { return v <= eps || v >= 1-eps }
	sameSide := func(av, bv float64) bool {
		return near(av) && near(bv) && math.Abs(av-bv) <= eps
	}
	return sameSide(a.X, b.X) || sameSide(a.Y, b.Y)
}
