package geom2

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// ConvexHull returns the convex hull of pts in CCW order, via Andrew's
// monotone chain. Used to collapse an opening's multi-subface vertex
// cloud into a single simple contour before it enters the boolean
// engine.
func ConvexHull(pts []r2.Vec) []r2.Vec {
	uniq := dedupe(pts)
	if len(uniq) < 3 {
		return uniq
	}
	sort.Slice(uniq, func(i, j int) bool {
		if uniq[i].X != uniq[j].X {
			return uniq[i].X < uniq[j].X
		}
		return uniq[i].Y < uniq[j].Y
	})

	build := func(pts []r2.Vec) []r2.Vec {
		var hull []r2.Vec
		for _, p := range pts {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}
	lower := build(uniq)
	reversedPts := make([]r2.Vec, len(uniq))
	for i, p := range uniq {
		reversedPts[len(uniq)-1-i] = p
	}
	upper := build(reversedPts)
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func cross(o, a, b r2.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func dedupe(pts []r2.Vec) []r2.Vec {
	var out []r2.Vec
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if EqualWithin(p, q, 1e-9) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
