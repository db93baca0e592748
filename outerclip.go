package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/rodrigob/assimp/internal/boolean"
	"github.com/rodrigob/assimp/internal/fixedpoint"
)

// cleanupOuterContour intersects each face of work against outer (the
// surface's true outer contour), face by face rather than as one unified
// boolean, because merging them here would re-fuse adjacent quads the
// quadrify stage deliberately kept apart.
func cleanupOuterContour(work *mesh2D, outer []r2.Vec) {
	if len(outer) < 3 {
		return
	}
	outerFixed := fixedpoint.ToFixedLoop(outer)

	var verts []r2.Vec
	var counts []int
	work.faces(func(loop []r2.Vec) {
		if len(loop) < 3 {
			return
		}
		clipped, err := boolean.Intersection(fixedpoint.ToFixedLoop(loop), outerFixed)
		if err != nil {
			return
		}
		for _, ex := range clipped {
			if len(ex.Outer) < 3 {
				continue
			}
			ring := fixedpoint.FromFixedLoop(ex.Outer)
			verts = append(verts, ring...)
			counts = append(counts, len(ring))
			for _, hole := range ex.Holes {
				if len(hole) < 3 {
					continue
				}
				holeRing := fixedpoint.FromFixedLoop(hole)
				verts = append(verts, holeRing...)
				counts = append(counts, len(holeRing))
			}
		}
	})
	work.Verts = verts
	work.FaceCounts = counts
}
