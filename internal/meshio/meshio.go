// Package meshio dumps raw triangle soups to binary STL, for use by tests
// that want to inspect a fixture's generated geometry with an external
// viewer. It takes plain triangle slices rather than the mesh data model so
// it carries no dependency on the package under test. Adapted from the
// teacher's render/stl.go, trimmed to the write path and rebased onto the
// hschendel/stl encoder instead of a hand-rolled binary writer.
package meshio

import (
	"errors"
	"io"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a single triangle of three world-space vertices.
type Triangle [3]r3.Vec

// Normal returns the triangle's unit normal via the right-hand rule over
// (V1-V0, V2-V0).
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// WriteSTL encodes triangles as a binary STL solid to w.
func WriteSTL(w io.Writer, triangles []Triangle) error {
	if len(triangles) == 0 {
		return errors.New("meshio: empty triangle slice")
	}
	solid := stl.Solid{
		Triangles: make([]stl.Triangle, 0, len(triangles)),
	}
	for _, t := range triangles {
		n := toVec3(t.Normal())
		if badVec3(n) {
			continue
		}
		solid.Triangles = append(solid.Triangles, stl.Triangle{
			Normal: n,
			Vertices: [3]stl.Vec3{
				toVec3(t[0]), toVec3(t[1]), toVec3(t[2]),
			},
		})
	}
	if len(solid.Triangles) == 0 {
		return errors.New("meshio: no non-degenerate triangles to write")
	}
	return solid.WriteAll(w)
}

func toVec3(v r3.Vec) stl.Vec3 {
	return stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func badVec3(v stl.Vec3) bool {
	return math32.IsNaN(v[0]) || math32.IsInf(v[0], 0) ||
		math32.IsNaN(v[1]) || math32.IsInf(v[1], 0) ||
		math32.IsNaN(v[2]) || math32.IsInf(v[2], 0)
}
