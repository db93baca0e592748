package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/quadrify"
	"github.com/rodrigob/assimp/internal/xform"
)

// mesh2D is TempMesh's shape mirrored onto the projected working plane:
// it holds the quadrify output, the inserted opening contours and the
// outer-clip result before the final unproject step lifts everything
// back into world space.
type mesh2D struct {
	Verts      []r2.Vec
	FaceCounts []int
}

func (m *mesh2D) append(loop []r2.Vec) {
	if len(loop) == 0 {
		return
	}
	m.Verts = append(m.Verts, loop...)
	m.FaceCounts = append(m.FaceCounts, len(loop))
}

func (m *mesh2D) faces(fn func(loop []r2.Vec)) {
	start := 0
	for _, n := range m.FaceCounts {
		fn(m.Verts[start : start+n])
		start += n
	}
}

func (m *mesh2D) fromQuads(quads []quadrify.Quad) {
	for _, q := range quads {
		m.append(q[:])
	}
}

// unprojectInto lifts m back into world space via minv, replacing dst's
// contents.
func (m *mesh2D) unprojectInto(dst *TempMesh, minv xform.Transform) {
	dst.Clear()
	m.faces(func(loop []r2.Vec) {
		out := make([]r3.Vec, len(loop))
		for i, p := range loop {
			out[i] = minv.Apply(r3.Vec{X: p.X, Y: p.Y})
		}
		dst.Append(out)
	})
}
