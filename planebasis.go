package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/geom2"
	"github.com/rodrigob/assimp/internal/xform"
)

const planeBasisEpsilon = 1e-9

// DerivePlaneCoordinateSpace reconstructs an orthonormal 3D frame for a
// near-planar polygon: pick the last vertex as an anchor, scan ordered
// pairs (i, j) with j > i, and take the first pair whose edge vectors
// from the anchor have a non-degenerate cross product as the plane
// normal and first in-plane axis. Newell's method gives a more robust
// normal but no aligned in-plane axis, which this exploits given the
// near-quadrilateral shape of extruded wall sides.
func DerivePlaneCoordinateSpace(loop []r3.Vec) (basis xform.Transform, ok bool) {
	n := len(loop)
	if n < 3 {
		return xform.Transform{}, false
	}
	anchor := loop[n-1]
	for i := 0; i < n; i++ {
		e1 := r3.Sub(loop[i], anchor)
		for j := i + 1; j < n; j++ {
			e2 := r3.Sub(loop[j], anchor)
			cr := r3.Cross(e1, e2)
			if r3.Norm(cr) < planeBasisEpsilon {
				continue
			}
			nor := r3.Scale(-1, r3.Unit(cr))
			r := r3.Unit(e1)
			u := r3.Unit(r3.Cross(r, nor))
			return xform.Basis(r, u, nor), true
		}
	}
	return xform.Transform{}, false
}

// ProjectOntoPlane projects loop through basis, rescales the result into
// [0,1]^2 and returns the composed forward transform m, its inverse minv
// and the plane's signed offset along the normal (the z coordinate every
// vertex shares, up to epsilon, before rescaling).
func ProjectOntoPlane(loop []r3.Vec, basis xform.Transform) (projected []r2.Vec, m, minv xform.Transform, planeOffset float64, ok bool) {
	if len(loop) == 0 {
		return nil, xform.Transform{}, xform.Transform{}, 0, false
	}
	raw := make([]r3.Vec, len(loop))
	vmin, vmax := r2.Vec{}, r2.Vec{}
	var zSum float64
	for i, v := range loop {
		p := basis.Apply(v)
		raw[i] = p
		zSum += p.Z
		here := r2.Vec{X: p.X, Y: p.Y}
		if i == 0 {
			vmin, vmax = here, here
		} else {
			vmin = geom2.MinElem(vmin, here)
			vmax = geom2.MaxElem(vmax, here)
		}
	}
	planeOffset = zSum / float64(len(loop))

	size := r2.Sub(vmax, vmin)
	sx, sy := 1.0, 1.0
	if size.X > planeBasisEpsilon {
		sx = 1 / size.X
	}
	if size.Y > planeBasisEpsilon {
		sy = 1 / size.Y
	}
	mult := xform.NewRowMajor([16]float64{
		sx, 0, 0, -vmin.X * sx,
		0, sy, 0, -vmin.Y * sy,
		0, 0, 1, -planeOffset,
		0, 0, 0, 1,
	})
	m = mult.Mul(basis)
	minv = m.Inv()

	projected = make([]r2.Vec, len(loop))
	for i, p := range raw {
		projected[i] = geom2.Clamp01(r2.Vec{X: sx * (p.X - vmin.X), Y: sy * (p.Y - vmin.Y)})
	}
	return projected, m, minv, planeOffset, true
}

// Unproject maps a projected 2D point back to world space via minv.
func Unproject(p r2.Vec, minv xform.Transform) r3.Vec {
	return minv.Apply(r3.Vec{X: p.X, Y: p.Y})
}
