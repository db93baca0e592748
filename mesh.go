package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/geom2"
	"github.com/rodrigob/assimp/internal/geom3"
)

// TempMesh is an append-only polygon soup: an ordered vertex sequence plus
// a parallel per-face vertex-count sequence. The sum of the counts always
// equals len(Verts).
type TempMesh struct {
	Verts      []r3.Vec
	FaceCounts []int
}

// Clear empties the mesh while keeping its backing arrays.
func (m *TempMesh) Clear() {
	m.Verts = m.Verts[:0]
	m.FaceCounts = m.FaceCounts[:0]
}

// IsEmpty reports whether the mesh has no faces.
func (m *TempMesh) IsEmpty() bool {
	return len(m.FaceCounts) == 0
}

// Append adds one face made of the given loop, in order.
func (m *TempMesh) Append(loop []r3.Vec) {
	if len(loop) == 0 {
		return
	}
	m.Verts = append(m.Verts, loop...)
	m.FaceCounts = append(m.FaceCounts, len(loop))
}

// FaceCount returns the number of faces in the mesh.
func (m *TempMesh) FaceCount() int {
	return len(m.FaceCounts)
}

// Face returns the vertex loop of face i.
func (m *TempMesh) Face(i int) []r3.Vec {
	start := 0
	for j := 0; j < i; j++ {
		start += m.FaceCounts[j]
	}
	return m.Verts[start : start+m.FaceCounts[i]]
}

// Faces calls fn once per face with that face's vertex loop.
func (m *TempMesh) Faces(fn func(loop []r3.Vec)) {
	start := 0
	for _, n := range m.FaceCounts {
		fn(m.Verts[start : start+n])
		start += n
	}
}

// Center returns the centroid of every vertex in the mesh (not
// area-weighted), used to spatially order openings before applying them.
func (m *TempMesh) Center() r3.Vec {
	if len(m.Verts) == 0 {
		return r3.Vec{}
	}
	var sum r3.Vec
	for _, v := range m.Verts {
		sum = r3.Add(sum, v)
	}
	return r3.Scale(1/float64(len(m.Verts)), sum)
}

// ComputeLastPolygonNormal returns the Newell's-method normal of the last
// appended face (the zero vector when the mesh has no faces).
func (m *TempMesh) ComputeLastPolygonNormal() r3.Vec {
	if len(m.FaceCounts) == 0 {
		return r3.Vec{}
	}
	loop := m.Face(len(m.FaceCounts) - 1)
	var acc r3.Vec
	n := len(loop)
	for i := 0; i < n; i++ {
		acc = geom3.Newell(acc, loop[i], loop[(i+1)%n])
	}
	return acc
}

// RemoveAdjacentDuplicates drops consecutive near-duplicate vertices
// within each face (tolerance tol), run once after geometric-item
// dispatch produces a raw mesh.
func (m *TempMesh) RemoveAdjacentDuplicates(tol float64) {
	var newVerts []r3.Vec
	var newCounts []int
	start := 0
	for _, n := range m.FaceCounts {
		loop := m.Verts[start : start+n]
		start += n
		var kept []r3.Vec
		for i, v := range loop {
			if i == 0 || !geom3.EqualWithin(v, kept[len(kept)-1], tol) {
				kept = append(kept, v)
			}
		}
		if len(kept) > 1 && geom3.EqualWithin(kept[0], kept[len(kept)-1], tol) {
			kept = kept[:len(kept)-1]
		}
		newVerts = append(newVerts, kept...)
		newCounts = append(newCounts, len(kept))
	}
	m.Verts = newVerts
	m.FaceCounts = newCounts
}

// RemoveDegenerates drops faces with fewer than 3 vertices after cleanup.
func (m *TempMesh) RemoveDegenerates() {
	var newVerts []r3.Vec
	var newCounts []int
	start := 0
	for _, n := range m.FaceCounts {
		loop := m.Verts[start : start+n]
		start += n
		if n >= 3 {
			newVerts = append(newVerts, loop...)
			newCounts = append(newCounts, n)
		}
	}
	m.Verts = newVerts
	m.FaceCounts = newCounts
}

// TempOpening is one opening candidate carried by a parent (wall) solid
// through its two faces' worth of opening resolution.
type TempOpening struct {
	ExtrusionDir r3.Vec
	ProfileMesh  TempMesh
	WallPoints   []r3.Vec

	// Origin points back at the geometric item this opening was
	// collected from. The core does not read it; the pre-application
	// distance sort uses ProfileMesh.Center.
	Origin any
}

// ProjectedWindowContour is one opening's footprint after projection into
// a wall face's [0,1]^2 working plane.
type ProjectedWindowContour struct {
	Contour []r2.Vec
	BB      geom2.Box
	// Valid is false once a contour collapses (e.g. the self-union
	// cleanup pass in §4.6 step 8 yields zero or multiple pieces); the
	// slot is retained so indices into the contour/openings lists stay
	// stable.
	Valid bool
}

// ContourToOpenings parallels the contour list: each entry lists the
// index, into the caller's opening slice, of every opening that
// contributed to that merged contour.
type ContourToOpenings [][]int
