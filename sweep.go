package ifcgeom

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/xform"
)

const diskSweepRingPoints = 16

// ExtrudeArea builds the side quads (and, for an area profile with
// sufficient depth, the two capping polygons) of a linear extrusion, then
// feeds every side face through the opening pipeline.
func ExtrudeArea(direction r3.Vec, depth float64, profile []r3.Vec, isAreaProfile bool, openings []*TempOpening, generateConnectionGeometry bool, conv *ConversionData) *TempMesh {
	mesh := &TempMesh{}
	n := len(profile)
	if n < 2 {
		return mesh
	}
	d := r3.Scale(depth, r3.Unit(direction))
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := profile[i], profile[j]
		mesh.Append([]r3.Vec{a, b, r3.Add(b, d), r3.Add(a, d)})
	}
	if isAreaProfile && n >= 3 && depth >= 1e-3 {
		mesh.Append(reverseR3(profile))
		top := make([]r3.Vec, n)
		for i, p := range profile {
			top[i] = r3.Add(p, d)
		}
		mesh.Append(top)
	}
	applySideOpenings(mesh, openings, generateConnectionGeometry, conv)
	return mesh
}

// RevolveArea builds the ring quads of profile revolved by angle radians
// about (axisOrigin, axis), then feeds every ring side through the
// opening pipeline. If angle degenerates to near zero, the original
// profile is returned untouched. Caps are emitted for a partial
// revolution only.
func RevolveArea(axisOrigin, axis r3.Vec, angle float64, profile []r3.Vec, openings []*TempOpening, generateConnectionGeometry bool, conv *ConversionData) *TempMesh {
	mesh := &TempMesh{}
	n := len(profile)
	if n < 2 {
		return mesh
	}
	if math.Abs(angle) < 1e-3 {
		mesh.Append(append([]r3.Vec{}, profile...))
		return mesh
	}
	segments := int(math.Max(2, math.Ceil(16*math.Abs(angle)/(math.Pi/2))))
	step := angle / float64(segments)
	rings := make([][]r3.Vec, segments+1)
	for s := 0; s <= segments; s++ {
		theta := step * float64(s)
		rot := xform.AboutPoint(xform.AxisAngle(axis, theta), axisOrigin)
		ring := make([]r3.Vec, n)
		for i, p := range profile {
			ring[i] = rot.Apply(p)
		}
		rings[s] = ring
	}
	for s := 0; s < segments; s++ {
		cur, next := rings[s], rings[s+1]
		for i := 0; i < n-1; i++ {
			mesh.Append([]r3.Vec{cur[i], cur[i+1], next[i+1], next[i]})
		}
	}
	if math.Abs(angle) < 2*math.Pi*0.99 && n >= 3 {
		mesh.Append(reverseR3(rings[0]))
		mesh.Append(append([]r3.Vec{}, rings[segments]...))
	}
	applySideOpenings(mesh, openings, generateConnectionGeometry, conv)
	return mesh
}

// SweepDisk builds the ring quads of a circular profile of the given
// radius swept along directrix. Tangents are estimated from each sample's
// neighbours; successive rings are rotated into the offset that best
// aligns with the previous ring's reference vertex, avoiding a twisted
// tube.
func SweepDisk(radius float64, directrix []r3.Vec, openings []*TempOpening, generateConnectionGeometry bool, conv *ConversionData) *TempMesh {
	mesh := &TempMesh{}
	n := len(directrix)
	if n < 2 || radius <= 0 {
		return mesh
	}
	rings := make([][]r3.Vec, n)
	axis := 0
	for i := 0; i < n; i++ {
		prev := directrix[maxInt(i-1, 0)]
		cur := directrix[i]
		next := directrix[minInt(i+1, n-1)]
		tangent := r3.Add(r3.Sub(cur, prev), r3.Sub(next, prev))
		if r3.Norm(tangent) < 1e-12 {
			tangent = r3.Sub(next, prev)
		}
		d := r3.Unit(tangent)
		var q r3.Vec
		q, axis = inPlaneReference(d, axis)
		rings[i] = buildRing(cur, d, q, radius)
	}
	for i := 0; i < n-1; i++ {
		offset := bestRingAlignment(rings[i], rings[i+1])
		connectRings(mesh, rings[i], rotateRing(rings[i+1], offset), directrix[i])
	}
	applySideOpenings(mesh, openings, generateConnectionGeometry, conv)
	return mesh
}

// inPlaneReference returns a unit vector orthogonal to d, reusing the
// previously chosen coordinate axis when it still has enough magnitude in
// d to solve for, so that consecutive rings don't flip reference frame.
func inPlaneReference(d r3.Vec, prevAxis int) (r3.Vec, int) {
	comps := [3]float64{d.X, d.Y, d.Z}
	axis := prevAxis
	if math.Abs(comps[axis]) < 1e-6 {
		axis = 2
		for i, c := range comps {
			if math.Abs(c) > 1e-6 {
				axis = i
				break
			}
		}
	}
	var q r3.Vec
	switch axis {
	case 0:
		q = r3.Vec{X: -(d.Y + d.Z) / d.X, Y: 1, Z: 1}
	case 1:
		q = r3.Vec{X: 1, Y: -(d.X + d.Z) / d.Y, Z: 1}
	default:
		q = r3.Vec{X: 1, Y: 1, Z: -(d.X + d.Y) / d.Z}
	}
	return r3.Unit(q), axis
}

func buildRing(center, d, q r3.Vec, radius float64) []r3.Vec {
	ring := make([]r3.Vec, diskSweepRingPoints)
	for k := 0; k < diskSweepRingPoints; k++ {
		theta := 2 * math.Pi * float64(k) / float64(diskSweepRingPoints)
		rv := xform.AxisAngle(d, theta).Apply(q)
		ring[k] = r3.Add(center, r3.Scale(radius, rv))
	}
	return ring
}

// bestRingAlignment finds the rotation offset of nextRing that minimizes
// squared distance to prevRing's reference vertex.
func bestRingAlignment(prevRing, nextRing []r3.Vec) int {
	ref := prevRing[0]
	best, bestSq := 0, math.Inf(1)
	for off := 0; off < len(nextRing); off++ {
		sq := r3.Norm2(r3.Sub(nextRing[off], ref))
		if sq < bestSq {
			bestSq, best = sq, off
		}
	}
	return best
}

func rotateRing(ring []r3.Vec, offset int) []r3.Vec {
	n := len(ring)
	out := make([]r3.Vec, n)
	for i := range ring {
		out[i] = ring[(i+offset)%n]
	}
	return out
}

// connectRings emits the quads bridging two consecutive rings, flipping
// any quad whose outward normal points back toward the curve sample it
// was generated from.
func connectRings(mesh *TempMesh, a, b []r3.Vec, center r3.Vec) {
	n := len(a)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quad := []r3.Vec{a[i], a[j], b[j], b[i]}
		nor := newellNormal(quad)
		mid := r3.Scale(0.25, r3.Add(r3.Add(quad[0], quad[1]), r3.Add(quad[2], quad[3])))
		if r3.Dot(nor, r3.Sub(center, mid)) > 0 {
			quad = reverseR3(quad)
		}
		mesh.Append(quad)
	}
}

// applySideOpenings runs every face of mesh through the opening pipeline
// independently, replacing faces whose openings resolve successfully and
// falling back to a triangulated hole when the pipeline escalates. It
// also tracks how many sides had at least one opening worth attempting
// versus how many actually resolved one, warning when that split is
// partial (some sides pierced, others with plausible candidates did not).
func applySideOpenings(mesh *TempMesh, openings []*TempOpening, generateConnectionGeometry bool, conv *ConversionData) {
	if len(openings) == 0 {
		return
	}
	log := conv.Log
	if log == nil {
		log = NopLogger{}
	}
	var rebuilt TempMesh
	var sidesWithCandidates, sidesResolved int
	for i := 0; i < mesh.FaceCount(); i++ {
		var single TempMesh
		single.Append(mesh.Face(i))
		if hasCandidateOpening(&single, openings, conv.Settings) {
			sidesWithCandidates++
		}
		ok, err := GenerateOpenings(&single, openings, true, generateConnectionGeometry, conv)
		if errors.Is(err, ErrTopologyFailure) {
			ok, _ = Poly2TriFallback(&single, openings, generateConnectionGeometry, conv)
		}
		if ok {
			sidesResolved++
		}
		single.Faces(func(loop []r3.Vec) {
			rebuilt.Append(loop)
		})
	}
	*mesh = rebuilt
	if sidesResolved > 0 && sidesResolved < sidesWithCandidates {
		log.Warn("some sides with candidate openings did not resolve any",
			"resolved", sidesResolved, "candidates", sidesWithCandidates)
	}
}

// hasCandidateOpening reports whether any opening's projected footprint
// plausibly intersects face, without running the full merge/quadrify
// pipeline — used only to size the §6.3 partial-resolution warning.
func hasCandidateOpening(face *TempMesh, openings []*TempOpening, settings Settings) bool {
	if face.FaceCount() != 1 {
		return false
	}
	basis, ok := DerivePlaneCoordinateSpace(face.Face(0))
	if !ok {
		return false
	}
	_, m, _, baseD, ok := ProjectOntoPlane(face.Face(0), basis)
	if !ok {
		return false
	}
	nor := m.Row2()
	for _, op := range openings {
		_, bb, dmin, dmax, okProj := projectOpening(op, m, nor, settings)
		if !okProj || bb.Area() < settings.MinFaceArea {
			continue
		}
		eps := 0.01 * math.Abs(dmax-dmin)
		if baseD >= dmin-eps && baseD <= dmax+eps {
			return true
		}
	}
	return false
}

func reverseR3(loop []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(loop))
	for i, v := range loop {
		out[len(loop)-1-i] = v
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
