package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/geom3"
)

// ClipHalfSpace clips every face of mesh against the half-space
// n·(x−p) > 0 (p and n taken from plane, n flipped when agreementFlag is
// false), the boolean path that bypasses the opening pipeline entirely.
// The cut itself contributes one new face: the intersection segment each
// clipped face leaves on the plane is stitched edge-to-edge into the
// closing cap polygon, so the result stays a closed solid rather than an
// open shell.
func ClipHalfSpace(mesh *TempMesh, plane Plane, agreementFlag bool) *TempMesh {
	nor := r3.Unit(plane.Normal)
	if !agreementFlag {
		nor = r3.Scale(-1, nor)
	}
	meshBox := boundingBoxOfMesh(mesh)
	weldEps := meshBox.DiagSquared() / 1e10

	out := &TempMesh{}
	var cutEdges [][2]r3.Vec
	mesh.Faces(func(loop []r3.Vec) {
		clipped, cut, hasCut := clipFaceHalfSpace(loop, plane.Position, nor)
		if hasCut {
			cutEdges = append(cutEdges, cut)
		}
		if len(clipped) < 3 {
			return
		}
		box := geom3.NewBox(clipped[0], clipped[0])
		for _, v := range clipped[1:] {
			box = box.Include(v)
		}
		eps := box.DiagSquared() / 1e6
		clipped = removeAdjacentDuplicatesR3(clipped, eps)
		if len(clipped) < 3 {
			return
		}
		out.Append(clipped)
	})
	if cap := stitchCutCap(cutEdges, weldEps); len(cap) >= 3 {
		// The kept volume satisfies n·(x-p) > 0, so the cap's outward
		// face normal - pointing away from the kept volume, per the
		// mesh's usual outward-normal convention - runs opposite nor.
		if r3.Dot(newellNormal(cap), nor) > 0 {
			cap = reverseR3(cap)
		}
		out.Append(cap)
	}
	return out
}

func boundingBoxOfMesh(mesh *TempMesh) geom3.Box {
	var box geom3.Box
	first := true
	mesh.Faces(func(loop []r3.Vec) {
		for _, v := range loop {
			if first {
				box = geom3.NewBox(v, v)
				first = false
				continue
			}
			box = box.Include(v)
		}
	})
	return box
}

// clipFaceHalfSpace is Sutherland-Hodgman against a single plane: vertices
// with (e−p)·n > 0 survive, and an intersection point is inserted at
// every edge that crosses the plane. When exactly two such points are
// inserted, the face straddles the plane and cut reports the segment
// between them, the piece of the cut boundary this face contributes.
func clipFaceHalfSpace(loop []r3.Vec, p, n r3.Vec) (result []r3.Vec, cut [2]r3.Vec, hasCut bool) {
	count := len(loop)
	var crossings []r3.Vec
	for i := 0; i < count; i++ {
		cur := loop[i]
		next := loop[(i+1)%count]
		curSide := r3.Dot(r3.Sub(cur, p), n)
		nextSide := r3.Dot(r3.Sub(next, p), n)
		if curSide > 0 {
			result = append(result, cur)
		}
		if (curSide > 0) != (nextSide > 0) {
			t := curSide / (curSide - nextSide)
			ipt := r3.Add(cur, r3.Scale(t, r3.Sub(next, cur)))
			result = append(result, ipt)
			crossings = append(crossings, ipt)
		}
	}
	if len(crossings) == 2 {
		cut, hasCut = [2]r3.Vec{crossings[0], crossings[1]}, true
	}
	return result, cut, hasCut
}

// stitchCutCap chains the per-face cut segments into the single boundary
// loop bordering the plane, matching each segment's endpoint to the next
// segment sharing that point within weldEps. A disconnected or degenerate
// set of segments (fewer than 3, or a chain that cannot be closed) yields
// no cap rather than a malformed one.
func stitchCutCap(edges [][2]r3.Vec, weldEps float64) []r3.Vec {
	if len(edges) < 3 {
		return nil
	}
	remaining := append([][2]r3.Vec{}, edges...)
	ring := []r3.Vec{remaining[0][0], remaining[0][1]}
	remaining = remaining[1:]
	for len(remaining) > 0 {
		last := ring[len(ring)-1]
		found, flip := -1, false
		for i, e := range remaining {
			if r3.Norm2(r3.Sub(e[0], last)) <= weldEps {
				found, flip = i, false
				break
			}
			if r3.Norm2(r3.Sub(e[1], last)) <= weldEps {
				found, flip = i, true
				break
			}
		}
		if found == -1 {
			return nil
		}
		next := remaining[found]
		if flip {
			ring = append(ring, next[0])
		} else {
			ring = append(ring, next[1])
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	if len(ring) > 2 && r3.Norm2(r3.Sub(ring[0], ring[len(ring)-1])) <= weldEps {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil
	}
	return ring
}

func removeAdjacentDuplicatesR3(loop []r3.Vec, epsSq float64) []r3.Vec {
	var kept []r3.Vec
	for _, v := range loop {
		if len(kept) == 0 || r3.Norm2(r3.Sub(v, kept[len(kept)-1])) > epsSq {
			kept = append(kept, v)
		}
	}
	if len(kept) > 1 && r3.Norm2(r3.Sub(kept[0], kept[len(kept)-1])) <= epsSq {
		kept = kept[:len(kept)-1]
	}
	return kept
}
