package ifcgeom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/boolean"
	"github.com/rodrigob/assimp/internal/fixedpoint"
	"github.com/rodrigob/assimp/internal/geom2"
	"github.com/rodrigob/assimp/internal/quadrify"
	"github.com/rodrigob/assimp/internal/xform"
)

// GenerateOpenings cuts the openings into a single wall face in place.
// face must have exactly one polygon on entry. It returns whether at
// least one opening was successfully resolved into the face.
func GenerateOpenings(face *TempMesh, openings []*TempOpening, checkIntersection, generateConnectionGeometry bool, conv *ConversionData) (bool, error) {
	if face.FaceCount() != 1 {
		return false, ErrDegenerateInput
	}
	settings := conv.Settings
	log := conv.Log
	if log == nil {
		log = NopLogger{}
	}

	faceLoop := append([]r3.Vec{}, face.Face(0)...)
	basis, ok := DerivePlaneCoordinateSpace(faceLoop)
	if !ok {
		log.Warn("could not derive a plane basis for opening face")
		return false, ErrDegenerateInput
	}
	outerProjected, m, minv, baseD, ok := ProjectOntoPlane(faceLoop, basis)
	if !ok {
		return false, ErrDegenerateInput
	}
	nor := m.Row2()

	var contours []ProjectedWindowContour
	var contourOpenings ContourToOpenings

	for oi, op := range openings {
		contour, bb, dmin, dmax, okProj := projectOpening(op, m, nor, settings)
		if !okProj {
			continue
		}
		if checkIntersection {
			eps := 0.01 * math.Abs(dmax-dmin)
			if baseD < dmin-eps || baseD > dmax+eps {
				continue
			}
		}
		if bb.Area() < settings.MinFaceArea {
			continue
		}

		var fallback bool
		contours, contourOpenings, fallback = mergeOpening(contours, contourOpenings, contour, bb, oi, log)
		if fallback {
			return false, ErrTopologyFailure
		}
	}

	if len(contours) == 0 {
		return false, nil
	}

	region := geom2.NewBox(r2.Vec{}, geom2.One)
	var openingBoxes []geom2.Box
	for _, c := range contours {
		if c.Valid {
			openingBoxes = append(openingBoxes, c.BB)
		}
	}
	var work mesh2D
	work.fromQuads(quadrify.Quadrify(region, openingBoxes))

	cleanupContours(contours)

	insertWindowContours(&work, contours, log)

	cleanupOuterContour(&work, outerProjected)

	work.unprojectInto(face, minv)

	if generateConnectionGeometry {
		closeWindows(face, contours, contourOpenings, openings, minv)
	}

	return true, nil
}

// projectOpening projects the sub-faces of op's profile mesh that are not
// nearly perpendicular to the wall normal, returning the resulting
// contour (the convex hull of the surviving vertices), its bounding box
// and the plane-distance extremes used by the intersection check.
func projectOpening(op *TempOpening, m xform.Transform, nor r3.Vec, settings Settings) (contour []r2.Vec, bb geom2.Box, dmin, dmax float64, ok bool) {
	var pts []r2.Vec
	first := true
	op.ProfileMesh.Faces(func(loop []r3.Vec) {
		faceNor := newellNormal(loop)
		if r3.Norm(faceNor) < 1e-12 {
			return
		}
		faceNor = r3.Unit(faceNor)
		if math.Abs(r3.Dot(nor, faceNor)) < 0.5 {
			return
		}
		for _, v := range loop {
			p := m.Apply(v)
			here := r2.Vec{X: p.X, Y: p.Y}
			// dmin/dmax must live in the same frame as the caller's
			// baseD (the face's absolute plane distance), so they are
			// taken from the raw vertex against nor, not from m.Apply's
			// plane-relative z, which is shifted by -planeOffset.
			d := r3.Dot(v, nor)
			if first {
				dmin, dmax = d, d
				first = false
			} else {
				dmin = math.Min(dmin, d)
				dmax = math.Max(dmax, d)
			}
			if !hasNear(pts, here, settings.VertexWeldTolerance) {
				pts = append(pts, here)
			}
		}
	})
	if len(pts) < 3 {
		return nil, geom2.Box{}, 0, 0, false
	}
	contour = geom2.ConvexHull(pts)
	if len(contour) < 3 {
		return nil, geom2.Box{}, 0, 0, false
	}
	bb = boundingBoxOf(contour)
	return contour, bb, dmin, dmax, true
}

func newellNormal(loop []r3.Vec) r3.Vec {
	var acc r3.Vec
	n := len(loop)
	for i := 0; i < n; i++ {
		cur, next := loop[i], loop[(i+1)%n]
		acc.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		acc.Y += (cur.Z - next.Z) * (cur.X + next.X)
		acc.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return acc
}

func hasNear(pts []r2.Vec, p r2.Vec, tol float64) bool {
	for _, q := range pts {
		if geom2.SquareDist(p, q) < tol*tol {
			return true
		}
	}
	return false
}

func boundingBoxOf(loop []r2.Vec) geom2.Box {
	bb := geom2.NewBox(loop[0], loop[0])
	for _, p := range loop[1:] {
		bb = bb.Include(p)
	}
	return bb
}

// mergeOpening runs the restart-on-merge overlap resolution of step 5:
// it queries the contour set's R-tree for every already-accepted contour
// whose box overlaps the new one, shrinking or merging as needed, and
// restarts the scan (rebuilding the index) whenever a merge changes the
// accepted set.
func mergeOpening(contours []ProjectedWindowContour, contourOpenings ContourToOpenings, newContour []r2.Vec, newBB geom2.Box, openingIdx int, log Logger) ([]ProjectedWindowContour, ContourToOpenings, bool) {
	host := -1
	for {
		mergedThisPass := false
		index := buildOpeningIndex(contours, host)
		for _, i := range queryOpeningIndex(index, newBB) {
			if i == host || !contours[i].Valid || !contours[i].BB.Overlapping(newBB) {
				continue
			}
			existing := contours[i]

			if shrunk, err := boolean.Difference(
				fixedpoint.ToFixedLoop(newContour),
				fixedpoint.ToFixedLoop(existing.Contour),
			); err == nil && len(shrunk) == 1 && len(shrunk[0].Holes) == 0 {
				shrunkLoop := fixedpoint.FromFixedLoop(shrunk[0].Outer)
				shrunkBB := boundingBoxOf(shrunkLoop)
				if !shrunkBB.Overlapping(existing.BB) {
					newContour, newBB = shrunkLoop, shrunkBB
					continue
				}
			}

			union, err := boolean.Union(
				fixedpoint.ToFixedLoop(newContour),
				fixedpoint.ToFixedLoop(existing.Contour),
			)
			if err != nil {
				log.Warn("opening union failed", "error", err)
				continue
			}
			switch len(union) {
			case 0:
				// exact duplicate; ignore the new opening entirely.
				return contours, contourOpenings, false
			case 1:
				mergedLoop := fixedpoint.FromFixedLoop(union[0].Outer)
				mergedBB := existing.BB.Union(newBB)
				if host == -1 {
					host = i
					contourOpenings[host] = append(contourOpenings[host], openingIdx)
				} else {
					contourOpenings[host] = append(contourOpenings[host], contourOpenings[i]...)
					contours[i] = ProjectedWindowContour{Valid: false}
					contourOpenings[i] = nil
				}
				contours[host] = ProjectedWindowContour{Contour: mergedLoop, BB: mergedBB, Valid: true}
				newContour, newBB = mergedLoop, mergedBB
				mergedThisPass = true
			default:
				// More than one piece came out of the union: this is
				// the quadrify path's recoverable-failure signal. The
				// caller escalates to Poly2TriFallback for the whole
				// face rather than trying to patch up partial state.
				return contours, contourOpenings, true
			}
			if mergedThisPass {
				break
			}
		}
		if !mergedThisPass {
			break
		}
	}
	if host == -1 {
		contours = append(contours, ProjectedWindowContour{Contour: newContour, BB: newBB, Valid: true})
		contourOpenings = append(contourOpenings, []int{openingIdx})
	}
	return contours, contourOpenings, false
}

// cleanupContours runs each valid contour through a self-union to strip
// micro self-intersections, invalidating any contour that does not come
// back as exactly one piece.
func cleanupContours(contours []ProjectedWindowContour) {
	for i, c := range contours {
		if !c.Valid {
			continue
		}
		cleaned := boolean.UnionAll([][]boolean.Point{fixedpoint.ToFixedLoop(c.Contour)})
		if len(cleaned) != 1 {
			contours[i].Valid = false
			continue
		}
		contours[i].Contour = fixedpoint.FromFixedLoop(cleaned[0].Outer)
	}
}
