package ifcgeom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/cdt"
)

// Poly2TriFallback re-triangulates a wall face with its opening contours
// carved out as holes, the escape path GenerateOpenings takes when its
// overlap-resolution loop cannot reduce two openings' union to a single
// contour. Unlike the quadrify path it produces triangles rather than
// quads, trading shape quality for a result that is always topologically
// sound.
func Poly2TriFallback(face *TempMesh, openings []*TempOpening, generateConnectionGeometry bool, conv *ConversionData) (bool, error) {
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
		log.Warn("could not derive a plane basis for the fallback face")
		return false, ErrDegenerateInput
	}
	outerProjected, m, minv, _, ok := ProjectOntoPlane(faceLoop, basis)
	if !ok {
		return false, ErrDegenerateInput
	}
	nor := m.Row2()

	var holes [][]r2.Vec
	var contours []ProjectedWindowContour
	var contourOpenings ContourToOpenings
	for oi, op := range openings {
		contour, bb, _, _, okProj := projectOpening(op, m, nor, settings)
		if !okProj || bb.Area() < settings.MinFaceArea {
			continue
		}
		holes = append(holes, reverseLoop(contour))
		contours = append(contours, ProjectedWindowContour{Contour: contour, BB: bb, Valid: true})
		contourOpenings = append(contourOpenings, []int{oi})
	}
	if len(holes) == 0 {
		return false, nil
	}

	points, tris, err := cdt.Triangulate(ensureCCW(outerProjected), holes)
	if err != nil {
		log.Error("poly2tri fallback triangulation failed", "error", err)
		return false, ErrTopologyFailure
	}

	face.Clear()
	for _, t := range tris {
		face.Append([]r3.Vec{
			Unproject(points[t[0]], minv),
			Unproject(points[t[1]], minv),
			Unproject(points[t[2]], minv),
		})
	}
	if generateConnectionGeometry {
		closeWindows(face, contours, contourOpenings, openings, minv)
	}
	return true, nil
}

// ensureCCW flips loop if it winds clockwise, the orientation
// Triangulate's outer argument requires.
func ensureCCW(loop []r2.Vec) []r2.Vec {
	if signedArea2(loop) >= 0 {
		return loop
	}
	return reverseLoop(loop)
}

func reverseLoop(loop []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(loop))
	for i, v := range loop {
		out[len(loop)-1-i] = v
	}
	return out
}

func signedArea2(loop []r2.Vec) float64 {
	var sum float64
	n := len(loop)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += loop[i].X*loop[j].Y - loop[j].X*loop[i].Y
	}
	return sum / 2
}
