package ifcgeom

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rodrigob/assimp/internal/xform"
)

// ProcessGeometricItem dispatches item to the builder for its resolved
// kind, runs the shared post-build cleanup, and routes the result either
// into out or into conv.CollectOpenings, depending on whether the
// current item is itself being collected as an opening for a parent
// element. Shell-based surface models, face-based surface models and
// manifold B-Reps all resolve through the same AsConnectedFaceSet view:
// at the level this core operates on, each is just a set of bounded
// faces. There is no separate bounding-box case: a bounding box, like any
// other unresolved kind, is warned about and returns ErrUnsupportedVariant.
func ProcessGeometricItem(item EntityRef, resolver EntityResolver, profiles ProfileProcessor, axes AxisPlacementConverter, directrix DirectrixCurve, out *TempMesh, conv *ConversionData) (bool, error) {
	log := conv.Log
	if log == nil {
		log = NopLogger{}
	}

	var mesh *TempMesh
	var err error
	switch {
	case hasBooleanResult(resolver, item):
		b, _ := resolver.AsBooleanResult(item)
		mesh, err = ProcessBoolean(b, resolver, profiles, axes, directrix, conv)
	case hasExtrudedAreaSolid(resolver, item):
		solid, _ := resolver.AsExtrudedAreaSolid(item)
		mesh, err = processExtrudedAreaSolid(solid, profiles, axes, conv)
	case hasRevolvedAreaSolid(resolver, item):
		solid, _ := resolver.AsRevolvedAreaSolid(item)
		mesh, err = processRevolvedAreaSolid(solid, profiles, axes, conv)
	case hasSweptDiskSolid(resolver, item):
		solid, _ := resolver.AsSweptDiskSolid(item)
		mesh, err = processSweptDiskSolid(solid, directrix, conv)
	case hasConnectedFaceSet(resolver, item):
		set, _ := resolver.AsConnectedFaceSet(item)
		mesh, err = ProcessConnectedFaceSet(set)
	default:
		log.Warn("unsupported geometric item kind, skipping")
		return false, ErrUnsupportedVariant
	}
	if err != nil {
		log.Warn("geometric item build failed", "error", err)
		return false, err
	}
	if mesh == nil || mesh.IsEmpty() {
		return false, nil
	}

	mesh.RemoveAdjacentDuplicates(conv.Settings.VertexWeldTolerance)
	mesh.RemoveDegenerates()
	if mesh.IsEmpty() {
		return false, nil
	}

	if conv.CollectOpenings != nil {
		*conv.CollectOpenings = append(*conv.CollectOpenings, &TempOpening{
			ProfileMesh: *mesh,
			Origin:      item,
		})
		return true, nil
	}

	out.Verts = append(out.Verts, mesh.Verts...)
	out.FaceCounts = append(out.FaceCounts, mesh.FaceCounts...)
	return true, nil
}

func hasBooleanResult(r EntityResolver, e EntityRef) bool       { _, ok := r.AsBooleanResult(e); return ok }
func hasExtrudedAreaSolid(r EntityResolver, e EntityRef) bool   { _, ok := r.AsExtrudedAreaSolid(e); return ok }
func hasRevolvedAreaSolid(r EntityResolver, e EntityRef) bool   { _, ok := r.AsRevolvedAreaSolid(e); return ok }
func hasSweptDiskSolid(r EntityResolver, e EntityRef) bool      { _, ok := r.AsSweptDiskSolid(e); return ok }
func hasConnectedFaceSet(r EntityResolver, e EntityRef) bool    { _, ok := r.AsConnectedFaceSet(e); return ok }

// ProcessBoolean supports only the DIFFERENCE operator: a first operand
// that is itself a boolean result or a swept area solid, and a second
// operand that is a half-space solid or an extruded area solid. Every
// other combination is reported and dropped.
func ProcessBoolean(b BooleanResult, resolver EntityResolver, profiles ProfileProcessor, axes AxisPlacementConverter, directrix DirectrixCurve, conv *ConversionData) (*TempMesh, error) {
	if b.Operator != "DIFFERENCE" {
		return nil, ErrUnsupportedVariant
	}
	first, err := resolveBooleanOperand(b.FirstOperand, resolver, profiles, axes, directrix, conv)
	if err != nil {
		return nil, err
	}
	if half, ok := resolver.AsHalfSpaceSolid(b.SecondOperand); ok {
		return ClipHalfSpace(first, half.BasePlane, half.AgreementFlag), nil
	}
	if extruded, ok := resolver.AsExtrudedAreaSolid(b.SecondOperand); ok {
		second, err := processExtrudedAreaSolid(extruded, profiles, axes, conv)
		if err != nil {
			return nil, err
		}
		return subtractExtrudedSolid(first, second, extruded.ExtrudedDirection, conv), nil
	}
	return nil, ErrUnsupportedVariant
}

func resolveBooleanOperand(op EntityRef, resolver EntityResolver, profiles ProfileProcessor, axes AxisPlacementConverter, directrix DirectrixCurve, conv *ConversionData) (*TempMesh, error) {
	if nested, ok := resolver.AsBooleanResult(op); ok {
		return ProcessBoolean(nested, resolver, profiles, axes, directrix, conv)
	}
	if solid, ok := resolver.AsExtrudedAreaSolid(op); ok {
		return processExtrudedAreaSolid(solid, profiles, axes, conv)
	}
	if solid, ok := resolver.AsRevolvedAreaSolid(op); ok {
		return processRevolvedAreaSolid(solid, profiles, axes, conv)
	}
	return nil, ErrUnsupportedVariant
}

// subtractExtrudedSolid realizes the one general-CSG case the core
// allows (extruded-solid difference) by feeding second's profile mesh
// through the same opening-resolution machinery used for windows and
// doors: subtracting a swept solid from another's faces is, from first's
// point of view, exactly the same per-face boolean-difference problem as
// cutting an opening into a wall.
func subtractExtrudedSolid(first, second *TempMesh, direction r3.Vec, conv *ConversionData) *TempMesh {
	opening := &TempOpening{ExtrusionDir: direction, ProfileMesh: *second}
	applySideOpenings(first, []*TempOpening{opening}, conv.Settings.GenerateConnectionGeometry, conv)
	return first
}

func processExtrudedAreaSolid(solid ExtrudedAreaSolid, profiles ProfileProcessor, axes AxisPlacementConverter, conv *ConversionData) (*TempMesh, error) {
	var profileMesh TempMesh
	if !profiles.ProcessProfile(solid.Profile, &profileMesh, conv) || profileMesh.FaceCount() == 0 {
		return nil, ErrDegenerateInput
	}
	origin, axis, ref, ok := axes.ConvertAxisPlacement(solid.Position)
	if !ok {
		return nil, ErrDegenerateInput
	}
	loop := placeProfile(profileMesh.Face(0), placementTransform(origin, axis, ref))
	isArea := len(loop) >= 3

	openings := conv.ApplyOpenings
	if !conv.Settings.UseCustomTriangulation && len(loop) > 0 {
		openings = sortOpeningsByDistance(openings, loop[0])
	}
	return ExtrudeArea(solid.ExtrudedDirection, solid.Depth, loop, isArea, openings, conv.Settings.GenerateConnectionGeometry, conv), nil
}

func processRevolvedAreaSolid(solid RevolvedAreaSolid, profiles ProfileProcessor, axes AxisPlacementConverter, conv *ConversionData) (*TempMesh, error) {
	var profileMesh TempMesh
	if !profiles.ProcessProfile(solid.Profile, &profileMesh, conv) || profileMesh.FaceCount() == 0 {
		return nil, ErrDegenerateInput
	}
	origin, axis, ref, ok := axes.ConvertAxisPlacement(solid.Position)
	if !ok {
		return nil, ErrDegenerateInput
	}
	loop := placeProfile(profileMesh.Face(0), placementTransform(origin, axis, ref))

	openings := conv.ApplyOpenings
	if !conv.Settings.UseCustomTriangulation && len(loop) > 0 {
		openings = sortOpeningsByDistance(openings, loop[0])
	}
	return RevolveArea(origin, solid.Axis, solid.Angle, loop, openings, conv.Settings.GenerateConnectionGeometry, conv), nil
}

func processSweptDiskSolid(solid SweptDiskSolid, directrix DirectrixCurve, conv *ConversionData) (*TempMesh, error) {
	if !directrix.Convert(solid.Directrix) {
		return nil, ErrDegenerateInput
	}
	n := directrix.EstimateSampleCount(solid.Directrix, solid.Radius)
	samples := directrix.SampleDiscrete(solid.Directrix, n)
	if len(samples) < 2 {
		return nil, ErrDegenerateInput
	}

	openings := conv.ApplyOpenings
	if !conv.Settings.UseCustomTriangulation {
		openings = sortOpeningsByDistance(openings, samples[0])
	}
	return SweepDisk(solid.Radius, samples, openings, conv.Settings.GenerateConnectionGeometry, conv), nil
}

// ProcessConnectedFaceSet merges every face bound of set into one
// TempMesh, each face's outer loop and holes produced by
// ProcessPolygonBoundaries.
func ProcessConnectedFaceSet(set ConnectedFaceSet) (*TempMesh, error) {
	mesh := &TempMesh{}
	for _, fb := range set.Faces {
		boundary := ProcessPolygonBoundaries(fb.Outer, fb.Inner)
		mesh.Verts = append(mesh.Verts, boundary.Verts...)
		mesh.FaceCounts = append(mesh.FaceCounts, boundary.FaceCounts...)
	}
	if mesh.IsEmpty() {
		return nil, ErrDegenerateInput
	}
	return mesh, nil
}

// ProcessPolygonBoundaries merges an outer polyloop with its inner
// (hole) polyloops into one TempMesh face list: the outer loop first,
// then each hole as its own face. Degenerate (<3 vertex) loops are
// dropped.
func ProcessPolygonBoundaries(outer []r3.Vec, holes [][]r3.Vec) *TempMesh {
	mesh := &TempMesh{}
	if len(outer) < 3 {
		return mesh
	}
	mesh.Append(outer)
	for _, h := range holes {
		if len(h) < 3 {
			continue
		}
		mesh.Append(h)
	}
	return mesh
}

// ProcessPolyloop reads an ordered point loop into a TempMesh face,
// discarding 0- or 1-vertex loops.
func ProcessPolyloop(points []r3.Vec, out *TempMesh) bool {
	if len(points) < 2 {
		return false
	}
	out.Append(points)
	return true
}

// sortOpeningsByDistance implements the spatial-order application rule:
// openings are applied nearest-first to ref, a stable sort so ties keep
// their collection order.
func sortOpeningsByDistance(openings []*TempOpening, ref r3.Vec) []*TempOpening {
	sorted := append([]*TempOpening{}, openings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := r3.Norm2(r3.Sub(ref, sorted[i].ProfileMesh.Center()))
		dj := r3.Norm2(r3.Sub(ref, sorted[j].ProfileMesh.Center()))
		return di < dj
	})
	return sorted
}

// placementTransform builds the local-to-world transform of an axis
// placement: z along axis, x the component of ref orthogonal to axis, y
// completing the right-handed frame, translated to origin.
func placementTransform(origin, axis, ref r3.Vec) xform.Transform {
	z := r3.Unit(axis)
	projectedRef := r3.Sub(ref, r3.Scale(r3.Dot(ref, z), z))
	if r3.Norm(projectedRef) < 1e-9 {
		projectedRef = r3.Cross(z, r3.Vec{X: 1, Y: 0, Z: 0})
		if r3.Norm(projectedRef) < 1e-9 {
			projectedRef = r3.Cross(z, r3.Vec{X: 0, Y: 1, Z: 0})
		}
	}
	x := r3.Unit(projectedRef)
	y := r3.Cross(z, x)
	return xform.NewRowMajor([16]float64{
		x.X, y.X, z.X, origin.X,
		x.Y, y.Y, z.Y, origin.Y,
		x.Z, y.Z, z.Z, origin.Z,
		0, 0, 0, 1,
	})
}

func placeProfile(loop []r3.Vec, t xform.Transform) []r3.Vec {
	out := make([]r3.Vec, len(loop))
	for i, v := range loop {
		out[i] = t.Apply(v)
	}
	return out
}
