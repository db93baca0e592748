package ifcgeom

import "gonum.org/v1/gonum/spatial/r3"

// ProfileRef is an opaque handle to an IFC profile definition, resolved
// and sampled by the caller's ProfileProcessor.
type ProfileRef any

// ConversionData is the in-flight conversion context threaded through a
// single element's processing: the opening queue, settings and logger.
// It owns no goroutine-shared state; one ConversionData is never touched
// from more than one goroutine at a time.
type ConversionData struct {
	Settings Settings
	Log      Logger

	// ApplyOpenings, when non-nil, lists the openings the current
	// swept solid should have cut into its side faces.
	ApplyOpenings []*TempOpening

	// CollectOpenings, when non-nil, accumulates the current geometric
	// item as an opening for a parent element instead of emitting mesh
	// output for it directly.
	CollectOpenings *[]*TempOpening
}

// ProfileProcessor materializes a 2D profile's boundary as planar
// vertices into out, returning false if the profile could not be
// resolved.
type ProfileProcessor interface {
	ProcessProfile(profile ProfileRef, out *TempMesh, conv *ConversionData) bool
}

// AxisPlacement is an opaque handle to an IFC axis placement entity.
type AxisPlacement any

// AxisPlacementConverter resolves an axis placement into a 4x4 transform
// (via the caller's own matrix type; the core only needs the resulting
// r3 basis vectors exposed through Origin/Axis/RefDirection).
type AxisPlacementConverter interface {
	ConvertAxisPlacement(placement AxisPlacement) (origin, axis, refDirection r3.Vec, ok bool)
}

// CartesianPointRef and DirectionRef are opaque handles to IFC entities.
type CartesianPointRef any
type DirectionRef any

// CartesianPointConverter converts an IFC cartesian point to r3.Vec.
type CartesianPointConverter interface {
	ConvertCartesianPoint(pt CartesianPointRef) (r3.Vec, bool)
}

// DirectionConverter converts an IFC direction to a unit r3.Vec.
type DirectionConverter interface {
	ConvertDirection(dir DirectionRef) (r3.Vec, bool)
}

// CurveRef is an opaque handle to an IFC curve used as a sweep directrix.
type CurveRef any

// DirectrixCurve samples a directrix curve for disk-sweep solids.
type DirectrixCurve interface {
	Convert(curve CurveRef) bool
	EstimateSampleCount(curve CurveRef, radius float64) int
	SampleDiscrete(curve CurveRef, n int) []r3.Vec
}

// TriState models an IFC tri-state logical attribute (true/false/unknown).
type TriState interface {
	IsTrue() bool
}

// EntityRef is an opaque handle to any resolved IFC entity.
type EntityRef any

// EntityResolver exposes typed views over the IFC entities
// ProcessGeometricItem and ProcessBoolean dispatch on. Each accessor
// mirrors the source's ToPtr<T>()/ResolveSelectPtr<T>() pattern as a
// (value, ok) pair instead of a nullable pointer.
type EntityResolver interface {
	AsHalfSpaceSolid(e EntityRef) (HalfSpaceSolid, bool)
	AsPlane(e EntityRef) (Plane, bool)
	AsExtrudedAreaSolid(e EntityRef) (ExtrudedAreaSolid, bool)
	AsRevolvedAreaSolid(e EntityRef) (RevolvedAreaSolid, bool)
	AsSweptDiskSolid(e EntityRef) (SweptDiskSolid, bool)
	AsConnectedFaceSet(e EntityRef) (ConnectedFaceSet, bool)
	AsBooleanResult(e EntityRef) (BooleanResult, bool)
}

// HalfSpaceSolid is a half-space solid: the infinite region on one side
// of BasePlane, optionally flipped.
type HalfSpaceSolid struct {
	BasePlane     Plane
	AgreementFlag bool
}

// Plane is a planar surface given by a point and a unit normal.
type Plane struct {
	Position r3.Vec
	Normal   r3.Vec
}

// ExtrudedAreaSolid is a linear-extrusion swept area solid.
type ExtrudedAreaSolid struct {
	Profile        ProfileRef
	Position       AxisPlacement
	ExtrudedDirection r3.Vec
	Depth          float64
}

// RevolvedAreaSolid is a revolution swept area solid.
type RevolvedAreaSolid struct {
	Profile  ProfileRef
	Position AxisPlacement
	Axis     r3.Vec
	Angle    float64 // radians
}

// SweptDiskSolid is a circular profile swept along a directrix curve.
type SweptDiskSolid struct {
	Directrix CurveRef
	Radius    float64
	InnerRadius float64
	HasInner  bool
}

// ConnectedFaceSet is a set of bounded faces, each an outer polyloop plus
// zero or more inner (hole) polyloops, in entity-reference form.
type ConnectedFaceSet struct {
	Faces []FaceBound
}

// FaceBound is one face of a ConnectedFaceSet: an outer loop and its
// holes, each a plain point loop already resolved by the caller.
type FaceBound struct {
	Outer []r3.Vec
	Inner [][]r3.Vec
}

// BooleanResult is a CSG difference node; only DIFFERENCE is supported.
type BooleanResult struct {
	Operator  string
	FirstOperand, SecondOperand EntityRef
}
