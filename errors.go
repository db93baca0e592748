package ifcgeom

import "errors"

// Sentinel errors for the taxonomy in the error-handling design: most
// entity-dispatch paths report these and the caller just logs and moves
// on to the next face or element.
var (
	// ErrDegenerateInput covers empty polygons, 0/1-vertex polyloops,
	// sub-epsilon areas and planes a normal could not be derived for.
	ErrDegenerateInput = errors.New("ifcgeom: degenerate input")

	// ErrTopologyFailure covers merged-opening contours that split into
	// multiple pieces and contour reconstruction that cannot close.
	ErrTopologyFailure = errors.New("ifcgeom: topology failure")

	// ErrUnsupportedVariant covers unknown IFC entity subtypes and
	// unsupported boolean operators.
	ErrUnsupportedVariant = errors.New("ifcgeom: unsupported variant")
)
