// Package ifcgeom turns IFC's implicit solid descriptions — swept
// profiles, surfaces of revolution, disk sweeps, half-space clippings and
// boolean differences — into explicit polygon meshes, with particular
// attention to cutting window and door openings into extruded wall
// surfaces.
package ifcgeom
