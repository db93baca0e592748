package ifcgeom

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func unitCube() *TempMesh {
	mesh := &TempMesh{}
	mesh.Append([]r3.Vec{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}})
	mesh.Append([]r3.Vec{{X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}})
	mesh.Append([]r3.Vec{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}})
	mesh.Append([]r3.Vec{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}})
	mesh.Append([]r3.Vec{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}})
	mesh.Append([]r3.Vec{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}})
	return mesh
}

func TestClipHalfSpaceRetainsOneSideAndCapsTheCut(t *testing.T) {
	mesh := unitCube()
	plane := Plane{Position: r3.Vec{}, Normal: r3.Vec{X: 1, Y: 0, Z: 0}}
	clipped := ClipHalfSpace(mesh, plane, true)
	var minX float64
	first := true
	clipped.Faces(func(loop []r3.Vec) {
		for _, v := range loop {
			if first || v.X < minX {
				minX = v.X
				first = false
			}
		}
	})
	if minX < -1e-9 {
		t.Fatalf("want every retained vertex at x >= 0, found x = %v", minX)
	}
	if clipped.FaceCount() == 0 {
		t.Fatal("want at least one face retained")
	}
	foundCap := false
	clipped.Faces(func(loop []r3.Vec) {
		if len(loop) != 4 {
			return
		}
		onPlane := true
		for _, v := range loop {
			if v.X > 1e-9 || v.X < -1e-9 {
				onPlane = false
				break
			}
		}
		if onPlane {
			foundCap = true
		}
	})
	if !foundCap {
		t.Fatal("want the cut to contribute one new quad face at x = 0")
	}
}

func TestClipHalfSpaceAgreementFlagFlipsSide(t *testing.T) {
	mesh := unitCube()
	plane := Plane{Position: r3.Vec{}, Normal: r3.Vec{X: 1, Y: 0, Z: 0}}
	positiveSide := ClipHalfSpace(mesh, plane, true)
	negativeSide := ClipHalfSpace(mesh, plane, false)
	if positiveSide.FaceCount() == 0 || negativeSide.FaceCount() == 0 {
		t.Fatal("want both halves of the cube to produce geometry")
	}
	var maxXNeg float64
	first := true
	negativeSide.Faces(func(loop []r3.Vec) {
		for _, v := range loop {
			if first || v.X > maxXNeg {
				maxXNeg = v.X
				first = false
			}
		}
	})
	if maxXNeg > 1e-9 {
		t.Fatalf("want every vertex on the flipped side at x <= 0, found x = %v", maxXNeg)
	}
}

func TestClipHalfSpaceOutsideBoxDropsEverything(t *testing.T) {
	mesh := unitCube()
	plane := Plane{Position: r3.Vec{X: 10, Y: 0, Z: 0}, Normal: r3.Vec{X: 1, Y: 0, Z: 0}}
	clipped := ClipHalfSpace(mesh, plane, true)
	if !clipped.IsEmpty() {
		t.Fatalf("want nothing retained past the cube's extent, got %d faces", clipped.FaceCount())
	}
}
