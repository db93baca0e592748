package ifcgeom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestExtrudeAreaUnitCubeWallNoOpenings(t *testing.T) {
	profile := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 1},
	}
	mesh := ExtrudeArea(r3.Vec{X: 0, Y: 1, Z: 0}, 1, profile, true, nil, false, testConv())
	// 4 sides + 2 caps.
	if mesh.FaceCount() != 6 {
		t.Fatalf("want 6 faces for a capped unit cube wall, got %d", mesh.FaceCount())
	}
}

func TestExtrudeAreaWithOneWindowKeepsFaces(t *testing.T) {
	profile := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	opening := boxOpening(0.2, 0.2, 0.8, 0.8)
	mesh := ExtrudeArea(r3.Vec{X: 0, Y: 0, Z: 1}, 1, profile, false, []*TempOpening{opening}, false, testConv())
	if mesh.FaceCount() == 0 {
		t.Fatal("want at least one face after opening resolution")
	}
}

func TestRevolveAreaFullRevolutionProducesRingOfQuads(t *testing.T) {
	profile := []r3.Vec{
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 1},
	}
	mesh := RevolveArea(r3.Vec{}, r3.Vec{X: 0, Y: 0, Z: 1}, 2*math.Pi, profile, nil, false, testConv())
	const wantSegments = 64 // ceil(16 * 2*pi / (pi/2))
	if mesh.FaceCount() != wantSegments {
		t.Fatalf("want %d ring quads for a full revolution, got %d", wantSegments, mesh.FaceCount())
	}
	first := mesh.Face(0)
	last := mesh.Face(mesh.FaceCount() - 1)
	// the ring closes: the last quad's trailing edge should coincide with
	// the first quad's leading edge, within floating-point rotation error.
	if r3.Norm(r3.Sub(first[0], last[3])) > 1e-9 {
		t.Errorf("want the revolved ring to close on itself, got gap %v", r3.Sub(first[0], last[3]))
	}
}

func TestRevolveAreaDegenerateAngleReturnsOriginalProfile(t *testing.T) {
	profile := []r3.Vec{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}}
	mesh := RevolveArea(r3.Vec{}, r3.Vec{X: 0, Y: 0, Z: 1}, 1e-6, profile, nil, false, testConv())
	if mesh.FaceCount() != 1 {
		t.Fatalf("want the original profile passed through untouched, got %d faces", mesh.FaceCount())
	}
}

func TestSweepDiskProducesRingsAlongDirectrix(t *testing.T) {
	directrix := []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 2},
	}
	mesh := SweepDisk(0.1, directrix, nil, false, testConv())
	if mesh.FaceCount() != 2*diskSweepRingPoints {
		t.Fatalf("want %d quads bridging 3 rings, got %d", 2*diskSweepRingPoints, mesh.FaceCount())
	}
}

func TestSweepDiskDegenerateInputsYieldEmptyMesh(t *testing.T) {
	mesh := SweepDisk(0, []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1}}, nil, false, testConv())
	if !mesh.IsEmpty() {
		t.Fatalf("want a zero-radius sweep to produce nothing, got %d faces", mesh.FaceCount())
	}
	mesh = SweepDisk(0.1, []r3.Vec{{X: 0, Y: 0, Z: 0}}, nil, false, testConv())
	if !mesh.IsEmpty() {
		t.Fatalf("want a single-point directrix to produce nothing, got %d faces", mesh.FaceCount())
	}
}
