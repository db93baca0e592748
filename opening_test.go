package ifcgeom

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func testConv() *ConversionData {
	return &ConversionData{Settings: DefaultSettings(), Log: NopLogger{}}
}

func unitSquareWall() []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
}

func boxOpening(minX, minY, maxX, maxY float64) *TempOpening {
	var profile TempMesh
	profile.Append([]r3.Vec{
		{X: minX, Y: minY, Z: -1},
		{X: maxX, Y: minY, Z: -1},
		{X: maxX, Y: maxY, Z: -1},
		{X: minX, Y: maxY, Z: -1},
	})
	profile.Append([]r3.Vec{
		{X: minX, Y: minY, Z: 1},
		{X: maxX, Y: minY, Z: 1},
		{X: maxX, Y: maxY, Z: 1},
		{X: minX, Y: maxY, Z: 1},
	})
	return &TempOpening{ProfileMesh: profile}
}

// translatedWall is the same unit square wall, shifted along its own
// normal so its plane does not pass through the basis origin.
func translatedWall(offset float64) []r3.Vec {
	return []r3.Vec{
		{X: 0, Y: 0, Z: offset},
		{X: 1, Y: 0, Z: offset},
		{X: 1, Y: 1, Z: offset},
		{X: 0, Y: 1, Z: offset},
	}
}

func translatedBoxOpening(offset, minX, minY, maxX, maxY float64) *TempOpening {
	var profile TempMesh
	profile.Append([]r3.Vec{
		{X: minX, Y: minY, Z: offset - 1},
		{X: maxX, Y: minY, Z: offset - 1},
		{X: maxX, Y: maxY, Z: offset - 1},
		{X: minX, Y: maxY, Z: offset - 1},
	})
	profile.Append([]r3.Vec{
		{X: minX, Y: minY, Z: offset + 1},
		{X: maxX, Y: minY, Z: offset + 1},
		{X: maxX, Y: maxY, Z: offset + 1},
		{X: minX, Y: maxY, Z: offset + 1},
	})
	return &TempOpening{ProfileMesh: profile}
}

func TestGenerateOpeningsTranslatedWallStillResolvesOpenings(t *testing.T) {
	var face TempMesh
	const offset = 5.0
	face.Append(translatedWall(offset))
	openings := []*TempOpening{translatedBoxOpening(offset, 0.2, 0.2, 0.8, 0.8)}
	ok, err := GenerateOpenings(&face, openings, true, false, testConv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("want the opening resolved on a wall whose plane does not pass through the origin")
	}
	if face.FaceCount() != 8 {
		t.Fatalf("want 8 border quads around a centered window, got %d", face.FaceCount())
	}
}

func TestGenerateOpeningsNoOpeningsLeavesFaceUntouched(t *testing.T) {
	var face TempMesh
	face.Append(unitSquareWall())
	ok, err := GenerateOpenings(&face, nil, true, false, testConv())
	if ok || err != nil {
		t.Fatalf("want (false, nil) for zero openings, got (%v, %v)", ok, err)
	}
	if face.FaceCount() != 1 {
		t.Fatalf("want the face left untouched, got %d faces", face.FaceCount())
	}
}

func TestGenerateOpeningsOneSquareWindowProducesBorderQuads(t *testing.T) {
	var face TempMesh
	face.Append(unitSquareWall())
	openings := []*TempOpening{boxOpening(0.2, 0.2, 0.8, 0.8)}
	ok, err := GenerateOpenings(&face, openings, true, false, testConv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("want the opening resolved")
	}
	if face.FaceCount() != 8 {
		t.Fatalf("want 8 border quads around a centered window, got %d", face.FaceCount())
	}
}

func TestGenerateOpeningsOverlappingWindowsMerge(t *testing.T) {
	var face TempMesh
	face.Append(unitSquareWall())
	openings := []*TempOpening{
		boxOpening(0.1, 0.1, 0.5, 0.5),
		boxOpening(0.4, 0.4, 0.8, 0.8),
	}
	ok, err := GenerateOpenings(&face, openings, true, false, testConv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("want at least one opening resolved")
	}
	if face.FaceCount() == 0 {
		t.Fatal("want the merged opening to still produce border faces")
	}
}

func TestGenerateOpeningsDegenerateOpeningIsSkipped(t *testing.T) {
	var face TempMesh
	face.Append(unitSquareWall())
	// a sliver opening whose bounding-box area falls below MinFaceArea.
	tiny := boxOpening(0.5, 0.5, 0.5+1e-7, 0.5+1e-7)
	ok, err := GenerateOpenings(&face, []*TempOpening{tiny}, true, false, testConv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("want a degenerate opening to resolve to nothing")
	}
	if face.FaceCount() != 1 {
		t.Fatalf("want the original face left as-is, got %d faces", face.FaceCount())
	}
}

func TestGenerateOpeningsRejectsMultiFaceMesh(t *testing.T) {
	var face TempMesh
	face.Append(unitSquareWall())
	face.Append(unitSquareWall())
	_, err := GenerateOpenings(&face, nil, true, false, testConv())
	if err != ErrDegenerateInput {
		t.Fatalf("want ErrDegenerateInput for a multi-face mesh, got %v", err)
	}
}
