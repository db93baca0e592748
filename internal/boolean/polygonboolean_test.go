package boolean

import "testing"

func square(minX, minY, maxX, maxY int64) []Point {
	return []Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

func TestOrientationOfCCWAndCW(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	if OrientationOf(ccw) != CCW {
		t.Fatalf("want CCW for a standard axis-aligned loop")
	}
	cw := reversed(ccw)
	if OrientationOf(cw) != CW {
		t.Fatalf("want CW for the reversed loop")
	}
}

func TestIntersectionOfOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)
	res, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("want 1 resulting polygon, got %d", len(res))
	}
	area := SignedArea(res[0].Outer)
	if area < 0 {
		area = -area
	}
	// overlap is a 5x5 square, twice the signed area is 50.
	if area != 50 {
		t.Fatalf("want overlap area*2 == 50, got %d", area)
	}
}

func TestIntersectionOfDisjointSquaresIsEmpty(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 110, 110)
	res, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("want no intersection, got %d polygons", len(res))
	}
}

func TestUnionOfOverlappingSquaresIsOnePiece(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)
	res, err := Union(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("want 1 merged polygon, got %d", len(res))
	}
}

func TestUnionOfDisjointSquaresIsTwoPieces(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 110, 110)
	res, err := Union(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("want 2 disjoint polygons, got %d", len(res))
	}
}

func TestDifferenceCarvesAHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(3, 3, 6, 6)
	res, err := Difference(outer, inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("want 1 polygon with a hole, got %d", len(res))
	}
	if len(res[0].Holes) != 1 {
		t.Fatalf("want exactly one hole, got %d", len(res[0].Holes))
	}
}

func TestDifferenceWithNonOverlappingClipReturnsSubjectUnchanged(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 110, 110)
	res, err := Difference(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || len(res[0].Holes) != 0 {
		t.Fatalf("want subject returned untouched, got %+v", res)
	}
}

func TestNormalizeExPolygonConvention(t *testing.T) {
	ep := ExPolygon{
		Outer: reversed(square(0, 0, 10, 10)), // CW on entry
		Holes: [][]Point{square(3, 3, 6, 6)},  // CCW on entry
	}
	norm := NormalizeExPolygon(ep)
	if OrientationOf(norm.Outer) != CCW {
		t.Fatalf("want outer contour normalized to CCW")
	}
	if OrientationOf(norm.Holes[0]) != CW {
		t.Fatalf("want hole normalized to CW")
	}
}

func TestUnionAllMergesChainOfOverlaps(t *testing.T) {
	polys := [][]Point{
		square(0, 0, 10, 10),
		square(5, 5, 15, 15),
		square(100, 100, 110, 110),
	}
	result := UnionAll(polys)
	if len(result) != 2 {
		t.Fatalf("want the two overlapping squares merged and the disjoint one separate, got %d groups", len(result))
	}
}
