package cdt

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func square(x0, y0, x1, y1 float64) []r2.Vec {
	return []r2.Vec{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestTriangulateSquare(t *testing.T) {
	_, tris, err := Triangulate(square(0, 0, 1, 1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("want 2 triangles for a convex quad, got %d", len(tris))
	}
}

func TestTriangulateWithHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := []r2.Vec{{X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}, {X: 4, Y: 4}}
	pts, tris, err := Triangulate(outer, [][]r2.Vec{hole})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tris) == 0 {
		t.Fatal("expected at least one triangle")
	}
	// the bridge repeats both its outer and its hole endpoint.
	if len(pts) != len(outer)+len(hole)+2 {
		t.Fatalf("want %d bridged vertices, got %d", len(outer)+len(hole)+2, len(pts))
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	if _, _, err := Triangulate([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil); err == nil {
		t.Fatal("want an error for a 2-vertex outer contour")
	}
}
