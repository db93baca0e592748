package geom2

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestBoxOverlappingTouchingEdgesAreNotOverlapping(t *testing.T) {
	a := NewBox(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1})
	b := NewBox(r2.Vec{X: 1, Y: 0}, r2.Vec{X: 2, Y: 1})
	if a.Overlapping(b) {
		t.Fatal("want boxes that only touch along an edge to not count as overlapping")
	}
	if !a.Adjacent(b) {
		t.Fatal("want boxes sharing a border segment to count as adjacent")
	}
}

func TestBoxOverlappingTrueOverlap(t *testing.T) {
	a := NewBox(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1})
	b := NewBox(r2.Vec{X: 0.5, Y: 0.5}, r2.Vec{X: 1.5, Y: 1.5})
	if !a.Overlapping(b) {
		t.Fatal("want a real overlap reported as overlapping")
	}
}

func TestBoxAreaAndDegenerate(t *testing.T) {
	box := NewBox(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1e-6, Y: 1e-6})
	if !box.Degenerate() {
		t.Fatal("want a sub-1e-5-area box to be degenerate")
	}
	full := NewBox(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1})
	if full.Degenerate() || full.Area() != 1 {
		t.Fatalf("want a unit square with area 1, got %v", full.Area())
	}
}

func TestClamp01ClampsOvershoot(t *testing.T) {
	got := Clamp01(r2.Vec{X: -0.1, Y: 1.2})
	if got.X != 0 || got.Y != 1 {
		t.Fatalf("want overshoot clamped into [0,1]^2, got %v", got)
	}
}

func TestConvexHullOfSquareWithInteriorPoint(t *testing.T) {
	pts := []r2.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0.5, Y: 0.5},
	}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("want the interior point excluded from the hull, got %d vertices", len(hull))
	}
}

func TestConvexHullOfFewerThanThreePoints(t *testing.T) {
	hull := ConvexHull([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if len(hull) != 2 {
		t.Fatalf("want a degenerate input passed through, got %d points", len(hull))
	}
}

func TestConvexHullDedupesCoincidentPoints(t *testing.T) {
	pts := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("want duplicate vertices collapsed, got %d hull vertices", len(hull))
	}
}
