package geom3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxDiagSquaredMatchesEuclideanDiagonal(t *testing.T) {
	box := NewBox(r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 3, Y: 4, Z: 0})
	if got := box.DiagSquared(); got != 25 {
		t.Fatalf("want 3-4-5 triangle diagonal squared to 25, got %v", got)
	}
}

func TestBoxContainsInclusiveBounds(t *testing.T) {
	box := NewBox(r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 1, Z: 1})
	if !box.Contains(r3.Vec{X: 0, Y: 0, Z: 0}) || !box.Contains(r3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Fatal("want the box boundary itself contained")
	}
	if box.Contains(r3.Vec{X: 1.1, Y: 0, Z: 0}) {
		t.Fatal("want points outside the box rejected")
	}
}

func TestBoxUnionEnclosesBoth(t *testing.T) {
	a := NewBox(r3.Vec{X: 0, Y: 0, Z: 0}, r3.Vec{X: 1, Y: 1, Z: 1})
	b := NewBox(r3.Vec{X: 2, Y: 2, Z: 2}, r3.Vec{X: 3, Y: 3, Z: 3})
	u := a.Union(b)
	if u.Min != (r3.Vec{}) || u.Max != (r3.Vec{X: 3, Y: 3, Z: 3}) {
		t.Fatalf("want the union to span both boxes' extremes, got %+v", u)
	}
}

func TestNewellNormalOfPlanarSquare(t *testing.T) {
	loop := []r3.Vec{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}}
	var acc r3.Vec
	n := len(loop)
	for i := 0; i < n; i++ {
		acc = Newell(acc, loop[i], loop[(i+1)%n])
	}
	if acc.Z <= 0 {
		t.Fatalf("want a CCW XY-plane square to produce a +Z normal, got %v", acc)
	}
	if acc.X != 0 || acc.Y != 0 {
		t.Fatalf("want no in-plane normal components, got %v", acc)
	}
}

func TestEqualWithin(t *testing.T) {
	a := r3.Vec{X: 1, Y: 1, Z: 1}
	b := r3.Vec{X: 1.0000001, Y: 1, Z: 1}
	if !EqualWithin(a, b, 1e-5) {
		t.Fatal("want nearly-equal vectors to compare equal within tolerance")
	}
	if EqualWithin(a, b, 1e-9) {
		t.Fatal("want a tighter tolerance to reject the same pair")
	}
}
