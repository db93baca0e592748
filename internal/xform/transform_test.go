package xform

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func vecClose(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestIdentityTransformIsNoOp(t *testing.T) {
	var identity Transform
	v := r3.Vec{X: 1, Y: 2, Z: 3}
	if !vecClose(identity.Apply(v), v, 1e-12) {
		t.Fatalf("want the zero-value Transform to act as identity, got %v", identity.Apply(v))
	}
}

func TestTranslationMovesPoint(t *testing.T) {
	tr := Translation(r3.Vec{X: 1, Y: 2, Z: 3})
	got := tr.Apply(r3.Vec{})
	if !vecClose(got, r3.Vec{X: 1, Y: 2, Z: 3}, 1e-12) {
		t.Fatalf("want the origin moved to the translation vector, got %v", got)
	}
}

func TestAxisAngleRotatesQuarterTurn(t *testing.T) {
	rot := AxisAngle(r3.Vec{X: 0, Y: 0, Z: 1}, math.Pi/2)
	got := rot.Apply(r3.Vec{X: 1, Y: 0, Z: 0})
	if !vecClose(got, r3.Vec{X: 0, Y: 1, Z: 0}, 1e-9) {
		t.Fatalf("want a quarter turn about Z to map +X to +Y, got %v", got)
	}
}

func TestMulComposesTransformsInOrder(t *testing.T) {
	rot := AxisAngle(r3.Vec{X: 0, Y: 0, Z: 1}, math.Pi/2)
	move := Translation(r3.Vec{X: 5, Y: 0, Z: 0})
	// rotate-then-translate: apply rotation first, then move.
	combined := move.Mul(rot)
	got := combined.Apply(r3.Vec{X: 1, Y: 0, Z: 0})
	want := r3.Vec{X: 5, Y: 1, Z: 0}
	if !vecClose(got, want, 1e-9) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestInvUndoesTransform(t *testing.T) {
	tr := Translation(r3.Vec{X: 1, Y: 2, Z: 3}).Mul(AxisAngle(r3.Vec{X: 0, Y: 1, Z: 0}, 0.7))
	inv := tr.Inv()
	v := r3.Vec{X: 4, Y: -1, Z: 2}
	round := inv.Apply(tr.Apply(v))
	if !vecClose(round, v, 1e-9) {
		t.Fatalf("want Inv to undo the original transform, want %v got %v", v, round)
	}
}

func TestInvOfSingularTransformReturnsIdentity(t *testing.T) {
	var singular Transform // all-zero rotation part, but Det is computed on d+1 diagonal
	singular = NewRowMajor([16]float64{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
	})
	inv := singular.Inv()
	if inv != (Transform{}) {
		t.Fatalf("want a singular transform's Inv to fall back to identity, got %+v", inv)
	}
}

func TestBasisRow2RecoversNormal(t *testing.T) {
	b := Basis(r3.Vec{X: 1, Y: 0, Z: 0}, r3.Vec{X: 0, Y: 1, Z: 0}, r3.Vec{X: 0, Y: 0, Z: 1})
	if !vecClose(b.Row2(), r3.Vec{X: 0, Y: 0, Z: 1}, 1e-12) {
		t.Fatalf("want Row2 to recover the basis normal, got %v", b.Row2())
	}
}

func TestAboutPointRotatesAroundArbitraryCenter(t *testing.T) {
	rot := AboutPoint(AxisAngle(r3.Vec{X: 0, Y: 0, Z: 1}, math.Pi), r3.Vec{X: 1, Y: 0, Z: 0})
	got := rot.Apply(r3.Vec{X: 2, Y: 0, Z: 0})
	want := r3.Vec{X: 0, Y: 0, Z: 0}
	if !vecClose(got, want, 1e-9) {
		t.Fatalf("want a half turn about (1,0,0) to map (2,0,0) to (0,0,0), got %v", got)
	}
}
