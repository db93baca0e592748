package quadrify

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/rodrigob/assimp/internal/geom2"
)

func TestQuadrifyNoOpenings(t *testing.T) {
	region := geom2.NewBox(r2.Vec{}, geom2.One)
	quads := Quadrify(region, nil)
	if len(quads) != 1 {
		t.Fatalf("want 1 quad for an empty region, got %d", len(quads))
	}
}

func TestQuadrifyOneCenteredHole(t *testing.T) {
	region := geom2.NewBox(r2.Vec{}, geom2.One)
	hole := geom2.NewBox(r2.Vec{X: 0.2, Y: 0.2}, r2.Vec{X: 0.8, Y: 0.8})
	quads := Quadrify(region, []geom2.Box{hole})
	if len(quads) != 8 {
		t.Fatalf("want 8 border quads around a centered hole, got %d", len(quads))
	}
	for _, q := range quads {
		for _, v := range q {
			if hole.Min.X+1e-9 < v.X && v.X < hole.Max.X-1e-9 &&
				hole.Min.Y+1e-9 < v.Y && v.Y < hole.Max.Y-1e-9 {
				t.Fatalf("quad vertex %v falls strictly inside the hole", v)
			}
		}
	}
}

func TestQuadrifyTwoDisjointHoles(t *testing.T) {
	region := geom2.NewBox(r2.Vec{}, geom2.One)
	a := geom2.NewBox(r2.Vec{X: 0.1, Y: 0.1}, r2.Vec{X: 0.3, Y: 0.3})
	b := geom2.NewBox(r2.Vec{X: 0.6, Y: 0.6}, r2.Vec{X: 0.9, Y: 0.9})
	quads := Quadrify(region, []geom2.Box{a, b})
	if len(quads) == 0 {
		t.Fatal("expected at least one quad")
	}
}
