// Package quadrify subdivides the unit square into axis-aligned quads
// around a set of pairwise-disjoint opening bounding boxes, the
// rectilinear-tiling approximation used before the true opening contours
// are stitched back in.
package quadrify

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/rodrigob/assimp/internal/geom2"
)

// Quad is one output quad, four consecutive corner vertices in winding
// order.
type Quad [4]r2.Vec

// Quadrify subdivides the box region against the given (pairwise disjoint)
// opening bounding boxes and returns the tiling quads.
func Quadrify(region geom2.Box, openings []geom2.Box) []Quad {
	var out []Quad
	quadrifyPart(region, openings, &out)
	return out
}

// quadrifyPart recurses: it finds the leftmost opening overlapping the
// current x-range, emits the strip to its left, then tiles the opening's
// own x-column (the bands above and below it), before recursing on the
// remaining x-range to the right of that opening. Every column shares the
// same set of row boundaries (every opening's Min.Y/Max.Y in range), so
// neighboring columns line up without a T-junction at the opening's edges.
func quadrifyPart(region geom2.Box, openings []geom2.Box, out *[]Quad) {
	if region.Size().X <= 0 || region.Size().Y <= 0 {
		return
	}
	within := inXRange(openings, region)
	if len(within) == 0 {
		tileColumn(region, openings, out)
		return
	}
	sort.Slice(within, func(i, j int) bool { return within[i].Min.X < within[j].Min.X })
	leftmost := within[0]

	if leftmost.Min.X > region.Min.X {
		strip := geom2.Box{Min: region.Min, Max: r2.Vec{X: leftmost.Min.X, Y: region.Max.Y}}
		tileColumn(strip, within, out)
	}

	column := geom2.Box{Min: r2.Vec{X: leftmost.Min.X, Y: region.Min.Y}, Max: r2.Vec{X: leftmost.Max.X, Y: region.Max.Y}}
	tileColumn(column, within, out)

	remaining := geom2.Box{Min: r2.Vec{X: leftmost.Max.X, Y: region.Min.Y}, Max: region.Max}
	quadrifyPart(remaining, openings, out)
}

// tileColumn emits the quads covering strip's x-range, split along y at
// every opening's row boundary that falls inside the strip's y-range,
// skipping the spans an opening occupies across strip's own x-range. Row
// boundaries are taken from every opening in openings regardless of
// whether that opening's x-range overlaps strip, so a strip left or right
// of an opening still breaks at the opening's rows and lines up with the
// opening's own column.
func tileColumn(strip geom2.Box, openings []geom2.Box, out *[]Quad) {
	var ys []float64
	ys = append(ys, strip.Min.Y, strip.Max.Y)
	for _, o := range openings {
		if o.Min.Y > strip.Min.Y && o.Min.Y < strip.Max.Y {
			ys = append(ys, o.Min.Y)
		}
		if o.Max.Y > strip.Min.Y && o.Max.Y < strip.Max.Y {
			ys = append(ys, o.Max.Y)
		}
	}
	sort.Float64s(ys)
	for i := 0; i+1 < len(ys); i++ {
		y0, y1 := ys[i], ys[i+1]
		if y1-y0 <= 1e-12 {
			continue
		}
		mid := (y0 + y1) / 2
		if coveredByOpening(openings, strip.Min.X, strip.Max.X, mid) {
			continue
		}
		emitQuad(geom2.Box{Min: r2.Vec{X: strip.Min.X, Y: y0}, Max: r2.Vec{X: strip.Max.X, Y: y1}}, out)
	}
}

func coveredByOpening(openings []geom2.Box, x0, x1, y float64) bool {
	for _, o := range openings {
		if o.Min.X <= x0+1e-12 && o.Max.X >= x1-1e-12 && o.Min.Y <= y && o.Max.Y >= y {
			return true
		}
	}
	return false
}

func inXRange(openings []geom2.Box, region geom2.Box) []geom2.Box {
	var out []geom2.Box
	for _, o := range openings {
		if o.Min.X < region.Max.X && o.Max.X > region.Min.X {
			out = append(out, o)
		}
	}
	return out
}

func openingsPast(openings []geom2.Box, x float64) []geom2.Box {
	var out []geom2.Box
	for _, o := range openings {
		if o.Max.X > x {
			out = append(out, o)
		}
	}
	return out
}

func emitQuad(b geom2.Box, out *[]Quad) {
	if b.Size().X <= 1e-12 || b.Size().Y <= 1e-12 {
		return
	}
	*out = append(*out, Quad{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	})
}
