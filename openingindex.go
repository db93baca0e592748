package ifcgeom

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/rodrigob/assimp/internal/geom2"
)

// openingIndexRtreeEps is the minimum rect side rtreego.NewRect accepts;
// boxes thinner than this (degenerate slivers) are padded up to it so the
// insert never errors out on a zero-area box.
const openingIndexRtreeEps = 1e-9

// openingIndexEntry adapts a contour slot's bounding box to rtreego.Spatial
// so mergeOpening's overlap query (step 5) runs against an R-tree instead
// of a linear scan over contours.
type openingIndexEntry struct {
	slot int
	bb   geom2.Box
}

func (e openingIndexEntry) Bounds() *rtreego.Rect {
	return boxToRect(e.bb)
}

// boxToRect converts a geom2.Box to an rtreego.Rect, padding degenerate
// sides up to openingIndexRtreeEps since rtreego.NewRect rejects
// non-positive side lengths.
func boxToRect(b geom2.Box) *rtreego.Rect {
	size := b.Size()
	w, h := size.X, size.Y
	if w < openingIndexRtreeEps {
		w = openingIndexRtreeEps
	}
	if h < openingIndexRtreeEps {
		h = openingIndexRtreeEps
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y}, []float64{w, h})
	if err != nil {
		// Only reachable if w or h ended up non-positive, which the
		// padding above rules out.
		panic(err)
	}
	return rect
}

// buildOpeningIndex indexes every valid contour slot's box except
// excludeSlot (the in-progress merge host, re-tested directly by the
// caller rather than against itself).
func buildOpeningIndex(contours []ProjectedWindowContour, excludeSlot int) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 4, 16)
	for i, c := range contours {
		if i == excludeSlot || !c.Valid {
			continue
		}
		tree.Insert(openingIndexEntry{slot: i, bb: c.BB})
	}
	return tree
}

// queryOpeningIndex returns the slot indices of every indexed contour whose
// box intersects bb, ascending, so the merge loop visits candidates in the
// same deterministic order a linear scan would.
func queryOpeningIndex(tree *rtreego.Rtree, bb geom2.Box) []int {
	hits := tree.SearchIntersect(boxToRect(bb))
	candidates := make([]int, 0, len(hits))
	for _, h := range hits {
		candidates = append(candidates, h.(openingIndexEntry).slot)
	}
	sort.Ints(candidates)
	return candidates
}
