package boolean

import "math"

// vnode is a vertex in one of the two circular doubly-linked polygon lists
// the clipper builds while tracing. Intersection vertices come in pairs,
// one spliced into each polygon's list, cross-linked via neighbor.
type vnode struct {
	p              Point
	next, prev     *vnode
	isect, entry   bool
	visited        bool
	neighbor       *vnode
}

func buildRing(loop []Point) []*vnode {
	n := len(loop)
	nodes := make([]*vnode, n)
	for i, p := range loop {
		nodes[i] = &vnode{p: p}
	}
	for i := range nodes {
		nodes[i].next = nodes[(i+1)%n]
		nodes[i].prev = nodes[(i-1+n)%n]
	}
	return nodes
}

func insertAfter(cursor, node *vnode) {
	node.next = cursor.next
	node.prev = cursor
	cursor.next.prev = node
	cursor.next = node
}

type edgeHit struct {
	alpha float64
	node  *vnode
}

type hitGroup struct {
	hits []edgeHit
}

// segmentIntersect finds the parametric intersection of segments a1-a2 and
// b1-b2, reporting ok=false for parallel or non-crossing segments.
func segmentIntersect(a1, a2, b1, b2 Point) (t, u float64, ok bool) {
	d1x, d1y := float64(a2.X-a1.X), float64(a2.Y-a1.Y)
	d2x, d2y := float64(b2.X-b1.X), float64(b2.Y-b1.Y)
	denom := d1x*d2y - d1y*d2x
	if math.Abs(denom) < 1e-9 {
		return 0, 0, false
	}
	ex, ey := float64(b1.X-a1.X), float64(b1.Y-a1.Y)
	t = (ex*d2y - ey*d2x) / denom
	u = (ex*d1y - ey*d1x) / denom
	if t <= 0 || t >= 1 || u <= 0 || u >= 1 {
		return 0, 0, false
	}
	return t, u, true
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{
		X: a.X + int64(float64(b.X-a.X)*t),
		Y: a.Y + int64(float64(b.Y-a.Y)*t),
	}
}

// isInside reports whether p lies within loop using the standard even-odd
// ray-casting test.
func isInside(p Point, loop []Point) bool {
	inside := false
	n := len(loop)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := loop[j], loop[i]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xIntersect := float64(a.X) + float64(p.Y-a.Y)/float64(b.Y-a.Y)*float64(b.X-a.X)
			if float64(p.X) < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

// clipResult is the outcome of a single two-polygon Greiner-Hormann pass:
// either a list of traced contours, or a trivial (non-intersecting)
// containment relation the caller resolves without tracing.
type clipResult struct {
	contours    [][]Point
	noIsect     bool
	aInsideB    bool
	bInsideA    bool
}

// clip runs the core Greiner-Hormann trace between subject and clip,
// assuming both are already CCW. invertEntry selects the union tracing
// rule (forward-on-exit) instead of the default intersection rule
// (forward-on-entry); reversing clip's winding before calling this
// function turns it into the difference rule.
func clip(subject, clipPoly []Point, invertEntry bool) clipResult {
	aNodes := buildRing(subject)
	bNodes := buildRing(clipPoly)

	aHits := make([]hitGroup, len(aNodes))
	bHits := make([]hitGroup, len(bNodes))

	any := false
	for i := range aNodes {
		a1, a2 := subject[i], subject[(i+1)%len(subject)]
		for j := range bNodes {
			b1, b2 := clipPoly[j], clipPoly[(j+1)%len(clipPoly)]
			t, u, ok := segmentIntersect(a1, a2, b1, b2)
			if !ok {
				continue
			}
			any = true
			ip := lerpPoint(a1, a2, t)
			na := &vnode{p: ip, isect: true}
			nb := &vnode{p: ip, isect: true}
			na.neighbor = nb
			nb.neighbor = na
			aHits[i].hits = append(aHits[i].hits, edgeHit{t, na})
			bHits[j].hits = append(bHits[j].hits, edgeHit{u, nb})
		}
	}

	if !any {
		return clipResult{
			noIsect:  true,
			aInsideB: isInside(subject[0], clipPoly),
			bInsideA: isInside(clipPoly[0], subject),
		}
	}

	spliceHits(aNodes, aHits)
	spliceHits(bNodes, bHits)

	markEntryExit(aNodes[0], clipPoly)
	markEntryExit(bNodes[0], subject)

	if invertEntry {
		for _, first := range []*vnode{aNodes[0], bNodes[0]} {
			for n := first; ; n = n.next {
				if n.isect {
					n.entry = !n.entry
				}
				if n.next == first {
					break
				}
			}
		}
	}

	var contours [][]Point
	for start := findUnvisitedIsect(aNodes[0]); start != nil; start = findUnvisitedIsect(aNodes[0]) {
		var loop []Point
		current := start
		for {
			current.visited = true
			current.neighbor.visited = true
			loop = append(loop, current.p)
			if current.entry {
				for {
					current = current.next
					loop = append(loop, current.p)
					if current.isect {
						break
					}
				}
			} else {
				for {
					current = current.prev
					loop = append(loop, current.p)
					if current.isect {
						break
					}
				}
			}
			current = current.neighbor
			if current == start {
				break
			}
		}
		if !start.entry {
			// A loop whose first step ran backward along its polygon comes
			// out clockwise; flip it so classify sees CCW outers and CW holes.
			loop = reversed(loop)
		}
		contours = append(contours, loop)
	}
	return clipResult{contours: contours}
}

// spliceHits inserts, per original edge, the intersections found on that
// edge (sorted by parametric position) into the circular vertex list.
func spliceHits(nodes []*vnode, hits []hitGroup) {
	n := len(nodes)
	for i := 0; i < n; i++ {
		h := hits[i].hits
		if len(h) == 0 {
			continue
		}
		sortHits(h)
		cursor := nodes[i]
		for _, e := range h {
			insertAfter(cursor, e.node)
			cursor = e.node
		}
	}
}

func sortHits(h []edgeHit) {
	for i := 1; i < len(h); i++ {
		for j := i; j > 0 && h[j].alpha < h[j-1].alpha; j-- {
			h[j], h[j-1] = h[j-1], h[j]
		}
	}
}

func markEntryExit(start *vnode, otherLoop []Point) {
	status := !isInside(start.p, otherLoop)
	for n := start; ; n = n.next {
		if n.isect {
			n.entry = status
			status = !status
		}
		if n.next == start {
			break
		}
	}
}

func findUnvisitedIsect(start *vnode) *vnode {
	for n := start; ; n = n.next {
		if n.isect && !n.visited {
			return n
		}
		if n.next == start {
			return nil
		}
	}
}
