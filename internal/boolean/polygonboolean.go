package boolean

// Intersection returns the region common to subject and clip.
func Intersection(subject, clip []Point) ([]ExPolygon, error) {
	if len(subject) < 3 || len(clip) < 3 {
		return nil, nil
	}
	a := Normalize(subject, CCW)
	b := Normalize(clip, CCW)
	res := clipTwo(a, b, false)
	if res.noIsect {
		switch {
		case res.aInsideB:
			return []ExPolygon{{Outer: a}}, nil
		case res.bInsideA:
			return []ExPolygon{{Outer: b}}, nil
		default:
			return nil, nil
		}
	}
	return classify(res.contours), nil
}

// Union returns the merged region of subject and clip.
func Union(subject, clip []Point) ([]ExPolygon, error) {
	if len(subject) < 3 {
		return UnionAll([][]Point{clip}), nil
	}
	if len(clip) < 3 {
		return UnionAll([][]Point{subject}), nil
	}
	a := Normalize(subject, CCW)
	b := Normalize(clip, CCW)
	res := clipTwo(a, b, true)
	if res.noIsect {
		switch {
		case res.aInsideB:
			return []ExPolygon{{Outer: b}}, nil
		case res.bInsideA:
			return []ExPolygon{{Outer: a}}, nil
		default:
			return []ExPolygon{{Outer: a}, {Outer: b}}, nil
		}
	}
	return classify(res.contours), nil
}

// Difference returns subject with clip subtracted from it.
func Difference(subject, clip []Point) ([]ExPolygon, error) {
	if len(subject) < 3 {
		return nil, nil
	}
	if len(clip) < 3 {
		return []ExPolygon{{Outer: Normalize(subject, CCW)}}, nil
	}
	a := Normalize(subject, CCW)
	b := Normalize(reversed(Normalize(clip, CCW)), CCW)
	res := clipTwo(a, b, false)
	if res.noIsect {
		switch {
		case res.bInsideA:
			return []ExPolygon{{Outer: a, Holes: [][]Point{Normalize(clip, CW)}}}, nil
		case res.aInsideB:
			return nil, nil
		default:
			return []ExPolygon{{Outer: a}}, nil
		}
	}
	return classify(res.contours), nil
}

// clipTwo is clip but with b's reported containment flags expressed in
// terms of the caller's original (pre-reversal) polygons; Difference
// reverses clip's winding before calling this, so bInsideA there means
// "clip (as originally wound) lies inside subject".
func clipTwo(a, b []Point, invertEntry bool) clipResult {
	return clip(a, b, invertEntry)
}

// UnionAll folds a set of simple polygons into outer/hole groups,
// iteratively merging any pair whose union collapses to a single contour.
// Used both for n-ary opening-hole unions and for the "union with itself"
// self-cleanup pass.
func UnionAll(polys [][]Point) []ExPolygon {
	var result []ExPolygon
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		merged := ExPolygon{Outer: Normalize(p, CCW)}
		var next []ExPolygon
		for _, ex := range result {
			eps, err := Union(merged.Outer, ex.Outer)
			if err == nil && len(eps) == 1 {
				merged = ExPolygon{Outer: eps[0].Outer, Holes: append(ex.Holes, merged.Holes...)}
				continue
			}
			next = append(next, ex)
		}
		next = append(next, merged)
		result = next
	}
	return result
}

// classify groups raw traced contours into outer/hole ExPolygons by
// winding direction (CCW outers, CW holes, the orientation the tracer
// naturally produces when both inputs were CCW) and containment.
func classify(loops [][]Point) []ExPolygon {
	var outers []ExPolygon
	var holes [][]Point
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		if OrientationOf(loop) == CCW {
			outers = append(outers, ExPolygon{Outer: loop})
		} else {
			holes = append(holes, loop)
		}
	}
	if len(outers) == 0 {
		return nil
	}
	for _, h := range holes {
		best := -1
		var bestArea int64 = -1
		for i, o := range outers {
			if !isInside(h[0], o.Outer) {
				continue
			}
			area := SignedArea(o.Outer)
			if area < 0 {
				area = -area
			}
			if best == -1 || area < bestArea {
				best = i
				bestArea = area
			}
		}
		if best == -1 {
			best = 0
		}
		outers[best].Holes = append(outers[best].Holes, h)
	}
	return outers
}
