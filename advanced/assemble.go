package advanced

// The functions in this file build a Polygon from the different ways callers
// address their rings. They always copy the points, so the caller's buffers
// can be reused once they return.

func copyRing(points []Point) Ring {
	ring := make(Ring, len(points))
	copy(ring, points)
	return ring
}

// A polygon with a single ring and no holes.
func SingleRing(points []Point) Polygon {
	if len(points) == 0 {
		return Polygon{}
	}
	return Polygon{Rings: []Ring{copyRing(points)}}
}

// A polygon with the given outer ring and holes, in order. Holes with fewer
// than three points are kept so that indices line up with the caller's
// concatenation of the rings, but they contribute no triangles.
func WithHoles(outer []Point, holes ...[]Point) Polygon {
	poly := SingleRing(outer)
	if poly.IsEmpty() {
		return poly
	}
	for _, hole := range holes {
		poly.Rings = append(poly.Rings, copyRing(hole))
	}
	return poly
}

// One ring per range over a shared point buffer. Ranges are clamped to the
// buffer, and ranges with fewer than three points after clamping are skipped.
// The first surviving range is the outer ring.
func FromRanges(points []Point, ranges []IndexRange) Polygon {
	if len(points) < 3 {
		return Polygon{}
	}

	last := len(points) - 1
	var poly Polygon
	for _, r := range ranges {
		r = r.Clamp(last)
		if r.Len() < 3 {
			continue
		}
		poly.Rings = append(poly.Rings, copyRing(points[r.Start:r.End+1]))
	}
	return poly
}

// Convert cut offsets into ranges over a buffer of pointCount points. Each
// offset ends the current ring (exclusive) and starts the next one, unless the
// ring would be empty. Whatever follows the last cut forms the final ring.
// Without offsets, the whole buffer is one ring.
func RangesFromOffsets(pointCount int, offsets []int) []IndexRange {
	if pointCount < 3 {
		return nil
	}

	last := pointCount - 1
	if len(offsets) == 0 {
		return []IndexRange{{Start: 0, End: last}}
	}

	var ranges []IndexRange
	start, end := 0, 0
	for _, offset := range offsets {
		end = offset - 1
		if end > start {
			ranges = append(ranges, IndexRange{Start: start, End: end})
			start = offset
		}
	}

	// The trailing ring starts right after the last cut, even if that cut did
	// not produce a ring of its own
	if end+1 < last {
		ranges = append(ranges, IndexRange{Start: end + 1, End: last})
	}
	return ranges
}

// Split a point buffer into rings at the given offsets. See RangesFromOffsets.
func FromOffsets(points []Point, offsets []int) Polygon {
	if len(offsets) == 0 {
		return SingleRing(points)
	}
	return FromRanges(points, RangesFromOffsets(len(points), offsets))
}

// Build a polygon from groups in a pool. Returns false if the descriptor refers
// to a group outside the pool.
func FromGroups(pool [][]Point, descriptor GroupDescriptor) (Polygon, bool) {
	if !descriptor.Valid(len(pool)) {
		return Polygon{}, false
	}

	holes := make([][]Point, len(descriptor.Inners))
	for i, inner := range descriptor.Inners {
		holes[i] = pool[inner]
	}
	return WithHoles(pool[descriptor.Outer], holes...), true
}
