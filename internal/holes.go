package internal

import (
	"math"
	"slices"
)

// Merge every hole into the outer loop with a bridge, leaving a single loop
// that can be ear clipped. Holes are processed from left to right by their
// leftmost vertex, so a hole is always bridged to something already merged
// (the outer boundary or a hole to its left).
//
// Holes with fewer than three points are skipped, but their points still count
// toward the index offsets of later holes.
func (r *ring) eliminateHoles(rings [][]Point, outer int) int {
	queue := make([]int, 0, len(rings)-1)
	offset := len(rings[0])
	for _, hole := range rings[1:] {
		if len(hole) >= 3 {
			list := r.linkedList(hole, offset, false)
			queue = append(queue, r.leftmost(list))
		}
		offset += len(hole)
	}

	slices.SortStableFunc(queue, func(a, b int) int {
		return sign(r.compareXYSlope(a, b))
	})

	for _, hole := range queue {
		outer = r.eliminateHole(hole, outer)
	}
	return outer
}

// Order holes by the x of their leftmost vertex, then y. When two holes share
// their leftmost point, order them by the slope of the outgoing edge so that
// the bridge found for the second one is the shared point.
func (r *ring) compareXYSlope(a, b int) float64 {
	va, vb := r.v[a], r.v[b]
	result := va.x - vb.x
	if result == 0 {
		result = va.y - vb.y
		if result == 0 {
			na, nb := r.v[va.next], r.v[vb.next]
			aSlope := (na.y - va.y) / (na.x - va.x)
			bSlope := (nb.y - vb.y) / (nb.x - vb.x)
			result = aSlope - bSlope
		}
	}
	return result
}

func (r *ring) eliminateHole(hole, outer int) int {
	bridge := r.findHoleBridge(hole, outer)
	if bridge == nilVertex {
		return outer
	}

	bridgeReverse := r.split(bridge, hole)

	// Filter collinear points around the cuts
	r.filterPoints(bridgeReverse, r.v[bridgeReverse].next)
	return r.filterPoints(bridge, r.v[bridge].next)
}

// Find a vertex of the outer loop that the hole's leftmost vertex can see.
//
// Cast a ray from the hole vertex to the left and find the closest edge it
// hits. The end of that edge with the smaller x is a candidate. If any reflex
// vertex of the outer loop lies inside the triangle formed by the hole vertex,
// the hit point and the candidate, it would block the view, so the blocking
// vertex with the smallest angle to the ray is used instead.
func (r *ring) findHoleBridge(hole, outer int) int {
	/*
		      m
		     /|
		    / |  <- test triangle
		   /  |
		  q---h   (q is where the ray from h hits the outer loop)
	*/
	hx, hy := r.v[hole].x, r.v[hole].y
	qx := math.Inf(-1)
	m := nilVertex

	p := outer
	if r.equals(hole, p) {
		return p
	}
	for {
		n := r.v[p].next
		if r.equals(hole, n) {
			return n
		}

		v, nv := r.v[p], r.v[n]
		if hy <= v.y && hy >= nv.y && nv.y != v.y {
			x := v.x + (hy-v.y)*(nv.x-v.x)/(nv.y-v.y)
			if x <= hx && x > qx {
				qx = x
				if v.x < nv.x {
					m = p
				} else {
					m = n
				}
				if x == hx {
					// The hole touches the outer edge; connect at the edge's left end
					return m
				}
			}
		}

		p = n
		if p == outer {
			break
		}
	}

	if m == nilVertex {
		return nilVertex
	}

	stop := m
	mx, my := r.v[m].x, r.v[m].y
	tanMin := math.Inf(1)

	// The test triangle must be wound consistently for pointInTriangle
	ax, cx := qx, hx
	if hy < my {
		ax, cx = hx, qx
	}

	p = m
	for {
		v := r.v[p]
		if hx >= v.x && v.x >= mx && hx != v.x &&
			pointInTriangle(ax, hy, mx, my, cx, hy, v.x, v.y) {

			tan := math.Abs(hy-v.y) / (hx - v.x)
			if r.locallyInside(p, hole) &&
				(tan < tanMin || (tan == tanMin && (v.x > r.v[m].x || (v.x == r.v[m].x && r.sectorContainsSector(m, p))))) {
				m = p
				tanMin = tan
			}
		}

		p = v.next
		if p == stop {
			break
		}
	}
	return m
}
