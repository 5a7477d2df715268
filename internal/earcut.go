package internal

import "io"

// Triangulate rings[0] minus the holes rings[1:] by ear clipping, and return
// the triangles as a flat list of indices into the concatenation of all rings.
//
// Triangles are counterclockwise when y points up. Input orientation does not
// matter: the outer ring and holes are relinked to the orientation the
// algorithm needs. Degenerate input never fails; it just produces fewer (or no)
// triangles.
//
// If trace is non-nil, the merged boundary is written to it after holes have
// been bridged.
func Triangulate(rings [][]Point, trace io.Writer) []int {
	if len(rings) == 0 || len(rings[0]) < 3 {
		return []int{}
	}

	total := 0
	for _, points := range rings {
		total += len(points)
	}

	// Each bridge duplicates two vertices; leave some room for splits too
	r := newRing(total + 4*len(rings))
	triangles := make([]int, 0, 3*(total+2*len(rings)))

	outer := r.linkedList(rings[0], 0, true)
	if outer == nilVertex || r.v[outer].next == r.v[outer].prev {
		return triangles
	}

	if len(rings) > 1 {
		outer = r.eliminateHoles(rings, outer)
	}

	var bounds zBounds
	if total > hashThreshold {
		bounds = boundsOf(rings[0])
	}

	if trace != nil {
		r.dump(trace, outer)
	}

	triangles = r.earcutLinked(outer, triangles, bounds, 0)

	if len(triangles)%3 != 0 {
		fatalf("triangle list has %d indices, not a multiple of 3", len(triangles))
	}
	for _, i := range triangles {
		if i < 0 || i >= total {
			fatalf("triangle index %d out of range for %d points", i, total)
		}
	}
	return triangles
}

// Main ear slicing loop. Each time the loop goes all the way around without
// finding an ear, the next pass tries harder:
//
//  0. plain ear clipping
//  1. filter out duplicate and collinear points, then retry
//  2. cure small local self-intersections, then retry
//  3. split the loop along a valid diagonal and triangulate both halves
func (r *ring) earcutLinked(ear int, triangles []int, bounds zBounds, pass int) []int {
	if ear == nilVertex {
		return triangles
	}

	if pass == 0 && bounds.valid() {
		r.indexCurve(ear, bounds)
	}

	stop := ear
	for r.v[ear].prev != r.v[ear].next {
		prev, next := r.v[ear].prev, r.v[ear].next

		var isEar bool
		if bounds.valid() {
			isEar = r.isEarHashed(ear, bounds)
		} else {
			isEar = r.isEar(ear)
		}

		if isEar {
			triangles = append(triangles, r.v[prev].i, r.v[ear].i, r.v[next].i)
			r.remove(ear)

			// Skipping the next vertex leads to fewer sliver triangles
			ear = r.v[next].next
			stop = ear
			continue
		}

		ear = next
		if ear != stop {
			continue
		}

		switch pass {
		case 0:
			return r.earcutLinked(r.filterPoints(ear, nilVertex), triangles, bounds, 1)
		case 1:
			var cured int
			cured, triangles = r.cureLocalIntersections(r.filterPoints(ear, nilVertex), triangles)
			return r.earcutLinked(cured, triangles, bounds, 2)
		default:
			return r.splitEarcut(ear, triangles, bounds)
		}
	}
	return triangles
}

// Is the vertex an ear? It must be convex, and no other reflex vertex of the
// loop may lie inside the triangle it forms with its neighbors.
func (r *ring) isEar(ear int) bool {
	a, b, c := r.v[ear].prev, ear, r.v[ear].next
	if r.area(a, b, c) >= 0 {
		return false // reflex
	}

	va, vb, vc := r.v[a], r.v[b], r.v[c]
	x0, y0 := min(va.x, vb.x, vc.x), min(va.y, vb.y, vc.y)
	x1, y1 := max(va.x, vb.x, vc.x), max(va.y, vb.y, vc.y)

	p := vc.next
	for p != a {
		v := r.v[p]
		if v.x >= x0 && v.x <= x1 && v.y >= y0 && v.y <= y1 &&
			pointInTriangleExceptFirst(va.x, va.y, vb.x, vb.y, vc.x, vc.y, v.x, v.y) &&
			r.area(v.prev, p, v.next) >= 0 {
			return false
		}
		p = v.next
	}
	return true
}

// Same test as isEar, but only vertices whose Z-order key lies within the
// key range of the triangle's bounding box are checked. Since the key is
// monotonic in both x and y, every vertex inside the box is in that range.
func (r *ring) isEarHashed(ear int, bounds zBounds) bool {
	a, b, c := r.v[ear].prev, ear, r.v[ear].next
	if r.area(a, b, c) >= 0 {
		return false // reflex
	}

	va, vb, vc := r.v[a], r.v[b], r.v[c]
	x0, y0 := min(va.x, vb.x, vc.x), min(va.y, vb.y, vc.y)
	x1, y1 := max(va.x, vb.x, vc.x), max(va.y, vb.y, vc.y)

	minZ := bounds.zOrder(x0, y0)
	maxZ := bounds.zOrder(x1, y1)

	blocks := func(p int) bool {
		v := r.v[p]
		return v.x >= x0 && v.x <= x1 && v.y >= y0 && v.y <= y1 &&
			p != a && p != c &&
			pointInTriangleExceptFirst(va.x, va.y, vb.x, vb.y, vc.x, vc.y, v.x, v.y) &&
			r.area(v.prev, p, v.next) >= 0
	}

	p := r.v[ear].prevZ
	n := r.v[ear].nextZ

	// Look in both directions at once while both are in range
	for p != nilVertex && r.v[p].z >= minZ && n != nilVertex && r.v[n].z <= maxZ {
		if blocks(p) {
			return false
		}
		p = r.v[p].prevZ

		if blocks(n) {
			return false
		}
		n = r.v[n].nextZ
	}

	for p != nilVertex && r.v[p].z >= minZ {
		if blocks(p) {
			return false
		}
		p = r.v[p].prevZ
	}

	for n != nilVertex && r.v[n].z <= maxZ {
		if blocks(n) {
			return false
		}
		n = r.v[n].nextZ
	}
	return true
}

// Go around the loop looking for a vertex whose neighbors' edges cross, and
// clip it off as a triangle (a, p, b), dropping p and its successor. Returns a
// vertex still on the loop.
func (r *ring) cureLocalIntersections(start int, triangles []int) (int, []int) {
	p := start
	for {
		a := r.v[p].prev
		b := r.v[r.v[p].next].next

		if !r.equals(a, b) && r.intersects(a, p, r.v[p].next, b) &&
			r.locallyInside(a, b) && r.locallyInside(b, a) {
			triangles = append(triangles, r.v[a].i, r.v[p].i, r.v[b].i)

			// Remove the two vertices involved
			r.remove(p)
			r.remove(r.v[p].next)

			p = b
			start = b
		}

		p = r.v[p].next
		if p == start {
			break
		}
	}
	return r.filterPoints(p, nilVertex), triangles
}

// Split the loop in two along a valid diagonal and triangulate each half.
func (r *ring) splitEarcut(start int, triangles []int, bounds zBounds) []int {
	a := start
	for {
		b := r.v[r.v[a].next].next
		for b != r.v[a].prev {
			if r.v[a].i != r.v[b].i && r.isValidDiagonal(a, b) {
				c := r.split(a, b)

				// Filter collinear points around the cuts
				a = r.filterPoints(a, r.v[a].next)
				c = r.filterPoints(c, r.v[c].next)

				triangles = r.earcutLinked(a, triangles, bounds, 0)
				return r.earcutLinked(c, triangles, bounds, 0)
			}
			b = r.v[b].next
		}

		a = r.v[a].next
		if a == start {
			return triangles
		}
	}
}
