package internal

// Signed area of a point list, positive for counterclockwise lists when y points
// up. This is twice the shoelace area and is only used for its sign.
func signedArea(points []Point) float64 {
	var sum float64
	j := len(points) - 1
	for i := range points {
		sum += (points[j].X - points[i].X) * (points[i].Y + points[j].Y)
		j = i
	}
	return sum
}

// Twice the signed area of triangle (p, q, s). Negative means the turn at q is
// convex for a loop with the outer orientation.
func (r *ring) area(p, q, s int) float64 {
	a, b, c := &r.v[p], &r.v[q], &r.v[s]
	return (b.y-a.y)*(c.x-b.x) - (b.x-a.x)*(c.y-b.y)
}

func (r *ring) equals(p, q int) bool {
	return r.v[p].x == r.v[q].x && r.v[p].y == r.v[q].y
}

// Is p inside or on the edge of triangle (a, b, c)?
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py) >= (ax-px)*(cy-py) &&
		(ax-px)*(by-py) >= (bx-px)*(ay-py) &&
		(bx-px)*(cy-py) >= (cx-px)*(by-py)
}

// Like pointInTriangle, but a point coinciding with a is not considered inside.
func pointInTriangleExceptFirst(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return !(ax == px && ay == py) && pointInTriangle(ax, ay, bx, by, cx, cy, px, py)
}

func sign(value float64) int {
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	}
	return 0
}

// Do segments p1-q1 and p2-q2 intersect? Touching counts.
func (r *ring) intersects(p1, q1, p2, q2 int) bool {
	o1 := sign(r.area(p1, q1, p2))
	o2 := sign(r.area(p1, q1, q2))
	o3 := sign(r.area(p2, q2, p1))
	o4 := sign(r.area(p2, q2, q1))

	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear cases
	if o1 == 0 && r.onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && r.onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && r.onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && r.onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// For collinear p, q, s: does q lie on segment p-s?
func (r *ring) onSegment(p, q, s int) bool {
	a, b, c := &r.v[p], &r.v[q], &r.v[s]
	return b.x <= max(a.x, c.x) && b.x >= min(a.x, c.x) &&
		b.y <= max(a.y, c.y) && b.y >= min(a.y, c.y)
}

// Does diagonal a-b cross any edge of the loop, other than edges incident to a
// or b?
func (r *ring) intersectsPolygon(a, b int) bool {
	ai, bi := r.v[a].i, r.v[b].i
	p := a
	for {
		n := r.v[p].next
		pi, ni := r.v[p].i, r.v[n].i
		if pi != ai && ni != ai && pi != bi && ni != bi && r.intersects(p, n, a, b) {
			return true
		}
		p = n
		if p == a {
			return false
		}
	}
}

// Does diagonal a-b start into the interior of the loop at a?
func (r *ring) locallyInside(a, b int) bool {
	prev, next := r.v[a].prev, r.v[a].next
	if r.area(prev, a, next) < 0 {
		return r.area(a, b, next) >= 0 && r.area(a, prev, b) >= 0
	}
	return r.area(a, b, prev) < 0 || r.area(a, next, b) < 0
}

// Is the midpoint of diagonal a-b inside the loop? Even-odd crossing test.
func (r *ring) middleInside(a, b int) bool {
	inside := false
	px := (r.v[a].x + r.v[b].x) / 2
	py := (r.v[a].y + r.v[b].y) / 2

	p := a
	for {
		v := r.v[p]
		n := r.v[v.next]
		if (v.y > py) != (n.y > py) && n.y != v.y &&
			px < (n.x-v.x)*(py-v.y)/(n.y-v.y)+v.x {
			inside = !inside
		}
		p = v.next
		if p == a {
			return inside
		}
	}
}

// Can the loop be split along a-b without crossing itself?
func (r *ring) isValidDiagonal(a, b int) bool {
	va, vb := r.v[a], r.v[b]
	if r.v[va.next].i == vb.i || r.v[va.prev].i == vb.i || r.intersectsPolygon(a, b) {
		return false
	}

	visible := r.locallyInside(a, b) && r.locallyInside(b, a) && r.middleInside(a, b) &&
		// Reject diagonals that would create opposite-facing sectors
		(r.area(va.prev, a, vb.prev) != 0 || r.area(a, vb.prev, b) != 0)

	// Zero-length diagonal between two coincident convex vertices
	zeroLength := r.equals(a, b) &&
		r.area(va.prev, a, va.next) > 0 &&
		r.area(vb.prev, b, vb.next) > 0

	return visible || zeroLength
}

// Does the sector at m contain the sector at p? Both are the same point in
// different parts of the loop.
func (r *ring) sectorContainsSector(m, p int) bool {
	return r.area(r.v[m].prev, m, r.v[p].prev) < 0 &&
		r.area(r.v[p].next, m, r.v[m].next) < 0
}
