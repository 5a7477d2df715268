package internal

type Point struct {
	X float64
	Y float64
}

// nilVertex marks a missing link in the arena.
const nilVertex = -1

// A vertex is one slot of the ring arena. All links are slot indices into
// ring.v, which keeps growing while bridges and splits duplicate vertices.
type vertex struct {
	// Position of the point in the flattened (outer ring, then holes) point
	// sequence. Duplicates created by bridges and splits share it.
	i    int
	x, y float64

	// Z-order key. Zero means "not computed yet".
	z uint32

	prev, next   int
	prevZ, nextZ int
}

// A ring is the circular doubly linked traversal over copied polygon points.
// It lives for the duration of one triangulation and is never shared.
type ring struct {
	v []vertex
}

func newRing(capacity int) *ring {
	return &ring{v: make([]vertex, 0, capacity)}
}

func (r *ring) create(i int, x, y float64) int {
	r.v = append(r.v, vertex{
		i:     i,
		x:     x,
		y:     y,
		prev:  nilVertex,
		next:  nilVertex,
		prevZ: nilVertex,
		nextZ: nilVertex,
	})
	return len(r.v) - 1
}

// Insert a new vertex after last, or start a new one-vertex loop if last is
// nilVertex.
func (r *ring) insert(i int, p Point, last int) int {
	n := r.create(i, p.X, p.Y)
	if last == nilVertex {
		r.v[n].prev = n
		r.v[n].next = n
		return n
	}
	next := r.v[last].next
	r.v[n].next = next
	r.v[n].prev = last
	r.v[next].prev = n
	r.v[last].next = n
	return n
}

// Unlink a vertex from both the boundary and the Z-order list. The removed
// vertex keeps its own links, so callers can still step to its old neighbors.
func (r *ring) remove(p int) {
	v := r.v[p]
	r.v[v.next].prev = v.prev
	r.v[v.prev].next = v.next
	if v.prevZ != nilVertex {
		r.v[v.prevZ].nextZ = v.nextZ
	}
	if v.nextZ != nilVertex {
		r.v[v.nextZ].prevZ = v.prevZ
	}
}

func (r *ring) link(p, q int) {
	r.v[p].next = q
	r.v[q].prev = p
}

// Connect two vertices with a bridge. If they are on the same loop, this splits
// it into two loops. If one is on the outer boundary and the other on a hole,
// the hole gets merged into the boundary. Returns the duplicate of b, which
// lives on the second loop.
func (r *ring) split(a, b int) int {
	/*
		before:  ... ap -> a -> an ...     ... bp -> b -> bn ...
		after:   ... ap -> a -> b -> bn ...
		         ... bp -> b2 -> a2 -> an ...
	*/
	a2 := r.create(r.v[a].i, r.v[a].x, r.v[a].y)
	b2 := r.create(r.v[b].i, r.v[b].x, r.v[b].y)
	an := r.v[a].next
	bp := r.v[b].prev

	r.link(a, b)
	r.link(a2, an)
	r.link(b2, a2)
	r.link(bp, b2)
	return b2
}

// Build a loop from a point list. Outer loops are linked so that
// signedArea > 0 (counterclockwise with y pointing up); holes get the opposite
// orientation. A closing point equal to the first one is dropped.
func (r *ring) linkedList(points []Point, offset int, outer bool) int {
	last := nilVertex
	if outer == (signedArea(points) > 0) {
		for i, p := range points {
			last = r.insert(offset+i, p, last)
		}
	} else {
		for i := len(points) - 1; i >= 0; i-- {
			last = r.insert(offset+i, points[i], last)
		}
	}

	if last != nilVertex && r.equals(last, r.v[last].next) {
		r.remove(last)
		last = r.v[last].next
	}
	return last
}

// Remove duplicate and collinear vertices between start and end (the whole
// loop if end is nilVertex). Returns a vertex that is still on the loop.
func (r *ring) filterPoints(start, end int) int {
	if start == nilVertex {
		return start
	}
	if end == nilVertex {
		end = start
	}

	p := start
	for {
		again := false
		v := r.v[p]
		if r.equals(p, v.next) || r.area(v.prev, p, v.next) == 0 {
			r.remove(p)
			p = v.prev
			end = p
			if p == r.v[p].next {
				break
			}
			again = true
		} else {
			p = v.next
		}

		if !again && p == end {
			break
		}
	}
	return end
}

// Number of vertices on the loop containing start.
func (r *ring) length(start int) int {
	n := 0
	p := start
	for {
		n++
		p = r.v[p].next
		if p == start {
			return n
		}
	}
}

// Find the leftmost vertex of a loop, lowest y breaking ties.
func (r *ring) leftmost(start int) int {
	p := start
	leftmost := start
	for {
		v, l := r.v[p], r.v[leftmost]
		if v.x < l.x || (v.x == l.x && v.y < l.y) {
			leftmost = p
		}
		p = v.next
		if p == start {
			return leftmost
		}
	}
}
