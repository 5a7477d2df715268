package internal

import "math"

// Above this many points, ear tests only look at vertices whose Z-order key
// falls in the candidate triangle's bounding box. Below it, a plain scan of the
// loop is faster than building the index.
const hashThreshold = 80

// Coordinates are normalized to 15 bits per axis before interleaving.
const zScale = 32767

// Bounding box of the outer ring, used to normalize coordinates for Z-order
// keys. Holes are assumed to lie inside it.
type zBounds struct {
	minX, minY float64
	// zScale over the longer side of the box. Zero disables the index.
	invSize float64
}

func (b zBounds) valid() bool {
	return b.invSize != 0
}

func boundsOf(points []Point) zBounds {
	if len(points) == 0 {
		return zBounds{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	b := zBounds{minX: minX, minY: minY}
	if size := max(maxX-minX, maxY-minY); size != 0 {
		b.invSize = zScale / size
	}
	return b
}

// Morton code of a point: the bits of its normalized x and y, interleaved.
func (b zBounds) zOrder(x, y float64) uint32 {
	ix := uint32(int32((x - b.minX) * b.invSize))
	iy := uint32(int32((y - b.minY) * b.invSize))
	return spreadBits(ix) | spreadBits(iy)<<1
}

// Spread the low 16 bits of v so there is a zero between each of them.
func spreadBits(v uint32) uint32 {
	v = (v | v<<8) & 0x00ff00ff
	v = (v | v<<4) & 0x0f0f0f0f
	v = (v | v<<2) & 0x33333333
	v = (v | v<<1) & 0x55555555
	return v
}

// Compute Z-order keys for every vertex on the loop and thread them into a
// list sorted by key (prevZ/nextZ).
func (r *ring) indexCurve(start int, b zBounds) {
	p := start
	for {
		v := &r.v[p]
		if v.z == 0 {
			v.z = b.zOrder(v.x, v.y)
		}
		v.prevZ = v.prev
		v.nextZ = v.next
		p = v.next
		if p == start {
			break
		}
	}

	// Open the circle before sorting
	tail := r.v[p].prevZ
	r.v[tail].nextZ = nilVertex
	r.v[p].prevZ = nilVertex

	r.sortLinked(p)
}

// Bottom-up merge sort of the Z list by key, in place (Simon Tatham's linked
// list merge sort). Returns the new head.
func (r *ring) sortLinked(list int) int {
	inSize := 1
	for {
		p := list
		list = nilVertex
		tail := nilVertex
		merges := 0

		for p != nilVertex {
			merges++
			q := p
			pSize := 0
			for i := 0; i < inSize; i++ {
				pSize++
				q = r.v[q].nextZ
				if q == nilVertex {
					break
				}
			}
			qSize := inSize

			for pSize > 0 || (qSize > 0 && q != nilVertex) {
				var e int
				if pSize != 0 && (qSize == 0 || q == nilVertex || r.v[p].z <= r.v[q].z) {
					e = p
					p = r.v[p].nextZ
					pSize--
				} else {
					e = q
					q = r.v[q].nextZ
					qSize--
				}

				if tail != nilVertex {
					r.v[tail].nextZ = e
				} else {
					list = e
				}
				r.v[e].prevZ = tail
				tail = e
			}
			p = q
		}

		r.v[tail].nextZ = nilVertex
		inSize *= 2
		if merges <= 1 {
			return list
		}
	}
}
