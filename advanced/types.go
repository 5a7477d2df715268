package advanced

import (
	"math"

	"github.com/osuushi/earcut/internal"
)

type Point = internal.Point

// Anything that exposes an x and a y coordinate can be triangulated, for
// example orb.Point.
type PointLike interface {
	X() float64
	Y() float64
}

// Copy a slice of point-like values into a Ring.
func RingOf[P PointLike](points []P) Ring {
	ring := make(Ring, len(points))
	for i, p := range points {
		ring[i] = Point{X: p.X(), Y: p.Y()}
	}
	return ring
}

// A Ring is one closed boundary loop. The last point connects back to the
// first; it does not need to be repeated.
type Ring []Point

// A ring with fewer than three points has no area and is dropped by assembly.
func (r Ring) IsDegenerate() bool {
	return len(r) < 3
}

// Shoelace area, positive for counterclockwise rings when y points up.
func (r Ring) SignedArea() float64 {
	var sum float64
	for i, p := range r {
		q := r[CircularIndex(i+1, len(r))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Even-odd point in ring test.
func (r Ring) ContainsPointByEvenOdd(p Point) bool {
	return r.CrossingCount(p)%2 == 1
}

// Number of ring edges crossed by a ray cast from p to the right.
func (r Ring) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range r {
		nextVertex := r[CircularIndex(i+1, len(r))]
		if (vertex.Y > p.Y) != (nextVertex.Y > p.Y) &&
			p.X < (nextVertex.X-vertex.X)*(p.Y-vertex.Y)/(nextVertex.Y-vertex.Y)+vertex.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (r Ring) Reverse() Ring {
	newRing := make(Ring, 0, len(r))
	for i := len(r) - 1; i >= 0; i-- {
		newRing = append(newRing, r[i])
	}
	return newRing
}

// A Polygon is an outer ring followed by any number of holes. Holes must lie
// inside the outer ring and not cross it or each other; this is not checked.
type Polygon struct {
	Rings []Ring
}

// The outer ring, or nil for a polygon without rings.
func (poly Polygon) Outer() Ring {
	if len(poly.Rings) == 0 {
		return nil
	}
	return poly.Rings[0]
}

func (poly Polygon) Holes() []Ring {
	if len(poly.Rings) < 2 {
		return nil
	}
	return poly.Rings[1:]
}

// A polygon with no rings or a degenerate outer ring triangulates to nothing.
func (poly Polygon) IsEmpty() bool {
	return poly.Outer().IsDegenerate()
}

func (poly Polygon) PointCount() int {
	count := 0
	for _, ring := range poly.Rings {
		count += len(ring)
	}
	return count
}

// All points of all rings in ring order. Triangle indices refer to positions
// in this sequence.
func (poly Polygon) Points() []Point {
	points := make([]Point, 0, poly.PointCount())
	for _, ring := range poly.Rings {
		points = append(points, ring...)
	}
	return points
}

// Area of the outer ring minus the area of the holes.
func (poly Polygon) Area() float64 {
	area := poly.Outer().Area()
	for _, hole := range poly.Holes() {
		area -= hole.Area()
	}
	return area
}

// Even-odd test over all rings, so points inside a hole are outside.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	crossingCount := 0
	for _, ring := range poly.Rings {
		crossingCount += ring.CrossingCount(p)
	}
	return crossingCount%2 == 1
}

// Indices of the three corners of one triangle.
type IndexTriple [3]int

// A flat triangle list. Each consecutive triple of indices is one triangle.
type IndexBuffer []int

func (buf IndexBuffer) TriangleCount() int {
	return len(buf) / 3
}

func (buf IndexBuffer) Triangle(i int) IndexTriple {
	return IndexTriple{buf[3*i], buf[3*i+1], buf[3*i+2]}
}

func (buf IndexBuffer) Triangles() []IndexTriple {
	triangles := make([]IndexTriple, buf.TriangleCount())
	for i := range triangles {
		triangles[i] = buf.Triangle(i)
	}
	return triangles
}

// Inclusive span of indices into a point buffer.
type IndexRange struct {
	Start int
	End   int
}

// Number of points in the range, or zero if End is before Start.
func (r IndexRange) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Clamp the start to [0, last] and the end to [start, last].
func (r IndexRange) Clamp(last int) IndexRange {
	start := clamp(r.Start, 0, last)
	return IndexRange{
		Start: start,
		End:   clamp(r.End, start, last),
	}
}

func clamp(value, low, high int) int {
	return max(low, min(value, high))
}

// Selects groups from a pool: one as the outer ring, the rest as holes.
type GroupDescriptor struct {
	Outer  int
	Inners []int
}

// Does every index of the descriptor refer to a group in a pool of the given
// size?
func (g GroupDescriptor) Valid(poolSize int) bool {
	if g.Outer < 0 || g.Outer >= poolSize {
		return false
	}
	for _, inner := range g.Inners {
		if inner < 0 || inner >= poolSize {
			return false
		}
	}
	return true
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
