// Polygon triangulation by ear clipping, for mesh rendering.
//
// This package converts simple polygons, which may be non-convex and may
// contain holes, into a flat list of triangle indices referring only to the
// original points. Rings can be given directly, as ranges or cut offsets over
// one point buffer, or as groups picked from a pool.
//
// None of the functions here fail. Degenerate input (rings with fewer than
// three points, collinear rings, out of range indices) produces fewer triangles
// or none at all. Triangles are counterclockwise when y points up, unless
// inverse is set.
package earcut

import (
	"log"

	"github.com/osuushi/earcut/advanced"
)

type Point = advanced.Point
type PointLike = advanced.PointLike
type IndexBuffer = advanced.IndexBuffer
type IndexTriple = advanced.IndexTriple
type IndexRange = advanced.IndexRange
type GroupDescriptor = advanced.GroupDescriptor

func triangulate(poly advanced.Polygon, inverse bool) IndexBuffer {
	indices, err := poly.Triangulate()
	if err != nil {
		log.Printf("earcut: %v", err)
		return IndexBuffer{}
	}
	return advanced.ApplyWinding(indices, inverse)
}

// Triangulate a single ring. Indices refer to positions in ring.
func Triangulate(ring []Point, inverse bool) IndexBuffer {
	return triangulate(advanced.SingleRing(ring), inverse)
}

// Triangulate a ring of any point type that exposes its coordinates.
func TriangulatePoints[P PointLike](ring []P, inverse bool) IndexBuffer {
	return Triangulate(advanced.RingOf(ring), inverse)
}

// Triangulate outer minus holes. Indices refer to positions in the
// concatenation of outer and all holes, in order. Holes with fewer than three
// points are ignored but still take up their positions.
func TriangulateWithHoles(outer []Point, holes [][]Point, inverse bool) IndexBuffer {
	return triangulate(advanced.WithHoles(outer, holes...), inverse)
}

// Triangulate rings given as inclusive index ranges over points. The first range
// is the outer ring, the rest are holes. Ranges are clamped to the buffer, and
// ranges covering fewer than three points are skipped.
//
// Indices refer to positions in the concatenation of the surviving ranges, not
// to positions in points.
func TriangulateRanges(points []Point, ranges []IndexRange, inverse bool) IndexBuffer {
	return triangulate(advanced.FromRanges(points, ranges), inverse)
}

// Triangulate rings formed by cutting points at each offset. The first ring is
// the outer ring, the rest are holes. Without offsets, points is a single ring.
// See TriangulateRanges for what the indices refer to.
func TriangulateByOffsets(points []Point, offsets []int, inverse bool) IndexBuffer {
	return triangulate(advanced.FromOffsets(points, offsets), inverse)
}

// Triangulate one polygon per descriptor, picking its outer ring and holes from
// pool. A descriptor that refers to a group outside the pool gets an empty
// buffer; the others are unaffected.
func TriangulateGroups(pool [][]Point, descriptors []GroupDescriptor, inverse bool) []IndexBuffer {
	results := make([]IndexBuffer, len(descriptors))
	for i, descriptor := range descriptors {
		poly, ok := advanced.FromGroups(pool, descriptor)
		if !ok {
			results[i] = IndexBuffer{}
			continue
		}
		results[i] = triangulate(poly, inverse)
	}
	return results
}
