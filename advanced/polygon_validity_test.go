package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// Helper to check that a triangulation is valid. The rules are:
// 1. Every index refers to a point of the polygon.
// 2. Every point of a non-degenerate ring is used by some triangle.
// 3. Every edge of a non-degenerate ring is an edge of some triangle.
// 4. Every triangle is counterclockwise and has nonzero area.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
//
// Rules 2 and 3 only hold for polygons without collinear or duplicate points,
// which get filtered out.
func AssertValidTriangulation(t *testing.T, poly Polygon, indices IndexBuffer) {
	t.Helper()
	require.Zero(t, len(indices)%3, "index count must be a multiple of 3")

	pointCount := poly.PointCount()
	used := make(map[int]bool)
	segments := make(normalizedSegmentSet)
	for _, triple := range indices.Triangles() {
		for _, i := range triple {
			require.True(t, i >= 0 && i < pointCount, "index %d out of range", i)
			used[i] = true
		}
		segments.add(triple[0], triple[1])
		segments.add(triple[1], triple[2])
		segments.add(triple[2], triple[0])
	}

	offset := 0
	for _, ring := range poly.Rings {
		if !ring.IsDegenerate() {
			for i := range ring {
				require.True(t, used[offset+i], "point %d is not in any triangle", offset+i)
				j := offset + CircularIndex(i+1, len(ring))
				require.True(t, segments.contains(offset+i, j), "segment %d-%d of the polygon is not in the set of segments in the triangles", offset+i, j)
			}
		}
		offset += len(ring)
	}

	mesh := Mesh{Polygon: poly, Indices: indices}
	for i := 0; i < indices.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		require.Greater(t, triangleArea(tri[0], tri[1], tri[2]), 0.0, "clockwise or degenerate triangle: %v", tri)
	}

	require.InDelta(t, poly.Area(), mesh.Area(), epsilon*math.Max(1, poly.Area()), "sum of the areas of all triangles is equal to the area of the polygon")
}

// Edge between two point indices, smaller index first
type normalizedSegment struct {
	lower, upper int
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b int) {
	set[normalizedSegment{min(a, b), max(a, b)}] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b int) bool {
	_, ok := set[normalizedSegment{min(a, b), max(a, b)}]
	return ok
}

// Compare point containment between the polygons and their meshes on a grid
// over the padded bounding box. The grid is offset by an odd fraction of a step
// so samples don't land on edges.
func validateMeshesBySampling(t *testing.T, meshes []Mesh) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, mesh := range meshes {
		for _, p := range mesh.Polygon.Points() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY + step*0.3719; y <= maxY; y += step {
		for x := minX + step*0.4271; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			var expected, actual bool
			for _, mesh := range meshes {
				expected = expected || mesh.Polygon.ContainsPointByEvenOdd(p)
				actual = actual || mesh.ContainsPoint(p)
			}
			if expected {
				assert.True(t, actual, "point %v should be in the triangulation", p)
			} else {
				assert.False(t, actual, "point %v should not be in the triangulation", p)
			}
		}
	}
}
