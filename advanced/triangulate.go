package advanced

import (
	"io"

	"github.com/osuushi/earcut/internal"
)

// Triangulate the polygon by ear clipping. The result indexes into
// poly.Points(), and every triangle is counterclockwise when y points up.
//
// Degenerate input is not an error; it produces fewer triangles or none. An
// error means the engine broke one of its own invariants, and the result is
// empty in that case.
func (poly Polygon) Triangulate() (IndexBuffer, error) {
	return poly.triangulate(nil)
}

// Like Triangulate, but writes the merged boundary to w once holes have been
// bridged into it. This is intended for debugging.
func (poly Polygon) TriangulateTraced(w io.Writer) (IndexBuffer, error) {
	return poly.triangulate(w)
}

func (poly Polygon) triangulate(trace io.Writer) (result IndexBuffer, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = IndexBuffer{}
			err = recoveredErr
		}
	}()

	if poly.IsEmpty() {
		return IndexBuffer{}, nil
	}

	rings := make([][]Point, len(poly.Rings))
	for i, ring := range poly.Rings {
		rings[i] = ring
	}
	return IndexBuffer(internal.Triangulate(rings, trace)), nil
}

// A Mesh pairs a polygon with a triangulation of it.
type Mesh struct {
	Polygon Polygon
	Indices IndexBuffer
}

func (poly Polygon) Mesh() (Mesh, error) {
	indices, err := poly.Triangulate()
	return Mesh{Polygon: poly, Indices: indices}, err
}

// Corner points of triangle i.
func (m Mesh) Triangle(i int) [3]Point {
	triple := m.Indices.Triangle(i)
	points := m.Polygon.Points()
	return [3]Point{points[triple[0]], points[triple[1]], points[triple[2]]}
}

// Sum of the signed areas of all triangles. For a counterclockwise
// triangulation this equals the polygon's area.
func (m Mesh) Area() float64 {
	points := m.Polygon.Points()
	var area float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		area += triangleArea(points[m.Indices[i]], points[m.Indices[i+1]], points[m.Indices[i+2]])
	}
	return area
}

// Is p inside or on the edge of any triangle?
func (m Mesh) ContainsPoint(p Point) bool {
	points := m.Polygon.Points()
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := points[m.Indices[i]], points[m.Indices[i+1]], points[m.Indices[i+2]]
		d1 := triangleArea(a, b, p)
		d2 := triangleArea(b, c, p)
		d3 := triangleArea(c, a, p)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		if !(hasNeg && hasPos) {
			return true
		}
	}
	return false
}

// Signed area of triangle (a, b, c), positive when counterclockwise.
func triangleArea(a, b, c Point) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}
