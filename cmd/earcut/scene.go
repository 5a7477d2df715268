package main

import (
	"github.com/osuushi/earcut"
	"github.com/osuushi/earcut/advanced"
	"github.com/paulmach/orb"
)

// A scene is everything read from the input: a pool of rings, and the groups
// of rings that form polygons.
type scene struct {
	pool   [][]earcut.Point
	groups []earcut.GroupDescriptor
}

// Add a polygon whose first ring is the outer boundary and the rest holes.
func (s *scene) addRings(rings [][]earcut.Point) {
	if len(rings) == 0 {
		return
	}
	group := earcut.GroupDescriptor{Outer: len(s.pool)}
	for i := 1; i < len(rings); i++ {
		group.Inners = append(group.Inners, len(s.pool)+i)
	}
	s.pool = append(s.pool, rings...)
	s.groups = append(s.groups, group)
}

func (s *scene) addPolygon(poly orb.Polygon) {
	rings := make([][]earcut.Point, len(poly))
	for i, ring := range poly {
		// Rings are closed in GeoJSON and WKB
		if len(ring) > 1 && ring.Closed() {
			ring = ring[:len(ring)-1]
		}
		rings[i] = advanced.RingOf([]orb.Point(ring))
	}
	s.addRings(rings)
}

// All points of the pool in order, as one buffer.
func (s *scene) buffer() []earcut.Point {
	var points []earcut.Point
	for _, ring := range s.pool {
		points = append(points, ring...)
	}
	return points
}

// Triangulate the scene with the call matching the addressing options. With
// ranges or offsets, the whole pool is one buffer and one polygon. Otherwise
// each group is a polygon. The returned polygons are what the indices refer
// to.
func (s *scene) triangulate(opts options) ([]advanced.Polygon, []earcut.IndexBuffer) {
	switch {
	case len(opts.ranges) > 0:
		points := s.buffer()
		ranges := []earcut.IndexRange(opts.ranges)
		return []advanced.Polygon{advanced.FromRanges(points, ranges)},
			[]earcut.IndexBuffer{earcut.TriangulateRanges(points, ranges, opts.inverse)}

	case len(opts.offsets) > 0:
		points := s.buffer()
		return []advanced.Polygon{advanced.FromOffsets(points, opts.offsets)},
			[]earcut.IndexBuffer{earcut.TriangulateByOffsets(points, opts.offsets, opts.inverse)}
	}

	polygons := make([]advanced.Polygon, len(s.groups))
	for i, group := range s.groups {
		polygons[i], _ = advanced.FromGroups(s.pool, group)
	}
	return polygons, earcut.TriangulateGroups(s.pool, s.groups, opts.inverse)
}
