package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpreadBits(t *testing.T) {
	assert.Equal(t, uint32(0), spreadBits(0))
	assert.Equal(t, uint32(0b1), spreadBits(0b1))
	assert.Equal(t, uint32(0b101), spreadBits(0b11))
	assert.Equal(t, uint32(0x55555555), spreadBits(0xffff))
}

func TestBoundsOf(t *testing.T) {
	b := boundsOf([]Point{{-2, 1}, {6, 3}, {0, 5}})
	assert.Equal(t, -2.0, b.minX)
	assert.Equal(t, 1.0, b.minY)
	assert.InDelta(t, zScale/8.0, b.invSize, 1e-12)
	assert.True(t, b.valid())

	assert.False(t, boundsOf(nil).valid())
	assert.False(t, boundsOf([]Point{{1, 1}, {1, 1}}).valid())
}

func TestZOrderIsMonotonic(t *testing.T) {
	b := boundsOf([]Point{{0, 0}, {100, 100}})
	assert.Equal(t, uint32(0), b.zOrder(0, 0))
	for _, p := range []Point{{3, 7}, {50, 50}, {99, 1}, {1, 99}} {
		z := b.zOrder(p.X, p.Y)
		assert.LessOrEqual(t, z, b.zOrder(p.X+1, p.Y), "%v", p)
		assert.LessOrEqual(t, z, b.zOrder(p.X, p.Y+1), "%v", p)
		assert.LessOrEqual(t, z, b.zOrder(100, 100), "%v", p)
	}
}

func TestIndexCurveSortsByKey(t *testing.T) {
	points := regularPolygon(0, 0, 10, 40)
	r := newRing(len(points))
	last := r.linkedList(points, 0, true)
	r.indexCurve(last, boundsOf(points))

	// Find the head of the Z list and walk it
	head := last
	for r.v[head].prevZ != nilVertex {
		head = r.v[head].prevZ
	}
	count := 0
	for p := head; p != nilVertex; p = r.v[p].nextZ {
		if n := r.v[p].nextZ; n != nilVertex {
			assert.LessOrEqual(t, r.v[p].z, r.v[n].z)
			assert.Equal(t, p, r.v[n].prevZ)
		}
		count++
	}
	assert.Equal(t, len(points), count)
}
