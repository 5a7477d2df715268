package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Collect the point indices around a loop, starting at start.
func (r *ring) indices(start int) []int {
	var result []int
	p := start
	for {
		result = append(result, r.v[p].i)
		p = r.v[p].next
		if p == start {
			return result
		}
	}
}

func TestLinkedList(t *testing.T) {
	t.Run("outer keeps counterclockwise order", func(t *testing.T) {
		r := newRing(4)
		last := r.linkedList(square(0, 0, 1), 0, true)
		assert.Equal(t, []int{0, 1, 2, 3}, r.indices(r.v[last].next))
	})

	t.Run("outer reverses clockwise order", func(t *testing.T) {
		r := newRing(4)
		last := r.linkedList(reversed(square(0, 0, 1)), 0, true)
		assert.Equal(t, []int{3, 2, 1, 0}, r.indices(r.v[last].next))
	})

	t.Run("hole reverses counterclockwise order with offset", func(t *testing.T) {
		r := newRing(4)
		last := r.linkedList(square(0, 0, 1), 10, false)
		assert.Equal(t, []int{13, 12, 11, 10}, r.indices(r.v[last].next))
	})

	t.Run("closing point is dropped", func(t *testing.T) {
		r := newRing(5)
		last := r.linkedList(append(square(0, 0, 1), Point{0, 0}), 0, true)
		assert.Equal(t, 4, r.length(last))
	})

	t.Run("empty", func(t *testing.T) {
		r := newRing(0)
		assert.Equal(t, nilVertex, r.linkedList(nil, 0, true))
	})
}

func TestRemoveKeepsOwnLinks(t *testing.T) {
	r := newRing(4)
	last := r.linkedList(square(0, 0, 1), 0, true)
	first := r.v[last].next
	second := r.v[first].next

	r.remove(second)
	assert.Equal(t, 3, r.length(first))
	assert.Equal(t, first, r.v[second].prev)
	assert.Equal(t, r.v[first].next, r.v[second].next)
}

func TestSplit(t *testing.T) {
	r := newRing(8)
	last := r.linkedList(square(0, 0, 1), 0, true)
	a := r.v[last].next // index 0
	c := r.v[r.v[a].next].next // index 2

	c2 := r.split(a, c)
	assert.Equal(t, []int{0, 2, 3}, r.indices(a))
	assert.Equal(t, []int{2, 0, 1}, r.indices(c2))
}

func TestFilterPoints(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 0}, {2, 2}, {0, 2}}
	r := newRing(len(points))
	last := r.linkedList(points, 0, true)

	start := r.filterPoints(last, nilVertex)
	require.NotEqual(t, nilVertex, start)
	assert.Equal(t, 4, r.length(start))
	// The collinear point and the first of the duplicates are gone
	assert.ElementsMatch(t, []int{0, 3, 4, 5}, r.indices(start))
}

func TestLeftmost(t *testing.T) {
	points := []Point{{3, 0}, {1, 2}, {1, 1}, {4, 4}}
	r := newRing(len(points))
	last := r.linkedList(points, 0, true)
	assert.Equal(t, 2, r.v[r.leftmost(last)].i)
}
