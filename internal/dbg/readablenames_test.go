package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamer(t *testing.T) {
	n := NewNamer()

	first := n.Name(1)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, n.Name(1), "names are memoized")

	seen := map[string]bool{first: true}
	for i := 2; i < 500; i++ {
		name := n.Name(i)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}

	assert.Equal(t, "Ø", n.Name(nil))
}
