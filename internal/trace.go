package internal

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut/internal/dbg"
)

// Write the loop containing start, one vertex per line, starting at start.
// Convex vertices are green, reflex vertices red, and collinear ones cyan.
// Duplicated bridge vertices show up twice with the same index but different
// names.
func (r *ring) dump(w io.Writer, start int) {
	names := dbg.NewNamer()
	fmt.Fprintf(w, "loop of %d vertices\n", r.length(start))

	p := start
	for {
		v := r.v[p]
		name := names.Name(p)
		switch turn := r.area(v.prev, p, v.next); {
		case turn < 0:
			name = aurora.Green(name).String()
		case turn > 0:
			name = aurora.Red(name).String()
		default:
			name = aurora.Cyan(name).String()
		}
		fmt.Fprintf(w, "  %s #%d (%g, %g)\n", name, v.i, v.x, v.y)

		p = v.next
		if p == start {
			return
		}
	}
}
