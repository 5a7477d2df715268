package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/osuushi/earcut"
)

// One "a b c" line per triangle. Polygons are separated by an empty line.
func writeText(w io.Writer, results []earcut.IndexBuffer) error {
	bw := bufio.NewWriter(w)
	for i, indices := range results {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		for _, tri := range indices.Triangles() {
			fmt.Fprintf(bw, "%d %d %d\n", tri[0], tri[1], tri[2])
		}
	}
	return bw.Flush()
}

// One flat index array per polygon
func writeJSON(w io.Writer, results []earcut.IndexBuffer) error {
	return json.NewEncoder(w).Encode(results)
}
