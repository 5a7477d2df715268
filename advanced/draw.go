package advanced

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shapes, in pixels
const drawPadding = 20

// Render meshes into a new image. Polygons are filled with the even-odd rule,
// triangle edges are drawn on top, and ring boundaries on top of those. scale
// is pixels per unit.
func Draw(scale float64, meshes ...Mesh) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, m := range meshes {
		for _, ring := range m.Polygon.Rings {
			for _, p := range ring {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}
	if minX > maxX {
		// Nothing to draw
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for _, m := range meshes {
		drawRings(c, m.Polygon.Rings)
		c.SetRGB(0, 0.5, 0)
		c.Fill()

		points := m.Polygon.Points()
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, d := points[m.Indices[i]], points[m.Indices[i+1]], points[m.Indices[i+2]]
			c.MoveTo(a.X, a.Y)
			c.LineTo(b.X, b.Y)
			c.LineTo(d.X, d.Y)
			c.ClosePath()
		}
		c.SetLineWidth(1)
		c.SetRGB(0, 1, 1)
		c.Stroke()

		drawRings(c, m.Polygon.Rings)
		c.SetLineWidth(2)
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}
	return c
}

func drawRings(c *gg.Context, rings []Ring) {
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		c.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
}

// Render meshes to a PNG file.
func SavePNG(path string, scale float64, meshes ...Mesh) error {
	return errors.Wrapf(Draw(scale, meshes...).SavePNG(path), "could not save %s", path)
}

// Render meshes and print them to w as an inline image (iTerm only).
func Show(w io.Writer, scale float64, meshes ...Mesh) error {
	dir, err := os.MkdirTemp("", "earcut")
	if err != nil {
		return errors.Wrap(err, "could not create temp dir")
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "mesh.png")
	if err := SavePNG(path, scale, meshes...); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}
