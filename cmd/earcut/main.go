package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earcut"
	"github.com/osuushi/earcut/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	format  string
	inverse bool
	offsets []int
	ranges  rangeList
	json    bool
	png     string
	imgcat  bool
	scale   float64
	trace   bool
	input   *os.File
}

// Triangulate polygons read from a file or stdin, and print the triangle
// indices.
//
// In the default "points" format, each line is a point in the form "x y", and
// rings are separated by an empty line. The first ring is the outer boundary
// and the others are holes. With --offset or --range, the rings are instead
// concatenated into one buffer and split up again by the offsets or ranges.
//
// GeoJSON and WKB input may contain any number of polygons, each of which is
// triangulated separately.
func main() {
	var opts options
	app := newApp(&opts)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var in io.Reader = os.Stdin
	if opts.input != nil {
		defer opts.input.Close()
		in = opts.input
	}
	app.FatalIfError(run(opts, in, os.Stdout, os.Stderr), "earcut")
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("earcut", "Triangulate polygons with holes by ear clipping.")
	app.Flag("format", "Input format.").Short('f').Default("points").EnumVar(&opts.format, "points", "geojson", "wkb", "svg")
	app.Flag("inverse", "Emit clockwise triangles.").BoolVar(&opts.inverse)
	app.Flag("offset", "Cut the point buffer into rings at this index. Repeatable.").IntsVar(&opts.offsets)
	app.Flag("range", "Inclusive START:END index range of a ring in the point buffer. Repeatable.").SetValue(&opts.ranges)
	app.Flag("json", "Print the index buffers as JSON.").BoolVar(&opts.json)
	app.Flag("png", "Render the triangulation to a PNG file.").PlaceHolder("PATH").StringVar(&opts.png)
	app.Flag("imgcat", "Render the triangulation to the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&opts.scale)
	app.Flag("trace", "Print the merged boundary of each polygon to stderr.").BoolVar(&opts.trace)
	app.Arg("input", "Input file. Defaults to stdin.").FileVar(&opts.input)
	return app
}

func run(opts options, in io.Reader, stdout, stderr io.Writer) error {
	s, err := readScene(opts.format, in)
	if err != nil {
		return err
	}

	polygons, results := s.triangulate(opts)

	if opts.trace {
		for i, poly := range polygons {
			fmt.Fprintf(stderr, "polygon %d\n", i)
			if _, err := poly.TriangulateTraced(stderr); err != nil {
				fmt.Fprintln(stderr, aurora.Red(err))
			}
		}
	}

	if opts.json {
		err = writeJSON(stdout, results)
	} else {
		err = writeText(stdout, results)
	}
	if err != nil {
		return errors.Wrap(err, "could not write output")
	}

	meshes := make([]advanced.Mesh, len(polygons))
	for i := range polygons {
		meshes[i] = advanced.Mesh{Polygon: polygons[i], Indices: results[i]}
	}
	if opts.png != "" {
		if err := advanced.SavePNG(opts.png, opts.scale, meshes...); err != nil {
			return err
		}
	}
	if opts.imgcat {
		if err := advanced.Show(stdout, opts.scale, meshes...); err != nil {
			return err
		}
	}

	writeSummary(stderr, results)
	return nil
}

func writeSummary(w io.Writer, results []earcut.IndexBuffer) {
	triangles, empty := 0, 0
	for _, indices := range results {
		triangles += indices.TriangleCount()
		if len(indices) == 0 {
			empty++
		}
	}
	fmt.Fprintf(w, "%d polygons, %d triangles", aurora.Cyan(len(results)), aurora.Green(triangles))
	if empty > 0 {
		fmt.Fprintf(w, ", %d empty", aurora.Yellow(empty))
	}
	fmt.Fprintln(w)
}

// Repeatable START:END flag value
type rangeList []earcut.IndexRange

func (l *rangeList) Set(value string) error {
	start, end, ok := strings.Cut(value, ":")
	if !ok {
		return errors.Errorf("expected START:END, got %q", value)
	}
	var r earcut.IndexRange
	var err error
	if r.Start, err = strconv.Atoi(strings.TrimSpace(start)); err != nil {
		return errors.Wrapf(err, "invalid range start %q", start)
	}
	if r.End, err = strconv.Atoi(strings.TrimSpace(end)); err != nil {
		return errors.Wrapf(err, "invalid range end %q", end)
	}
	*l = append(*l, r)
	return nil
}

func (l *rangeList) String() string {
	parts := make([]string, len(*l))
	for i, r := range *l {
		parts[i] = fmt.Sprintf("%d:%d", r.Start, r.End)
	}
	return strings.Join(parts, ",")
}

func (l *rangeList) IsCumulative() bool {
	return true
}
