package advanced

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a polygon from the <polygon> elements of an SVG document. This is not a
// full (or even correct) SVG reader: transforms, paths and other shapes are
// ignored. The first polygon is the outer ring and the rest are holes.
//
// SVG coordinates have y pointing down, so a ring drawn clockwise on screen
// comes out counterclockwise here.
func ParseSVG(r io.Reader) (Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return Polygon{}, errors.Wrap(err, "failed to parse svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return Polygon{}, errors.New("no polygons found in svg")
	}

	var poly Polygon
	for i, polygonEl := range polygonEls {
		ring, err := parseSVGPoints(polygonEl.Attributes["points"])
		if err != nil {
			return Polygon{}, errors.Wrapf(err, "polygon %d", i)
		}
		poly.Rings = append(poly.Rings, ring)
	}
	return poly, nil
}

// Parse an SVG points attribute, "x1,y1 x2,y2 ...". Commas and whitespace are
// interchangeable.
func parseSVGPoints(pointString string) (Ring, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", pointString)
	}

	ring := make(Ring, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		ring = append(ring, Point{X: x, Y: y})
	}
	return ring, nil
}
