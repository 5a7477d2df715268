package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/earcut"
	"github.com/osuushi/earcut/advanced"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

func readScene(format string, in io.Reader) (*scene, error) {
	switch format {
	case "points":
		return readPoints(in)
	case "svg":
		return readSVG(in)
	case "geojson":
		return readGeoJSON(in)
	case "wkb":
		return readWKB(in)
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// Newline separated "x y" points, with rings separated by an empty line. All
// rings form one polygon.
func readPoints(in io.Reader) (*scene, error) {
	var rings [][]earcut.Point
	var points []earcut.Point

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read points")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}

	s := &scene{}
	s.addRings(rings)
	return s, nil
}

func parsePoint(line string) (earcut.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return earcut.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return earcut.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return earcut.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return earcut.Point{X: x, Y: y}, nil
}

func readSVG(in io.Reader) (*scene, error) {
	poly, err := advanced.ParseSVG(in)
	if err != nil {
		return nil, err
	}
	rings := make([][]earcut.Point, len(poly.Rings))
	for i, ring := range poly.Rings {
		rings[i] = ring
	}

	s := &scene{}
	s.addRings(rings)
	return s, nil
}

// A FeatureCollection, a Feature, or a bare geometry
func readGeoJSON(in io.Reader) (*scene, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "could not read geojson")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "invalid geojson")
	}

	s := &scene{}
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid feature collection")
		}
		for i, feature := range fc.Features {
			if err := s.addGeometry(feature.Geometry); err != nil {
				return nil, errors.Wrapf(err, "feature %d", i)
			}
		}
	case "Feature":
		feature, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid feature")
		}
		if err := s.addGeometry(feature.Geometry); err != nil {
			return nil, err
		}
	default:
		geometry, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid geometry")
		}
		if err := s.addGeometry(geometry.Geometry()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Hex encoded WKB, as printed by most spatial databases
func readWKB(in io.Reader) (*scene, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "could not read wkb")
	}
	raw, err := hex.DecodeString(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, errors.Wrap(err, "wkb input must be hex encoded")
	}
	geometry, err := wkb.Unmarshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, "invalid wkb")
	}

	s := &scene{}
	if err := s.addGeometry(geometry); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *scene) addGeometry(geometry orb.Geometry) error {
	switch g := geometry.(type) {
	case nil:
		return errors.New("missing geometry")
	case orb.Polygon:
		s.addPolygon(g)
	case orb.MultiPolygon:
		for _, poly := range g {
			s.addPolygon(poly)
		}
	case orb.Ring:
		s.addPolygon(orb.Polygon{g})
	case orb.Collection:
		for _, child := range g {
			if err := s.addGeometry(child); err != nil {
				return err
			}
		}
	default:
		return errors.Errorf("unsupported geometry type %s", g.GeoJSONType())
	}
	return nil
}
