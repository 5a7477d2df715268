package advanced

import (
	"embed"
	"log"
	"math"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each one is an SVG whose first <polygon> is the outer ring and whose other
// polygons are holes. If anything goes wrong, loading panics.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	poly, err := ParseSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return poly
}

// Some ad hoc code specified fixtures

func makeStar(x, y, outerRadius, innerRadius float64) Ring {
	var ring Ring
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		ring = append(ring, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
	}
	return ring
}

func SimpleStar() Polygon {
	return Polygon{Rings: []Ring{makeStar(0, 0, 5, 2)}}
}

func UnitSquare() Polygon {
	return SingleRing([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
}

func SquareWithHole() Polygon {
	return WithHoles(
		[]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}},
		[]Point{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1}},
	)
}

func StarOutline() Polygon {
	return Polygon{Rings: []Ring{
		makeStar(0, 0, 10, 5),
		makeStar(0, 0, 8, 3).Reverse(),
	}}
}

// Multiple holes which contain filled shapes inside. The filled shapes are
// separate polygons.
func MultiLayeredHoles() []Polygon {
	return []Polygon{
		{Rings: []Ring{
			// Outer star
			makeStar(0, 0, 10, 7),
			// Top hole
			makeStar(1.5, 5, 3, 2).Reverse(),
			// Bottom hole
			makeStar(1.8, -5, 3, 2).Reverse(),
			// Left hole
			makeStar(-3, 0, 4, 2).Reverse(),
		}},
		// Top inner
		{Rings: []Ring{makeStar(1.5, 5, 2, 1)}},
		// Bottom inner
		{Rings: []Ring{makeStar(1.8, -5, 2, 1)}},
		// Left inner
		{Rings: []Ring{makeStar(-3, 0, 3, 1)}},
	}
}

// Regular polygon with n sides, starting at an awkward angle so that no
// coordinates come out round.
func RegularPolygon(n int, radius float64) Ring {
	ring := make(Ring, n)
	for i := range ring {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.321
		ring[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return ring
}
