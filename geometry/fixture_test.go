package geometry

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW *Polygon. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}

	// Ensure that the polygon is CCW
	if signedDoubleArea(points) < 0 {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	result, err := NewPolygon(points)
	if err != nil {
		log.Fatalf("Fixture %q is not a valid polygon: %v", name, err)
	}
	return result
}

func signedDoubleArea(points []Point) float64 {
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}

// Some ad hoc code specified fixtures

// SimpleStar is a CCW star with alternating outer and inner radii. Even
// vertex ids are the spike tips and land on the convex hull; odd ids are
// reflex.
func SimpleStar() *Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	p, err := NewPolygon(points)
	if err != nil {
		log.Fatalf("SimpleStar is not a valid polygon: %v", err)
	}
	return p
}

// requirePolygon builds a polygon inline in a test, failing the test on error.
func requirePolygon(t *testing.T, points []Point) *Polygon {
	t.Helper()
	p, err := NewPolygon(points)
	require.NoError(t, err)
	return p
}

func squarePolygon(t *testing.T) *Polygon {
	return requirePolygon(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
}

func rightTrianglePolygon(t *testing.T) *Polygon {
	return requirePolygon(t, []Point{{0, 0}, {3, 0}, {0, 4}})
}

// A quad whose last vertex sits exactly on the segment between its neighbors,
// so its hull is a triangle.
func degenerateQuadPolygon(t *testing.T) *Polygon {
	return requirePolygon(t, []Point{{0, 0}, {2, -1}, {2, 2}, {1, 1}})
}
