package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"polygeo"
	"polygeo/geometry"
)

// Demo driver. Reads a polygon as newline separated "x y" points on stdin,
// or as a JSON array of {"x": ..., "y": ...} objects from a file, then
// computes a convex hull and optionally a triangulation.
//
// The polygon must be simple and wind counterclockwise. Neither requirement
// is validated; a non-simple polygon surfaces as a triangulation error.

var (
	algorithm = kingpin.Flag("algorithm", "Convex hull algorithm to run.").
			Default("graham_scan").Enum(algorithmNames()...)
	jsonPath = kingpin.Flag("json", "Read the polygon from a JSON point list instead of stdin.").
			ExistingFile()
	triangulate = kingpin.Flag("triangulate", "Also triangulate the polygon.").Bool()
	draw        = kingpin.Flag("draw", "Render the result to this PNG path.").String()
	cat         = kingpin.Flag("cat", "Print the rendered PNG to the terminal.").Bool()
	scale       = kingpin.Flag("scale", "Pixels per coordinate unit when rendering.").
			Default("32").Float64()
)

func main() {
	kingpin.Parse()

	points, err := readPoints()
	if err != nil {
		kingpin.Fatalf("reading points: %v", err)
	}
	polygon, err := polygeo.NewPolygon(points)
	if err != nil {
		kingpin.Fatalf("building polygon: %v", err)
	}
	fmt.Printf("Read a %d-vertex polygon, double area %v\n",
		polygon.NumVertices(), aurora.Cyan(polygon.DoubleArea()))

	hull, err := polygeo.ConvexHull(polygeo.HullAlgorithms()[*algorithm], polygon)
	if err != nil {
		kingpin.Fatalf("computing hull: %v", err)
	}
	fmt.Printf("%s hull: %v of %d vertices: %v\n",
		*algorithm, aurora.Green(hull.NumVertices()), polygon.NumVertices(), hull.VertexIDs())

	var chords []polygeo.Chord
	if *triangulate {
		chords, err = polygeo.Triangulate(polygon)
		if err != nil {
			kingpin.Fatalf("triangulating: %v", err)
		}
		fmt.Printf("triangulation: %v chords: %v\n", aurora.Green(len(chords)), chords)
	}

	if *draw != "" {
		if err := geometry.DrawPNG(*draw, polygon, hull, chords, *scale); err != nil {
			kingpin.Fatalf("rendering: %v", err)
		}
		if *cat {
			imgcat.CatFile(*draw, os.Stdout)
		}
	}
}

func algorithmNames() []string {
	names := make([]string, 0)
	for name := range geometry.Algorithms() {
		names = append(names, name)
	}
	return names
}

func readPoints() ([]polygeo.Point, error) {
	if *jsonPath != "" {
		contents, err := os.ReadFile(*jsonPath)
		if err != nil {
			return nil, err
		}
		var points []polygeo.Point
		if err := json.Unmarshal(contents, &points); err != nil {
			return nil, err
		}
		return points, nil
	}

	points := []polygeo.Point{}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (polygeo.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return polygeo.Point{}, fmt.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return polygeo.Point{}, err
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return polygeo.Point{}, err
	}
	return polygeo.Point{X: x, Y: y}, nil
}
