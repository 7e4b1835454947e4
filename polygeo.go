// A planar computational geometry package for Go.
//
// This package represents simple polygons as cyclic sequences of identified
// vertices and provides exact-predicate geometry (orientation, sidedness,
// betweenness), visibility queries, an ear-clipping triangulator, and six
// convex hull algorithms that all agree on their output for the same input.
package polygeo

import "polygeo/geometry"

type Point = geometry.Point
type Polygon = geometry.Polygon
type Vertex = geometry.Vertex
type VertexID = geometry.VertexID
type Chord = geometry.Chord
type ConvexHullComputer = geometry.ConvexHullComputer

// NewPolygon builds a polygon from an ordered point list. The list must
// contain at least 3 points and is assumed to already trace a simple,
// counterclockwise polygon boundary; simplicity is the caller's
// responsibility and is not verified here.
func NewPolygon(points []Point) (*Polygon, error) {
	return geometry.NewPolygon(points)
}

// HullAlgorithms returns every convex hull strategy keyed by name.
func HullAlgorithms() map[string]ConvexHullComputer {
	return geometry.Algorithms()
}

// Triangulate runs ear-clipping triangulation and returns the n-3 chords
// that partition an n-vertex polygon into triangles.
//
// The polygon must be simple; a polygon that violates that precondition is
// reported as an error rather than a panic.
func Triangulate(p *Polygon) (chords []Chord, err error) {
	defer func() {
		recoveredErr := geometry.HandlePanicRecover(recover())
		if recoveredErr != nil {
			chords = nil
			err = recoveredErr
		}
	}()
	return p.Triangulation(), nil
}

// ConvexHull computes the convex hull of the polygon's vertex set with the
// given strategy. The hull winds counterclockwise, keeps the source vertex
// ids, and collapses collinear boundary runs to their extreme endpoints.
func ConvexHull(computer ConvexHullComputer, p *Polygon) (hull *Polygon, err error) {
	defer func() {
		recoveredErr := geometry.HandlePanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	return computer.ConvexHull(p), nil
}
