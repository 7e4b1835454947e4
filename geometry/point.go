package geometry

import "math"

// A point in the plane. The JSON tags match the format emitted by loaders and
// visualizers, which store polygons as ordered point lists.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Twice the signed area of triangle (a, b, c). Positive means a
// counterclockwise turn, negative clockwise, zero collinear. Every sidedness
// predicate in the package reduces to the sign of this quantity.
func doubleAreaOf(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Orientation is the sign of the signed area of triangle (a, b, c): 1 for a
// left turn, -1 for a right turn, 0 for collinear points. Duplicate points
// are collinear by definition.
func Orientation(a, b, c Point) int {
	area := doubleAreaOf(a, b, c)
	if Equal(area, 0) {
		return 0
	}
	if area > 0 {
		return 1
	}
	return -1
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Between reports whether p is collinear with a and b and lies within the
// closed interval they span. The interval check runs on whichever axis is
// non-degenerate for the segment, so vertical segments compare Y. A point is
// between itself and itself.
func (p Point) Between(a, b Point) bool {
	if Orientation(a, b, p) != 0 {
		return false
	}

	var e1, e2, check float64
	if Equal(a.X, b.X) {
		e1, e2, check = a.Y, b.Y, p.Y
	} else {
		e1, e2, check = a.X, b.X, p.X
	}
	if e1 > e2 {
		e1, e2 = e2, e1
	}
	return e1 <= check && check <= e2
}

func (p *Point) RotateAboutOrigin(radians float64) {
	p.RotateAboutPoint(radians, Point{})
}

// RotateAboutPoint rewrites both coordinates in place. Only auxiliary and
// test tooling rotates points; the polygon algorithms never mutate them.
func (p *Point) RotateAboutPoint(radians float64, pivot Point) {
	cosTheta := math.Cos(radians)
	sinTheta := math.Sin(radians)
	xDiff := p.X - pivot.X
	yDiff := p.Y - pivot.Y
	p.X = xDiff*cosTheta - yDiff*sinTheta + pivot.X
	p.Y = xDiff*sinTheta + yDiff*cosTheta + pivot.Y
}
