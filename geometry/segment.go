package geometry

import "math"

// A directed segment between two vertices. It serves double duty: as a plain
// geometric object (intersection, sidedness, distance) and as a two-vertex
// chain during the divide-and-conquer hull merge, where each endpoint is the
// other's neighbor.
type LineSegment struct {
	V1, V2 *Vertex
}

func NewLineSegment(v1, v2 *Vertex) *LineSegment {
	return &LineSegment{V1: v1, V2: v2}
}

func (ls *LineSegment) Reverse() *LineSegment {
	return &LineSegment{V1: ls.V2, V2: ls.V1}
}

func (ls *LineSegment) Length() float64 {
	return ls.V1.DistanceTo(ls.V2)
}

func (ls *LineSegment) IsVertical() bool {
	return Equal(ls.V1.X, ls.V2.X)
}

// ConnectedTo reports whether the segments share an endpoint, by vertex
// identity. Used to exclude boundary edges incident to a candidate diagonal
// from the intersection scan.
func (ls *LineSegment) ConnectedTo(other *LineSegment) bool {
	return ls.V1.ID == other.V1.ID || ls.V1.ID == other.V2.ID ||
		ls.V2.ID == other.V1.ID || ls.V2.ID == other.V2.ID
}

// Intersects reports whether the segments properly cross or one segment's
// endpoint lies on the other segment.
func (ls *LineSegment) Intersects(other *LineSegment) bool {
	a, b := ls.V1.Point, ls.V2.Point
	c, d := other.V1.Point, other.V2.Point

	abc := Orientation(a, b, c)
	abd := Orientation(a, b, d)
	cda := Orientation(c, d, a)
	cdb := Orientation(c, d, b)
	if abc*abd < 0 && cda*cdb < 0 {
		return true
	}

	return c.Between(a, b) || d.Between(a, b) || a.Between(c, d) || b.Between(c, d)
}

// AngleToVertex is the counterclockwise angle, in [0, 2π), from the segment's
// direction to the direction from the segment's end toward v. Gift wrapping
// minimizes this angle to pick each successive hull vertex.
func (ls *LineSegment) AngleToVertex(v *Vertex) float64 {
	d1x := ls.V2.X - ls.V1.X
	d1y := ls.V2.Y - ls.V1.Y
	d2x := v.X - ls.V2.X
	d2y := v.Y - ls.V2.Y
	angle := math.Atan2(d1x*d2y-d1y*d2x, d1x*d2x+d1y*d2y)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// DistanceToVertex is the perpendicular distance from v to the line through
// the segment.
func (ls *LineSegment) DistanceToVertex(v *Vertex) float64 {
	length := ls.Length()
	if Equal(length, 0) {
		return ls.V1.DistanceTo(v)
	}
	return math.Abs(doubleAreaOf(ls.V1.Point, ls.V2.Point, v.Point)) / length
}

// IsLowerTangent reports whether the segment is a lower tangent to the chain
// at the chain vertex with the given id: both of that vertex's chain
// neighbors sit on or above the segment. The comparison is non-strict so a
// collinear neighbor still satisfies tangency; any collinear vertices that
// survive a merge are cleaned off the final hull.
func (ls *LineSegment) IsLowerTangent(id VertexID, chain Chain) bool {
	prev := chain.PrevVertex(id)
	next := chain.NextVertex(id)
	return prev.LeftOn(ls) && next.LeftOn(ls)
}

// IsUpperTangent is the mirror of IsLowerTangent: both chain neighbors sit on
// or below the segment.
func (ls *LineSegment) IsUpperTangent(id VertexID, chain Chain) bool {
	prev := chain.PrevVertex(id)
	next := chain.NextVertex(id)
	return prev.RightOn(ls) && next.RightOn(ls)
}

// Chain methods. A segment is a two-vertex cycle: each endpoint neighbors the
// other in both directions.

func (ls *LineSegment) PrevVertex(id VertexID) *Vertex {
	return ls.otherVertex(id)
}

func (ls *LineSegment) NextVertex(id VertexID) *Vertex {
	return ls.otherVertex(id)
}

func (ls *LineSegment) otherVertex(id VertexID) *Vertex {
	switch id {
	case ls.V1.ID:
		return ls.V2
	case ls.V2.ID:
		return ls.V1
	}
	fatalf("vertex %d is not an endpoint of segment (%d, %d)", id, ls.V1.ID, ls.V2.ID)
	return nil
}

func (ls *LineSegment) RightmostLowestVertex() *Vertex {
	return extremeVertex([]*Vertex{ls.V1, ls.V2}, lowerThenRighter)
}

func (ls *LineSegment) LowestRightmostVertex() *Vertex {
	return extremeVertex([]*Vertex{ls.V1, ls.V2}, righterThenLower)
}

func (ls *LineSegment) HighestLeftmostVertex() *Vertex {
	return extremeVertex([]*Vertex{ls.V1, ls.V2}, lefterThenHigher)
}

func (ls *LineSegment) LowestLeftmostVertex() *Vertex {
	return extremeVertex([]*Vertex{ls.V1, ls.V2}, lefterThenLower)
}

func (ls *LineSegment) HighestRightmostVertex() *Vertex {
	return extremeVertex([]*Vertex{ls.V1, ls.V2}, righterThenHigher)
}
