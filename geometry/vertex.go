package geometry

// VertexID distinguishes vertices that may share coordinates. IDs are
// assigned at polygon construction and are never reused within one polygon's
// lifetime; sub-polygons keep the IDs of their source so results remain
// traceable to the input.
type VertexID int

// A vertex is a point with identity plus its neighbors in the boundary cycle.
// Prev and Next are IDs into the owning polygon's vertex map rather than
// pointers, which keeps removal during triangulation a pair of map updates.
type Vertex struct {
	ID VertexID
	Point
	Prev VertexID
	Next VertexID
}

func (v *Vertex) DistanceTo(other *Vertex) float64 {
	return v.Point.DistanceTo(other.Point)
}

// Left reports whether v is strictly to the left of the directed segment.
func (v *Vertex) Left(ls *LineSegment) bool {
	return Orientation(ls.V1.Point, ls.V2.Point, v.Point) > 0
}

// LeftOn is the non-strict variant of Left: collinear counts.
func (v *Vertex) LeftOn(ls *LineSegment) bool {
	return Orientation(ls.V1.Point, ls.V2.Point, v.Point) >= 0
}

func (v *Vertex) Right(ls *LineSegment) bool {
	return Orientation(ls.V1.Point, ls.V2.Point, v.Point) < 0
}

func (v *Vertex) RightOn(ls *LineSegment) bool {
	return Orientation(ls.V1.Point, ls.V2.Point, v.Point) <= 0
}
