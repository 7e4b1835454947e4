package geometry

// Chain is a cyclic sequence of vertices with O(1) neighbor lookup and
// extreme-vertex queries. Polygons and line segments both satisfy it, which
// lets the divide-and-conquer merge treat its two- and three-vertex base
// cases uniformly with full sub-hulls.
type Chain interface {
	PrevVertex(id VertexID) *Vertex
	NextVertex(id VertexID) *Vertex
	RightmostLowestVertex() *Vertex
	LowestRightmostVertex() *Vertex
	HighestLeftmostVertex() *Vertex
	LowestLeftmostVertex() *Vertex
	HighestRightmostVertex() *Vertex
}

// The finder names read tiebreak-first: RightmostLowest is the rightmost of
// the lowest vertices, so Y is primary and X breaks ties.

func lowerThenRighter(v, best *Vertex) bool {
	if !Equal(v.Y, best.Y) {
		return v.Y < best.Y
	}
	return v.X > best.X
}

func righterThenLower(v, best *Vertex) bool {
	if !Equal(v.X, best.X) {
		return v.X > best.X
	}
	return v.Y < best.Y
}

func lefterThenHigher(v, best *Vertex) bool {
	if !Equal(v.X, best.X) {
		return v.X < best.X
	}
	return v.Y > best.Y
}

func lefterThenLower(v, best *Vertex) bool {
	if !Equal(v.X, best.X) {
		return v.X < best.X
	}
	return v.Y < best.Y
}

func righterThenHigher(v, best *Vertex) bool {
	if !Equal(v.X, best.X) {
		return v.X > best.X
	}
	return v.Y > best.Y
}

func extremeVertex(vertices []*Vertex, better func(v, best *Vertex) bool) *Vertex {
	if len(vertices) == 0 {
		fatalf("cannot take the extreme vertex of an empty chain")
	}
	best := vertices[0]
	for _, v := range vertices[1:] {
		if better(v, best) {
			best = v
		}
	}
	return best
}

// lowerTangentVertices walks each chain downward until the connecting segment
// is a lower tangent of both: a moves clockwise down the left chain, b moves
// counterclockwise down the right chain.
func lowerTangentVertices(left, right Chain) (*Vertex, *Vertex) {
	a := left.LowestRightmostVertex()
	b := right.LowestLeftmostVertex()

	lt := NewLineSegment(a, b)
	for !lt.IsLowerTangent(a.ID, left) || !lt.IsLowerTangent(b.ID, right) {
		for !lt.IsLowerTangent(a.ID, left) {
			a = left.PrevVertex(a.ID)
			lt = NewLineSegment(a, b)
		}
		for !lt.IsLowerTangent(b.ID, right) {
			b = right.NextVertex(b.ID)
			lt = NewLineSegment(a, b)
		}
	}
	return a, b
}

// upperTangentVertices mirrors lowerTangentVertices: a moves counterclockwise
// up the left chain, b moves clockwise up the right chain.
func upperTangentVertices(left, right Chain) (*Vertex, *Vertex) {
	a := left.HighestRightmostVertex()
	b := right.HighestLeftmostVertex()

	ut := NewLineSegment(a, b)
	for !ut.IsUpperTangent(a.ID, left) || !ut.IsUpperTangent(b.ID, right) {
		for !ut.IsUpperTangent(a.ID, left) {
			a = left.NextVertex(a.ID)
			ut = NewLineSegment(a, b)
		}
		for !ut.IsUpperTangent(b.ID, right) {
			b = right.PrevVertex(b.ID)
			ut = NewLineSegment(a, b)
		}
	}
	return a, b
}

// extractBoundary stitches the outer boundary of two tangent-connected
// chains: the right chain from lower to upper tangent, then the left chain
// from upper to lower. The result winds counterclockwise.
func extractBoundary(left, right Chain, ltA, ltB, utA, utB VertexID) []VertexID {
	boundary := make([]VertexID, 0)

	v := ltB
	for v != utB {
		boundary = append(boundary, v)
		v = right.NextVertex(v).ID
	}
	boundary = append(boundary, utB)

	v = utA
	for v != ltA {
		boundary = append(boundary, v)
		v = left.NextVertex(v).ID
	}
	boundary = append(boundary, ltA)

	return boundary
}
