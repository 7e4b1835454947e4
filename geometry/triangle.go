package geometry

// Triangle over three vertices. The signed double area is computed once and
// cached, since the hull and triangulation algorithms query the same triangle
// repeatedly inside inner loops.
type Triangle struct {
	A, B, C *Vertex

	areaKnown  bool
	doubleArea float64
}

func NewTriangle(a, b, c *Vertex) *Triangle {
	return &Triangle{A: a, B: b, C: c}
}

// DoubleArea is twice the signed area of the triangle. Positive means the
// vertices wind counterclockwise.
func (t *Triangle) DoubleArea() float64 {
	if !t.areaKnown {
		t.doubleArea = doubleAreaOf(t.A.Point, t.B.Point, t.C.Point)
		t.areaKnown = true
	}
	return t.doubleArea
}

func (t *Triangle) Area() float64 {
	return t.DoubleArea() / 2
}

// AreaSign is 1 for counterclockwise, -1 for clockwise, 0 for collinear.
func (t *Triangle) AreaSign() int {
	area := t.DoubleArea()
	if Equal(area, 0) {
		return 0
	}
	if area > 0 {
		return 1
	}
	return -1
}

// Zero-area triangles are a first-class case, not an error. Duplicate
// vertices always count as collinear.
func (t *Triangle) HasCollinearPoints() bool {
	return t.AreaSign() == 0
}

// Contains reports whether v lies inside the triangle or on its boundary.
// The test normalizes orientation first so callers can hand in either
// winding. A degenerate triangle contains nothing.
func (t *Triangle) Contains(v *Vertex) bool {
	a, b, c := t.A.Point, t.B.Point, t.C.Point
	switch t.AreaSign() {
	case 0:
		return false
	case -1:
		b, c = c, b
	}
	return Orientation(a, b, v.Point) >= 0 &&
		Orientation(b, c, v.Point) >= 0 &&
		Orientation(c, a, v.Point) >= 0
}
