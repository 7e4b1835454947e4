package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two x-separated triangles carved out of one parent polygon: ids 0, 1, 5
// form the left triangle and 2, 3, 4 the right one.
func tangentChains(t *testing.T) (*Polygon, Chain, Chain) {
	parent := requirePolygon(t, []Point{{0, 0}, {2, 0}, {5, 0}, {7, 0}, {6, 2}, {1, 2}})
	left := parent.SubPolygon([]VertexID{0, 1, 5}, false)
	right := parent.SubPolygon([]VertexID{2, 3, 4}, false)
	return parent, left, right
}

func TestLowerTangentVertices(t *testing.T) {
	_, left, right := tangentChains(t)
	a, b := lowerTangentVertices(left, right)
	assert.Equal(t, VertexID(1), a.ID)
	assert.Equal(t, VertexID(2), b.ID)
}

func TestUpperTangentVertices(t *testing.T) {
	_, left, right := tangentChains(t)
	a, b := upperTangentVertices(left, right)
	assert.Equal(t, VertexID(5), a.ID)
	assert.Equal(t, VertexID(4), b.ID)
}

func TestExtractBoundary(t *testing.T) {
	_, left, right := tangentChains(t)
	ltA, ltB := lowerTangentVertices(left, right)
	utA, utB := upperTangentVertices(left, right)

	boundary := extractBoundary(left, right, ltA.ID, ltB.ID, utA.ID, utB.ID)
	assert.Equal(t, []VertexID{2, 3, 4, 5, 0, 1}, boundary)
}

func TestTangentWalkWithSegmentChains(t *testing.T) {
	// The chains degrade to segments for two-vertex pieces; tangents between
	// two segments stitch a full quadrilateral
	parent := requirePolygon(t, []Point{{0, 0}, {5, 0}, {4, 2}, {1, 2}})
	left := parent.LineSegment(0, 3)
	right := parent.LineSegment(2, 1)

	a, b := lowerTangentVertices(left, right)
	assert.Equal(t, VertexID(0), a.ID)
	assert.Equal(t, VertexID(1), b.ID)

	a, b = upperTangentVertices(left, right)
	assert.Equal(t, VertexID(3), a.ID)
	assert.Equal(t, VertexID(2), b.ID)
}

func TestExtremeVertexComparators(t *testing.T) {
	near := &Vertex{ID: 0, Point: Point{0, 0}}
	far := &Vertex{ID: 1, Point: Point{5, Tolerance / 10}}
	vertices := []*Vertex{near, far}

	// The Y values tie within tolerance, so X breaks the tie
	assert.Equal(t, far, extremeVertex(vertices, lowerThenRighter))
	assert.Equal(t, far, extremeVertex(vertices, righterThenLower))
	assert.Equal(t, near, extremeVertex(vertices, lefterThenHigher))
	assert.Equal(t, near, extremeVertex(vertices, lefterThenLower))
	assert.Equal(t, far, extremeVertex(vertices, righterThenHigher))

	assert.Panics(t, func() { extremeVertex(nil, lowerThenRighter) })
}
