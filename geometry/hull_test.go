package geometry

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithms(t *testing.T) {
	algorithms := Algorithms()
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"divide_conquer",
		"extreme_edges",
		"gift_wrapping",
		"graham_scan",
		"interior_points",
		"quick_hull",
	}, names)
}

// Every strategy must produce the same hull for the same input, so each case
// runs under all six of them.
func TestConvexHullAgreement(t *testing.T) {
	cases := []struct {
		name    string
		build   func(t *testing.T) *Polygon
		hullIDs []VertexID
	}{
		{
			name:    "triangle",
			build:   rightTrianglePolygon,
			hullIDs: []VertexID{0, 1, 2},
		},
		{
			name:    "square",
			build:   squarePolygon,
			hullIDs: []VertexID{0, 1, 2, 3},
		},
		{
			name: "square with edge midpoints",
			build: func(t *testing.T) *Polygon {
				return requirePolygon(t, []Point{
					{0, 0}, {2, 0}, {4, 0}, {4, 2}, {4, 4}, {2, 4}, {0, 4}, {0, 2},
				})
			},
			hullIDs: []VertexID{0, 2, 4, 6},
		},
		{
			name:    "degenerate quad",
			build:   degenerateQuadPolygon,
			hullIDs: []VertexID{0, 1, 2},
		},
		{
			name: "comb",
			build: func(t *testing.T) *Polygon {
				return LoadFixture("comb")
			},
			hullIDs: []VertexID{0, 1, 2, 8},
		},
		{
			name: "plateau",
			build: func(t *testing.T) *Polygon {
				return LoadFixture("plateau")
			},
			hullIDs: []VertexID{0, 3, 4, 5, 6},
		},
		{
			name: "star",
			build: func(t *testing.T) *Polygon {
				return SimpleStar()
			},
			hullIDs: []VertexID{0, 2, 4, 6, 8},
		},
	}

	for name, computer := range Algorithms() {
		name, computer := name, computer
		for _, tc := range cases {
			tc := tc
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				p := tc.build(t)
				numVertices := p.NumVertices()

				hull := computer.ConvexHull(p)
				assert.Equal(t, tc.hullIDs, hull.VertexIDs())
				// Hulls wind counterclockwise
				assert.Greater(t, hull.DoubleArea(), 0.0)
				// The input polygon is never mutated
				assert.Equal(t, numVertices, p.NumVertices())
			})
		}
	}
}

// Hull vertices of a simple polygon occur in boundary order, so the hull's
// cycle must follow the input cycle.
func TestConvexHullFollowsBoundaryOrder(t *testing.T) {
	comb := LoadFixture("comb")
	hull := GrahamScan{}.ConvexHull(comb)

	assert.Equal(t, VertexID(0), hull.Anchor())
	assert.Equal(t, VertexID(1), hull.NextVertex(0).ID)
	assert.Equal(t, VertexID(2), hull.NextVertex(1).ID)
	assert.Equal(t, VertexID(8), hull.NextVertex(2).ID)
	assert.Equal(t, VertexID(0), hull.NextVertex(8).ID)
}

func TestConvexHullIdempotent(t *testing.T) {
	star := SimpleStar()
	hull := QuickHull{}.ConvexHull(star)
	again := QuickHull{}.ConvexHull(hull)
	assert.Equal(t, hull.VertexIDs(), again.VertexIDs())
}

func TestInteriorVertexIDs(t *testing.T) {
	t.Run("degenerate quad", func(t *testing.T) {
		// The vertex on the boundary segment counts as interior; closed
		// containment is what eliminates collinear points from the hull
		interior := InteriorPoints{}.InteriorVertexIDs(degenerateQuadPolygon(t))
		assert.Equal(t, map[VertexID]struct{}{3: {}}, interior)
	})

	t.Run("comb", func(t *testing.T) {
		// Valleys are strictly interior; tooth tips lie on the top hull edge
		interior := InteriorPoints{}.InteriorVertexIDs(LoadFixture("comb"))
		assert.Equal(t, map[VertexID]struct{}{
			3: {}, 4: {}, 5: {}, 6: {}, 7: {},
		}, interior)
	})
}

func TestExtremeEdgeIDs(t *testing.T) {
	// The bottom edge is a four-vertex collinear chain; only the full-length
	// edge survives the cleanup
	plateau := LoadFixture("plateau")
	edges := ExtremeEdges{}.ExtremeEdgeIDs(plateau)
	assert.ElementsMatch(t, [][2]VertexID{
		{0, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0},
	}, edges)
}

func TestGiftWrappingCollinearTies(t *testing.T) {
	// Between two candidates at the same angle the farther one wins, so the
	// midpoints never enter the hull
	p := requirePolygon(t, []Point{
		{0, 0}, {2, 0}, {4, 0}, {4, 2}, {4, 4}, {2, 4}, {0, 4}, {0, 2},
	})
	hull := GiftWrapping{}.ConvexHull(p)
	assert.Equal(t, []VertexID{0, 2, 4, 6}, hull.VertexIDs())
}

func TestDivideConquerCollinearMerge(t *testing.T) {
	// The split puts the on-edge vertex and a corner into one two-vertex
	// chain; the merge and final cleanup must still reduce to the triangle
	hull := DivideConquer{}.ConvexHull(degenerateQuadPolygon(t))
	require.Equal(t, []VertexID{0, 1, 2}, hull.VertexIDs())
	assert.Equal(t, VertexID(1), hull.NextVertex(0).ID)
	assert.Equal(t, VertexID(2), hull.NextVertex(1).ID)
}

func TestDivideConquerVerticalChains(t *testing.T) {
	// Splitting a square with edge midpoints produces chains that share an x
	// coordinate, which exercises the tangent walks on vertical boundaries
	p := requirePolygon(t, []Point{
		{0, 0}, {2, 0}, {4, 0}, {4, 2}, {4, 4}, {2, 4}, {0, 4}, {0, 2},
	})
	hull := DivideConquer{}.ConvexHull(p)
	assert.Equal(t, []VertexID{0, 2, 4, 6}, hull.VertexIDs())
}
