package geometry

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Polygon owns its vertices. The boundary is a cyclic doubly-linked structure
// stored as an arena: a map from id to vertex record holding prev/next ids
// rather than raw links. That gives stable identity, safe removal during
// triangulation, and no aliasing between a polygon and its sub-polygons.
//
// The anchor is the traversal start point and the apex of the area fan. The
// construction order of the input points determines the boundary cycle, and
// is assumed to already trace a simple, consistently oriented polygon; the
// constructor does not verify simplicity.
type Polygon struct {
	vertexMap map[VertexID]*Vertex
	anchor    VertexID
}

func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, errors.Errorf("polygon requires at least 3 points, got %d", len(points))
	}

	numPoints := len(points)
	vertexMap := make(map[VertexID]*Vertex, numPoints)
	for i, point := range points {
		vertexMap[VertexID(i)] = &Vertex{
			ID:    VertexID(i),
			Point: point,
			Prev:  VertexID(CircularIndex(i-1, numPoints)),
			Next:  VertexID(CircularIndex(i+1, numPoints)),
		}
	}
	return &Polygon{vertexMap: vertexMap, anchor: 0}, nil
}

func (p *Polygon) NumVertices() int {
	return len(p.vertexMap)
}

func (p *Polygon) Anchor() VertexID {
	return p.anchor
}

// VertexIDs returns all ids in ascending order, for deterministic iteration.
func (p *Polygon) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, len(p.vertexMap))
	for id := range p.vertexMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (p *Polygon) Vertices() []*Vertex {
	ids := p.VertexIDs()
	vertices := make([]*Vertex, len(ids))
	for i, id := range ids {
		vertices[i] = p.vertexMap[id]
	}
	return vertices
}

// Vertex is the public lookup boundary: an unknown id is a recoverable
// error here. The internal lookups deeper in the algorithms treat a miss as
// corrupted state and panic instead.
func (p *Polygon) Vertex(id VertexID) (*Vertex, error) {
	v, ok := p.vertexMap[id]
	if !ok {
		return nil, errors.Errorf("vertex %d is not part of this polygon", id)
	}
	return v, nil
}

func (p *Polygon) mustVertex(id VertexID) *Vertex {
	v, ok := p.vertexMap[id]
	if !ok {
		fatalf("missing vertex %d; polygon adjacency is corrupted", id)
	}
	return v
}

func (p *Polygon) PrevVertex(id VertexID) *Vertex {
	return p.mustVertex(p.mustVertex(id).Prev)
}

func (p *Polygon) NextVertex(id VertexID) *Vertex {
	return p.mustVertex(p.mustVertex(id).Next)
}

func (p *Polygon) LineSegment(id1, id2 VertexID) *LineSegment {
	return NewLineSegment(p.mustVertex(id1), p.mustVertex(id2))
}

func (p *Polygon) Triangle(id1, id2, id3 VertexID) *Triangle {
	return NewTriangle(p.mustVertex(id1), p.mustVertex(id2), p.mustVertex(id3))
}

func (p *Polygon) DistanceBetween(id1, id2 VertexID) float64 {
	return p.mustVertex(id1).DistanceTo(p.mustVertex(id2))
}

// Edges walks the cycle once from the anchor back to the anchor. Each call
// recomputes, so callers may restart freely.
func (p *Polygon) Edges() []*LineSegment {
	edges := make([]*LineSegment, 0, len(p.vertexMap))
	currentID := p.anchor
	for {
		current := p.mustVertex(currentID)
		next := p.mustVertex(current.Next)
		edges = append(edges, NewLineSegment(current, next))
		currentID = next.ID
		if currentID == p.anchor {
			break
		}
	}
	return edges
}

// DoubleArea sums the signed double areas of the fan triangles (anchor, v,
// next(v)) over the whole cycle. The pair containing the anchor contributes
// zero area, so the choice of anchor does not affect the total. The result is
// positive for a counterclockwise boundary.
func (p *Polygon) DoubleArea() float64 {
	anchor := p.mustVertex(p.anchor)
	area := 0.0
	currentID := p.anchor
	for {
		v1 := p.mustVertex(currentID)
		v2 := p.mustVertex(v1.Next)
		area += NewTriangle(anchor, v1, v2).DoubleArea()
		currentID = v2.ID
		if currentID == p.anchor {
			break
		}
	}
	return area
}

func (p *Polygon) Area() float64 {
	return p.DoubleArea() / 2
}

func (p *Polygon) Clone() *Polygon {
	vertexMap := make(map[VertexID]*Vertex, len(p.vertexMap))
	for id, v := range p.vertexMap {
		clone := *v
		vertexMap[id] = &clone
	}
	return &Polygon{vertexMap: vertexMap, anchor: p.anchor}
}

// SubPolygon builds a new polygon over a subset of this polygon's vertices,
// copying the vertex records and renumbering their adjacency while keeping
// the original ids. With preserveOrientation the subset is visited in its
// original relative order along this polygon's boundary; otherwise the cycle
// follows the order of ids exactly as given, which the caller must already
// have fixed (hull algorithms emit unordered id sets and preserve
// orientation; the divide-and-conquer merge supplies pre-ordered chains).
func (p *Polygon) SubPolygon(ids []VertexID, preserveOrientation bool) *Polygon {
	if len(ids) < 3 {
		fatalf("sub-polygon requires at least 3 vertices, got %d", len(ids))
	}

	order := ids
	if preserveOrientation {
		member := make(map[VertexID]struct{}, len(ids))
		for _, id := range ids {
			p.mustVertex(id)
			member[id] = struct{}{}
		}
		order = make([]VertexID, 0, len(ids))
		currentID := p.anchor
		for {
			if _, ok := member[currentID]; ok {
				order = append(order, currentID)
			}
			currentID = p.mustVertex(currentID).Next
			if currentID == p.anchor {
				break
			}
		}
		if len(order) != len(ids) {
			fatalf("sub-polygon ids do not form a subset of the boundary cycle")
		}
	}

	numIDs := len(order)
	vertexMap := make(map[VertexID]*Vertex, numIDs)
	for i, id := range order {
		v := *p.mustVertex(id)
		v.Prev = order[CircularIndex(i-1, numIDs)]
		v.Next = order[CircularIndex(i+1, numIDs)]
		vertexMap[id] = &v
	}
	return &Polygon{vertexMap: vertexMap, anchor: order[0]}
}

// removeVertex splices the vertex out of the cycle: two map updates, no
// pointer surgery.
func (p *Polygon) removeVertex(id VertexID) {
	v := p.mustVertex(id)
	p.mustVertex(v.Prev).Next = v.Next
	p.mustVertex(v.Next).Prev = v.Prev
	if p.anchor == id {
		p.anchor = v.Next
	}
	delete(p.vertexMap, id)
}

// removeCollinear splices out every vertex whose neighbors are collinear with
// it, collapsing collinear boundary runs to their extreme endpoints. Hull
// assembly calls this as a final cleanup; a polygon never shrinks below 3
// vertices.
func (p *Polygon) removeCollinear() {
	for _, id := range p.VertexIDs() {
		if len(p.vertexMap) <= 3 {
			return
		}
		v, ok := p.vertexMap[id]
		if !ok {
			continue
		}
		prev := p.mustVertex(v.Prev)
		next := p.mustVertex(v.Next)
		if NewTriangle(prev, v, next).HasCollinearPoints() {
			p.removeVertex(id)
		}
	}
}

func (p *Polygon) RightmostLowestVertex() *Vertex {
	return extremeVertex(p.Vertices(), lowerThenRighter)
}

func (p *Polygon) LowestRightmostVertex() *Vertex {
	return extremeVertex(p.Vertices(), righterThenLower)
}

func (p *Polygon) HighestLeftmostVertex() *Vertex {
	return extremeVertex(p.Vertices(), lefterThenHigher)
}

func (p *Polygon) LowestLeftmostVertex() *Vertex {
	return extremeVertex(p.Vertices(), lefterThenLower)
}

func (p *Polygon) HighestRightmostVertex() *Vertex {
	return extremeVertex(p.Vertices(), righterThenHigher)
}

// MinAngleSortedVertices returns all vertices except the rightmost-lowest
// one, sorted by polar angle around it with ties broken by distance, and with
// collinear ties collapsed to the farthest vertex. The Graham scan relies on
// the cleaned list: its first entry is guaranteed extreme.
func (p *Polygon) MinAngleSortedVertices() []*Vertex {
	v0 := p.RightmostLowestVertex()

	vertices := make([]*Vertex, 0, len(p.vertexMap)-1)
	for _, v := range p.Vertices() {
		if v.ID != v0.ID {
			vertices = append(vertices, v)
		}
	}

	angleTo := func(v *Vertex) float64 {
		return math.Atan2(v.Y-v0.Y, v.X-v0.X)
	}
	sort.Slice(vertices, func(i, j int) bool {
		ai, aj := angleTo(vertices[i]), angleTo(vertices[j])
		if ai != aj {
			return ai < aj
		}
		return v0.DistanceTo(vertices[i]) > v0.DistanceTo(vertices[j])
	})

	// Collapse runs of vertices collinear with v0: the sort put the farthest
	// first within each run. The collinearity test, rather than exact angle
	// equality, decides what a run is.
	cleaned := vertices[:0]
	for _, v := range vertices {
		if len(cleaned) > 0 {
			last := cleaned[len(cleaned)-1]
			if Orientation(v0.Point, last.Point, v.Point) == 0 {
				continue
			}
		}
		cleaned = append(cleaned, v)
	}
	return cleaned
}
