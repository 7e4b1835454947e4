package geometry

import "sort"

// ConvexHullComputer is the single contract all six hull strategies share:
// the returned polygon's boundary is the convex hull of the input's vertex
// set, counterclockwise, with collinear boundary runs collapsed to the
// extreme endpoints of each hull edge. The input is never mutated, and the
// hull's vertices keep their source ids.
type ConvexHullComputer interface {
	ConvexHull(p *Polygon) *Polygon
}

// Algorithms returns every hull computer keyed by name. The set is the basis
// for cross-algorithm agreement testing: all entries must produce identical
// hull vertex id sets for the same input.
func Algorithms() map[string]ConvexHullComputer {
	return map[string]ConvexHullComputer{
		"interior_points": InteriorPoints{},
		"extreme_edges":   ExtremeEdges{},
		"gift_wrapping":   GiftWrapping{},
		"quick_hull":      QuickHull{},
		"graham_scan":     GrahamScan{},
		"divide_conquer":  DivideConquer{},
	}
}

// InteriorPoints is the O(n^4) brute force: a vertex is interior exactly
// when some triangle of three other vertices contains it, and the hull is
// every vertex never found interior. It exists as a correctness baseline for
// the faster strategies.
type InteriorPoints struct{}

// InteriorVertexIDs returns the ids of all vertices contained in a triangle
// of three other vertices. Containment is closed, so a vertex lying on a
// triangle's edge (a collinear boundary point) counts as interior.
func (ip InteriorPoints) InteriorVertexIDs(p *Polygon) map[VertexID]struct{} {
	interior := make(map[VertexID]struct{})
	ids := p.VertexIDs()

	for _, candidate := range ids {
		if ip.containedInSomeTriangle(p, candidate, ids) {
			interior[candidate] = struct{}{}
		}
	}
	return interior
}

func (ip InteriorPoints) containedInSomeTriangle(p *Polygon, candidate VertexID, ids []VertexID) bool {
	v := p.mustVertex(candidate)
	for i, id1 := range ids {
		if id1 == candidate {
			continue
		}
		for j, id2 := range ids[i+1:] {
			if id2 == candidate {
				continue
			}
			for _, id3 := range ids[i+1+j+1:] {
				if id3 == candidate {
					continue
				}
				if p.Triangle(id1, id2, id3).Contains(v) {
					return true
				}
			}
		}
	}
	return false
}

func (ip InteriorPoints) ConvexHull(p *Polygon) *Polygon {
	interior := ip.InteriorVertexIDs(p)
	hullIDs := make([]VertexID, 0, p.NumVertices()-len(interior))
	for _, id := range p.VertexIDs() {
		if _, ok := interior[id]; !ok {
			hullIDs = append(hullIDs, id)
		}
	}
	return p.SubPolygon(hullIDs, true)
}

// ExtremeEdges enumerates every ordered vertex pair and keeps the pairs with
// all other vertices on or to the left: the O(n^3) hull by edge enumeration.
type ExtremeEdges struct{}

// ExtremeEdgeIDs returns the directed hull edges as ordered id pairs, with
// collinear chains already collapsed: if the raw edge set contains a chain
// x-y-z, only the extreme edge x-z survives.
func (ee ExtremeEdges) ExtremeEdgeIDs(p *Polygon) [][2]VertexID {
	ids := p.VertexIDs()
	edges := make([][2]VertexID, 0)

	for _, id1 := range ids {
		for _, id2 := range ids {
			if id1 == id2 {
				continue
			}
			ls := p.LineSegment(id1, id2)
			isExtreme := true
			for _, id3 := range ids {
				if id3 == id1 || id3 == id2 {
					continue
				}
				if !p.mustVertex(id3).LeftOn(ls) {
					isExtreme = false
					break
				}
			}
			if isExtreme {
				edges = append(edges, [2]VertexID{id1, id2})
			}
		}
	}

	// The raw edge set can chain collinear points even when the polygon has
	// none on its hull: for a chain x-y-z all of x-y, y-z and x-z are
	// extreme. Per shared endpoint and direction, keep only the farthest.
	return ee.removeCollinearEdges(edges, p)
}

func (ee ExtremeEdges) removeCollinearEdges(edges [][2]VertexID, p *Polygon) [][2]VertexID {
	dedupe := func(key int) {
		sort.Slice(edges, func(i, j int) bool {
			if edges[i][key] != edges[j][key] {
				return edges[i][key] < edges[j][key]
			}
			return p.DistanceBetween(edges[i][0], edges[i][1]) > p.DistanceBetween(edges[j][0], edges[j][1])
		})
		kept := edges[:0]
		for _, e := range edges {
			if len(kept) > 0 && kept[len(kept)-1][key] == e[key] {
				continue
			}
			kept = append(kept, e)
		}
		edges = kept
	}
	dedupe(0)
	dedupe(1)
	return edges
}

func (ee ExtremeEdges) ConvexHull(p *Polygon) *Polygon {
	seen := make(map[VertexID]struct{})
	hullIDs := make([]VertexID, 0)
	for _, edge := range ee.ExtremeEdgeIDs(p) {
		for _, id := range edge {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				hullIDs = append(hullIDs, id)
			}
		}
	}
	return p.SubPolygon(hullIDs, true)
}

// GiftWrapping walks the hull directly: starting from the rightmost-lowest
// vertex, it repeatedly picks the vertex with the least counterclockwise
// angle from the previous hull edge. O(n*h) for a hull of h vertices.
type GiftWrapping struct{}

func (GiftWrapping) ConvexHull(p *Polygon) *Polygon {
	// The starting edge is a synthetic horizontal ray into the start vertex
	// from the left, so the first angle sweep begins pointing along +x.
	v0 := p.RightmostLowestVertex()
	start := &Vertex{ID: -1, Point: Point{X: v0.X - 1, Y: v0.Y}}
	e := NewLineSegment(start, v0)
	vi := v0

	hullIDs := []VertexID{v0.ID}
	for {
		var best *Vertex
		var bestAngle float64
		for _, v := range p.Vertices() {
			if v.ID == vi.ID {
				continue
			}
			angle := e.AngleToVertex(v)
			switch {
			case best == nil:
				best, bestAngle = v, angle
			case Equal(angle, bestAngle):
				// Collinear candidates tie on angle; prefer the farther one
				// so interior collinear points never enter the hull.
				if vi.DistanceTo(v) > vi.DistanceTo(best) {
					best = v
				}
			case angle < bestAngle:
				best, bestAngle = v, angle
			}
		}

		e = p.LineSegment(vi.ID, best.ID)
		vi = best
		if vi.ID == v0.ID {
			break
		}
		hullIDs = append(hullIDs, vi.ID)
	}

	return p.SubPolygon(hullIDs, true)
}

// QuickHull partitions by the segment between the extreme max-x and min-x
// vertices, then repeatedly splits each partition at its farthest point. The
// recursion is driven by an explicit work stack to bound stack depth.
// Average O(n log n), worst case O(n^2).
type QuickHull struct{}

type quickHullFrame struct {
	a, b     VertexID
	vertices []*Vertex
}

func (QuickHull) ConvexHull(p *Polygon) *Polygon {
	x := p.LowestRightmostVertex()
	y := p.HighestLeftmostVertex()
	hullIDs := []VertexID{x.ID, y.ID}

	xy := p.LineSegment(x.ID, y.ID)
	yx := xy.Reverse()
	var s1, s2 []*Vertex
	for _, v := range p.Vertices() {
		if v.ID == x.ID || v.ID == y.ID {
			continue
		}
		// Strict sidedness drops points collinear with the partition line,
		// which can never be hull corners.
		if v.Right(xy) {
			s1 = append(s1, v)
		} else if v.Right(yx) {
			s2 = append(s2, v)
		}
	}

	var stack []quickHullFrame
	if len(s1) > 0 {
		stack = append(stack, quickHullFrame{x.ID, y.ID, s1})
	}
	if len(s2) > 0 {
		stack = append(stack, quickHullFrame{y.ID, x.ID, s2})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ab := p.LineSegment(frame.a, frame.b)
		c := frame.vertices[0]
		for _, v := range frame.vertices[1:] {
			if ab.DistanceToVertex(v) > ab.DistanceToVertex(c) {
				c = v
			}
		}
		hullIDs = append(hullIDs, c.ID)

		ac := p.LineSegment(frame.a, c.ID)
		cb := p.LineSegment(c.ID, frame.b)
		var outerAC, outerCB []*Vertex
		for _, v := range frame.vertices {
			if v.Right(ac) {
				outerAC = append(outerAC, v)
			} else if v.Right(cb) {
				outerCB = append(outerCB, v)
			}
		}
		if len(outerAC) > 0 {
			stack = append(stack, quickHullFrame{frame.a, c.ID, outerAC})
		}
		if len(outerCB) > 0 {
			stack = append(stack, quickHullFrame{c.ID, frame.b, outerCB})
		}
	}

	return p.SubPolygon(hullIDs, true)
}

// GrahamScan sorts all vertices by polar angle around the rightmost-lowest
// vertex and scans them with a stack, popping while the next vertex is not a
// strict left turn from the top two entries. O(n log n).
type GrahamScan struct{}

func (GrahamScan) ConvexHull(p *Polygon) *Polygon {
	vertices := p.MinAngleSortedVertices()

	// The sorted list is cleaned of collinear ties, so the first entry is
	// guaranteed extreme and the initial two-vertex hull is a hull edge.
	var stack VertexStack
	stack.Push(p.RightmostLowestVertex())
	stack.Push(vertices[0])

	for _, v := range vertices[1:] {
		// If v is a left turn from the segment on top of the stack, the
		// incremental hull still looks convex and v is pushed. Otherwise the
		// hull on the stack is wrong and pops until corrected.
		for {
			if stack.Len() < 2 {
				fatalf("graham scan stack underflow; angle-sorted input was not cleaned")
			}
			ls := NewLineSegment(stack.NextToTop(), stack.Peek())
			if v.Left(ls) {
				stack.Push(v)
				break
			}
			stack.Pop()
		}
	}

	hullIDs := make([]VertexID, stack.Len())
	for i, v := range stack {
		hullIDs[i] = v.ID
	}
	return p.SubPolygon(hullIDs, true)
}

// DivideConquer sorts vertices by x, splits down to chains of at most three
// vertices, and merges adjacent chains by stitching their upper and lower
// tangent lines. O(n log n). The recursion is expressed with two explicit
// stacks whose ordering is the merge-order invariant: the split stack keeps
// rightmost pieces toward the bottom, the merge stack keeps leftmost pieces
// toward the bottom, so pieces always combine left to right.
type DivideConquer struct{}

func (dc DivideConquer) ConvexHull(p *Polygon) *Polygon {
	if p.NumVertices() == 3 {
		return p.Clone()
	}

	// Ties on x sort by decreasing y so vertical runs read in the
	// counterclockwise direction of the eventual hull boundary.
	vertices := p.Vertices()
	sort.Slice(vertices, func(i, j int) bool {
		if !Equal(vertices[i].X, vertices[j].X) {
			return vertices[i].X < vertices[j].X
		}
		return vertices[i].Y > vertices[j].Y
	})
	ids := make([]VertexID, len(vertices))
	for i, v := range vertices {
		ids[i] = v.ID
	}

	splitStack := [][]VertexID{ids}
	var mergeStack [][]VertexID

	for len(splitStack) > 0 {
		ids := splitStack[len(splitStack)-1]
		splitStack = splitStack[:len(splitStack)-1]

		mid := len(ids) / 2
		left := append([]VertexID(nil), ids[:mid]...)
		right := append([]VertexID(nil), ids[mid:]...)
		dc.orientBaseCase(left, p)
		dc.orientBaseCase(right, p)

		switch {
		case len(left) <= 3 && len(right) <= 3:
			mergeStack = append(mergeStack, left, right)
		case len(left) <= 3:
			mergeStack = append(mergeStack, left)
			splitStack = append(splitStack, right)
		default:
			splitStack = append(splitStack, right, left)
		}

		for len(mergeStack) > 1 {
			rightIDs := mergeStack[len(mergeStack)-1]
			leftIDs := mergeStack[len(mergeStack)-2]
			mergeStack = mergeStack[:len(mergeStack)-2]
			mergeStack = append(mergeStack, dc.merge(leftIDs, rightIDs, p))
		}
	}

	hull := p.SubPolygon(mergeStack[0], true)
	hull.removeCollinear()
	return hull
}

// orientBaseCase fixes a three-vertex chain into counterclockwise order. The
// x-sort alone can leave a clockwise triangle, which would reverse the
// tangent walks. A collinear triple stays in x order; the tangent predicates
// tolerate it and the final collinear cleanup removes its middle vertex.
func (dc DivideConquer) orientBaseCase(ids []VertexID, p *Polygon) {
	if len(ids) != 3 {
		return
	}
	a := p.mustVertex(ids[0]).Point
	b := p.mustVertex(ids[1]).Point
	c := p.mustVertex(ids[2]).Point
	if Orientation(a, b, c) < 0 {
		ids[1], ids[2] = ids[2], ids[1]
	}
}

func (dc DivideConquer) merge(leftIDs, rightIDs []VertexID, p *Polygon) []VertexID {
	left := dc.chain(leftIDs, p)
	right := dc.chain(rightIDs, p)

	ltA, ltB := lowerTangentVertices(left, right)
	utA, utB := upperTangentVertices(left, right)
	// Fully collinear pieces can merge down to two vertices; the chain for
	// the next merge degrades to a segment in that case.
	return extractBoundary(left, right, ltA.ID, ltB.ID, utA.ID, utB.ID)
}

func (dc DivideConquer) chain(ids []VertexID, p *Polygon) Chain {
	if len(ids) >= 3 {
		return p.SubPolygon(ids, false)
	}
	if len(ids) == 2 {
		return p.LineSegment(ids[0], ids[1])
	}
	fatalf("merge chain requires at least 2 vertices, got %d", len(ids))
	return nil
}
