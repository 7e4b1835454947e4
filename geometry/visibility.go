package geometry

// InCone reports whether the segment from a to b leaves a through the
// interior cone at a, i.e. without immediately crossing either of a's own
// boundary edges. The segment's first vertex must belong to this polygon,
// with its adjacency intact.
//
// The case split on convexity is required because convexity flips which side
// of a's edges is inside: for a convex a, both a's neighbors must see the
// segment on the interior side; for a reflex a, the test is the complement.
func (p *Polygon) InCone(ab *LineSegment) bool {
	a := ab.V1
	ba := ab.Reverse()
	a0 := p.mustVertex(a.Prev)
	a1 := p.mustVertex(a.Next)

	if a0.LeftOn(NewLineSegment(a, a1)) {
		return a0.Left(ab) && a1.Left(ba)
	}

	// Otherwise a is reflex.
	return !(a1.LeftOn(ab) && a0.LeftOn(ba))
}

// Diagonal reports whether the segment is a valid internal diagonal: it
// leaves both endpoints through their interior cones and crosses no boundary
// edge that doesn't share an endpoint with it. The edge scan makes this O(n)
// per query.
func (p *Polygon) Diagonal(ab *LineSegment) bool {
	ba := ab.Reverse()
	return p.InCone(ab) && p.InCone(ba) && p.diagonalInternalExternal(ab)
}

func (p *Polygon) diagonalInternalExternal(ab *LineSegment) bool {
	for _, e := range p.Edges() {
		if !e.ConnectedTo(ab) && e.Intersects(ab) {
			return false
		}
	}
	return true
}
