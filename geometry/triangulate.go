package geometry

import "fmt"

// A chord of the triangulation, naming two vertex ids of the source polygon.
type Chord struct {
	A, B VertexID
}

func (c Chord) String() string {
	return fmt.Sprintf("(%d, %d)", c.A, c.B)
}

// Triangulation triangulates the polygon by ear clipping and returns the
// n-3 chords that, together with the boundary, partition it into triangles.
// The final three remaining vertices are the last triangle's own boundary,
// so no chord is emitted for them.
//
// The polygon itself is not mutated; ears are consumed from a working copy.
// If a full pass over the working cycle finds no ear, the input was not a
// simple polygon, which is an invariant violation surfaced via panic (see
// HandlePanicRecover).
func (p *Polygon) Triangulation() []Chord {
	chords := make([]Chord, 0, p.NumVertices()-3)
	work := p.Clone()

	for work.NumVertices() > 3 {
		earID, ok := work.findEar()
		if !ok {
			fatalf("no ear found among %d remaining vertices; polygon is not simple", work.NumVertices())
		}
		ear := work.mustVertex(earID)
		chords = append(chords, Chord{ear.Prev, ear.Next})
		work.removeVertex(earID)
	}
	return chords
}

// findEar walks the cycle from the anchor looking for a vertex whose two
// neighbors can be joined by a diagonal of the current (already clipped)
// polygon. Testing against the working polygon rather than the original
// keeps every emitted chord from crossing a previously emitted one.
func (p *Polygon) findEar() (VertexID, bool) {
	id := p.anchor
	for {
		v2 := p.mustVertex(id)
		if p.Diagonal(p.LineSegment(v2.Prev, v2.Next)) {
			return id, true
		}
		id = v2.Next
		if id == p.anchor {
			return 0, false
		}
	}
}
