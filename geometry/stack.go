package geometry

// VertexStack backs the Graham scan's incremental hull. Pop on an empty
// stack returns nil rather than panicking; the scan guards its own depth.
type VertexStack []*Vertex

func (s *VertexStack) Push(v *Vertex) {
	*s = append(*s, v)
}

func (s *VertexStack) Pop() *Vertex {
	if len(*s) == 0 {
		return nil
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Peek() *Vertex {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// NextToTop is the vertex just under the top of the stack.
func (s *VertexStack) NextToTop() *Vertex {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *VertexStack) Len() int {
	return len(*s)
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}
