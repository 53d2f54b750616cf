package constellation

// floatsPerEdge is two xyz endpoints
const floatsPerEdge = 6

// LineBuffer is the fixed-capacity vertex array handed to render surfaces.
// It is allocated once; only the first DrawRange vertices are meaningful and
// everything past them is stale.
type LineBuffer struct {
	vertices []float32
	live     int
}

// NewLineBuffer allocates room for capacity edges
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &LineBuffer{vertices: make([]float32, capacity*floatsPerEdge)}
}

// Capacity returns the maximum number of edges the buffer holds
func (b *LineBuffer) Capacity() int {
	return len(b.vertices) / floatsPerEdge
}

// Vertices returns the whole backing array. The slice is shared and must not
// be modified.
func (b *LineBuffer) Vertices() []float32 {
	return b.vertices
}

// DrawRange returns the number of live vertices (two per edge)
func (b *LineBuffer) DrawRange() int {
	return b.live * 2
}

// Live returns the number of edges currently written
func (b *LineBuffer) Live() int {
	return b.live
}

// Segment returns the endpoints of live edge k
func (b *LineBuffer) Segment(k int) (a, c [3]float32) {
	o := k * floatsPerEdge
	copy(a[:], b.vertices[o:o+3])
	copy(c[:], b.vertices[o+3:o+6])
	return a, c
}

// write replaces the buffer contents with edges, reading endpoint
// coordinates from the flat xyz positions. Edges past capacity are not
// written. It returns the live edge count.
func (b *LineBuffer) write(edges []Edge, positions []float32) int {
	n := min(len(edges), b.Capacity())
	for k, e := range edges[:n] {
		o := k * floatsPerEdge
		copy(b.vertices[o:o+3], positions[e.A*3:e.A*3+3])
		copy(b.vertices[o+3:o+6], positions[e.B*3:e.B*3+3])
	}
	b.live = n
	return n
}
