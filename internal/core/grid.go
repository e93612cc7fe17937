package core

// History stores the last H generations of a W-cell automaton row in a
// row-major uint8 buffer reused cyclically: generation g lives at row
// g mod H. Memory stays bounded no matter how many generations elapse.
type History struct {
	W, H int
	data []uint8
}

// NewHistory allocates a generation ring with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewHistory(w, h int) *History {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &History{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *History) Cells() []uint8 { return g.data }

// RowAt returns the slice holding generation g. The slice aliases the ring;
// it is only valid until generation g+H is written.
func (g *History) RowAt(generation int) []uint8 {
	base := (generation % g.H) * g.W
	return g.data[base : base+g.W]
}

// WrapX applies toroidal wrapping to a cell index, mapping -1 to w-1 and w
// to 0. The row is topologically a ring.
func WrapX(x, w int) int {
	return (x%w + w) % w
}

// Clear fills the ring with zeros.
func (g *History) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
