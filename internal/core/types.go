package core

// Size describes the dimensions of an automaton grid.
type Size struct {
	W int
	H int
}

// Area returns the total cell count of the grid.
func (s Size) Area() int { return s.W * s.H }

// Frame is the unit of data handed to a renderer: a row-major binary cell
// buffer and the generation counter it corresponds to. The cells are always
// an independent copy, so a renderer may keep or scribble on them without
// affecting the automaton.
type Frame struct {
	Cells      []uint8
	Generation int
}
