package eca

import (
	"neon-ca/internal/core"
)

// Engine owns one elementary cellular automaton: its transition rule, a
// rolling history of the last H generations and the generation counter. It
// is purely synchronous; concurrency lives in the worker package.
type Engine struct {
	size    core.Size
	rule    uint8
	table   [8]uint8
	hist    *core.History
	gen     int
	scratch []uint8
}

// New creates an automaton with the given rule and dimensions and seeds it
// with a single active center cell. The rule is clamped to [0, 255] and
// non-positive dimensions to 1.
func New(rule, width, height int) *Engine {
	hist := core.NewHistory(width, height)
	e := &Engine{
		size:    core.Size{W: hist.W, H: hist.H},
		hist:    hist,
		scratch: make([]uint8, hist.W),
	}
	e.SetRule(rule)
	e.SetSeed(SingleSeed())
	return e
}

// Size returns the grid dimensions: cells per row and history capacity.
func (e *Engine) Size() core.Size { return e.size }

// Rule returns the effective (clamped) rule number.
func (e *Engine) Rule() uint8 { return e.rule }

// Generation returns how many steps have been computed since the last seed.
func (e *Engine) Generation() int { return e.gen }

// SetRule installs a new transition rule, clamping out-of-range values, and
// recomputes the lookup table. History and generation counter are untouched;
// the rule takes effect on the next Step.
func (e *Engine) SetRule(rule int) {
	e.rule = ClampRule(rule)
	e.table = Table(e.rule)
}

// SetSeed reseeds generation 0 from the given initial condition, clearing
// the rest of the history and resetting the counter.
func (e *Engine) SetSeed(seed Seed) {
	e.hist.Clear()
	e.gen = 0
	seed.apply(e.hist.RowAt(0))
}

// Reset reseeds with the default single center cell.
func (e *Engine) Reset() { e.SetSeed(SingleSeed()) }

// Step computes one new generation from the current row and advances the
// counter. Each cell's next state is the table entry for its wrapped
// three-cell neighborhood; the new row is fully written before the counter
// moves, so no reader observes a partial generation.
func (e *Engine) Step() {
	w := e.size.W
	cur := e.hist.RowAt(e.gen)
	next := e.hist.RowAt(e.gen + 1)
	if e.size.H == 1 {
		// A single-row history makes next alias cur; stage through scratch.
		next = e.scratch
	}
	for x := 0; x < w; x++ {
		left := cur[core.WrapX(x-1, w)]
		center := cur[x]
		right := cur[core.WrapX(x+1, w)]
		next[x] = e.table[(left<<2)|(center<<1)|right]
	}
	if e.size.H == 1 {
		copy(e.hist.RowAt(e.gen+1), e.scratch)
	}
	e.gen++
}

// Generate calls Step the given number of times. Non-positive counts are a
// no-op.
func (e *Engine) Generate(steps int) {
	for i := 0; i < steps; i++ {
		e.Step()
	}
}

// CurrentRow returns an independent copy of the newest generation row.
func (e *Engine) CurrentRow() []uint8 {
	row := make([]uint8, e.size.W)
	copy(row, e.hist.RowAt(e.gen))
	return row
}

// Snapshot returns an independent row-major copy of the history, ordered
// oldest to newest. Until the ring wraps the layout matches generation order
// from the seed; afterwards the window scrolls so the newest generation is
// always the last row.
func (e *Engine) Snapshot() []uint8 {
	w, h := e.size.W, e.size.H
	out := make([]uint8, w*h)
	start := 0
	if e.gen >= h {
		start = e.gen - (h - 1)
	}
	for r := 0; r < h; r++ {
		copy(out[r*w:(r+1)*w], e.hist.RowAt(start+r))
	}
	return out
}
