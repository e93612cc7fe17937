package worker

import (
	"fmt"

	"neon-ca/internal/core"
	"neon-ca/internal/eca"
)

// op enumerates the operations the host understands. The set is closed;
// dispatch switches over it exhaustively and anything else is answered with
// ErrUnknownOp.
type op int

const (
	opInit op = iota
	opStep
	opSeed
	opSetRule
	opReset
	opSnapshot
)

func (o op) String() string {
	switch o {
	case opInit:
		return "init"
	case opStep:
		return "step"
	case opSeed:
		return "setInitialCondition"
	case opSetRule:
		return "setRule"
	case opReset:
		return "reset"
	case opSnapshot:
		return "getState"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// request is one in-flight call across the boundary, correlated to its
// response by id. Only the fields relevant to the operation are set.
type request struct {
	id     uint64
	op     op
	rule   int
	width  int
	height int
	steps  int
	seed   eca.Seed
	// newRule marks an opReset that also carries a rule change.
	newRule bool
}

// response answers exactly one request. The frame cells are an independent
// copy made host-side; the host retains no reference once it is sent.
type response struct {
	id    uint64
	frame core.Frame
	rule  uint8
	err   error
}
