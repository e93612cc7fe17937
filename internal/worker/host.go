package worker

import (
	"fmt"

	"neon-ca/internal/core"
	"neon-ca/internal/eca"
)

// runHost owns the engine for one manager. It processes requests strictly in
// arrival order and answers every one of them; a failed or malformed request
// produces an error response instead of killing the goroutine, so the host
// never stalls a caller silently.
func runHost(reqs <-chan request, resps chan<- response, quit <-chan struct{}) {
	var engine *eca.Engine
	for {
		select {
		case <-quit:
			return
		case req, ok := <-reqs:
			if !ok {
				return
			}
			resp := dispatch(&engine, req)
			select {
			case resps <- resp:
			case <-quit:
				return
			}
		}
	}
}

// dispatch applies one request to the hosted engine. Panics are recovered
// into error responses carrying the request id.
func dispatch(engine **eca.Engine, req request) (resp response) {
	resp.id = req.id
	defer func() {
		if r := recover(); r != nil {
			resp = response{id: req.id, err: fmt.Errorf("worker: %s failed: %v", req.op, r)}
		}
	}()

	if req.op == opInit {
		e := eca.New(req.rule, req.width, req.height)
		*engine = e
		resp.rule = e.Rule()
		resp.frame = frameOf(e)
		return resp
	}
	if *engine == nil {
		resp.err = fmt.Errorf("%s: %w", req.op, ErrNotInitialized)
		return resp
	}

	e := *engine
	switch req.op {
	case opStep:
		e.Generate(req.steps)
		resp.frame = frameOf(e)
	case opSeed:
		e.SetSeed(req.seed)
		resp.frame = frameOf(e)
	case opSetRule:
		e.SetRule(req.rule)
		resp.rule = e.Rule()
	case opReset:
		if req.newRule {
			e.SetRule(req.rule)
		}
		e.Reset()
		resp.rule = e.Rule()
		resp.frame = frameOf(e)
	case opSnapshot:
		resp.frame = frameOf(e)
	default:
		resp.err = fmt.Errorf("%s: %w", req.op, ErrUnknownOp)
	}
	return resp
}

// frameOf copies the engine state exactly once at the boundary. The copy is
// owned outright by whoever receives the response.
func frameOf(e *eca.Engine) core.Frame {
	return core.Frame{Cells: e.Snapshot(), Generation: e.Generation()}
}
