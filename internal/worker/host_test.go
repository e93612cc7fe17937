package worker

import (
	"bytes"
	"errors"
	"testing"

	"neon-ca/internal/eca"
)

func TestDispatchBeforeInit(t *testing.T) {
	var engine *eca.Engine
	resp := dispatch(&engine, request{id: 3, op: opStep, steps: 1})
	if resp.id != 3 {
		t.Fatalf("response id = %d, want 3", resp.id)
	}
	if !errors.Is(resp.err, ErrNotInitialized) {
		t.Fatalf("dispatch before init: %v, want ErrNotInitialized", resp.err)
	}
}

func TestDispatchUnknownOp(t *testing.T) {
	var engine *eca.Engine
	dispatch(&engine, request{id: 1, op: opInit, rule: 30, width: 7, height: 4})

	resp := dispatch(&engine, request{id: 2, op: op(99)})
	if resp.id != 2 {
		t.Fatalf("response id = %d, want 2", resp.id)
	}
	if !errors.Is(resp.err, ErrUnknownOp) {
		t.Fatalf("unknown op: %v, want ErrUnknownOp", resp.err)
	}

	// The engine is still usable afterwards.
	resp = dispatch(&engine, request{id: 3, op: opStep, steps: 1})
	if resp.err != nil {
		t.Fatalf("step after unknown op: %v", resp.err)
	}
	if resp.frame.Generation != 1 {
		t.Fatalf("generation = %d, want 1", resp.frame.Generation)
	}
}

func TestDispatchFrameIsIndependent(t *testing.T) {
	var engine *eca.Engine
	dispatch(&engine, request{id: 1, op: opInit, rule: 30, width: 7, height: 4})

	resp := dispatch(&engine, request{id: 2, op: opSnapshot})
	for i := range resp.frame.Cells {
		resp.frame.Cells[i] = 9
	}
	again := dispatch(&engine, request{id: 3, op: opSnapshot})
	if !bytes.Equal(again.frame.Cells, engine.Snapshot()) {
		t.Fatal("mutating a response frame corrupted the hosted engine")
	}
	for _, v := range again.frame.Cells {
		if v != 0 && v != 1 {
			t.Fatalf("hosted engine holds non-binary cell %d", v)
		}
	}
}

func TestHostAnswersInOrder(t *testing.T) {
	reqs := make(chan request)
	resps := make(chan response, 3)
	quit := make(chan struct{})
	defer close(quit)

	go runHost(reqs, resps, quit)

	reqs <- request{id: 1, op: opInit, rule: 30, width: 7, height: 4}
	reqs <- request{id: 2, op: op(42)}
	reqs <- request{id: 3, op: opStep, steps: 2}

	first := <-resps
	if first.id != 1 || first.err != nil {
		t.Fatalf("init response: id=%d err=%v", first.id, first.err)
	}
	second := <-resps
	if second.id != 2 || !errors.Is(second.err, ErrUnknownOp) {
		t.Fatalf("unknown-op response: id=%d err=%v", second.id, second.err)
	}
	third := <-resps
	if third.id != 3 || third.err != nil {
		t.Fatalf("step response: id=%d err=%v", third.id, third.err)
	}
	if third.frame.Generation != 2 {
		t.Fatalf("generation = %d, want 2", third.frame.Generation)
	}
}
