package worker

import (
	"fmt"
	"log"
	"sync"
	"time"

	"neon-ca/internal/core"
	"neon-ca/internal/eca"
)

// DefaultTimeout bounds how long the manager waits for the host to answer
// one request. Legitimate operations complete in microseconds; the timeout
// exists so a hung host surfaces as an error instead of stalling the caller
// forever.
const DefaultTimeout = 30 * time.Second

// Manager exposes an engine hosted on its own goroutine as request/response
// calls. One manager owns exactly one host; the two share no memory, only
// messages, and every buffer crossing the boundary is an independent copy.
// All methods are safe for concurrent use. Calls are delivered to the host
// in send order and each blocks until its response, its timeout, or
// Terminate.
type Manager struct {
	timeout time.Duration

	mu          sync.Mutex
	nextID      uint64
	pending     map[uint64]chan response
	initialized bool
	terminated  bool

	reqs  chan request
	resps chan response
	quit  chan struct{}
}

// NewManager returns a manager with the default timeout. The host is not
// spawned until Init.
func NewManager() *Manager {
	return &Manager{
		timeout: DefaultTimeout,
		pending: make(map[uint64]chan response),
		reqs:    make(chan request),
		resps:   make(chan response),
		quit:    make(chan struct{}),
	}
}

// SetTimeout overrides the per-request timeout. Call it before Init.
func (m *Manager) SetTimeout(d time.Duration) {
	if d > 0 {
		m.timeout = d
	}
}

// Init spawns the host, constructs its engine and waits for confirmation.
// It must be called exactly once before any other operation.
func (m *Manager) Init(rule, width, height int) error {
	m.mu.Lock()
	if m.terminated {
		m.mu.Unlock()
		return ErrTerminated
	}
	if m.initialized {
		m.mu.Unlock()
		return ErrAlreadyInitialized
	}
	m.initialized = true
	m.mu.Unlock()

	go runHost(m.reqs, m.resps, m.quit)
	go m.collect()

	_, err := m.call(request{op: opInit, rule: rule, width: width, height: height})
	return err
}

// Step advances the automaton by steps generations and returns the
// resulting frame. Counts below 1 are treated as 1.
func (m *Manager) Step(steps int) (core.Frame, error) {
	if err := m.ensureReady(); err != nil {
		return core.Frame{}, err
	}
	if steps < 1 {
		steps = 1
	}
	resp, err := m.call(request{op: opStep, steps: steps})
	return resp.frame, err
}

// Seed reseeds generation 0 and returns the reseeded frame.
func (m *Manager) Seed(seed eca.Seed) (core.Frame, error) {
	if err := m.ensureReady(); err != nil {
		return core.Frame{}, err
	}
	resp, err := m.call(request{op: opSeed, seed: seed})
	return resp.frame, err
}

// SetRule installs a new rule and returns the effective (clamped) value.
func (m *Manager) SetRule(rule int) (uint8, error) {
	if err := m.ensureReady(); err != nil {
		return 0, err
	}
	resp, err := m.call(request{op: opSetRule, rule: rule})
	return resp.rule, err
}

// Reset reseeds with the default single center cell.
func (m *Manager) Reset() (core.Frame, error) {
	if err := m.ensureReady(); err != nil {
		return core.Frame{}, err
	}
	resp, err := m.call(request{op: opReset})
	return resp.frame, err
}

// ResetWithRule installs a new rule, then reseeds.
func (m *Manager) ResetWithRule(rule int) (core.Frame, error) {
	if err := m.ensureReady(); err != nil {
		return core.Frame{}, err
	}
	resp, err := m.call(request{op: opReset, rule: rule, newRule: true})
	return resp.frame, err
}

// Snapshot returns the current frame without stepping.
func (m *Manager) Snapshot() (core.Frame, error) {
	if err := m.ensureReady(); err != nil {
		return core.Frame{}, err
	}
	resp, err := m.call(request{op: opSnapshot})
	return resp.frame, err
}

// Terminate tears the host down. Every call pending at that moment is
// rejected with ErrTerminated and the pending table is cleared; the manager
// cannot be reused afterwards.
func (m *Manager) Terminate() {
	m.mu.Lock()
	if m.terminated {
		m.mu.Unlock()
		return
	}
	m.terminated = true
	for id, ch := range m.pending {
		delete(m.pending, id)
		ch <- response{id: id, err: ErrTerminated}
	}
	m.mu.Unlock()
	close(m.quit)
}

func (m *Manager) ensureReady() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terminated {
		return ErrTerminated
	}
	if !m.initialized {
		return ErrNotInitialized
	}
	return nil
}

// call sends one request and blocks until its correlated response, the
// timeout, or termination. The pending entry is removed on every path, so a
// late response finds no caller and is dropped by collect.
func (m *Manager) call(req request) (response, error) {
	m.mu.Lock()
	if m.terminated {
		m.mu.Unlock()
		return response{}, ErrTerminated
	}
	m.nextID++
	req.id = m.nextID
	ch := make(chan response, 1)
	m.pending[req.id] = ch
	m.mu.Unlock()

	// The timer covers the whole exchange: a host that stopped reading its
	// request channel is just as hung as one that never answers.
	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case m.reqs <- req:
	case <-timer.C:
		m.drop(req.id)
		return response{}, fmt.Errorf("request %d (%s): %w", req.id, req.op, ErrTimeout)
	case <-m.quit:
		m.drop(req.id)
		return response{}, ErrTerminated
	}

	select {
	case resp := <-ch:
		return resp, resp.err
	case <-timer.C:
		m.drop(req.id)
		return response{}, fmt.Errorf("request %d (%s): %w", req.id, req.op, ErrTimeout)
	case <-m.quit:
		m.drop(req.id)
		return response{}, ErrTerminated
	}
}

// collect routes host responses to their pending callers. A response whose
// id is no longer pending (timed out or terminated) cannot correspond to a
// live caller; it is logged and dropped.
func (m *Manager) collect() {
	for {
		select {
		case <-m.quit:
			return
		case resp := <-m.resps:
			m.mu.Lock()
			ch, ok := m.pending[resp.id]
			if ok {
				delete(m.pending, resp.id)
			}
			m.mu.Unlock()
			if !ok {
				log.Printf("worker: dropping response for unknown request %d", resp.id)
				continue
			}
			ch <- resp
		}
	}
}

func (m *Manager) drop(id uint64) {
	m.mu.Lock()
	delete(m.pending, id)
	m.mu.Unlock()
}
