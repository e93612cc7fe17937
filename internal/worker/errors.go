package worker

import "errors"

var (
	// ErrNotInitialized is returned when any operation other than Init is
	// invoked before Init.
	ErrNotInitialized = errors.New("worker: manager not initialized")
	// ErrAlreadyInitialized is returned by a second Init on the same manager.
	ErrAlreadyInitialized = errors.New("worker: manager already initialized")
	// ErrTimeout is returned when the host fails to answer a request within
	// the manager's timeout window.
	ErrTimeout = errors.New("worker: request timed out")
	// ErrTerminated rejects every call pending at Terminate, and any call
	// made afterwards.
	ErrTerminated = errors.New("worker: manager terminated")
	// ErrUnknownOp answers a request whose operation the host does not
	// recognize. The host stays alive for subsequent requests.
	ErrUnknownOp = errors.New("worker: unknown operation")
)
