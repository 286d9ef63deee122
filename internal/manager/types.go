package manager

import (
	"time"

	"babd/internal/backend"
)

// State represents the lifecycle state of one backend's in-memory instance.
type State string

const (
	StateUnloaded State = "unloaded"
	StateLoading  State = "loading"
	StateLoaded   State = "loaded"
	StateDraining State = "draining"
)

// loadAttempt is one load in flight. done is closed when the attempt
// settles; err and runtime are immutable afterwards, so waiters can read
// them without holding the manager lock.
type loadAttempt struct {
	done    chan struct{}
	err     error
	runtime backend.Runtime
}

// instance tracks one backend's in-memory state (zero or one runtime per
// backend id, the loader's core invariant).
type instance struct {
	id       string
	state    State
	runtime  backend.Runtime
	attempt  *loadAttempt
	lastUsed time.Time
	// Queueing primitives
	genCh   chan struct{} // size 1: single in-flight translation
	queueCh chan struct{} // buffered: queue slots
}
