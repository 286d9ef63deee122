package manager

import (
	"context"
	"time"
)

// beginTranslation reserves a queue slot and then the single in-flight slot.
// Returns a release func to be deferred.
func (m *Manager) beginTranslation(ctx context.Context, id string) (func(), error) {
	m.mu.RLock()
	in := m.instances[id]
	m.mu.RUnlock()
	if in == nil {
		return func() {}, unknownBackendError{id: id}
	}
	// If draining, reject new work to allow graceful unload.
	if in.state == StateDraining {
		return func() {}, backendBusyError{id: id, reason: "draining"}
	}

	// Fast path: respect an already-canceled context.
	if err := ctx.Err(); err != nil {
		return func() {}, timeoutError{id: id}
	}

	timer := time.NewTimer(m.maxWait)
	defer timer.Stop()
	select {
	case in.queueCh <- struct{}{}:
		// reserved queue slot
	case <-ctx.Done():
		return func() {}, timeoutError{id: id}
	case <-timer.C:
		return func() {}, backendBusyError{id: id, reason: "queue full"}
	}

	// Wait to acquire the single in-flight slot.
	acquired := false
	defer func() {
		if !acquired {
			<-in.queueCh
		}
	}()
	if err := ctx.Err(); err != nil {
		return func() {}, timeoutError{id: id}
	}
	timer2 := time.NewTimer(m.maxWait)
	defer timer2.Stop()
	select {
	case in.genCh <- struct{}{}:
		acquired = true
		m.mu.Lock()
		in.lastUsed = time.Now()
		m.mu.Unlock()
		return func() { <-in.genCh; <-in.queueCh }, nil
	case <-ctx.Done():
		return func() {}, timeoutError{id: id}
	case <-timer2.C:
		return func() {}, backendBusyError{id: id, reason: "busy"}
	}
}
