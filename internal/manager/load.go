package manager

import (
	"context"
	"time"

	"babd/internal/backend"
	"babd/pkg/types"
)

// getOrLoad returns the resident runtime for a backend, loading it on first
// use. Loading is single-flight: concurrent callers on a cold cache await
// the one in-progress attempt and share its result. Loading never triggers
// an implicit download.
func (m *Manager) getOrLoad(ctx context.Context, b types.Backend) (backend.Runtime, error) {
	for {
		m.mu.Lock()
		in := m.inst(b.ID)
		switch in.state {
		case StateLoaded:
			in.lastUsed = time.Now()
			rt := in.runtime
			m.mu.Unlock()
			return rt, nil

		case StateDraining:
			m.mu.Unlock()
			return nil, backendBusyError{id: b.ID, reason: "unload in progress"}

		case StateLoading:
			att := in.attempt
			m.mu.Unlock()
			select {
			case <-att.done:
				if att.err != nil {
					return nil, att.err
				}
				// Re-check: an unload may have slipped in after the attempt
				// settled. Loop rather than trusting the attempt's runtime.
				continue
			case <-ctx.Done():
				return nil, timeoutError{id: b.ID}
			}

		case StateUnloaded:
			att := &loadAttempt{done: make(chan struct{})}
			in.state = StateLoading
			in.attempt = att
			m.mu.Unlock()
			rt, err := m.load(ctx, b)

			m.mu.Lock()
			if err != nil {
				in.state = StateUnloaded
				att.err = err
			} else {
				in.state = StateLoaded
				in.runtime = rt
				in.lastUsed = time.Now()
				att.runtime = rt
				m.loadsTotal.Add(1)
			}
			in.attempt = nil
			m.mu.Unlock()
			close(att.done)
			if err != nil {
				return nil, err
			}
			return rt, nil
		}
	}
}

// load performs the verify + construct sequence for one attempt.
func (m *Manager) load(ctx context.Context, b types.Backend) (backend.Runtime, error) {
	m.publisher.Publish(Event{Name: "load_start", BackendID: b.ID, Fields: map[string]any{}})
	if !m.store.IsPresent(b) {
		m.publisher.Publish(Event{Name: "load_not_downloaded", BackendID: b.ID, Fields: map[string]any{}})
		return nil, notDownloadedError{id: b.ID}
	}
	if err := m.verifier.Verify(b); err != nil {
		m.publisher.Publish(Event{Name: "load_verify_failed", BackendID: b.ID, Fields: map[string]any{"error": err.Error()}})
		return nil, err
	}
	start := time.Now()
	rt, err := m.factory(ctx, b, m.store.PathFor(b.ID))
	if err != nil {
		if ctx.Err() != nil {
			err = timeoutError{id: b.ID}
		}
		m.publisher.Publish(Event{Name: "load_failed", BackendID: b.ID, Fields: map[string]any{"error": err.Error()}})
		return nil, err
	}
	m.publisher.Publish(Event{Name: "load_ready", BackendID: b.ID, Fields: map[string]any{"dur_ms": int(time.Since(start) / time.Millisecond)}})
	return rt, nil
}

// Unload releases a backend's in-memory instance; no-op when not loaded.
// An in-progress load is waited out first, then its result released, so
// unload never races a load.
func (m *Manager) Unload(id string) error {
	for {
		m.mu.Lock()
		in := m.instances[id]
		if in == nil || in.state == StateUnloaded {
			m.mu.Unlock()
			return nil
		}
		if in.state == StateDraining {
			m.mu.Unlock()
			return backendBusyError{id: id, reason: "unload in progress"}
		}
		if in.state == StateLoading {
			att := in.attempt
			m.mu.Unlock()
			<-att.done
			continue
		}
		// Loaded: start draining to reject new enqueues.
		in.state = StateDraining
		m.mu.Unlock()
		break
	}
	m.publisher.Publish(Event{Name: "unload_start", BackendID: id, Fields: map[string]any{}})

	m.mu.RLock()
	in := m.instances[id]
	m.mu.RUnlock()

	deadline := time.Now().Add(m.drainTimeout)
	for {
		if len(in.genCh) == 0 && len(in.queueCh) == 0 {
			break
		}
		if time.Now().After(deadline) {
			m.publisher.Publish(Event{Name: "unload_timeout", BackendID: id, Fields: map[string]any{"inflight": len(in.genCh), "queue": len(in.queueCh)}})
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	m.mu.Lock()
	rt := in.runtime
	in.runtime = nil
	in.state = StateUnloaded
	m.mu.Unlock()

	var err error
	if rt != nil {
		err = rt.Close()
	}
	m.publisher.Publish(Event{Name: "unload_done", BackendID: id, Fields: map[string]any{}})
	return err
}
