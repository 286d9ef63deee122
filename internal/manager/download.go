package manager

import (
	"context"
	"time"
)

// EnsureDownloaded makes a backend's artifacts present on disk, delegating
// to the download coordinator (single-flight per id). force re-fetches even
// when artifacts exist.
func (m *Manager) EnsureDownloaded(ctx context.Context, id string, force bool) error {
	b, err := m.resolve(id)
	if err != nil {
		return err
	}
	// A forced re-download must not rip artifacts out from under a resident
	// or loading instance.
	if force {
		m.mu.RLock()
		in := m.instances[b.ID]
		busy := in != nil && in.state != StateUnloaded
		m.mu.RUnlock()
		if busy {
			return backendBusyError{id: b.ID, reason: "loaded or loading; unload before force re-download"}
		}
	}
	start := time.Now()
	m.publisher.Publish(Event{Name: "download_start", BackendID: b.ID, Fields: map[string]any{"force": force}})
	if err := m.downloads.EnsureDownloaded(ctx, b, force); err != nil {
		m.publisher.Publish(Event{Name: "download_failed", BackendID: b.ID, Fields: map[string]any{"error": err.Error()}})
		return err
	}
	m.publisher.Publish(Event{Name: "download_done", BackendID: b.ID, Fields: map[string]any{"dur_ms": int(time.Since(start) / time.Millisecond)}})
	return nil
}
