package manager

// Remove unloads a backend and deletes its artifacts from disk. Idempotent:
// removing an absent backend succeeds. A remove racing an in-flight load or
// download for the same id is rejected with BackendBusy rather than blocked,
// so state can never be corrupted mid-transfer.
func (m *Manager) Remove(id string) error {
	b, err := m.resolve(id)
	if err != nil {
		return err
	}
	if m.downloads.InFlight(b.ID) {
		return backendBusyError{id: b.ID, reason: "download in progress"}
	}
	m.mu.RLock()
	in := m.instances[b.ID]
	loading := in != nil && (in.state == StateLoading || in.state == StateDraining)
	m.mu.RUnlock()
	if loading {
		return backendBusyError{id: b.ID, reason: "load or unload in progress"}
	}
	if err := m.Unload(b.ID); err != nil {
		return err
	}
	if err := m.store.Remove(b.ID); err != nil {
		return err
	}
	m.publisher.Publish(Event{Name: "remove_done", BackendID: b.ID, Fields: map[string]any{}})
	return nil
}
