package manager

import (
	"time"

	"babd/pkg/types"
)

// Status computes the composite status for one backend by composing store,
// verifier, and loader reads. Never mutates state; safe to poll.
func (m *Manager) Status(id string) (types.BackendStatus, error) {
	b, err := m.resolve(id)
	if err != nil {
		return types.BackendStatus{}, err
	}
	return m.statusOf(b), nil
}

// StatusAll reports every registered backend in catalog order.
func (m *Manager) StatusAll() types.StatusResponse {
	resp := types.StatusResponse{
		CacheDir:       m.store.Root(),
		DefaultBackend: m.def,
		UptimeSeconds:  int64(time.Since(m.startTime).Seconds()),
		LoadsTotal:     m.loadsTotal.Load(),
		DownloadsTotal: m.downloads.CompletedTotal(),
	}
	for _, b := range m.registry.List() {
		resp.Backends = append(resp.Backends, m.statusOf(b))
	}
	return resp
}

func (m *Manager) statusOf(b types.Backend) types.BackendStatus {
	st := types.BackendStatus{
		Backend:     b.ID,
		State:       string(StateUnloaded),
		Downloading: m.downloads.InFlight(b.ID),
	}
	st.IsDownloaded = m.store.IsPresent(b)
	if st.IsDownloaded {
		st.IsVerified = m.verifier.Check(b).AllPresent()
	}
	if n, err := m.store.SizeOnDisk(b.ID); err == nil {
		st.SizeOnDisk = n
	}
	m.mu.RLock()
	if in := m.instances[b.ID]; in != nil {
		st.State = string(in.state)
		st.IsLoaded = in.state == StateLoaded
		if !in.lastUsed.IsZero() {
			st.LastUsed = in.lastUsed.Unix()
		}
		st.QueueLen = len(in.queueCh)
		st.Inflight = len(in.genCh)
	}
	m.mu.RUnlock()
	return st
}

// VerifyReport exposes the per-file verification results for one backend.
func (m *Manager) VerifyReport(id string) (types.VerifyResponse, error) {
	b, err := m.resolve(id)
	if err != nil {
		return types.VerifyResponse{}, err
	}
	r := m.verifier.Check(b)
	return types.VerifyResponse{
		Backend:         b.ID,
		AllFilesPresent: r.AllPresent(),
		Files:           r.Files,
	}, nil
}
