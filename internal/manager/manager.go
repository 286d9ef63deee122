package manager

import (
	"sync"
	"sync/atomic"
	"time"

	"babd/internal/backend"
	"babd/internal/download"
	"babd/internal/registry"
	"babd/internal/store"
	"babd/internal/verify"
	"babd/pkg/types"
)

// Manager owns the per-backend in-memory instances and dispatches
// translation requests. Downloads are delegated to the coordinator; disk
// state belongs to the artifact store. The instance map is the only mutable
// shared structure and mu guards every check-then-act on it.
type Manager struct {
	mu        sync.RWMutex
	instances map[string]*instance

	registry  *registry.Registry
	store     *store.Store
	downloads *download.Coordinator
	verifier  *verify.Verifier
	factory   backend.Factory
	publisher EventPublisher
	def       string

	maxQueueDepth int
	maxWait       time.Duration
	drainTimeout  time.Duration

	startTime  time.Time
	loadsTotal atomic.Uint64
}

// ListBackends returns the registry's descriptors in stable order.
func (m *Manager) ListBackends() []types.Backend { return m.registry.List() }

// DefaultBackend returns the id used when a request omits one.
func (m *Manager) DefaultBackend() string { return m.def }

// Languages returns the name->code table for a backend, failing for
// unregistered ids.
func (m *Manager) Languages(id string) (types.Backend, map[string]string, error) {
	b, err := m.resolve(id)
	if err != nil {
		return types.Backend{}, nil, err
	}
	return b, m.registry.Languages(b.ID), nil
}

// Ready reports whether the service can accept requests. The daemon is
// usable before any model is loaded, so this only reflects construction.
func (m *Manager) Ready() bool { return m.registry != nil }

// ArtifactPath returns the cache directory assigned to a backend, whether or
// not anything is downloaded yet.
func (m *Manager) ArtifactPath(id string) (string, error) {
	b, err := m.resolve(id)
	if err != nil {
		return "", err
	}
	return m.store.PathFor(b.ID), nil
}

// resolve maps an optional id to a descriptor, applying the default.
func (m *Manager) resolve(id string) (types.Backend, error) {
	if id == "" {
		id = m.def
	}
	b, ok := m.registry.Get(id)
	if !ok {
		return types.Backend{}, unknownBackendError{id: id}
	}
	return b, nil
}

// inst returns the tracked instance for id, creating the record on first
// touch. Callers must hold mu.
func (m *Manager) inst(id string) *instance {
	in := m.instances[id]
	if in == nil {
		in = &instance{
			id:      id,
			state:   StateUnloaded,
			genCh:   make(chan struct{}, 1),
			queueCh: make(chan struct{}, m.maxQueueDepth),
		}
		m.instances[id] = in
	}
	return in
}

// IsLoaded is a non-blocking status read.
func (m *Manager) IsLoaded(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	in := m.instances[id]
	return in != nil && in.state == StateLoaded
}

// Close unloads every resident backend. Used on shutdown.
func (m *Manager) Close() {
	for _, b := range m.registry.List() {
		_ = m.Unload(b.ID)
	}
}
