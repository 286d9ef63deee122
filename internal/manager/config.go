package manager

import (
	"time"

	"babd/internal/backend"
	"babd/internal/download"
	"babd/internal/registry"
	"babd/internal/store"
	"babd/internal/verify"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultMaxWait       = 30 * time.Second
	defaultDrainTimeout  = 10 * time.Second
)

// Config encapsulates all tunables for Manager construction.
type Config struct {
	Registry  *registry.Registry
	Store     *store.Store
	Downloads *download.Coordinator
	Verifier  *verify.Verifier
	Factory   backend.Factory
	Publisher EventPublisher
	// DefaultBackend is used when a request omits a backend id; falls back
	// to the registry default when empty.
	DefaultBackend string
	MaxQueueDepth  int
	MaxWait        time.Duration
	DrainTimeout   time.Duration
}

// New constructs a Manager from Config.
func New(cfg Config) *Manager {
	m := &Manager{
		registry:  cfg.Registry,
		store:     cfg.Store,
		downloads: cfg.Downloads,
		verifier:  cfg.Verifier,
		factory:   cfg.Factory,
		publisher: cfg.Publisher,
		def:       cfg.DefaultBackend,
		instances: make(map[string]*instance),
		startTime: time.Now(),
	}
	if m.publisher == nil {
		m.publisher = noopPublisher{}
	}
	if m.def == "" && cfg.Registry != nil {
		m.def = cfg.Registry.DefaultID()
	}
	if cfg.MaxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	} else {
		m.maxQueueDepth = cfg.MaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		m.maxWait = defaultMaxWait
	} else {
		m.maxWait = cfg.MaxWait
	}
	if cfg.DrainTimeout <= 0 {
		m.drainTimeout = defaultDrainTimeout
	} else {
		m.drainTimeout = cfg.DrainTimeout
	}
	return m
}
