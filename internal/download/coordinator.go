package download

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"babd/internal/store"
	"babd/pkg/types"
)

// TokenEnv names the environment variable holding the hub access token.
const TokenEnv = "HF_TOKEN"

// Fetcher transfers a backend's artifact set into dir. Implementations must
// respect ctx cancellation and may leave partial files behind on failure.
type Fetcher interface {
	Fetch(ctx context.Context, b types.Backend, dir, token string) error
}

// task tracks one in-flight transfer. done is closed when the transfer
// settles; err holds the outcome.
type task struct {
	done chan struct{}
	err  error
}

// Coordinator enforces at-most-one in-flight transfer per backend id.
// Concurrent callers for the same id await the existing task instead of
// starting a duplicate transfer.
type Coordinator struct {
	store   *store.Store
	fetcher Fetcher
	timeout time.Duration

	mu    sync.Mutex
	tasks map[string]*task

	completed atomic.Uint64
}

// NewCoordinator wires a coordinator over the artifact store. timeout bounds
// each transfer; 0 leaves it to the caller's context.
func NewCoordinator(st *store.Store, f Fetcher, timeout time.Duration) *Coordinator {
	return &Coordinator{store: st, fetcher: f, timeout: timeout, tasks: make(map[string]*task)}
}

// InFlight reports whether a transfer for id is currently running.
func (c *Coordinator) InFlight(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tasks[id]
	return ok
}

// CompletedTotal counts transfers finished successfully since start.
func (c *Coordinator) CompletedTotal() uint64 { return c.completed.Load() }

// EnsureDownloaded makes the backend's artifacts present on disk.
//   - Already present and not force: returns immediately, no network.
//   - Requires auth with no token in the environment: fails before any I/O.
//   - Another transfer in flight for the same id: awaits that task's result.
//   - force: removes existing artifacts, then transfers.
func (c *Coordinator) EnsureDownloaded(ctx context.Context, b types.Backend, force bool) error {
	token := os.Getenv(TokenEnv)
	if b.RequiresAuth && token == "" {
		return authRequiredError{id: b.ID}
	}
	if !force && c.store.IsPresent(b) {
		return nil
	}

	c.mu.Lock()
	if t, ok := c.tasks[b.ID]; ok {
		c.mu.Unlock()
		return c.await(ctx, b.ID, t)
	}
	t := &task{done: make(chan struct{})}
	c.tasks[b.ID] = t
	c.mu.Unlock()

	// This caller owns the transfer; it runs in the calling goroutine so the
	// initiator's context bounds it. Waiters join via the task channel.
	t.err = c.run(ctx, b, force)

	c.mu.Lock()
	delete(c.tasks, b.ID)
	c.mu.Unlock()
	close(t.done)

	if t.err == nil {
		c.completed.Add(1)
	}
	return t.err
}

func (c *Coordinator) run(ctx context.Context, b types.Backend, force bool) error {
	if force {
		if err := c.store.Remove(b.ID); err != nil {
			return err
		}
	}
	dir, err := c.store.EnsureDir(b.ID)
	if err != nil {
		return err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.fetcher.Fetch(ctx, b, dir, os.Getenv(TokenEnv)); err != nil {
		if ctx.Err() != nil {
			return timeoutError{id: b.ID}
		}
		return downloadFailedError{id: b.ID, cause: err}
	}
	return nil
}

// await blocks a joining caller on an existing task. The joiner's own
// context expiring yields Timeout without cancelling the shared transfer.
func (c *Coordinator) await(ctx context.Context, id string, t *task) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return timeoutError{id: id}
	}
}
