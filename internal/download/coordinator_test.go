package download

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"babd/internal/store"
	"babd/pkg/types"
)

func testBackend() types.Backend {
	return types.Backend{
		ID:     "tiny",
		RepoID: "acme/tiny",
		Manifest: []types.ArtifactFile{
			{Name: "config.json"},
			{Name: "model.bin"},
		},
	}
}

// fakeFetcher counts transfers and writes the manifest files.
type fakeFetcher struct {
	calls atomic.Int32
	delay time.Duration
	err   error
}

func (f *fakeFetcher) Fetch(ctx context.Context, b types.Backend, dir, token string) error {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.err != nil {
		return f.err
	}
	for _, af := range b.Manifest {
		if err := os.WriteFile(filepath.Join(dir, af.Name), []byte("data"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func newTestCoordinator(t *testing.T, f Fetcher) (*Coordinator, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return NewCoordinator(st, f, 0), st
}

func TestEnsureDownloaded_Success(t *testing.T) {
	f := &fakeFetcher{}
	c, st := newTestCoordinator(t, f)
	b := testBackend()
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !st.IsPresent(b) {
		t.Fatalf("artifacts not present after download")
	}
	if got := c.CompletedTotal(); got != 1 {
		t.Fatalf("completed=%d", got)
	}
}

func TestEnsureDownloaded_FastPathSkipsNetwork(t *testing.T) {
	f := &fakeFetcher{}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if n := f.calls.Load(); n != 1 {
		t.Fatalf("expected 1 transfer, got %d", n)
	}
}

func TestEnsureDownloaded_ForceRefetches(t *testing.T) {
	f := &fakeFetcher{}
	c, st := newTestCoordinator(t, f)
	b := testBackend()
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	// Plant a marker that a real re-download would wipe.
	marker := filepath.Join(st.PathFor(b.ID), "stale.marker")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if err := c.EnsureDownloaded(context.Background(), b, true); err != nil {
		t.Fatalf("force ensure: %v", err)
	}
	if n := f.calls.Load(); n != 2 {
		t.Fatalf("expected 2 transfers, got %d", n)
	}
	if _, err := os.Stat(marker); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("force did not remove prior artifacts")
	}
}

func TestEnsureDownloaded_SingleFlight(t *testing.T) {
	f := &fakeFetcher{delay: 50 * time.Millisecond}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.EnsureDownloaded(context.Background(), b, false)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if got := f.calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 transfer, got %d", got)
	}
	if c.InFlight(b.ID) {
		t.Fatalf("task not cleared after completion")
	}
}

func TestEnsureDownloaded_AuthRequiredNoNetwork(t *testing.T) {
	t.Setenv(TokenEnv, "")
	f := &fakeFetcher{}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()
	b.RequiresAuth = true
	err := c.EnsureDownloaded(context.Background(), b, false)
	if !IsAuthenticationRequired(err) {
		t.Fatalf("expected AuthenticationRequired, got %v", err)
	}
	if n := f.calls.Load(); n != 0 {
		t.Fatalf("network attempted despite missing credential: %d calls", n)
	}
}

func TestEnsureDownloaded_AuthSatisfiedByToken(t *testing.T) {
	t.Setenv(TokenEnv, "hf_test_token")
	f := &fakeFetcher{}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()
	b.RequiresAuth = true
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("ensure with token: %v", err)
	}
}

func TestEnsureDownloaded_FailureClearsTask(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection reset")}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()
	err := c.EnsureDownloaded(context.Background(), b, false)
	if !IsDownloadFailed(err) {
		t.Fatalf("expected DownloadFailed, got %v", err)
	}
	if c.InFlight(b.ID) {
		t.Fatalf("task not cleared after failure")
	}
	// A retry is permitted and uses a fresh transfer.
	f.err = nil
	if err := c.EnsureDownloaded(context.Background(), b, false); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestEnsureDownloaded_Timeout(t *testing.T) {
	f := &fakeFetcher{delay: 200 * time.Millisecond}
	c, _ := newTestCoordinator(t, f)
	b := testBackend()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := c.EnsureDownloaded(ctx, b, false)
	if !IsTimeout(err) {
		t.Fatalf("expected Timeout, got %v", err)
	}
	if c.InFlight(b.ID) {
		t.Fatalf("task not cleared after timeout")
	}
}
