package manager

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"babd/internal/backend"
	"babd/internal/download"
	"babd/internal/registry"
	"babd/internal/store"
	"babd/internal/verify"
	"babd/pkg/types"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r, err := registry.New([]types.Backend{
		{
			ID: "tiny", RepoID: "acme/tiny", Scheme: "nllb",
			Manifest: []types.ArtifactFile{{Name: "config.json"}, {Name: "model.bin"}},
		},
		{
			ID: "gated", RepoID: "acme/gated", Scheme: "locale", RequiresAuth: true,
			Manifest: []types.ArtifactFile{{Name: "config.json"}},
		},
	}, "tiny")
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return r
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

// fakeRuntime is a deterministic in-memory translation runtime.
type fakeRuntime struct {
	id     string
	closed atomic.Bool
}

func (r *fakeRuntime) Translate(ctx context.Context, text, src, dst string) (string, error) {
	return "[" + dst + "] " + text, nil
}

func (r *fakeRuntime) Close() error {
	r.closed.Store(true)
	return nil
}

// countingFactory counts constructions and optionally delays/fails them.
type countingFactory struct {
	constructs atomic.Int32
	delay      time.Duration
	err        error
	last       *fakeRuntime
}

func (f *countingFactory) factory() backend.Factory {
	return func(ctx context.Context, b types.Backend, dir string) (backend.Runtime, error) {
		f.constructs.Add(1)
		if f.delay > 0 {
			select {
			case <-time.After(f.delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		if f.err != nil {
			return nil, f.err
		}
		rt := &fakeRuntime{id: b.ID}
		f.last = rt
		return rt, nil
	}
}

type testEnv struct {
	m       *Manager
	store   *store.Store
	fetcher *fakeFetcher
	factory *countingFactory
	pub     *MemoryPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	reg := testRegistry(t)
	f := &fakeFetcher{}
	cf := &countingFactory{}
	pub := NewMemoryPublisher()
	m := New(Config{
		Registry:  reg,
		Store:     st,
		Downloads: download.NewCoordinator(st, f, 0),
		Verifier:  verify.New(st),
		Factory:   cf.factory(),
		Publisher: pub,
	})
	return &testEnv{m: m, store: st, fetcher: f, factory: cf, pub: pub}
}

func (e *testEnv) mustDownload(t *testing.T, id string) {
	t.Helper()
	if err := e.m.EnsureDownloaded(context.Background(), id, false); err != nil {
		t.Fatalf("ensure %s: %v", id, err)
	}
}

func (e *testEnv) hasEvent(name string) bool {
	for _, ev := range e.pub.Events() {
		if ev.Name == name {
			return true
		}
	}
	return false
}

func translateReq(id, text string) types.TranslateRequest {
	return types.TranslateRequest{Backend: id, Text: text, SourceCode: "eng_Latn", TargetCode: "fra_Latn"}
}
