package verify

import (
	"os"
	"path/filepath"
	"testing"

	"babd/internal/store"
	"babd/pkg/types"
)

func testBackend() types.Backend {
	return types.Backend{
		ID: "tiny",
		Manifest: []types.ArtifactFile{
			{Name: "config.json"},
			{Name: "model.bin", MinBytes: 64},
		},
	}
}

func newVerifier(t *testing.T) (*Verifier, *store.Store) {
	t.Helper()
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return New(st), st
}

func seed(t *testing.T, st *store.Store, b types.Backend) {
	t.Helper()
	dir, err := st.EnsureDir(b.ID)
	if err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	for _, f := range b.Manifest {
		size := f.MinBytes
		if size == 0 {
			size = 4
		}
		if err := os.WriteFile(filepath.Join(dir, f.Name), make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", f.Name, err)
		}
	}
}

func TestVerify_Complete(t *testing.T) {
	v, st := newVerifier(t)
	b := testBackend()
	seed(t, st, b)
	if err := v.Verify(b); err != nil {
		t.Fatalf("verify: %v", err)
	}
	r := v.Check(b)
	if !r.AllPresent() {
		t.Fatalf("expected all present: %+v", r.Files)
	}
}

func TestVerify_MissingFile(t *testing.T) {
	v, st := newVerifier(t)
	b := testBackend()
	seed(t, st, b)
	if err := os.Remove(filepath.Join(st.PathFor(b.ID), "model.bin")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	err := v.Verify(b)
	if !IsVerificationFailed(err) {
		t.Fatalf("expected VerificationFailed, got %v", err)
	}
	missing := err.(interface{ Missing() []string }).Missing()
	if len(missing) != 1 || missing[0] != "model.bin" {
		t.Fatalf("missing=%v", missing)
	}
}

func TestVerify_UndersizedFile(t *testing.T) {
	v, st := newVerifier(t)
	b := testBackend()
	seed(t, st, b)
	// Truncate below the declared minimum; simulates an interrupted transfer.
	if err := os.WriteFile(filepath.Join(st.PathFor(b.ID), "model.bin"), make([]byte, 8), 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if err := v.Verify(b); !IsVerificationFailed(err) {
		t.Fatalf("expected VerificationFailed, got %v", err)
	}
}

func TestVerify_NothingDownloaded(t *testing.T) {
	v, _ := newVerifier(t)
	if err := v.Verify(testBackend()); !IsVerificationFailed(err) {
		t.Fatalf("expected VerificationFailed for absent backend")
	}
}
