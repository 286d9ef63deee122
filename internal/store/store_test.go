package store

import (
	"os"
	"path/filepath"
	"testing"

	"babd/pkg/types"
)

func testBackend() types.Backend {
	return types.Backend{
		ID: "tiny",
		Manifest: []types.ArtifactFile{
			{Name: "config.json"},
			{Name: "model.bin", MinBytes: 16},
		},
	}
}

func seedArtifacts(t *testing.T, s *Store, b types.Backend) string {
	t.Helper()
	dir, err := s.EnsureDir(b.ID)
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
	return dir
}

func TestPathForSanitizesID(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	p := s.PathFor("acme/tiny")
	if filepath.Dir(p) != s.Root() {
		t.Fatalf("id escaped cache root: %s", p)
	}
}

func TestIsPresent(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b := testBackend()
	if s.IsPresent(b) {
		t.Fatalf("expected absent before download")
	}
	dir := seedArtifacts(t, s, b)
	if !s.IsPresent(b) {
		t.Fatalf("expected present after seeding")
	}
	// A zero-size required file counts as absent.
	if err := os.WriteFile(filepath.Join(dir, "config.json"), nil, 0o644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if s.IsPresent(b) {
		t.Fatalf("expected absent with empty required file")
	}
}

func TestSizeOnDisk(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b := testBackend()
	if n, err := s.SizeOnDisk(b.ID); err != nil || n != 0 {
		t.Fatalf("expected 0 for absent backend, got %d err=%v", n, err)
	}
	seedArtifacts(t, s, b)
	n, err := s.SizeOnDisk(b.ID)
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if n != 20 {
		t.Fatalf("expected 20 bytes, got %d", n)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b := testBackend()
	seedArtifacts(t, s, b)
	if err := s.Remove(b.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.IsPresent(b) {
		t.Fatalf("still present after remove")
	}
	// Second removal of an absent backend is not an error.
	if err := s.Remove(b.ID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}
