package store

import (
	"os"
	"path/filepath"
	"strings"

	"babd/internal/common/fsutil"
	"babd/pkg/types"
)

// Store is the filesystem-backed artifact cache. One subdirectory per
// backend id under the configured root; the root is created lazily on the
// first write. Presence is always re-derived from disk since external
// processes can add or delete files at any time.
type Store struct {
	root string
}

// New builds a Store rooted at dir (with '~' expansion).
func New(dir string) (*Store, error) {
	expanded, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return nil, storageError{op: "abs", cause: err}
	}
	return &Store{root: abs}, nil
}

// Root returns the cache root directory.
func (s *Store) Root() string { return s.root }

// PathFor returns the backend's cache subdirectory without creating it.
// The id is sanitized so a descriptor id can never escape the root.
func (s *Store) PathFor(id string) string {
	safe := strings.ReplaceAll(id, string(os.PathSeparator), "--")
	return filepath.Join(s.root, safe)
}

// EnsureDir creates the backend's cache subdirectory.
func (s *Store) EnsureDir(id string) (string, error) {
	dir := s.PathFor(id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", storageError{op: "mkdir", cause: err}
	}
	return dir, nil
}

// IsPresent reports whether every manifest file exists with non-zero size.
func (s *Store) IsPresent(b types.Backend) bool {
	dir := s.PathFor(b.ID)
	if !fsutil.PathExists(dir) {
		return false
	}
	for _, f := range b.Manifest {
		fi, err := os.Stat(filepath.Join(dir, f.Name))
		if err != nil || fi.IsDir() || fi.Size() == 0 {
			return false
		}
	}
	return true
}

// SizeOnDisk returns the total bytes stored for a backend (0 if absent).
func (s *Store) SizeOnDisk(id string) (int64, error) {
	n, err := fsutil.DirSize(s.PathFor(id))
	if err != nil {
		return 0, storageError{op: "size", cause: err}
	}
	return n, nil
}

// Remove deletes the backend's cache subdirectory. Removing an absent
// backend is not an error.
func (s *Store) Remove(id string) error {
	if err := os.RemoveAll(s.PathFor(id)); err != nil {
		return storageError{op: "remove", cause: err}
	}
	return nil
}
