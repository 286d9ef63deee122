package verify

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"babd/internal/store"
	"babd/pkg/types"
)

// Verifier checks structural completeness of a backend's on-disk artifacts.
// Filesystem reads only; cheap enough to run before every load.
type Verifier struct {
	store *store.Store
}

func New(st *store.Store) *Verifier { return &Verifier{store: st} }

// Report lists per-file presence for one backend.
type Report struct {
	Backend string
	Files   map[string]bool
}

// AllPresent reports whether every manifest file passed.
func (r Report) AllPresent() bool {
	for _, ok := range r.Files {
		if !ok {
			return false
		}
	}
	return true
}

// Check inspects each manifest file without failing; used by status and the
// verify endpoint.
func (v *Verifier) Check(b types.Backend) Report {
	dir := v.store.PathFor(b.ID)
	r := Report{Backend: b.ID, Files: make(map[string]bool, len(b.Manifest))}
	for _, f := range b.Manifest {
		fi, err := os.Stat(filepath.Join(dir, f.Name))
		min := f.MinBytes
		if min <= 0 {
			min = 1
		}
		r.Files[f.Name] = err == nil && !fi.IsDir() && fi.Size() >= min
	}
	return r
}

// Verify fails with VerificationFailed naming the missing or undersized
// files. A backend with no artifacts at all fails the same way; callers
// distinguish "never downloaded" via the store's presence check.
func (v *Verifier) Verify(b types.Backend) error {
	r := v.Check(b)
	var missing []string
	for name, ok := range r.Files {
		if !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return verificationFailedError{id: b.ID, missing: missing}
	}
	return nil
}

// verificationFailedError carries the list of missing/corrupt files.
type verificationFailedError struct {
	id      string
	missing []string
}

func (e verificationFailedError) Error() string {
	return "verification failed for " + e.id + ": missing or incomplete " + strings.Join(e.missing, ", ")
}

// Missing exposes the failing file names for callers that render them.
func (e verificationFailedError) Missing() []string { return e.missing }

// IsVerificationFailed reports whether err indicates incomplete artifacts.
func IsVerificationFailed(err error) bool {
	_, ok := err.(verificationFailedError)
	return ok
}
