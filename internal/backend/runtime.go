package backend

import (
	"context"

	"babd/internal/langs"
	"babd/pkg/types"
)

// Runtime is a backend's in-memory inference-capable object. Exactly zero or
// one Runtime exists per backend id at any time; the manager enforces that.
type Runtime interface {
	// Translate converts text between two codes in this backend's own
	// scheme. Codes are never converted between schemes.
	Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error)
	// Close releases the in-memory state.
	Close() error
}

// Factory instantiates a Runtime from verified on-disk artifacts in dir.
type Factory func(ctx context.Context, b types.Backend, dir string) (Runtime, error)

// EngineOpener produces the opaque numeric translation capability for one
// backend. The concrete implementation is a loopback worker process; tests
// inject fakes.
type EngineOpener func(ctx context.Context, b types.Backend, dir string) (Engine, error)

// NewFactory builds the per-scheme runtime variant around an engine. Code
// validation lives in the variant, not in the dispatcher.
func NewFactory(open EngineOpener) Factory {
	return func(ctx context.Context, b types.Backend, dir string) (Runtime, error) {
		eng, err := open(ctx, b, dir)
		if err != nil {
			return nil, err
		}
		switch langs.Scheme(b.Scheme) {
		case langs.SchemeNLLB:
			return newNLLBRuntime(b, eng), nil
		case langs.SchemeLocale:
			return newGemmaRuntime(b, eng), nil
		default:
			_ = eng.Close()
			return nil, unknownSchemeError{id: b.ID, scheme: b.Scheme}
		}
	}
}

type unknownSchemeError struct{ id, scheme string }

func (e unknownSchemeError) Error() string {
	return "backend " + e.id + " declares unknown language scheme " + e.scheme
}
