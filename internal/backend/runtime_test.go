package backend

import (
	"context"
	"errors"
	"testing"

	"babd/pkg/types"
)

// fakeEngine echoes a deterministic translation and records requests.
type fakeEngine struct {
	last   EngineRequest
	err    error
	closed bool
}

func (f *fakeEngine) Translate(ctx context.Context, req EngineRequest) (string, error) {
	f.last = req
	if f.err != nil {
		return "", f.err
	}
	return "[" + req.TargetCode + "] " + req.Text, nil
}

func (f *fakeEngine) Close() error {
	f.closed = true
	return nil
}

func nllbBackend() types.Backend {
	return types.Backend{ID: "nllb", Scheme: "nllb"}
}

func gemmaBackend() types.Backend {
	return types.Backend{ID: "translategemma", Scheme: "locale"}
}

func TestNLLBRuntime_Translate(t *testing.T) {
	eng := &fakeEngine{}
	r := newNLLBRuntime(nllbBackend(), eng)
	out, err := r.Translate(context.Background(), "  Hello  ", "eng_Latn", "fra_Latn")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if out != "[fra_Latn] Hello" {
		t.Fatalf("out=%q", out)
	}
	if eng.last.Text != "Hello" {
		t.Fatalf("text not trimmed before engine: %q", eng.last.Text)
	}
}

func TestNLLBRuntime_RejectsForeignScheme(t *testing.T) {
	r := newNLLBRuntime(nllbBackend(), &fakeEngine{})
	// A locale-scheme code is invalid for NLLB; no conversion is attempted.
	_, err := r.Translate(context.Background(), "hi", "en", "fra_Latn")
	if !IsInvalidLanguageCode(err) {
		t.Fatalf("expected InvalidLanguageCode, got %v", err)
	}
	_, err = r.Translate(context.Background(), "hi", "eng_Latn", "xx_Zzzz")
	if !IsInvalidLanguageCode(err) {
		t.Fatalf("expected InvalidLanguageCode for target, got %v", err)
	}
}

func TestNLLBRuntime_WrapsEngineFailure(t *testing.T) {
	eng := &fakeEngine{err: errors.New("tensor shape mismatch")}
	r := newNLLBRuntime(nllbBackend(), eng)
	_, err := r.Translate(context.Background(), "hi", "eng_Latn", "fra_Latn")
	if !IsInferenceError(err) {
		t.Fatalf("expected InferenceError, got %v", err)
	}
	if !errors.Is(err, eng.err) {
		t.Fatalf("cause not wrapped: %v", err)
	}
}

func TestGemmaRuntime_LocaleCodes(t *testing.T) {
	eng := &fakeEngine{}
	r := newGemmaRuntime(gemmaBackend(), eng)
	if _, err := r.Translate(context.Background(), "hi", "en", "fr"); err != nil {
		t.Fatalf("plain subtags: %v", err)
	}
	// Regional variant outside the table falls back to its base subtag.
	if _, err := r.Translate(context.Background(), "hi", "fr-BE", "de-AT"); err != nil {
		t.Fatalf("regional fallback: %v", err)
	}
	if _, err := r.Translate(context.Background(), "hi", "eng_Latn", "fr"); !IsInvalidLanguageCode(err) {
		t.Fatalf("expected InvalidLanguageCode for NLLB-scheme code")
	}
	if _, err := r.Translate(context.Background(), "hi", "en", "qq-ZZ"); !IsInvalidLanguageCode(err) {
		t.Fatalf("expected InvalidLanguageCode for unknown base subtag")
	}
}

func TestFactorySelectsVariant(t *testing.T) {
	eng := &fakeEngine{}
	factory := NewFactory(func(ctx context.Context, b types.Backend, dir string) (Engine, error) {
		return eng, nil
	})
	r, err := factory(context.Background(), nllbBackend(), t.TempDir())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if _, ok := r.(*nllbRuntime); !ok {
		t.Fatalf("expected nllb runtime, got %T", r)
	}
	r, err = factory(context.Background(), gemmaBackend(), t.TempDir())
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if _, ok := r.(*gemmaRuntime); !ok {
		t.Fatalf("expected gemma runtime, got %T", r)
	}
}

func TestFactory_UnknownSchemeClosesEngine(t *testing.T) {
	eng := &fakeEngine{}
	factory := NewFactory(func(ctx context.Context, b types.Backend, dir string) (Engine, error) {
		return eng, nil
	})
	_, err := factory(context.Background(), types.Backend{ID: "odd", Scheme: "martian"}, t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown scheme")
	}
	if !eng.closed {
		t.Fatalf("engine leaked on scheme error")
	}
}

func TestFactory_PropagatesOpenError(t *testing.T) {
	boom := errors.New("no such worker binary")
	factory := NewFactory(func(ctx context.Context, b types.Backend, dir string) (Engine, error) {
		return nil, boom
	})
	if _, err := factory(context.Background(), nllbBackend(), t.TempDir()); !errors.Is(err, boom) {
		t.Fatalf("expected open error, got %v", err)
	}
}
