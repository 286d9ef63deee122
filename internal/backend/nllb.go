package backend

import (
	"context"
	"strings"

	"babd/internal/langs"
	"babd/pkg/types"
)

// nllbRuntime speaks the script-qualified NLLB-200 vocabulary ("eng_Latn").
type nllbRuntime struct {
	id     string
	engine Engine
	codes  map[string]struct{}
}

func newNLLBRuntime(b types.Backend, eng Engine) *nllbRuntime {
	return &nllbRuntime{id: b.ID, engine: eng, codes: langs.Codes(langs.SchemeNLLB)}
}

func (r *nllbRuntime) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if _, ok := r.codes[sourceCode]; !ok {
		return "", invalidLanguageCodeError{id: r.id, code: sourceCode}
	}
	if _, ok := r.codes[targetCode]; !ok {
		return "", invalidLanguageCodeError{id: r.id, code: targetCode}
	}
	out, err := r.engine.Translate(ctx, EngineRequest{
		Text:       strings.TrimSpace(text),
		SourceCode: sourceCode,
		TargetCode: targetCode,
	})
	if err != nil {
		return "", inferenceError{id: r.id, cause: err}
	}
	return out, nil
}

func (r *nllbRuntime) Close() error { return r.engine.Close() }
