package backend

import (
	"context"
	"strings"

	"babd/internal/langs"
	"babd/pkg/types"
)

// gemmaRuntime speaks short locale codes ("en", "de-DE"). Regional variants
// not in the table are accepted when their base subtag is known, since the
// model treats "fr-BE" as "fr" with a region hint.
type gemmaRuntime struct {
	id     string
	engine Engine
	codes  map[string]struct{}
	bases  map[string]struct{}
}

func newGemmaRuntime(b types.Backend, eng Engine) *gemmaRuntime {
	codes := langs.Codes(langs.SchemeLocale)
	bases := make(map[string]struct{}, len(codes))
	for c := range codes {
		if i := strings.IndexByte(c, '-'); i > 0 {
			bases[c[:i]] = struct{}{}
		} else {
			bases[c] = struct{}{}
		}
	}
	return &gemmaRuntime{id: b.ID, engine: eng, codes: codes, bases: bases}
}

func (r *gemmaRuntime) valid(code string) bool {
	if _, ok := r.codes[code]; ok {
		return true
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		_, ok := r.bases[code[:i]]
		return ok
	}
	return false
}

func (r *gemmaRuntime) Translate(ctx context.Context, text, sourceCode, targetCode string) (string, error) {
	if !r.valid(sourceCode) {
		return "", invalidLanguageCodeError{id: r.id, code: sourceCode}
	}
	if !r.valid(targetCode) {
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

func (r *gemmaRuntime) Close() error { return r.engine.Close() }
