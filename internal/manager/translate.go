package manager

import (
	"context"
	"strings"

	"babd/pkg/types"
)

// Translate routes one translation request to its backend.
//
// The hot path never downloads: callers trigger EnsureDownloaded out-of-band
// and an unready backend fails fast with ModelNotReady. The first request
// after a download pays the load cost; concurrent callers share that load.
func (m *Manager) Translate(ctx context.Context, req types.TranslateRequest) (types.TranslateResponse, error) {
	var resp types.TranslateResponse
	if strings.TrimSpace(req.Text) == "" {
		return resp, emptyInputError{}
	}
	b, err := m.resolve(req.Backend)
	if err != nil {
		return resp, err
	}
	if !m.store.IsPresent(b) {
		return resp, modelNotReadyError{id: b.ID, cause: notDownloadedError{id: b.ID}}
	}
	if err := m.verifier.Verify(b); err != nil {
		return resp, modelNotReadyError{id: b.ID, cause: err}
	}

	rt, err := m.getOrLoad(ctx, b)
	if err != nil {
		return resp, err
	}
	// Admission: per-backend FIFO queue, single in-flight translation.
	release, err := m.beginTranslation(ctx, b.ID)
	if err != nil {
		return resp, err
	}
	defer release()

	out, err := rt.Translate(ctx, req.Text, req.SourceCode, req.TargetCode)
	if err != nil {
		return resp, err
	}
	return types.TranslateResponse{
		Backend:        b.ID,
		OriginalText:   req.Text,
		TranslatedText: out,
		SourceCode:     req.SourceCode,
		TargetCode:     req.TargetCode,
	}, nil
}
