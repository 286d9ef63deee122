package backend

import "context"

// EngineRequest is the normalized payload handed to the numeric engine.
type EngineRequest struct {
	Text       string `json:"text"`
	SourceCode string `json:"source_lang_code"`
	TargetCode string `json:"target_lang_code"`
}

// Engine is the black-box numeric translation capability: given text and two
// codes in the backend's own scheme, return translated text or fail.
type Engine interface {
	Translate(ctx context.Context, req EngineRequest) (string, error)
	Close() error
}
