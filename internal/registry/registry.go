package registry

import (
	"babd/internal/langs"
	"babd/pkg/types"
)

// Registry is the read-only catalog of known backends. It is built once at
// startup and never mutated, so reads need no locking.
type Registry struct {
	order    []string
	backends map[string]types.Backend
	def      string
}

// DefaultBackendID is used when neither config nor request name a backend.
const DefaultBackendID = "nllb"

// Builtin returns the catalog of backends this build knows how to run.
func Builtin() *Registry {
	r, _ := New([]types.Backend{
		{
			ID:           "nllb",
			RepoID:       "facebook/nllb-200-distilled-600M",
			DisplayName:  "NLLB-200",
			Description:  "Meta's No Language Left Behind model supporting 200+ languages",
			SizeEstimate: "~2.5GB",
			RequiresAuth: false,
			Scheme:       string(langs.SchemeNLLB),
			Manifest: []types.ArtifactFile{
				{Name: "config.json", MinBytes: 2},
				{Name: "generation_config.json", MinBytes: 2},
				{Name: "sentencepiece.bpe.model", MinBytes: 1024},
				{Name: "special_tokens_map.json", MinBytes: 2},
				{Name: "tokenizer_config.json", MinBytes: 2},
				{Name: "tokenizer.json", MinBytes: 1024},
				{Name: "model.safetensors", MinBytes: 1 << 20},
			},
		},
		{
			ID:           "translategemma",
			RepoID:       "google/translategemma-4b-it",
			DisplayName:  "TranslateGemma",
			Description:  "Google's lightweight translation model based on Gemma 3",
			SizeEstimate: "~8GB",
			RequiresAuth: true,
			Scheme:       string(langs.SchemeLocale),
			Manifest: []types.ArtifactFile{
				{Name: "config.json", MinBytes: 2},
				{Name: "generation_config.json", MinBytes: 2},
				{Name: "preprocessor_config.json", MinBytes: 2},
				{Name: "tokenizer_config.json", MinBytes: 2},
				{Name: "tokenizer.json", MinBytes: 1024},
				{Name: "model-00001-of-00002.safetensors", MinBytes: 1 << 20},
				{Name: "model-00002-of-00002.safetensors", MinBytes: 1 << 20},
			},
		},
	}, DefaultBackendID)
	return r
}

// New builds a registry from descriptors, preserving insertion order.
func New(backends []types.Backend, defaultID string) (*Registry, error) {
	r := &Registry{backends: make(map[string]types.Backend, len(backends)), def: defaultID}
	for _, b := range backends {
		if b.ID == "" {
			return nil, errEmptyID
		}
		if _, dup := r.backends[b.ID]; dup {
			return nil, duplicateIDError{id: b.ID}
		}
		r.backends[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r, nil
}

// List returns descriptors in insertion order as a copy.
func (r *Registry) List() []types.Backend {
	out := make([]types.Backend, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.backends[id])
	}
	return out
}

// Get resolves a descriptor by id.
func (r *Registry) Get(id string) (types.Backend, bool) {
	b, ok := r.backends[id]
	return b, ok
}

// DefaultID returns the backend id used when a request omits one.
func (r *Registry) DefaultID() string { return r.def }

// Languages returns the name->code table for a backend's scheme, or nil
// when the id or scheme is unknown.
func (r *Registry) Languages(id string) map[string]string {
	b, ok := r.backends[id]
	if !ok {
		return nil
	}
	return langs.Table(langs.Scheme(b.Scheme))
}
