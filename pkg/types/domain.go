package types

// ArtifactFile is one required on-disk file in a backend's artifact set.
type ArtifactFile struct {
	// File name relative to the backend's cache subdirectory.
	// example: config.json
	Name string `json:"name" yaml:"name" toml:"name" example:"config.json"`
	// Minimum plausible size in bytes; 0 means "must exist and be non-empty".
	// example: 2
	MinBytes int64 `json:"min_bytes,omitempty" yaml:"min_bytes,omitempty" toml:"min_bytes,omitempty" example:"2"`
}

// Backend describes one installable translation model. Descriptors are
// defined at process start and never mutated.
type Backend struct {
	// Stable identifier for the backend.
	// example: nllb
	ID string `json:"id" yaml:"id" toml:"id" example:"nllb"`
	// Upstream repository the artifacts are fetched from.
	// example: facebook/nllb-200-distilled-600M
	RepoID string `json:"repo_id" yaml:"repo_id" toml:"repo_id" example:"facebook/nllb-200-distilled-600M"`
	// Human-friendly name.
	// example: NLLB-200
	DisplayName string `json:"display_name" yaml:"display_name" toml:"display_name" example:"NLLB-200"`
	// Short human description.
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	// Approximate download size, informational only.
	// example: ~2.5GB
	SizeEstimate string `json:"size_estimate,omitempty" yaml:"size_estimate,omitempty" toml:"size_estimate,omitempty" example:"~2.5GB"`
	// True when the upstream repo requires an access token.
	// example: false
	RequiresAuth bool `json:"requires_auth" yaml:"requires_auth" toml:"requires_auth" example:"false"`
	// Language-code scheme tag understood by this backend.
	// example: nllb
	Scheme string `json:"scheme" yaml:"scheme" toml:"scheme" example:"nllb"`
	// Required files that must be present for the backend to load.
	Manifest []ArtifactFile `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty"`
}
