package types

// TranslateRequest is the payload for POST /translate.
type TranslateRequest struct {
	// Optional backend identifier. If empty, the server default is used.
	// example: nllb
	Backend string `json:"backend,omitempty" example:"nllb"`
	// Required text to translate.
	// example: Hello, world
	Text string `json:"text" example:"Hello, world"`
	// Source language code in the chosen backend's scheme.
	// example: eng_Latn
	SourceCode string `json:"source_code" example:"eng_Latn"`
	// Target language code in the chosen backend's scheme.
	// example: fra_Latn
	TargetCode string `json:"target_code" example:"fra_Latn"`
}

// TranslateResponse echoes the request alongside the translated text.
type TranslateResponse struct {
	Backend        string `json:"backend" example:"nllb"`
	OriginalText   string `json:"original_text" example:"Hello, world"`
	TranslatedText string `json:"translated_text" example:"Bonjour, le monde"`
	SourceCode     string `json:"source_code" example:"eng_Latn"`
	TargetCode     string `json:"target_code" example:"fra_Latn"`
}

// DownloadRequest is the payload for POST /download.
type DownloadRequest struct {
	// Backend identifier. If empty, the server default is used.
	// example: nllb
	Backend string `json:"backend,omitempty" example:"nllb"`
	// Re-fetch artifacts even when already present.
	// example: false
	Force bool `json:"force,omitempty" example:"false"`
}

// RemoveRequest is the payload for POST /remove.
type RemoveRequest struct {
	// Backend identifier. If empty, the server default is used.
	// example: nllb
	Backend string `json:"backend,omitempty" example:"nllb"`
}

// ActionResponse reports the outcome of a download or remove.
type ActionResponse struct {
	// example: true
	Success bool `json:"success" example:"true"`
	// example: backend downloaded
	Message string `json:"message" example:"backend downloaded"`
	// example: nllb
	Backend string `json:"backend" example:"nllb"`
	// Absolute cache path of the backend's artifacts.
	Path string `json:"path,omitempty"`
}

// BackendStatus summarizes one backend for /status.
type BackendStatus struct {
	// example: nllb
	Backend string `json:"backend" example:"nllb"`
	// Lifecycle state of the in-memory instance (unloaded, loading, loaded, draining).
	// example: loaded
	State string `json:"state" example:"loaded"`
	// example: true
	IsDownloaded bool `json:"is_downloaded" example:"true"`
	// example: true
	IsVerified bool `json:"is_verified" example:"true"`
	// example: true
	IsLoaded bool `json:"is_loaded" example:"true"`
	// Bytes currently on disk for this backend (0 if absent).
	// example: 2621440000
	SizeOnDisk int64 `json:"size_on_disk" example:"2621440000"`
	// True while a download task is in flight.
	// example: false
	Downloading bool `json:"downloading" example:"false"`
	// Last time this backend served a request (unix seconds, 0 if never).
	// example: 1700000000
	LastUsed int64 `json:"last_used_unix,omitempty" example:"1700000000"`
	// Current queue length for pending translations.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Number of in-flight translations.
	// example: 1
	Inflight int `json:"inflight" example:"1"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	Backends []BackendStatus `json:"backends"`
	// Cache root directory holding all backend artifacts.
	CacheDir string `json:"cache_dir"`
	// Default backend id used when a request omits one.
	// example: nllb
	DefaultBackend string `json:"default_backend" example:"nllb"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Total number of model loads since start.
	// example: 3
	LoadsTotal uint64 `json:"loads_total" example:"3"`
	// Total number of completed downloads since start.
	// example: 1
	DownloadsTotal uint64 `json:"downloads_total" example:"1"`
}

// VerifyResponse is returned by GET /verify/{id}.
type VerifyResponse struct {
	// example: nllb
	Backend string `json:"backend" example:"nllb"`
	// example: true
	AllFilesPresent bool `json:"all_files_present" example:"true"`
	// Per-file presence results.
	Files map[string]bool `json:"files"`
}

// ModelsResponse wraps the list of backends returned by GET /models.
type ModelsResponse struct {
	Models []Backend `json:"models"`
	// example: nllb
	DefaultBackend string `json:"default_backend" example:"nllb"`
}

// LanguagesResponse maps language names to codes for one backend's scheme.
type LanguagesResponse struct {
	// example: nllb
	Backend string `json:"backend" example:"nllb"`
	// example: nllb
	Scheme    string            `json:"scheme" example:"nllb"`
	Languages map[string]string `json:"languages"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unknown backend: foo
	Error string `json:"error" example:"unknown backend: foo"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
