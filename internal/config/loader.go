package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type Config struct {
	Addr           string `json:"addr" yaml:"addr" toml:"addr"`
	CacheDir       string `json:"cache_dir" yaml:"cache_dir" toml:"cache_dir"`
	DefaultBackend string `json:"default_backend" yaml:"default_backend" toml:"default_backend"`
	// Optional registry override file; builtin catalog is used when empty.
	RegistryFile string `json:"registry_file" yaml:"registry_file" toml:"registry_file"`
	// Queue tuning for per-backend translation admission.
	MaxQueueDepth int `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth"`
	MaxWaitSec    int `json:"max_wait_sec" yaml:"max_wait_sec" toml:"max_wait_sec"`
	// Download bound in seconds; 0 means no bound beyond the caller's context.
	DownloadTimeoutSec int `json:"download_timeout_sec" yaml:"download_timeout_sec" toml:"download_timeout_sec"`
	// Worker binary used to host backend inference (see internal/backend).
	WorkerBin string `json:"worker_bin" yaml:"worker_bin" toml:"worker_bin"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
