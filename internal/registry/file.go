package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"babd/internal/common/fsutil"
	"babd/pkg/types"
)

var errEmptyID = errors.New("backend descriptor with empty id")

type duplicateIDError struct{ id string }

func (e duplicateIDError) Error() string { return "duplicate backend id: " + e.id }

// registryFile is the on-disk shape of a registry override.
type registryFile struct {
	Default  string          `json:"default_backend" yaml:"default_backend" toml:"default_backend"`
	Backends []types.Backend `json:"backends" yaml:"backends" toml:"backends"`
}

// LoadFile reads a backend catalog from a yaml/json/toml file. The file
// fully replaces the builtin catalog; partial overrides are not supported.
func LoadFile(path string) (*Registry, error) {
	expanded, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(expanded)
	if err != nil {
		return nil, err
	}
	var rf registryFile
	switch ext := strings.ToLower(filepath.Ext(expanded)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &rf); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(b, &rf); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &rf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported registry extension: %s", ext)
	}
	if len(rf.Backends) == 0 {
		return nil, fmt.Errorf("registry file %s declares no backends", path)
	}
	def := rf.Default
	if def == "" {
		def = rf.Backends[0].ID
	}
	return New(rf.Backends, def)
}
