// Package yaml loads the dataset config file. JSON configs are accepted
// as-is since JSON is a subset of YAML.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cocosearch/coco"
	"gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ coco.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader implements coco.ConfigLoader.
type ConfigLoader struct{}

// NewConfigLoader creates a new ConfigLoader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// document accepts the paths nested under a COCO key, or at top level.
type document struct {
	COCO *coco.Config `yaml:"COCO"`

	coco.Config `yaml:",inline"`
}

// LoadConfig reads and validates the config file at path.
func (l *ConfigLoader) LoadConfig(path string) (*coco.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &coco.LoadError{Path: path, Err: coco.Errorf(coco.ENOTFOUND, "config file %q not found", path)}
	}
	if err != nil {
		return nil, &coco.LoadError{Path: path, Err: fmt.Errorf("failed to read config: %w", err)}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &coco.LoadError{Path: path, Err: coco.Errorf(coco.EINVALID, "failed to parse config: %v", err)}
	}

	cfg := doc.Config
	if doc.COCO != nil {
		cfg = *doc.COCO
	}
	if err := cfg.Validate(); err != nil {
		return nil, &coco.LoadError{Path: path, Err: err}
	}
	return &cfg, nil
}
