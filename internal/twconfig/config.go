// Package twconfig loads ambient user configuration for the timewalker
// CLI: default terminal capabilities, chunk size, and HTML palette
// overrides applied when a run or render invocation doesn't specify its
// own.
package twconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"timewalker/internal/normalize"
)

// Config is the ~/.timewalker/config.yaml document.
type Config struct {
	DefaultCapabilities CapabilitiesConfig `yaml:"default_capabilities"`
	DefaultChunkSize    int                `yaml:"default_chunk_size"`
	Palette             map[string]string  `yaml:"palette"`
}

// CapabilitiesConfig mirrors normalize.Capabilities in YAML-friendly form.
type CapabilitiesConfig struct {
	SupportsDECPrivate bool `yaml:"supports_dec_private"`
	AllowOSC           bool `yaml:"allow_osc"`
}

// ToCapabilities converts to the normalize package's runtime type.
func (c CapabilitiesConfig) ToCapabilities() normalize.Capabilities {
	return normalize.Capabilities{
		SupportsDECPrivate: c.SupportsDECPrivate,
		AllowOSC:           c.AllowOSC,
	}
}

// ConfigDir returns the timewalker configuration directory (~/.timewalker/).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".timewalker")
	}
	return filepath.Join(home, ".timewalker")
}

// Load reads the config from ~/.timewalker/config.yaml. If the file does
// not exist, it returns an empty Config with no error.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(ConfigDir(), "config.yaml"))
}

// LoadFrom reads the config from the given path. If the file does not
// exist, it returns an empty Config with no error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
