// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.sprout/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sprout-dev/sprout/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.sprout/config.yaml global configuration.
// It tracks scaffold defaults and previously generated projects.
type GlobalConfig struct {
	Version  int                     `yaml:"version"`
	Defaults Defaults                `yaml:"defaults,omitempty"`
	Projects map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// Defaults stores operator preferences applied when flags are absent.
type Defaults struct {
	Template       string `yaml:"template,omitempty"`
	PackageManager string `yaml:"package_manager,omitempty"`
}

// ProjectEntry stores a generated project's path and creation metadata.
type ProjectEntry struct {
	Path     string `yaml:"path"`
	Template string `yaml:"template,omitempty"`
	LastUsed string `yaml:"last_used"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the global config file.
// SPROUT_CONFIG_PATH overrides the file location, SPROUT_CONFIG_HOME the
// containing directory.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_PATH")); override != "" {
		if !filepath.IsAbs(override) {
			if abs, err := filepath.Abs(override); err == nil {
				return abs, nil
			}
		}
		return override, nil
	}
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_HOME")); override != "" {
		return filepath.Join(override, meta.ConfigFilename), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFilename), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
