package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/orderlens/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".orderlens.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .orderlens.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .orderlens.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ProjectConfig, error) {
	return l.LoadFile(filepath.Join(dir, fileName))
}

// LoadFile reads an explicit config path. A missing file yields defaults.
func (l *YAMLLoader) LoadFile(path string) (domain.ProjectConfig, error) {
	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	cfg := domain.ProjectConfig{Currency: raw.Currency, Log: raw.Log}
	for _, s := range raw.Statuses {
		st, err := domain.ParseOrderStatus(s)
		if err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("invalid %s: unknown status %q in statuses", name, s)
		}
		cfg.Statuses = append(cfg.Statuses, st)
	}

	// Validate before merging so typos in the user's input are reported.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return mergeConfig(domain.DefaultConfig(), cfg), nil
}

// rawConfig accepts statuses in any letter case.
type rawConfig struct {
	Currency string   `yaml:"currency"`
	Statuses []string `yaml:"statuses"`
	Log      string   `yaml:"log"`
}

// mergeConfig overlays explicit values on top of defaults.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base
	if override.Currency != "" {
		result.Currency = override.Currency
	}
	if len(override.Statuses) > 0 {
		result.Statuses = override.Statuses
	}
	if override.Log != "" {
		result.Log = override.Log
	}
	return result
}
