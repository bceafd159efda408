package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/orderlens/internal/adapters/outbound/config"
	"github.com/abdidvp/orderlens/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".orderlens.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_ParsesAllFields(t *testing.T) {
	dir := writeConfig(t, "currency: JPY\nstatuses: [shipped, New]\nlog: development\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "JPY", cfg.Currency)
	assert.Equal(t, []domain.OrderStatus{domain.StatusShipped, domain.StatusNew}, cfg.Statuses)
	assert.Equal(t, domain.LogDevelopment, cfg.Log)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, "statuses: [PAID]\n")

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrencyCode, cfg.Currency)
	assert.Equal(t, domain.LogOff, cfg.Log)
	assert.Equal(t, []domain.OrderStatus{domain.StatusPaid}, cfg.ReportStatuses())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "currency: [unterminated\n")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .orderlens.yaml")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown status", "statuses: [LOST]\n", "unknown status"},
		{"duplicate status", "statuses: [NEW, new]\n", "listed twice"},
		{"bad currency", "currency: dollars\n", "ISO 4217"},
		{"bad log mode", "log: loud\n", "unknown log mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.New().Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid .orderlens.yaml")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: EUR\n"), 0o644))

	cfg, err := config.New().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
}
