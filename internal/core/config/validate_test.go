package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	return &cfg
}

func TestValidate_defaults(t *testing.T) {
	assert.NoError(t, validConfig(t).Validate())
}

func TestValidate_fields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{
			name:      "base url scheme",
			mutate:    func(c *Config) { c.API.BaseURL = "localhost:8000" },
			wantField: "api.base_url",
		},
		{
			name:      "base url host",
			mutate:    func(c *Config) { c.API.BaseURL = "http://" },
			wantField: "api.base_url",
		},
		{
			name:      "negative timeout",
			mutate:    func(c *Config) { c.API.Timeout = -1 },
			wantField: "api.timeout",
		},
		{
			name:      "negative ttl",
			mutate:    func(c *Config) { c.Notifications.TTL = -1 },
			wantField: "notifications.ttl",
		},
		{
			name:      "negative max visible",
			mutate:    func(c *Config) { c.Notifications.MaxVisible = -2 },
			wantField: "notifications.max_visible",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
		},
		{
			name:      "bad debug addr",
			mutate:    func(c *Config) { c.Debug.Addr = "6060" },
			wantField: "debug.addr",
		},
		{
			name:      "blank department",
			mutate:    func(c *Config) { c.Departments = []string{"HR", "  "} },
			wantField: "departments[1]",
		},
		{
			name:      "duplicate department",
			mutate:    func(c *Config) { c.Departments = []string{"HR", "hr"} },
			wantField: "departments[1]",
		},
		{
			name:      "missing data dir",
			mutate:    func(c *Config) { c.DataDir = "" },
			wantField: "data_dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestValidate_collects_all_errors(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.Timeout = -1
	cfg.Notifications.TTL = -1
	cfg.TUI.Theme = "neon"

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 3)
}

func TestValidateDeep_config_path_is_directory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_missing_config_file_is_fine(t *testing.T) {
	cfg := validConfig(t)
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidateDeep_data_dir_is_file(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.DataDir = file

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}

func TestWarnings(t *testing.T) {
	cfg := validConfig(t)
	assert.Empty(t, cfg.Warnings())

	cfg.Notifications.MaxVisible = 0
	cfg.API.BaseURL = "http://hrms.example.com"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, "Notifications", warnings[0].Category)
	assert.Equal(t, "API", warnings[1].Category)
}
