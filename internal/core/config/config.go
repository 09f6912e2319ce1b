// Package config handles configuration loading and validation for hrms.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

// Environment variables that override the config file.
const (
	EnvAPIURL = "HRMS_API_URL"
	EnvConfig = "HRMS_CONFIG"
)

// Config holds the application configuration.
type Config struct {
	API           APIConfig          `yaml:"api"`
	Notifications NotificationConfig `yaml:"notifications"`
	TUI           TUIConfig          `yaml:"tui"`
	Departments   []string           `yaml:"departments"`
	Debug         DebugConfig        `yaml:"debug"`
	DataDir       string             `yaml:"-"` // set by caller, not from config file
}

// APIConfig holds settings for the HRMS API client.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// NotificationConfig controls the toast queue and its history.
type NotificationConfig struct {
	TTL time.Duration `yaml:"ttl"`
	// MaxVisible limits how many toasts the TUI draws at once. Hidden toasts
	// stay queued until they expire or are dismissed.
	MaxVisible int `yaml:"max_visible"`
	// History records every published notification in the local database.
	// A nil value means enabled.
	History *bool `yaml:"history"`
}

// HistoryEnabled reports whether notification history is persisted.
func (n NotificationConfig) HistoryEnabled() bool {
	return n.History == nil || *n.History
}

// TUIConfig holds terminal UI preferences.
type TUIConfig struct {
	Theme       string `yaml:"theme"` // one of styles.ThemeNames()
	SkipWelcome bool   `yaml:"skip_welcome"`
}

// DebugConfig configures the optional pprof and metrics server.
type DebugConfig struct {
	// Addr is the listen address, e.g. "localhost:6060". Empty disables the server.
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		Notifications: NotificationConfig{
			TTL:        5 * time.Second,
			MaxVisible: 5,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
		Departments: append([]string(nil), hrms.DefaultDepartments...),
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/hrms/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "hrms", "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/hrms, falling back to ~/.local/share.
func DefaultDataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), "hrms")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
// HRMS_API_URL overrides api.base_url.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.BaseURL = url
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaults.API.BaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
	if c.Notifications.TTL == 0 {
		c.Notifications.TTL = defaults.Notifications.TTL
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if len(c.Departments) == 0 {
		c.Departments = defaults.Departments
	}
}

// DatabaseFile returns the path to the local sqlite database.
func (c *Config) DatabaseFile() string {
	return filepath.Join(c.DataDir, "hrms.db")
}

// LogFile returns the default log file location inside the data directory.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "hrms.log")
}
