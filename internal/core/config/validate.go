package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/hrms/internal/core/styles"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("api.base_url", c.API.BaseURL, isHTTPURL),
		c.validateNumbers(),
		criterio.Run("tui.theme", c.TUI.Theme, isTheme),
		criterio.Run("debug.addr", c.Debug.Addr, isListenAddr),
		c.validateDepartments(),
		criterio.Run("data_dir", c.DataDir, notEmpty),
	)
}

// ValidateDeep performs Validate plus checks that touch the filesystem. The
// configPath argument is the config file location (empty skips that check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Notifications.MaxVisible == 0 {
		warnings = append(warnings, ValidationWarning{
			Category: "Notifications",
			Item:     "max_visible",
			Message:  "no cap on visible notifications; bursts may fill the screen",
		})
	}

	if u, err := url.Parse(c.API.BaseURL); err == nil && u.Scheme == "http" {
		host := u.Hostname()
		if host != "localhost" && net.ParseIP(host) == nil {
			warnings = append(warnings, ValidationWarning{
				Category: "API",
				Item:     "base_url",
				Message:  "plain http to a remote host; consider https",
			})
		}
	}

	return warnings
}

func (c *Config) validateNumbers() error {
	var b criterio.FieldErrorsBuilder
	if c.API.Timeout < 0 {
		b = b.Append("api.timeout", fmt.Errorf("must not be negative"))
	}
	if c.Notifications.TTL < 0 {
		b = b.Append("notifications.ttl", fmt.Errorf("must not be negative"))
	}
	if c.Notifications.MaxVisible < 0 {
		b = b.Append("notifications.max_visible", fmt.Errorf("must not be negative"))
	}
	return b.ToError()
}

func (c *Config) validateDepartments() error {
	var b criterio.FieldErrorsBuilder
	seen := make([]string, 0, len(c.Departments))
	for i, d := range c.Departments {
		field := fmt.Sprintf("departments[%d]", i)
		name := strings.TrimSpace(d)
		if name == "" {
			b = b.Append(field, fmt.Errorf("cannot be empty"))
			continue
		}
		if slices.Contains(seen, strings.ToLower(name)) {
			b = b.Append(field, fmt.Errorf("duplicate department %q", name))
			continue
		}
		seen = append(seen, strings.ToLower(name))
	}
	return b.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func isHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func isTheme(s string) error {
	if _, ok := styles.GetPalette(s); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", s, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func isListenAddr(s string) error {
	if s == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(s); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}
	return nil
}

// isDirectoryOrNotExist validates that path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
