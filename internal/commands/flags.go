package commands

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/colonyops/hrms/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
	APIURL     string
	DebugAddr  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Metrics exposes API call metrics on the debug server.
	Metrics prometheus.Gatherer

	// StopToasts detaches the stderr notification printer. The TUI calls it
	// before taking over the screen.
	StopToasts func()
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	return config.DefaultDataDir()
}
