package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/picklist/internal/core/config"
	"github.com/colonyops/picklist/internal/core/logging"
	"github.com/colonyops/picklist/internal/core/picking"
	"github.com/colonyops/picklist/internal/data/orderfile"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Orders overrides the orders pattern from the config file.
	Orders string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// OrdersPattern returns the effective orders glob. An empty pattern selects
// the embedded sample dataset.
func (f *Flags) OrdersPattern() string {
	if f.Orders != "" {
		return f.Orders
	}
	if f.Config != nil {
		return f.Config.Orders
	}
	return ""
}

// Source returns the order source selected by the flags and config.
func (f *Flags) Source() (picking.Source, error) {
	pattern := f.OrdersPattern()
	if pattern == "" {
		return picking.Embedded(), nil
	}
	return orderfile.New(pattern, logging.Component("orderfile"))
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "picklist", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/picklist/picklist.log
// On Linux: $XDG_STATE_HOME/picklist/picklist.log (defaults to ~/.local/state/picklist/picklist.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "picklist", "picklist.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "picklist", "picklist.log")
	}

	return filepath.Join(home, ".local", "state", "picklist", "picklist.log")
}
