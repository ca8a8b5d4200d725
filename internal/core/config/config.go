// Package config handles configuration loading and validation for picklist.
package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/picklist/internal/core/styles"
)

// Keys that the review screen binds itself: quit, help, and the navigation
// and confirmation keys of both phases. The accelerator is matched first, so
// it must not shadow any of them.
var reservedKeys = []string{
	"q", "ctrl+c", "?",
	"right", "l", "n", "pgdown",
	"left", "h", "p", "pgup",
	"y", "esc", "b", "backspace",
}

// Config holds the application configuration.
type Config struct {
	// Orders is a doublestar glob of order files. Empty uses the embedded sample.
	Orders string       `yaml:"orders"`
	TUI    TUIConfig    `yaml:"tui"`
	Keys   KeysConfig   `yaml:"keys"`
	Review ReviewConfig `yaml:"review"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme    string `yaml:"theme"`
	Title    string `yaml:"title"`
	MaxWidth int    `yaml:"max_width"`

	// ToastTTL is how long a notification stays on screen.
	ToastTTL time.Duration `yaml:"toast_ttl"`
	// MaxToasts caps the notification stack; the oldest is dropped first.
	MaxToasts int `yaml:"max_toasts"`
}

// KeysConfig holds configurable key bindings.
type KeysConfig struct {
	// Advance is the global accelerator, equivalent to the Next control.
	Advance string `yaml:"advance"`
}

// ReviewConfig holds review flow settings.
type ReviewConfig struct {
	// AcceleratorConfirms makes the accelerator confirm the review while the
	// confirmation prompt is open. When false it only advances, which does
	// nothing at the prompt.
	AcceleratorConfirms *bool `yaml:"accelerator_confirms"`
}

// ConfirmsWithAccelerator reports the effective accelerator_confirms value.
func (r ReviewConfig) ConfirmsWithAccelerator() bool {
	return r.AcceleratorConfirms == nil || *r.AcceleratorConfirms
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:     styles.DefaultTheme,
			Title:     "Picking List",
			MaxWidth:  80,
			ToastTTL:  5 * time.Second,
			MaxToasts: 5,
		},
		Keys: KeysConfig{
			Advance: "enter",
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Title == "" {
		c.TUI.Title = defaults.TUI.Title
	}
	if c.TUI.MaxWidth == 0 {
		c.TUI.MaxWidth = defaults.TUI.MaxWidth
	}
	if c.TUI.ToastTTL == 0 {
		c.TUI.ToastTTL = defaults.TUI.ToastTTL
	}
	if c.TUI.MaxToasts == 0 {
		c.TUI.MaxToasts = defaults.TUI.MaxToasts
	}
	if c.Keys.Advance == "" {
		c.Keys.Advance = defaults.Keys.Advance
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.Keys.Advance == "" {
		return fmt.Errorf("keys.advance cannot be empty")
	}

	if slices.Contains(reservedKeys, c.Keys.Advance) {
		return fmt.Errorf("keys.advance %q is reserved by the review screen", c.Keys.Advance)
	}

	if c.TUI.MaxWidth < 20 {
		return fmt.Errorf("tui.max_width must be at least 20")
	}

	if c.TUI.ToastTTL <= 0 {
		return fmt.Errorf("tui.toast_ttl must be positive")
	}

	if c.TUI.MaxToasts < 1 {
		return fmt.Errorf("tui.max_toasts must be at least 1")
	}

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return fmt.Errorf("tui.theme %q is not a known theme", c.TUI.Theme)
	}

	return nil
}
