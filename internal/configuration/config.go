// Package configuration loads the application's own settings (not the
// Hyprland config being edited) from a TOML file with environment
// overrides.
package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config represents the application configuration.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Reload ReloadConfig `toml:"reload"`
	UI     UIConfig     `toml:"ui"`
}

type EditorConfig struct {
	// ConfigPath overrides the conventional hyprland.conf location.
	ConfigPath string `toml:"config_path"`
	// Backup controls whether Save snapshots the file first.
	Backup bool `toml:"backup"`
}

type ReloadConfig struct {
	Command        string `toml:"command"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type UIConfig struct {
	// ConfirmQuit requires a second quit key press when there are unsaved
	// changes.
	ConfirmQuit bool `toml:"confirm_quit"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Backup: true,
		},
		Reload: ReloadConfig{
			Command:        "hyprctl",
			TimeoutSeconds: 5,
		},
		UI: UIConfig{
			ConfirmQuit: true,
		},
	}
}

// LoadConfig loads configuration from file with fallback to defaults.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config locations in order (XDG conventions)
	configPaths := []string{
		"./hyprconf.toml", // Current directory (for development)
		filepath.Join(xdg.ConfigHome, "hyprconf", "config.toml"),
		"/etc/hyprconf/config.toml",
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
			break
		}
	}

	// Environment overrides
	if path := os.Getenv("HYPRCONF_PATH"); path != "" {
		config.Editor.ConfigPath = path
	}
	if v := os.Getenv("HYPRCONF_NO_BACKUP"); v != "" {
		if noBackup, err := strconv.ParseBool(v); err == nil && noBackup {
			config.Editor.Backup = false
		}
	}
	if cmd := os.Getenv("HYPRCONF_RELOAD_COMMAND"); cmd != "" {
		config.Reload.Command = cmd
	}

	return config, nil
}
