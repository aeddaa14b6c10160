// Package config handles configuration for the client binary, including
// defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"path/filepath"
)

// Config holds runtime settings for the todolist client.
//
// Fields:
//   - ServerBaseURL: base URL of the remote store, without trailing slash.
//   - StateFile: path of the JSON file holding the persisted session
//     (token and user id), the terminal stand-in for browser local storage.
type Config struct {
	ServerBaseURL string
	StateFile     string
}

// LoadDefaults populates c with sensible defaults. The state file lives under
// the user config dir (XDG_CONFIG_HOME or ~/.config).
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.StateFile = filepath.Join(defaultConfigDir(), "session.json")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "todolist")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "todolist"
	}
	return filepath.Join(home, ".config", "todolist")
}
