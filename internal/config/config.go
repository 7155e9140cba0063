// Package config manages application-level configuration.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// AppName is the application identifier used for XDG paths.
	AppName = "netload"
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "config.json"
)

// Config holds the runtime configuration. File values provide defaults,
// command-line flags override them.
type Config struct {
	// IntervalMS is the sampling interval in milliseconds. Must be > 0.
	IntervalMS int `json:"interval_ms"`

	// AverageWindowSec is the rolling average window in seconds. Values
	// yielding an empty window are clamped to a 1-sample window.
	AverageWindowSec int `json:"average_window_sec"`

	// Device selects the initially shown device by partial name match.
	Device string `json:"device,omitempty"`

	// Ignore lists interface names to exclude from monitoring.
	Ignore []string `json:"ignore,omitempty"`

	// LogFile receives debug logging; empty disables it.
	LogFile string `json:"log_file,omitempty"`

	// DebugInfo prints interface information and exits.
	DebugInfo bool `json:"-"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		IntervalMS:       500,
		AverageWindowSec: 300,
	}
}

// Interval returns the sampling interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Normalize clamps out-of-range values back to usable ones.
func (c *Config) Normalize() {
	if c.IntervalMS <= 0 {
		c.IntervalMS = DefaultConfig().IntervalMS
	}
	if c.AverageWindowSec < 0 {
		c.AverageWindowSec = 0
	}
}

// FilePath returns the configuration file location following the XDG Base
// Directory spec.
func FilePath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, AppName, ConfigFileName), nil
}

// LoadFile reads configuration from path over the defaults. A missing file
// is not an error; the defaults are returned unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseFlags builds the effective configuration: defaults, then the config
// file if present, then command-line overrides.
func ParseFlags(args []string, output io.Writer) (*Config, error) {
	path, err := FilePath()
	if err != nil {
		path = ""
	}
	var cfg *Config
	if path != "" {
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = DefaultConfig()
	}

	var ignore string
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.IntervalMS, "t", cfg.IntervalMS, "refresh interval in milliseconds")
	fs.IntVar(&cfg.IntervalMS, "interval", cfg.IntervalMS, "refresh interval in milliseconds")
	fs.IntVar(&cfg.AverageWindowSec, "a", cfg.AverageWindowSec, "average window in seconds")
	fs.IntVar(&cfg.AverageWindowSec, "average", cfg.AverageWindowSec, "average window in seconds")
	fs.StringVar(&cfg.Device, "d", cfg.Device, "default device name (partial match)")
	fs.StringVar(&cfg.Device, "device", cfg.Device, "default device name (partial match)")
	fs.StringVar(&ignore, "ignore", strings.Join(cfg.Ignore, ","), "comma-separated interface names to skip")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write debug logs to this file")
	fs.BoolVar(&cfg.DebugInfo, "debug-info", false, "print interface info and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Ignore = nil
	for _, name := range strings.Split(ignore, ",") {
		if name = strings.TrimSpace(name); name != "" {
			cfg.Ignore = append(cfg.Ignore, name)
		}
	}

	cfg.Normalize()
	return cfg, nil
}
