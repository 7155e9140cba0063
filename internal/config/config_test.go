package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 500, cfg.IntervalMS)
	assert.Equal(t, 300, cfg.AverageWindowSec)
	assert.Equal(t, 500*time.Millisecond, cfg.Interval())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name             string
		interval         int
		average          int
		expectedInterval int
		expectedAverage  int
	}{
		{"valid values untouched", 200, 60, 200, 60},
		{"zero interval resets to default", 0, 60, 500, 60},
		{"negative interval resets to default", -10, 60, 500, 60},
		{"negative average clamps to zero", 200, -5, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{IntervalMS: tt.interval, AverageWindowSec: tt.average}
			cfg.Normalize()
			assert.Equal(t, tt.expectedInterval, cfg.IntervalMS)
			assert.Equal(t, tt.expectedAverage, cfg.AverageWindowSec)
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	args := []string{"-t", "200", "-a", "10", "-d", "eth", "--ignore", "lo, docker0", "--debug-info"}
	cfg, err := ParseFlags(args, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.IntervalMS)
	assert.Equal(t, 10, cfg.AverageWindowSec)
	assert.Equal(t, "eth", cfg.Device)
	assert.Equal(t, []string{"lo", "docker0"}, cfg.Ignore)
	assert.True(t, cfg.DebugInfo)
}

func TestParseFlagsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := ParseFlags(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.IntervalMS)
	assert.Equal(t, 300, cfg.AverageWindowSec)
	assert.Empty(t, cfg.Device)
	assert.Empty(t, cfg.Ignore)
	assert.False(t, cfg.DebugInfo)
}

func TestConfigFileProvidesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	appDir := filepath.Join(dir, AppName)
	require.NoError(t, os.MkdirAll(appDir, 0700))

	fileCfg := map[string]any{
		"interval_ms":        250,
		"average_window_sec": 30,
		"device":             "wlan",
	}
	data, err := json.Marshal(fileCfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(appDir, ConfigFileName), data, 0600))

	// File values apply when no flags are given.
	cfg, err := ParseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.IntervalMS)
	assert.Equal(t, 30, cfg.AverageWindowSec)
	assert.Equal(t, "wlan", cfg.Device)

	// Flags override the file.
	cfg, err = ParseFlags([]string{"-t", "100"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.IntervalMS)
	assert.Equal(t, 30, cfg.AverageWindowSec)
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
