package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
accent: "#89B4FA"
tick: 100ms
snooze: 10m
sound:
  enabled: true
  frequency: 440
  interval: 1s
log:
  level: DEBUG
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#89B4FA", cfg.Accent)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
	assert.Equal(t, 10*time.Minute, cfg.Snooze)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 440.0, cfg.Sound.Frequency)
	assert.Equal(t, 270, cfg.Sound.Duration)
	assert.Equal(t, time.Second, cfg.Sound.Interval)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CHIME_SOUND_ENABLED", "true")
	t.Setenv("CHIME_SNOOZE", "7m")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 7*time.Minute, cfg.Snooze)
}

func TestNormalize(t *testing.T) {
	cfg := Config{Tick: time.Millisecond, Snooze: 10 * time.Second}
	cfg.Normalize()
	assert.Equal(t, 16*time.Millisecond, cfg.Tick)
	assert.Equal(t, 5*time.Minute, cfg.Snooze)
	assert.Equal(t, "#A6E3A1", cfg.Accent)
	assert.Equal(t, 880.0, cfg.Sound.Frequency)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg = Config{Tick: time.Minute}
	cfg.Normalize()
	assert.Equal(t, time.Second, cfg.Tick)
}
