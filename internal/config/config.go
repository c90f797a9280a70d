package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type SoundConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Frequency float64       `mapstructure:"frequency"` // Hz
	Duration  int           `mapstructure:"duration"`  // ms per beep
	Interval  time.Duration `mapstructure:"interval"`  // between beep starts
}

type LogConfig struct {
	Level string `mapstructure:"level"` // debug|info|warn|error
}

type Config struct {
	Theme   string        `mapstructure:"theme"`
	Accent  string        `mapstructure:"accent"` // "#rrggbb", cosmetic
	Tick    time.Duration `mapstructure:"tick"`
	Snooze  time.Duration `mapstructure:"snooze"`
	DataDir string        `mapstructure:"data_dir"`
	Sound   SoundConfig   `mapstructure:"sound"`
	Log     LogConfig     `mapstructure:"log"`
}

const (
	minTick = 16 * time.Millisecond
	maxTick = time.Second
)

func Default() Config {
	return Config{
		Theme:   "default",
		Accent:  "#A6E3A1",
		Tick:    250 * time.Millisecond,
		Snooze:  5 * time.Minute,
		DataDir: "",
		Sound: SoundConfig{
			Enabled:   false,
			Frequency: 880,
			Duration:  270,
			Interval:  650 * time.Millisecond,
		},
		Log: LogConfig{Level: "info"},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "chime")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads ~/.config/chime/config.yaml (missing is fine) with CHIME_*
// environment overrides, e.g. CHIME_SOUND_ENABLED=true.
func Load() (Config, error) {
	path, err := xdgConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("chime")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("accent", cfg.Accent)
	v.SetDefault("tick", cfg.Tick)
	v.SetDefault("snooze", cfg.Snooze)
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("sound.enabled", cfg.Sound.Enabled)
	v.SetDefault("sound.frequency", cfg.Sound.Frequency)
	v.SetDefault("sound.duration", cfg.Sound.Duration)
	v.SetDefault("sound.interval", cfg.Sound.Interval)
	v.SetDefault("log.level", cfg.Log.Level)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("config unmarshal: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps values that would make the clock misbehave.
func (c *Config) Normalize() {
	d := Default()
	switch {
	case c.Tick <= 0:
		c.Tick = d.Tick
	case c.Tick < minTick:
		c.Tick = minTick
	case c.Tick > maxTick:
		c.Tick = maxTick
	}
	if c.Snooze < time.Minute {
		c.Snooze = d.Snooze
	}
	if c.Sound.Frequency <= 0 {
		c.Sound.Frequency = d.Sound.Frequency
	}
	if c.Sound.Duration <= 0 {
		c.Sound.Duration = d.Sound.Duration
	}
	if c.Sound.Interval <= 0 {
		c.Sound.Interval = d.Sound.Interval
	}
	c.Accent = strings.TrimSpace(c.Accent)
	if c.Accent == "" {
		c.Accent = d.Accent
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
