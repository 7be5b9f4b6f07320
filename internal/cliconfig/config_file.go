package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	UnitMs        int     `toml:"unit_ms"`
	WPM           int     `toml:"wpm"`
	Tone          string  `toml:"tone"`
	Frequency     float64 `toml:"frequency"`
	Volume        float64 `toml:"volume"`
	Input         string  `toml:"input"`
	Follow        *bool   `toml:"follow"`
	Listen        string  `toml:"listen"`
	Greeting      string  `toml:"greeting"`
	NoGreeting    *bool   `toml:"no_greeting"`
	GreetingDelay string  `toml:"greeting_delay"`
	PollInterval  string  `toml:"poll_interval"`
	BufferSize    int     `toml:"buffer_size"`
	Once          *bool   `toml:"once"`
	DryRun        *bool   `toml:"dry_run"`
	LogLevel      string  `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.tinymorse/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tinymorse", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tone", fc.Tone, &cfg.Tone)
	s.setString("input", fc.Input, &cfg.Input)
	s.setString("listen", fc.Listen, &cfg.Listen)
	s.setString("greeting", fc.Greeting, &cfg.Greeting)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("greeting-delay", fc.GreetingDelay, &cfg.GreetingDelay); err != nil {
		return err
	}
	if err := s.setDuration("poll", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}

	s.setFloat("frequency", fc.Frequency, &cfg.Frequency)
	s.setFloat("volume", fc.Volume, &cfg.Volume)

	s.setInt("unit", fc.UnitMs, &cfg.UnitMs)
	s.setInt("wpm", fc.WPM, &cfg.WPM)
	s.setInt("buffer-size", fc.BufferSize, &cfg.BufferSize)

	s.setBool("follow", fc.Follow, &cfg.Follow)
	s.setBool("no-greeting", fc.NoGreeting, &cfg.NoGreeting)
	s.setBool("once", fc.Once, &cfg.Once)
	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
