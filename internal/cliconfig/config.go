package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	logadapter "github.com/bft-labs/tinymorse/internal/adapters/log"
	"github.com/bft-labs/tinymorse/internal/app"
	"github.com/bft-labs/tinymorse/internal/domain"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// Tone backends selectable with --tone.
const (
	ToneSpeaker  = "speaker"
	ToneTerminal = "terminal"
	ToneLog      = "log"
)

// ToneBackends lists the valid --tone values.
var ToneBackends = []string{ToneSpeaker, ToneTerminal, ToneLog}

// StdinInput selects standard input/output as the transport.
const StdinInput = "-"

// Config holds CLI configuration for tinymorse.
type Config struct {
	// UnitMs is the dot length in milliseconds. WPM, when set, overrides it.
	UnitMs int
	WPM    int

	Tone      string
	Frequency float64
	Volume    float64

	Input  string
	Follow bool
	Listen string

	Greeting      string
	NoGreeting    bool
	GreetingDelay time.Duration

	PollInterval time.Duration
	BufferSize   int
	Once         bool
	DryRun       bool
	LogLevel     string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		UnitMs:        int(morse.Unit),
		Tone:          ToneSpeaker,
		Frequency:     700,
		Volume:        0.5,
		Input:         StdinInput,
		Greeting:      app.DefaultGreeting,
		GreetingDelay: app.DefaultGreetingDelay,
		PollInterval:  app.DefaultPollInterval,
		BufferSize:    app.DefaultBufferSize,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.WPM > 0 {
		c.UnitMs = int(morse.TimingForWPM(c.WPM).Unit)
	}
	if c.UnitMs <= 0 {
		return invalid("unit must be positive")
	}
	if c.UnitMs > int(morse.MaxUnit) {
		return invalid("unit must be at most %dms, got %d", morse.MaxUnit, c.UnitMs)
	}

	c.Tone = strings.ToLower(strings.TrimSpace(c.Tone))
	if c.Tone == "" {
		c.Tone = ToneSpeaker
	}
	if !lo.Contains(ToneBackends, c.Tone) {
		return invalid("tone must be one of %s, got %q", strings.Join(ToneBackends, ", "), c.Tone)
	}
	if c.Frequency <= 0 {
		return invalid("frequency must be positive")
	}
	if c.Volume <= 0 || c.Volume > 1 {
		return invalid("volume must be in (0, 1]")
	}

	if c.Input == "" {
		c.Input = StdinInput
	}
	if c.Listen != "" && c.Input != StdinInput {
		return invalid("listen and input are mutually exclusive")
	}
	if c.Follow && (c.Input == StdinInput || c.Listen != "") {
		return invalid("follow requires an input file")
	}

	if c.NoGreeting {
		c.Greeting = ""
	}
	if c.GreetingDelay < 0 {
		return invalid("greeting delay must not be negative")
	}
	if c.PollInterval <= 0 {
		return invalid("poll interval must be positive")
	}
	if c.BufferSize <= 0 {
		return invalid("buffer size must be positive")
	}
	if _, err := logadapter.ParseLevel(c.LogLevel); err != nil {
		return invalid("log level %q: %v", c.LogLevel, err)
	}

	return nil
}

// Timing returns the playback timing for the configured unit.
func (c Config) Timing() morse.Timing {
	return morse.Timing{Unit: uint32(c.UnitMs)}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
