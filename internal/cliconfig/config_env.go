package cliconfig

import "os"

// EnvPrefix prefixes every environment variable tinymorse reads.
const EnvPrefix = "TINYMORSE_"

func getenv(name string) string {
	return os.Getenv(EnvPrefix + name)
}

// ApplyEnvConfig applies configuration from environment variables (TINYMORSE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("tone", getenv("TONE"), &cfg.Tone)
	s.setString("input", getenv("INPUT"), &cfg.Input)
	s.setString("listen", getenv("LISTEN"), &cfg.Listen)
	s.setString("greeting", getenv("GREETING"), &cfg.Greeting)
	s.setString("log-level", getenv("LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("greeting-delay", getenv("GREETING_DELAY"), &cfg.GreetingDelay); err != nil {
		return err
	}
	if err := s.setDuration("poll", getenv("POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	if err := s.setFloatFromString("frequency", getenv("FREQUENCY"), &cfg.Frequency); err != nil {
		return err
	}
	if err := s.setFloatFromString("volume", getenv("VOLUME"), &cfg.Volume); err != nil {
		return err
	}

	if err := s.setIntFromString("unit", getenv("UNIT_MS"), &cfg.UnitMs); err != nil {
		return err
	}
	if err := s.setIntFromString("wpm", getenv("WPM"), &cfg.WPM); err != nil {
		return err
	}
	if err := s.setIntFromString("buffer-size", getenv("BUFFER_SIZE"), &cfg.BufferSize); err != nil {
		return err
	}

	s.setBoolFromString("follow", getenv("FOLLOW"), &cfg.Follow)
	s.setBoolFromString("no-greeting", getenv("NO_GREETING"), &cfg.NoGreeting)
	s.setBoolFromString("once", getenv("ONCE"), &cfg.Once)
	s.setBoolFromString("dry-run", getenv("DRY_RUN"), &cfg.DryRun)

	return nil
}
