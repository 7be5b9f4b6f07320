package tinymorse

import (
	"fmt"
	"time"

	"github.com/bft-labs/tinymorse/internal/app"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// Defaults applied by [Config.SetDefaults].
const (
	DefaultBufferSize    = app.DefaultBufferSize
	DefaultPollInterval  = app.DefaultPollInterval
	DefaultGreetingDelay = app.DefaultGreetingDelay
)

// DefaultGreeting is the message the reference firmware sends after start.
// Set Config.Greeting to it to reproduce that behavior.
const DefaultGreeting = app.DefaultGreeting

// Config configures a [Player].
type Config struct {
	// Timing sets the unit length. Zero means morse.DefaultTiming().
	Timing morse.Timing

	// PollInterval is how long to wait after an empty poll.
	PollInterval time.Duration

	// BufferSize is the largest chunk read from the transport per cycle.
	BufferSize int

	// Greeting is written to the transport once, GreetingDelay after Start.
	// Empty disables it.
	Greeting      string
	GreetingDelay time.Duration

	// Once stops the player when input goes idle after something was played.
	Once bool
}

// SetDefaults fills zero fields with defaults.
func (c *Config) SetDefaults() {
	if c.Timing.Unit == 0 {
		c.Timing = morse.DefaultTiming()
	}
	if c.PollInterval == 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Timing.Unit == 0:
		return fmt.Errorf("%w: timing unit must be positive", ErrInvalidConfig)
	case c.Timing.Unit > morse.MaxUnit:
		return fmt.Errorf("%w: timing unit must be at most %dms", ErrInvalidConfig, morse.MaxUnit)
	case c.PollInterval < 0:
		return fmt.Errorf("%w: poll interval must not be negative", ErrInvalidConfig)
	case c.BufferSize <= 0:
		return fmt.Errorf("%w: buffer size must be positive", ErrInvalidConfig)
	case c.GreetingDelay < 0:
		return fmt.Errorf("%w: greeting delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) hostConfig() app.HostConfig {
	return app.HostConfig{
		Timing:        c.Timing,
		PollInterval:  c.PollInterval,
		BufferSize:    c.BufferSize,
		Greeting:      c.Greeting,
		GreetingDelay: c.GreetingDelay,
		Once:          c.Once,
	}
}
