package tone

import "github.com/bft-labs/tinymorse/internal/ports"

// Logging records tone edges in the log instead of making sound.
type Logging struct {
	logger ports.Logger
}

// NewLogging returns a Logging tone writing to logger at debug level.
func NewLogging(logger ports.Logger) *Logging {
	return &Logging{logger: logger}
}

// Enable logs a tone-on.
func (l *Logging) Enable() { l.logger.Debug("tone on") }

// Disable logs a tone-off.
func (l *Logging) Disable() { l.logger.Debug("tone off") }

// Multi fans every call out to several outputs in order.
type Multi []ports.ToneOutput

// Enable enables every output.
func (m Multi) Enable() {
	for _, o := range m {
		o.Enable()
	}
}

// Disable disables every output.
func (m Multi) Disable() {
	for _, o := range m {
		o.Disable()
	}
}

var (
	_ ports.ToneOutput = (*Logging)(nil)
	_ ports.ToneOutput = Multi(nil)
)
