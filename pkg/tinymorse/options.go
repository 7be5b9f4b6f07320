package tinymorse

import (
	"io"

	"github.com/bft-labs/tinymorse/internal/adapters/transport"
	"github.com/bft-labs/tinymorse/internal/ports"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// Logger is the interface for structured logging.
type Logger = ports.Logger

// LogField represents a structured log field.
type LogField = ports.Field

// Transport is the byte-stream link text arrives on.
type Transport = ports.Transport

// Option configures optional behavior of a Player.
type Option func(*options)

type options struct {
	logger       ports.Logger
	transport    ports.Transport
	tone         morse.ToneOutput
	delayer      morse.Delayer
	eventHandler EventHandler
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport sets where text is read from. Required.
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}

// WithTone sets the tone output. If not provided, playback is silent and
// only timing and events are observable.
func WithTone(tone morse.ToneOutput) Option {
	return func(o *options) {
		o.tone = tone
	}
}

// WithDelayer sets the delay source. If not provided, delays sleep on the
// wall clock.
func WithDelayer(d morse.Delayer) Option {
	return func(o *options) {
		o.delayer = d
	}
}

// WithEventHandler sets a handler for player events.
// If not provided, no events are emitted.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// NewReaderTransport plays text read from r. Greetings are written to w,
// which may be nil. The transport closes when r returns io.EOF.
func NewReaderTransport(r io.Reader, w io.Writer) Transport {
	return transport.NewStream(r, w)
}

// silentTone discards tone changes.
type silentTone struct{}

func (silentTone) Enable()  {}
func (silentTone) Disable() {}
