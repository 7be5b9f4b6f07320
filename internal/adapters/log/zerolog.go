// Package log adapts zerolog to the ports.Logger interface.
package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Zerolog implements ports.Logger on top of a zerolog.Logger.
type Zerolog struct {
	logger zerolog.Logger
}

// NewZerolog wraps logger.
func NewZerolog(logger zerolog.Logger) *Zerolog {
	return &Zerolog{logger: logger}
}

// NewConsoleLogger returns a timestamped zerolog.Logger writing human-readable
// lines to out at the given level.
func NewConsoleLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog.Level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}

func (z *Zerolog) Debug(msg string, fields ...ports.Field) { z.emit(zerolog.DebugLevel, msg, fields) }
func (z *Zerolog) Info(msg string, fields ...ports.Field)  { z.emit(zerolog.InfoLevel, msg, fields) }
func (z *Zerolog) Warn(msg string, fields ...ports.Field)  { z.emit(zerolog.WarnLevel, msg, fields) }
func (z *Zerolog) Error(msg string, fields ...ports.Field) { z.emit(zerolog.ErrorLevel, msg, fields) }

// emit is a no-op below the logger's level; WithLevel returns a nil event.
func (z *Zerolog) emit(level zerolog.Level, msg string, fields []ports.Field) {
	event := z.logger.WithLevel(level)
	if event == nil {
		return
	}
	for _, f := range fields {
		event = withField(event, f)
	}
	event.Msg(msg)
}

func withField(event *zerolog.Event, f ports.Field) *zerolog.Event {
	switch v := f.Value.(type) {
	case string:
		return event.Str(f.Key, v)
	case int:
		return event.Int(f.Key, v)
	case uint32:
		return event.Uint32(f.Key, v)
	case uint64:
		return event.Uint64(f.Key, v)
	case float64:
		return event.Float64(f.Key, v)
	case bool:
		return event.Bool(f.Key, v)
	case time.Duration:
		return event.Dur(f.Key, v)
	case error:
		return event.AnErr(f.Key, v)
	default:
		return event.Interface(f.Key, v)
	}
}

var _ ports.Logger = (*Zerolog)(nil)
