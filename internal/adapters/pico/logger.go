//go:build tinygo

package pico

import (
	"strconv"
	"time"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Logger prints to the debug console with println. Debug lines are dropped
// unless Verbose is set.
type Logger struct {
	Verbose bool
}

func (l Logger) Debug(msg string, fields ...ports.Field) {
	if l.Verbose {
		l.print("DBG", msg, fields)
	}
}

func (l Logger) Info(msg string, fields ...ports.Field)  { l.print("INF", msg, fields) }
func (l Logger) Warn(msg string, fields ...ports.Field)  { l.print("WRN", msg, fields) }
func (l Logger) Error(msg string, fields ...ports.Field) { l.print("ERR", msg, fields) }

func (Logger) print(level, msg string, fields []ports.Field) {
	line := level + " " + msg
	for _, f := range fields {
		line += " " + f.Key + "=" + format(f.Value)
	}
	println(line)
}

// format avoids fmt to keep the firmware small.
func format(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	default:
		return "?"
	}
}

var _ ports.Logger = Logger{}
