// Package clock provides Delayer implementations for the host loop.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Sleeper blocks the calling goroutine for the requested time.
// Delays are never interrupted: a character that started playing always
// finishes with correct timing.
type Sleeper struct {
	sleep func(time.Duration)
}

// NewSleeper returns a Delayer backed by time.Sleep.
func NewSleeper() *Sleeper {
	return &Sleeper{sleep: time.Sleep}
}

// Delay sleeps for ms milliseconds.
func (s *Sleeper) Delay(ms uint32) {
	if ms == 0 {
		return
	}
	s.sleep(time.Duration(ms) * time.Millisecond)
}

// Virtual advances a simulated clock instead of sleeping. It is used for dry
// runs where only the resulting timeline matters.
type Virtual struct {
	elapsed atomic.Uint64
}

// NewVirtual returns a Virtual clock at zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Delay advances the clock by ms milliseconds and returns immediately.
func (v *Virtual) Delay(ms uint32) {
	v.elapsed.Add(uint64(ms))
}

// Elapsed returns the total simulated time.
func (v *Virtual) Elapsed() time.Duration {
	return time.Duration(v.elapsed.Load()) * time.Millisecond
}

var (
	_ ports.Delayer = (*Sleeper)(nil)
	_ ports.Delayer = (*Virtual)(nil)
)
