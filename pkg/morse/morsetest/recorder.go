// Package morsetest provides a recording tone output and delayer for tests
// and dry runs of morse playback.
package morsetest

import (
	"strings"
	"sync"
)

// Kind identifies a recorded event.
type Kind uint8

const (
	ToneOn Kind = iota
	ToneOff
	Delay
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case ToneOn:
		return "on"
	case ToneOff:
		return "off"
	default:
		return "delay"
	}
}

// Event is one call made on the Recorder.
type Event struct {
	Kind Kind
	// Ms is the delay length; zero for tone events.
	Ms uint32
	// At is the simulated time in milliseconds when the call was made.
	At uint64
}

// Recorder implements morse.ToneOutput and morse.Delayer without touching
// hardware or sleeping. Delays advance a simulated clock.
// It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	events  []Event
	now     uint64
	on      bool
	onSince uint64
	toneMs  uint64
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{}
}

// Enable records a tone-on.
func (r *Recorder) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: ToneOn, At: r.now})
	if !r.on {
		r.on = true
		r.onSince = r.now
	}
}

// Disable records a tone-off.
func (r *Recorder) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: ToneOff, At: r.now})
	if r.on {
		r.on = false
		r.toneMs += r.now - r.onSince
	}
}

// Delay records a delay and advances the simulated clock.
func (r *Recorder) Delay(ms uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: Delay, Ms: ms, At: r.now})
	r.now += uint64(ms)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Elapsed returns the simulated time in milliseconds.
func (r *Recorder) Elapsed() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now
}

// ToneOnMs returns the total time the tone was enabled.
func (r *Recorder) ToneOnMs() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.on {
		return r.toneMs + r.now - r.onSince
	}
	return r.toneMs
}

// IsOn reports whether the tone is currently enabled.
func (r *Recorder) IsOn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.on
}

// Delays returns the lengths of all recorded delays in order.
func (r *Recorder) Delays() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []uint32
	for _, e := range r.events {
		if e.Kind == Delay {
			out = append(out, e.Ms)
		}
	}
	return out
}

// Pattern reconstructs the dot/dash text from the timeline. A tone shorter
// than two units is a dot, anything longer a dash. Silences of at least three
// units become a character break (" ") and of at least seven a word break
// (" / ").
func (r *Recorder) Pattern(unit uint32) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		sb      strings.Builder
		onAt    uint64
		offAt   uint64
		started bool
	)
	for _, e := range r.events {
		switch e.Kind {
		case ToneOn:
			if started {
				gap := e.At - offAt
				switch {
				case gap >= 7*uint64(unit):
					sb.WriteString(" / ")
				case gap >= 3*uint64(unit):
					sb.WriteByte(' ')
				}
			}
			onAt = e.At
		case ToneOff:
			if e.At-onAt < 2*uint64(unit) {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('-')
			}
			offAt = e.At
			started = true
		}
	}
	return sb.String()
}

// Reset clears all recorded state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.now = 0
	r.on = false
	r.onSince = 0
	r.toneMs = 0
}
