package domain

import "time"

// Cycle describes what happened to one buffer handed over by the transport.
type Cycle struct {
	// Seq numbers cycles from 1 for log correlation.
	Seq uint64

	// Bytes is the length of the received buffer.
	Bytes int

	// Played counts characters that produced tone.
	Played int

	// Silences counts spaces played as word gaps.
	Silences int

	// Dropped is the number of bytes left unplayed because consumption halted
	// on an unresolvable byte.
	Dropped int

	// HaltByte is the unresolvable byte that stopped consumption; only
	// meaningful when Dropped > 0.
	HaltByte byte

	// Duration is the wall time spent playing the buffer.
	Duration time.Duration
}

// Consumed returns the number of bytes consumed from the buffer.
func (c Cycle) Consumed() int {
	return c.Played + c.Silences
}

// Halted reports whether the cycle stopped before the end of its buffer.
func (c Cycle) Halted() bool {
	return c.Dropped > 0
}
