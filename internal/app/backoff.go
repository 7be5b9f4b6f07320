package app

import (
	"context"
	"math/rand"
	"time"
)

// Read error backoff bounds.
const (
	DefaultBackoffInitial = 500 * time.Millisecond
	DefaultBackoffMax     = 10 * time.Second
)

// jitterFraction spreads each wait by up to ±20%.
const jitterFraction = 0.2

// backoff doubles the wait after each consecutive transport read error.
// It is owned by the host goroutine and is not safe for concurrent use.
type backoff struct {
	initial, max, next time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{initial: initial, max: max, next: initial}
}

// Sleep waits out the next delay, then doubles it up to max. It returns
// ctx's error if ctx ends first.
func (b *backoff) Sleep(ctx context.Context) error {
	wait := jittered(b.next)
	b.next = min(b.next*2, b.max)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Reset goes back to the initial delay after a successful poll.
func (b *backoff) Reset() { b.next = b.initial }

// Current is the un-jittered delay the next Sleep will use.
func (b *backoff) Current() time.Duration { return b.next }

func jittered(d time.Duration) time.Duration {
	spread := float64(d) * jitterFraction * (rand.Float64()*2 - 1)
	return d + time.Duration(spread)
}
