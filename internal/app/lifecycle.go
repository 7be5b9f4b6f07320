package app

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/bft-labs/tinymorse/internal/domain"
	"github.com/bft-labs/tinymorse/internal/ports"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// shutdownGrace is added on top of the longest uninterruptible stretch of
// playback when waiting for the host to stop.
const shutdownGrace = time.Second

// ShutdownTimeout returns how long Stop waits for the host. Cancellation is
// only seen between characters, so the wait must cover the longest character
// ('0': five dashes, 19 units) plus its gap, or a word gap, plus one poll.
func ShutdownTimeout(t morse.Timing, poll time.Duration) time.Duration {
	worst := t.Dash()*5 + t.ElementGap()*4 + t.CharacterGap()
	if wg := t.WordGap(); wg > worst {
		worst = wg
	}
	return time.Duration(worst)*time.Millisecond + poll + shutdownGrace
}

// State represents the lifecycle state of the player service.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

var stateNames = map[State]string{
	StateStopped:  "Stopped",
	StateStarting: "Starting",
	StateRunning:  "Running",
	StateStopping: "Stopping",
	StateCrashed:  "Crashed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "Unknown"
}

// transitions lists where each state may go next.
var transitions = map[State][]State{
	StateStopped:  {StateStarting},
	StateStarting: {StateRunning, StateStopping, StateCrashed},
	StateRunning:  {StateStopping, StateCrashed},
	StateStopping: {StateStopped, StateCrashed},
	StateCrashed:  {StateStarting},
}

// idle reports whether s has no playback goroutine behind it.
func (s State) idle() bool {
	return s == StateStopped || s == StateCrashed
}

// EventEmitter is called after every accepted state change.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// Lifecycle tracks the player state and the single playback goroutine.
type Lifecycle struct {
	mu      sync.RWMutex
	state   State
	cancel  context.CancelFunc
	worker  sync.WaitGroup
	logger  ports.Logger
	emitter EventEmitter
}

// NewLifecycle returns a lifecycle in StateStopped. emitter may be nil.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:   StateStopped,
		logger:  logger,
		emitter: emitter,
	}
}

// State returns the current state.
func (l *Lifecycle) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Can reports whether moving to next is allowed from the current state.
func (l *Lifecycle) Can(next State) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return lo.Contains(transitions[l.state], next)
}

// TransitionTo moves to next. An invalid move returns ErrNotRunning when the
// player is idle and ErrAlreadyRunning otherwise; the state is unchanged.
func (l *Lifecycle) TransitionTo(next State, reason string) error {
	l.mu.Lock()
	prev := l.state
	if !lo.Contains(transitions[prev], next) {
		l.mu.Unlock()
		if prev.idle() {
			return domain.ErrNotRunning
		}
		return domain.ErrAlreadyRunning
	}
	l.state = next
	l.mu.Unlock()

	if l.emitter != nil {
		l.emitter.OnStateChange(prev, next, reason)
	}
	l.logger.Info("state transition",
		ports.String("from", prev.String()),
		ports.String("to", next.String()),
		ports.String("reason", reason),
	)
	return nil
}

// Go runs fn on a tracked goroutine with a context that Cancel ends. The
// context is also canceled when fn returns.
func (l *Lifecycle) Go(ctx context.Context, fn func(ctx context.Context)) {
	runCtx, cancel := context.WithCancel(ctx)
	l.mu.Lock()
	l.cancel = cancel
	l.mu.Unlock()

	l.worker.Add(1)
	go func() {
		defer l.worker.Done()
		defer cancel()
		fn(runCtx)
	}()
}

// Cancel asks the running goroutine to stop. Safe to call when nothing runs.
func (l *Lifecycle) Cancel() {
	l.mu.RLock()
	cancel := l.cancel
	l.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

// WaitWithTimeout blocks until the goroutine started by Go returns. It gives
// up after timeout with ErrShutdownTimeout.
func (l *Lifecycle) WaitWithTimeout(timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		l.worker.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		l.logger.Warn("host did not stop in time", ports.Duration("timeout", timeout))
		return domain.ErrShutdownTimeout
	}
}
