package tinymorse

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bft-labs/tinymorse/internal/adapters/clock"
	logAdapter "github.com/bft-labs/tinymorse/internal/adapters/log"
	"github.com/bft-labs/tinymorse/internal/app"
	"github.com/bft-labs/tinymorse/internal/ports"
)

// Player reads text from a transport and plays it as morse code.
// Use New() to create an instance, then Start() to begin playback.
type Player struct {
	config    Config
	lifecycle *app.Lifecycle
	host      *app.Host
	logger    ports.Logger

	mu     sync.Mutex
	done   chan struct{}
	runErr error
}

// Stats are running playback counters.
type Stats struct {
	Cycles      uint64
	Characters  uint64
	Halts       uint64
	ReadErrors  uint64
	LastCycleAt time.Time
}

// New creates a Player with the given configuration.
// The instance is created in StateStopped; call Start() to begin playback.
// Returns an error if configuration is invalid or no transport was given.
func New(cfg Config, opts ...Option) (*Player, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.transport == nil {
		return nil, ErrNoTransport
	}

	logger := o.logger
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	tone := o.tone
	if tone == nil {
		tone = silentTone{}
	}
	delayer := o.delayer
	if delayer == nil {
		delayer = clock.NewSleeper()
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	lifecycle := app.NewLifecycle(logger, emitter)
	host := app.NewHost(cfg.hostConfig(), o.transport, tone, delayer, logger, emitter)

	return &Player{
		config:    cfg,
		lifecycle: lifecycle,
		host:      host,
		logger:    logger,
	}, nil
}

// Start begins playback in the background and returns immediately.
// Returns ErrAlreadyRunning if the player is already running.
// The provided context bounds the lifetime of playback.
func (p *Player) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lifecycle.Can(app.StateStarting) {
		return ErrAlreadyRunning
	}
	if err := p.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	done := make(chan struct{})
	p.done = done
	p.runErr = nil

	p.lifecycle.Go(ctx, func(runCtx context.Context) {
		defer close(done)

		if err := p.lifecycle.TransitionTo(app.StateRunning, "host starting"); err != nil {
			p.logger.Error("failed to transition to running", ports.Err(err))
			return
		}

		err := p.host.Run(runCtx)
		switch {
		case err == nil:
			p.finish()
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			// Stop() or the parent context ended playback.
			p.finish()
		default:
			p.logger.Error("host error", ports.Err(err))
			p.mu.Lock()
			p.runErr = err
			p.mu.Unlock()
			_ = p.lifecycle.TransitionTo(app.StateCrashed, err.Error())
		}
	})

	return nil
}

// finish moves a player whose host returned on its own to Stopped. A
// concurrent Stop() owns the transition instead.
func (p *Player) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lifecycle.State() != app.StateRunning {
		return
	}
	_ = p.lifecycle.TransitionTo(app.StateStopping, "input finished")
	_ = p.lifecycle.TransitionTo(app.StateStopped, "input finished")
}

// Stop ends playback after the character in flight and waits for the
// playback goroutine. Returns ErrShutdownTimeout if it does not exit in time.
func (p *Player) Stop() error {
	p.mu.Lock()
	if !p.lifecycle.Can(app.StateStopping) {
		p.mu.Unlock()
		return ErrNotRunning
	}
	if err := p.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		p.mu.Unlock()
		return err
	}
	p.lifecycle.Cancel()
	p.mu.Unlock()

	err := p.lifecycle.WaitWithTimeout(app.ShutdownTimeout(p.config.Timing, p.config.PollInterval))
	if err != nil {
		_ = p.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
	} else {
		_ = p.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
	}
	return err
}

// Wait blocks until playback ends and returns the error that crashed it,
// if any. It returns nil immediately if the player was never started.
func (p *Player) Wait() error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.runErr
}

// Status returns the current lifecycle state.
// Safe to call concurrently from any goroutine.
func (p *Player) Status() State {
	return convertState(p.lifecycle.State())
}

// Stats returns a snapshot of the playback counters.
func (p *Player) Stats() Stats {
	s := p.host.Stats()
	return Stats{
		Cycles:      s.Cycles,
		Characters:  s.Characters,
		Halts:       s.Halts,
		ReadErrors:  s.ReadErrors,
		LastCycleAt: s.LastCycleAt,
	}
}

// Config returns the configuration with defaults applied.
func (p *Player) Config() Config {
	return p.config
}
