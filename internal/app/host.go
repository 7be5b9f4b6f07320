package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/bft-labs/tinymorse/internal/domain"
	"github.com/bft-labs/tinymorse/internal/ports"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// Default host configuration values.
const (
	DefaultBufferSize    = 64
	DefaultPollInterval  = 50 * time.Millisecond
	DefaultGreetingDelay = 2 * time.Second
	DefaultGreeting      = "Welcome to tiny morse, please enter your text so it can be transformed into morse code!\r\n"
)

// HostConfig contains configuration for the host loop.
type HostConfig struct {
	Timing        morse.Timing
	PollInterval  time.Duration
	BufferSize    int
	Greeting      string
	GreetingDelay time.Duration

	// Once exits when the input goes idle after something was played, or
	// when the transport closes.
	Once bool
}

func (c *HostConfig) setDefaults() {
	if c.Timing.Unit == 0 {
		c.Timing = morse.DefaultTiming()
	}
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.PollInterval < 0 {
		c.PollInterval = 0
	}
}

// CharacterEmitter is called as the host plays input.
type CharacterEmitter interface {
	// OnCharacter is called after a character has been played.
	OnCharacter(c byte, action morse.Action)
	// OnHalt is called when playback of a buffer stopped on an unresolvable
	// byte, with the number of bytes left unplayed.
	OnHalt(b byte, dropped int)
}

// Stats are running counters for a Host.
type Stats struct {
	Cycles      uint64
	Characters  uint64
	Halts       uint64
	ReadErrors  uint64
	LastCycleAt time.Time
}

// Host polls a transport and plays each received buffer as morse code.
type Host struct {
	config    HostConfig
	transport ports.Transport
	tone      ports.ToneOutput
	delay     ports.Delayer
	logger    ports.Logger
	emitter   CharacterEmitter
	now       func() time.Time
	backoff   *backoff

	seq        uint64
	cycles     atomic.Uint64
	characters atomic.Uint64
	halts      atomic.Uint64
	readErrors atomic.Uint64
	lastCycle  atomic.Int64
}

// NewHost creates a host with the given dependencies. emitter may be nil.
func NewHost(
	config HostConfig,
	transport ports.Transport,
	tone ports.ToneOutput,
	delay ports.Delayer,
	logger ports.Logger,
	emitter CharacterEmitter,
) *Host {
	config.setDefaults()
	return &Host{
		config:    config,
		transport: transport,
		tone:      tone,
		delay:     delay,
		logger:    logger,
		emitter:   emitter,
		now:       time.Now,
		backoff:   newBackoff(DefaultBackoffInitial, DefaultBackoffMax),
	}
}

// Run executes the polling loop.
// It returns nil when the transport closes or, in Once mode, when input goes
// idle. Cancellation is only observed between characters so a character in
// flight always completes with its trailing gap.
func (h *Host) Run(ctx context.Context) error {
	start := h.now()
	greeted := h.config.Greeting == ""
	played := false
	buf := make([]byte, h.config.BufferSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !greeted && h.now().Sub(start) >= h.config.GreetingDelay {
			h.greet()
			greeted = true
		}

		n, err := h.transport.Poll(ctx, buf)
		if err != nil {
			switch {
			case errors.Is(err, ports.ErrTransportClosed):
				h.logger.Info("input closed", ports.Err(err))
				return nil
			case ctx.Err() != nil:
				return ctx.Err()
			}

			h.readErrors.Add(1)
			h.logger.Error("read error", ports.Err(err))
			if err := h.backoff.Sleep(ctx); err != nil {
				return err
			}
			continue
		}
		h.backoff.Reset()

		if n == 0 {
			if h.config.Once && played {
				return nil
			}
			if err := h.idle(ctx); err != nil {
				return err
			}
			continue
		}

		cycle, err := h.play(ctx, buf[:n])
		played = true
		h.logger.Debug("played buffer",
			ports.Uint64("seq", cycle.Seq),
			ports.Int("bytes", cycle.Bytes),
			ports.Int("played", cycle.Played),
			ports.Int("silences", cycle.Silences),
			ports.Int("consumed", cycle.Consumed()),
			ports.Bool("halted", cycle.Halted()),
			ports.Duration("duration", cycle.Duration),
		)
		if err != nil {
			return err
		}
	}
}

// play consumes one received buffer. It stops early only when ctx is
// canceled between characters.
func (h *Host) play(ctx context.Context, buf []byte) (domain.Cycle, error) {
	h.seq++
	cycle := domain.Cycle{Seq: h.seq, Bytes: len(buf)}
	start := h.now()
	defer func() {
		h.cycles.Add(1)
		h.lastCycle.Store(h.now().UnixNano())
	}()

	player := morse.NewPlayer(buf, h.config.Timing)
	gap := h.config.Timing.CharacterGap()
	for {
		c, ok := player.Peek()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			cycle.Duration = h.now().Sub(start)
			return cycle, err
		}

		h.logger.Debug("char", ports.Char("char", c))
		action := player.ConsumeOne(h.tone, h.delay)
		switch action {
		case morse.ActionTone:
			h.delay.Delay(gap)
			cycle.Played++
		case morse.ActionSilence:
			cycle.Silences++
		}
		h.characters.Add(1)
		if h.emitter != nil {
			h.emitter.OnCharacter(c, action)
		}
	}

	if player.Halted() {
		cycle.HaltByte = buf[player.Position()]
		cycle.Dropped = player.Remaining()
		h.halts.Add(1)
		h.logger.Warn("unsupported character, dropping rest of buffer",
			ports.Int("byte", int(cycle.HaltByte)),
			ports.Int("position", player.Position()),
			ports.Int("dropped", cycle.Dropped),
		)
		if h.emitter != nil {
			h.emitter.OnHalt(cycle.HaltByte, cycle.Dropped)
		}
	}

	cycle.Duration = h.now().Sub(start)
	return cycle, nil
}

func (h *Host) greet() {
	if _, err := h.transport.Write([]byte(h.config.Greeting)); err != nil {
		h.logger.Warn("greeting not sent", ports.Err(err))
		return
	}
	h.logger.Info("greeting sent", ports.Int("bytes", len(h.config.Greeting)))
}

func (h *Host) idle(ctx context.Context) error {
	if h.config.PollInterval == 0 {
		return nil
	}
	timer := time.NewTimer(h.config.PollInterval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Stats returns a snapshot of the host counters.
func (h *Host) Stats() Stats {
	s := Stats{
		Cycles:     h.cycles.Load(),
		Characters: h.characters.Load(),
		Halts:      h.halts.Load(),
		ReadErrors: h.readErrors.Load(),
	}
	if ns := h.lastCycle.Load(); ns != 0 {
		s.LastCycleAt = time.Unix(0, ns)
	}
	return s
}
