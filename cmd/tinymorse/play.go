package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bft-labs/tinymorse/internal/adapters/clock"
	logAdapter "github.com/bft-labs/tinymorse/internal/adapters/log"
	"github.com/bft-labs/tinymorse/internal/adapters/tone"
	"github.com/bft-labs/tinymorse/internal/adapters/transport"
	"github.com/bft-labs/tinymorse/internal/cliconfig"
	"github.com/bft-labs/tinymorse/internal/ports"
	"github.com/bft-labs/tinymorse/pkg/morse"
	"github.com/bft-labs/tinymorse/pkg/tinymorse"
)

func runPlay(cmd *cobra.Command, cfg cliconfig.Config, echo bool, log zerolog.Logger) error {
	logger := logAdapter.NewZerolog(log)

	tr, err := openTransport(cmd, cfg)
	if err != nil {
		return err
	}
	defer tr.Close()

	out, err := openOutput(cmd.OutOrStdout(), cfg, echo, logger)
	if err != nil {
		return err
	}
	defer out.close()

	// A listener greets each client on connect instead.
	greeting := cfg.Greeting
	if cfg.Listen != "" {
		greeting = ""
	}

	p, err := tinymorse.New(tinymorse.Config{
		Timing:        cfg.Timing(),
		PollInterval:  cfg.PollInterval,
		BufferSize:    cfg.BufferSize,
		Greeting:      greeting,
		GreetingDelay: cfg.GreetingDelay,
		Once:          cfg.Once,
	},
		tinymorse.WithLogger(logger),
		tinymorse.WithTransport(tr),
		tinymorse.WithTone(out.tone),
		tinymorse.WithDelayer(out.delay),
	)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log.Info().
		Str("tone", cfg.Tone).
		Str("input", describeInput(cfg)).
		Int("wpm", cfg.Timing().WPM()).
		Bool("dry_run", cfg.DryRun).
		Msg("playing")

	start := time.Now()
	if err := p.Start(ctx); err != nil {
		return fmt.Errorf("start player: %w", err)
	}

	doneCh := make(chan error, 1)
	go func() { doneCh <- p.Wait() }()

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("received signal, stopping...")
		if err := p.Stop(); err != nil && !errors.Is(err, tinymorse.ErrNotRunning) {
			return fmt.Errorf("stop player: %w", err)
		}
	case err := <-doneCh:
		if err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}

	stats := p.Stats()
	ev := log.Info().
		Uint64("characters", stats.Characters).
		Uint64("halts", stats.Halts).
		Dur("wall", time.Since(start))
	if out.virtual != nil {
		ev = ev.Dur("simulated", out.virtual.Elapsed())
	}
	ev.Msg("done")
	return nil
}

func describeInput(cfg cliconfig.Config) string {
	switch {
	case cfg.Listen != "":
		return "tcp " + cfg.Listen
	case cfg.Input == cliconfig.StdinInput:
		return "stdin"
	case cfg.Follow:
		return "follow " + cfg.Input
	default:
		return cfg.Input
	}
}

// openTransport picks the input named by cfg: a TCP listener, stdin, a
// followed file, a character device or a plain file.
func openTransport(cmd *cobra.Command, cfg cliconfig.Config) (ports.Transport, error) {
	streamOpts := []transport.StreamOption{
		transport.WithPollTimeout(cfg.PollInterval),
		transport.WithChunkSize(cfg.BufferSize),
	}

	switch {
	case cfg.Listen != "":
		return transport.Listen(cfg.Listen, cfg.PollInterval, transport.WithWelcome(cfg.Greeting))
	case cfg.Input == cliconfig.StdinInput:
		return transport.NewStream(cmd.InOrStdin(), cmd.OutOrStdout(), streamOpts...), nil
	case cfg.Follow:
		return transport.NewFollow(cfg.Input, transport.FollowInterval(cfg.PollInterval))
	}

	fi, err := os.Stat(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if fi.Mode()&os.ModeCharDevice != 0 {
		return transport.OpenDevice(cfg.Input, streamOpts...)
	}
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	streamOpts = append(streamOpts, transport.WithCloser(f))
	return transport.NewStream(f, nil, streamOpts...), nil
}

// output is the tone backend and the delayer that paces it.
type output struct {
	tone    morse.ToneOutput
	delay   morse.Delayer
	virtual *clock.Virtual
	closers []io.Closer
}

func (o *output) close() {
	for _, c := range o.closers {
		_ = c.Close()
	}
}

func openOutput(w io.Writer, cfg cliconfig.Config, echo bool, logger ports.Logger) (*output, error) {
	out := &output{}
	if cfg.DryRun {
		out.virtual = clock.NewVirtual()
		out.delay = out.virtual
	} else {
		out.delay = clock.NewSleeper()
	}

	backend := cfg.Tone
	if backend == cliconfig.ToneSpeaker && cfg.DryRun {
		backend = cliconfig.ToneLog
	}

	switch backend {
	case cliconfig.ToneLog:
		out.tone = tone.NewLogging(logger)
	case cliconfig.ToneTerminal:
		term := tone.NewTerminal(w, cfg.Timing().Unit, out.delay)
		out.tone, out.delay = term, term
	case cliconfig.ToneSpeaker:
		spk, err := tone.NewSpeaker(tone.SpeakerConfig{
			Frequency: cfg.Frequency,
			Volume:    cfg.Volume,
		})
		if errors.Is(err, tone.ErrAudioUnavailable) {
			logger.Warn("no audio output, drawing in the terminal instead", ports.Err(err))
			term := tone.NewTerminal(w, cfg.Timing().Unit, out.delay, tone.WithBell())
			out.tone, out.delay = term, term
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("open speaker: %w", err)
		}
		out.closers = append(out.closers, spk)
		out.tone = spk
		if echo {
			term := tone.NewTerminal(w, cfg.Timing().Unit, out.delay)
			out.tone = tone.Multi{spk, term}
			out.delay = term
		}
	default:
		return nil, fmt.Errorf("unknown tone backend %q", backend)
	}
	return out, nil
}
