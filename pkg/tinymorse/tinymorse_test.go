package tinymorse_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/tinymorse/pkg/morse"
	"github.com/bft-labs/tinymorse/pkg/morse/morsetest"
	"github.com/bft-labs/tinymorse/pkg/tinymorse"
)

// recordingHandler captures events for assertions.
type recordingHandler struct {
	mu     sync.Mutex
	states []tinymorse.StateChangeEvent
	chars  []byte
	halts  []tinymorse.HaltEvent
}

func (h *recordingHandler) OnStateChange(e tinymorse.StateChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states = append(h.states, e)
}

func (h *recordingHandler) OnCharacter(e tinymorse.CharacterEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.chars = append(h.chars, e.Char)
}

func (h *recordingHandler) OnHalt(e tinymorse.HaltEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.halts = append(h.halts, e)
}

func (h *recordingHandler) finalState() tinymorse.State {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.states) == 0 {
		return tinymorse.StateStopped
	}
	return h.states[len(h.states)-1].Current
}

func newPlayer(t *testing.T, cfg tinymorse.Config, tr tinymorse.Transport, h tinymorse.EventHandler) (*tinymorse.Player, *morsetest.Recorder) {
	t.Helper()
	rec := morsetest.New()
	opts := []tinymorse.Option{
		tinymorse.WithTransport(tr),
		tinymorse.WithTone(rec),
		tinymorse.WithDelayer(rec),
	}
	if h != nil {
		opts = append(opts, tinymorse.WithEventHandler(h))
	}
	p, err := tinymorse.New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p, rec
}

func TestNew_RequiresTransport(t *testing.T) {
	if _, err := tinymorse.New(tinymorse.Config{}); !errors.Is(err, tinymorse.ErrNoTransport) {
		t.Errorf("New() error = %v, want ErrNoTransport", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tr := tinymorse.NewReaderTransport(strings.NewReader(""), nil)
	_, err := tinymorse.New(tinymorse.Config{BufferSize: -1}, tinymorse.WithTransport(tr))
	if !errors.Is(err, tinymorse.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestNew_UnitTooLong(t *testing.T) {
	tests := []struct {
		name    string
		unit    uint32
		wantErr bool
	}{
		{"largest", morse.MaxUnit, false},
		{"word gap overflows", 700_000_000, true},
		{"max uint32", ^uint32(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := tinymorse.NewReaderTransport(strings.NewReader(""), nil)
			_, err := tinymorse.New(tinymorse.Config{Timing: morse.Timing{Unit: tt.unit}}, tinymorse.WithTransport(tr))
			if got := errors.Is(err, tinymorse.ErrInvalidConfig); got != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	tr := tinymorse.NewReaderTransport(strings.NewReader(""), nil)
	p, err := tinymorse.New(tinymorse.Config{}, tinymorse.WithTransport(tr))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg := p.Config()
	if cfg.Timing != morse.DefaultTiming() || cfg.BufferSize != 64 || cfg.PollInterval != tinymorse.DefaultPollInterval {
		t.Errorf("Config() = %+v", cfg)
	}
	if p.Status() != tinymorse.StateStopped {
		t.Errorf("Status() = %v, want Stopped", p.Status())
	}
}

func TestPlayer_PlaysUntilInputCloses(t *testing.T) {
	h := &recordingHandler{}
	tr := tinymorse.NewReaderTransport(strings.NewReader("sos"), nil)
	p, rec := newPlayer(t, tinymorse.Config{Timing: morse.Timing{Unit: 200}}, tr, h)

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if got := rec.Pattern(200); got != "... --- ..." {
		t.Errorf("pattern = %q", got)
	}
	if string(h.chars) != "SOS" {
		t.Errorf("characters = %q, want SOS", h.chars)
	}
	if p.Status() != tinymorse.StateStopped {
		t.Errorf("Status() = %v, want Stopped", p.Status())
	}
	if h.finalState() != tinymorse.StateStopped {
		t.Errorf("last state event = %v, want Stopped", h.finalState())
	}
	if s := p.Stats(); s.Characters != 3 || s.Cycles != 1 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestPlayer_HaltEvent(t *testing.T) {
	h := &recordingHandler{}
	tr := tinymorse.NewReaderTransport(strings.NewReader("HI!!"), nil)
	p, _ := newPlayer(t, tinymorse.Config{}, tr, h)

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	want := []tinymorse.HaltEvent{{Byte: '!', Dropped: 2}}
	if len(h.halts) != 1 || h.halts[0] != want[0] {
		t.Errorf("halts = %v, want %v", h.halts, want)
	}
	if p.Stats().Halts != 1 {
		t.Errorf("Stats().Halts = %d", p.Stats().Halts)
	}
}

func TestPlayer_GreetingWritten(t *testing.T) {
	var out strings.Builder
	tr := tinymorse.NewReaderTransport(strings.NewReader("E"), &out)
	p, _ := newPlayer(t, tinymorse.Config{Greeting: tinymorse.DefaultGreeting}, tr, nil)

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if out.String() != tinymorse.DefaultGreeting {
		t.Errorf("greeting = %q", out.String())
	}
}

func TestPlayer_StartStop(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	tr := tinymorse.NewReaderTransport(r, nil)
	h := &recordingHandler{}
	p, _ := newPlayer(t, tinymorse.Config{PollInterval: time.Millisecond}, tr, h)

	if err := p.Stop(); !errors.Is(err, tinymorse.ErrNotRunning) {
		t.Errorf("Stop() before Start error = %v, want ErrNotRunning", err)
	}

	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := p.Start(context.Background()); !errors.Is(err, tinymorse.ErrAlreadyRunning) {
		t.Errorf("second Start() error = %v, want ErrAlreadyRunning", err)
	}

	if err := p.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if p.Status() != tinymorse.StateStopped {
		t.Errorf("Status() = %v, want Stopped", p.Status())
	}
	if err := p.Wait(); err != nil {
		t.Errorf("Wait() after Stop error = %v", err)
	}

	// A stopped player can be started again.
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("restart error = %v", err)
	}
	if err := p.Stop(); err != nil {
		t.Fatalf("Stop() after restart error = %v", err)
	}
}

func TestPlayer_ParentContextCanceled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	tr := tinymorse.NewReaderTransport(r, nil)
	p, _ := newPlayer(t, tinymorse.Config{PollInterval: time.Millisecond}, tr, nil)

	ctx, cancel := context.WithCancel(context.Background())
	if err := p.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	cancel()
	if err := p.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if p.Status() != tinymorse.StateStopped {
		t.Errorf("Status() = %v, want Stopped", p.Status())
	}
}

func TestPlayer_WaitWithoutStart(t *testing.T) {
	tr := tinymorse.NewReaderTransport(strings.NewReader(""), nil)
	p, _ := newPlayer(t, tinymorse.Config{}, tr, nil)
	if err := p.Wait(); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state tinymorse.State
		want  string
	}{
		{tinymorse.StateStopped, "Stopped"},
		{tinymorse.StateStarting, "Starting"},
		{tinymorse.StateRunning, "Running"},
		{tinymorse.StateStopping, "Stopping"},
		{tinymorse.StateCrashed, "Crashed"},
		{tinymorse.State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestModuleVersions(t *testing.T) {
	v := tinymorse.ModuleVersions()
	if v["tinymorse"] != tinymorse.Version || v["morse"] != morse.Version {
		t.Errorf("ModuleVersions() = %v", v)
	}
}
