package tone

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/tinymorse/internal/ports"
	"github.com/bft-labs/tinymorse/pkg/morse"
	"github.com/bft-labs/tinymorse/pkg/morse/morsetest"
)

type recordingLogger struct {
	msgs []string
}

func (r *recordingLogger) Debug(msg string, fields ...ports.Field) { r.msgs = append(r.msgs, msg) }
func (r *recordingLogger) Info(msg string, fields ...ports.Field)  {}
func (r *recordingLogger) Warn(msg string, fields ...ports.Field)  {}
func (r *recordingLogger) Error(msg string, fields ...ports.Field) {}

func TestSineGate_SilentWhenOff(t *testing.T) {
	g := newSineGate(8000, 700, 0.5)
	buf := make([][2]float64, 256)
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestSineGate_RampsAndBounds(t *testing.T) {
	g := newSineGate(8000, 700, 0.5)
	g.set(true)
	buf := make([][2]float64, 800)
	g.Stream(buf)

	if g.gain != 1 {
		t.Errorf("gain after 100ms = %v, want 1", g.gain)
	}
	var peak float64
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("channels differ: %v", s)
		}
		if s[0] > peak {
			peak = s[0]
		}
		if s[0] > 0.5 || s[0] < -0.5 {
			t.Fatalf("sample %v exceeds volume", s[0])
		}
	}
	if peak < 0.4 {
		t.Errorf("peak = %v, tone too quiet", peak)
	}

	g.set(false)
	g.Stream(buf)
	if g.gain != 0 {
		t.Errorf("gain after gate close = %v, want 0", g.gain)
	}
	if g.Err() != nil {
		t.Errorf("Err() = %v", g.Err())
	}
}

func TestSpeakerConfig_Defaults(t *testing.T) {
	c := SpeakerConfig{Volume: 3}
	c.setDefaults()
	if c != DefaultSpeakerConfig() {
		t.Errorf("setDefaults() = %+v, want %+v", c, DefaultSpeakerConfig())
	}
}

func TestTerminal_RendersPlayback(t *testing.T) {
	var out bytes.Buffer
	rec := morsetest.New()
	term := NewTerminal(&out, 10, rec, WithStyle(lipgloss.NewStyle()))

	p := morse.NewPlayer([]byte("A E"), morse.Timing{Unit: 10})
	for {
		if _, ok := p.Peek(); !ok {
			break
		}
		if p.ConsumeOne(term, term) == morse.ActionTone {
			term.Delay(p.Timing().CharacterGap())
		}
	}

	want := "▄ ▄▄▄   / ▄   "
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	// A (50) + gap (30) + space (70) + E (10) + gap (30)
	if rec.Elapsed() != 190 {
		t.Errorf("inner delayer elapsed = %d, want 190", rec.Elapsed())
	}
}

func TestTerminal_Bell(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, 10, morsetest.New(), WithBell(), WithStyle(lipgloss.NewStyle()))
	term.Enable()
	term.Delay(10)
	term.Disable()
	term.Disable()
	if got := out.String(); got != "\a▄ " {
		t.Errorf("output = %q", got)
	}
}

func TestLogging(t *testing.T) {
	logger := &recordingLogger{}
	l := NewLogging(logger)
	l.Enable()
	l.Disable()
	if got := strings.Join(logger.msgs, ","); got != "tone on,tone off" {
		t.Errorf("logged %q", got)
	}
}

func TestMulti(t *testing.T) {
	a, b := morsetest.New(), morsetest.New()
	m := Multi{a, b}
	m.Enable()
	if !a.IsOn() || !b.IsOn() {
		t.Fatal("Enable not fanned out")
	}
	m.Disable()
	if a.IsOn() || b.IsOn() {
		t.Fatal("Disable not fanned out")
	}
}
