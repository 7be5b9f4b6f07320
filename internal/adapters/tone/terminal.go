package tone

import (
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// Glyphs drawn by Terminal.
const (
	dotGlyph  = "▄"
	dashGlyph = "▄▄▄"
)

// Terminal renders the tone as styled glyphs on a writer. It wraps the host's
// Delayer so it can measure each tone in milliseconds of playback rather than
// wall time, which keeps the rendering right under a virtual clock.
type Terminal struct {
	out   io.Writer
	inner ports.Delayer
	unit  uint32
	bell  bool
	style lipgloss.Style

	mu   sync.Mutex
	on   bool
	onMs uint32
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithBell rings the terminal bell on every tone-on.
func WithBell() TerminalOption {
	return func(t *Terminal) { t.bell = true }
}

// WithStyle overrides the glyph style.
func WithStyle(style lipgloss.Style) TerminalOption {
	return func(t *Terminal) { t.style = style }
}

// NewTerminal returns a Terminal writing to out. unit is the dot length in
// milliseconds and inner performs the actual waiting.
func NewTerminal(out io.Writer, unit uint32, inner ports.Delayer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:   out,
		inner: inner,
		unit:  unit,
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enable starts a tone.
func (t *Terminal) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.on = true
	t.onMs = 0
	if t.bell {
		_, _ = io.WriteString(t.out, "\a")
	}
}

// Disable ends the tone and draws a dot or a dash depending on its length.
func (t *Terminal) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.on {
		return
	}
	t.on = false
	glyph := dotGlyph
	if t.onMs >= 2*t.unit {
		glyph = dashGlyph
	}
	_, _ = io.WriteString(t.out, t.style.Render(glyph)+" ")
}

// Delay waits through the inner Delayer. Silences of a character gap or
// longer are drawn as separators.
func (t *Terminal) Delay(ms uint32) {
	t.mu.Lock()
	switch {
	case t.on:
		t.onMs += ms
	case ms >= 7*t.unit:
		_, _ = io.WriteString(t.out, "/ ")
	case ms >= 3*t.unit:
		_, _ = io.WriteString(t.out, "  ")
	}
	t.mu.Unlock()

	t.inner.Delay(ms)
}

var (
	_ ports.ToneOutput = (*Terminal)(nil)
	_ ports.Delayer    = (*Terminal)(nil)
)
