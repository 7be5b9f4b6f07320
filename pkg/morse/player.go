package morse

// ToneOutput switches the tone on and off. Each call takes effect before the
// next delay begins.
type ToneOutput interface {
	Enable()
	Disable()
}

// Delayer blocks for a whole number of milliseconds.
type Delayer interface {
	Delay(ms uint32)
}

// Player plays the characters of one input buffer, one call at a time.
// The buffer is borrowed: the player never copies or retains it beyond its
// own lifetime, and a new Player is created for each buffer.
type Player struct {
	buf    []byte
	pos    int
	timing Timing
}

// NewPlayer returns a player positioned at the start of buf.
func NewPlayer(buf []byte, timing Timing) *Player {
	return &Player{buf: buf, timing: timing}
}

// Timing returns the timing the player was built with.
func (p *Player) Timing() Timing { return p.timing }

// Position returns the cursor index into the buffer.
func (p *Player) Position() int { return p.pos }

// Remaining returns the number of unconsumed bytes.
func (p *Player) Remaining() int { return len(p.buf) - p.pos }

// Halted reports whether the cursor rests on an unresolvable byte.
func (p *Player) Halted() bool {
	return p.pos < len(p.buf) && !Resolve(p.buf[p.pos]).OK()
}

// Peek returns the next character, uppercased, without consuming it.
// It returns false when the buffer is exhausted or the next byte is
// unresolvable.
func (p *Player) Peek() (byte, bool) {
	if p.pos >= len(p.buf) {
		return 0, false
	}
	sym := Resolve(p.buf[p.pos])
	if !sym.OK() {
		return 0, false
	}
	return sym.Char, true
}

// ConsumeOne plays the next character and advances the cursor by one.
//
// A space holds a word gap without touching the tone. A letter or digit
// advances the cursor before playback starts, then plays each element with
// an element gap between them. An exhausted buffer or an unresolvable byte
// is a no-op and the cursor stays where it is.
//
// The returned action tells the caller whether a character gap is due.
func (p *Player) ConsumeOne(tone ToneOutput, delay Delayer) Action {
	if p.pos >= len(p.buf) {
		return ActionNone
	}
	sym := Resolve(p.buf[p.pos])
	switch sym.Action {
	case ActionSilence:
		delay.Delay(p.timing.WordGap())
		p.pos++
		return ActionSilence
	case ActionTone:
		p.pos++
		p.play(sym.Sequence, tone, delay)
		return ActionTone
	default:
		return ActionNone
	}
}

func (p *Player) play(s Sequence, tone ToneOutput, delay Delayer) {
	last := s.Len() - 1
	for i := 0; i <= last; i++ {
		tone.Enable()
		delay.Delay(p.timing.elementDuration(s.At(i)))
		tone.Disable()
		if i != last {
			delay.Delay(p.timing.ElementGap())
		}
	}
}
