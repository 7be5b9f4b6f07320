package morse

// Element is a single dot or dash.
type Element uint8

const (
	Dot Element = iota
	Dash
)

// String returns "." for a dot and "-" for a dash.
func (e Element) String() string {
	if e == Dash {
		return "-"
	}
	return "."
}

// MaxElements is the longest sequence in the supported alphabet.
const MaxElements = 5

// Sequence is the ordered dot/dash pattern of one character.
// It is a value type: copies never share storage with the alphabet tables.
type Sequence struct {
	elems [MaxElements]Element
	n     uint8
}

// seq builds a Sequence from its textual form, e.g. ".-".
// It panics on malformed input and is only used to build the static tables.
func seq(code string) Sequence {
	if len(code) == 0 || len(code) > MaxElements {
		panic("morse: bad sequence length " + code)
	}
	var s Sequence
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '.':
			s.elems[i] = Dot
		case '-':
			s.elems[i] = Dash
		default:
			panic("morse: bad sequence " + code)
		}
	}
	s.n = uint8(len(code))
	return s
}

// Len returns the number of elements.
func (s Sequence) Len() int { return int(s.n) }

// At returns the i-th element. It panics if i is out of range.
func (s Sequence) At(i int) Element {
	if i < 0 || i >= int(s.n) {
		panic("morse: sequence index out of range")
	}
	return s.elems[i]
}

// Elements returns a copy of the elements.
func (s Sequence) Elements() []Element {
	out := make([]Element, s.n)
	copy(out, s.elems[:s.n])
	return out
}

// String renders the sequence with "." and "-".
func (s Sequence) String() string {
	b := make([]byte, s.n)
	for i := 0; i < int(s.n); i++ {
		b[i] = s.elems[i].String()[0]
	}
	return string(b)
}

// Duration returns the time in milliseconds it takes to play the sequence,
// from the first tone-on to the last tone-off. The caller's inter-character
// gap is not included.
func (s Sequence) Duration(t Timing) uint32 {
	if s.n == 0 {
		return 0
	}
	var total uint32
	for i := 0; i < int(s.n); i++ {
		total += t.elementDuration(s.elems[i])
	}
	return total + uint32(s.n-1)*t.ElementGap()
}
