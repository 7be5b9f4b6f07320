package morse

// Action is what the player does with a resolved byte.
type Action uint8

const (
	// ActionNone means nothing was played: the byte is unresolvable or the
	// buffer is exhausted.
	ActionNone Action = iota
	// ActionTone plays the character's sequence.
	ActionTone
	// ActionSilence holds a word gap for a space.
	ActionSilence
)

// String returns a short name for the action.
func (a Action) String() string {
	switch a {
	case ActionTone:
		return "tone"
	case ActionSilence:
		return "silence"
	default:
		return "none"
	}
}

// Symbol is the result of resolving one input byte.
type Symbol struct {
	// Char is the input byte, uppercased for letters.
	Char byte
	// Action tells whether the byte plays, pauses, or is unresolvable.
	Action Action
	// Sequence is set only when Action is ActionTone.
	Sequence Sequence
}

// OK reports whether the byte was recognised.
func (s Symbol) OK() bool { return s.Action != ActionNone }

// ITU patterns for A..Z.
var letters = [26]Sequence{
	seq(".-"), seq("-..."), seq("-.-."), seq("-.."), seq("."),
	seq("..-."), seq("--."), seq("...."), seq(".."), seq(".---"),
	seq("-.-"), seq(".-.."), seq("--"), seq("-."), seq("---"),
	seq(".--."), seq("--.-"), seq(".-."), seq("..."), seq("-"),
	seq("..-"), seq("...-"), seq(".--"), seq("-..-"), seq("-.--"),
	seq("--.."),
}

// ITU patterns for 0..9.
var digits = [10]Sequence{
	seq("-----"), seq(".----"), seq("..---"), seq("...--"), seq("....-"),
	seq("....."), seq("-...."), seq("--..."), seq("---.."), seq("----."),
}

// Resolve maps a byte to its Symbol. Letters are case-insensitive, digits map
// directly, space resolves to a word gap and any other byte is unresolvable.
func Resolve(b byte) Symbol {
	switch {
	case b >= 'A' && b <= 'Z':
		return Symbol{Char: b, Action: ActionTone, Sequence: letters[b-'A']}
	case b >= 'a' && b <= 'z':
		return Symbol{Char: b - 'a' + 'A', Action: ActionTone, Sequence: letters[b-'a']}
	case b >= '0' && b <= '9':
		return Symbol{Char: b, Action: ActionTone, Sequence: digits[b-'0']}
	case b == ' ':
		return Symbol{Char: b, Action: ActionSilence}
	default:
		return Symbol{Char: b}
	}
}

// Lookup returns the sequence for a letter or digit rune.
func Lookup(r rune) (Sequence, bool) {
	if r < 0 || r > 0x7f {
		return Sequence{}, false
	}
	sym := Resolve(byte(r))
	if sym.Action != ActionTone {
		return Sequence{}, false
	}
	return sym.Sequence, true
}

// Characters returns every playable character in table order: A..Z then 0..9.
func Characters() []byte {
	out := make([]byte, 0, len(letters)+len(digits))
	for c := byte('A'); c <= 'Z'; c++ {
		out = append(out, c)
	}
	for c := byte('0'); c <= '9'; c++ {
		out = append(out, c)
	}
	return out
}
