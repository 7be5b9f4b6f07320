package morse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCode is returned by Decode for a group that is not in the alphabet.
var ErrUnknownCode = errors.New("morse: unknown code group")

// WordSeparator separates words in the textual form.
const WordSeparator = " / "

var reverse map[string]byte

func init() {
	reverse = make(map[string]byte, len(letters)+len(digits))
	for _, c := range Characters() {
		reverse[Resolve(c).Sequence.String()] = c
	}
}

// Encode renders text in dot/dash form. Characters are separated by a single
// space and words by WordSeparator. Encoding stops at the first unresolvable
// byte, the same way playback does.
func Encode(text string) string {
	var (
		sb       strings.Builder
		pendWord bool
		inWord   bool
	)
	for i := 0; i < len(text); i++ {
		sym := Resolve(text[i])
		switch sym.Action {
		case ActionSilence:
			if inWord {
				pendWord = true
			}
			inWord = false
		case ActionTone:
			if pendWord {
				sb.WriteString(WordSeparator)
				pendWord = false
			} else if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(sym.Sequence.String())
			inWord = true
		default:
			return sb.String()
		}
	}
	return sb.String()
}

// Decode converts dot/dash text back to uppercase text.
func Decode(code string) (string, error) {
	var sb strings.Builder
	for i, word := range strings.Split(code, "/") {
		groups := strings.Fields(word)
		if len(groups) == 0 {
			continue
		}
		if i > 0 && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		for _, g := range groups {
			c, ok := reverse[g]
			if !ok {
				return sb.String(), fmt.Errorf("%w: %q", ErrUnknownCode, g)
			}
			sb.WriteByte(c)
		}
	}
	return sb.String(), nil
}
