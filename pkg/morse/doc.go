// Package morse encodes ASCII text into International Morse Code and plays it
// on a binary tone output with standard timing ratios.
//
// The package has no hardware dependencies. Playback talks to the outside
// world through two small capability interfaces, [ToneOutput] and [Delayer],
// so the same state machine drives a PWM buzzer on a microcontroller, a
// speaker on a workstation, or a recording fake in tests.
//
// # Alphabet
//
// [Resolve] maps a byte to a [Symbol]: letters (case-insensitive) and digits
// resolve to a [Sequence] of dots and dashes, the space character resolves to
// a word gap, and everything else is unresolvable.
//
// # Playback
//
// A [Player] holds a cursor into a caller-owned buffer. Each call to
// [Player.ConsumeOne] plays exactly one character:
//
//	p := morse.NewPlayer(buf[:n], morse.DefaultTiming())
//	for {
//	    if _, ok := p.Peek(); !ok {
//	        break
//	    }
//	    if p.ConsumeOne(tone, delay) == morse.ActionTone {
//	        delay.Delay(p.Timing().CharacterGap())
//	    }
//	}
//
// The caller inserts the inter-character gap after each played character;
// spaces already carry their own word gap. Playback stops at the first
// unresolvable byte and does not skip over it.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package morse
