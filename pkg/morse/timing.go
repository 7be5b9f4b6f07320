package morse

import "math"

// Unit is the default dot duration in milliseconds.
const Unit uint32 = 200

// Ratios of every duration to the unit.
const (
	dotUnits          = 1
	dashUnits         = 3
	elementGapUnits   = 1
	characterGapUnits = 3
	wordGapUnits      = 7
)

// MaxUnit is the largest unit for which every derived duration fits in a
// uint32. The longest stretch is '0' plus its character gap, 22 units.
const MaxUnit uint32 = math.MaxUint32 / 22

// parisUnits is the length of the word "PARIS" including its trailing word gap.
const parisUnits = 50

// Timing holds the base unit all playback durations derive from.
type Timing struct {
	// Unit is the dot duration in milliseconds.
	Unit uint32
}

// DefaultTiming returns a Timing with the default unit.
func DefaultTiming() Timing {
	return Timing{Unit: Unit}
}

// TimingForWPM returns the Timing for a words-per-minute rate using the PARIS
// standard word. Rates below 1 are treated as 1.
func TimingForWPM(wpm int) Timing {
	if wpm < 1 {
		wpm = 1
	}
	unit := uint32(60_000 / (parisUnits * wpm))
	if unit == 0 {
		unit = 1
	}
	return Timing{Unit: unit}
}

// WPM returns the approximate words-per-minute rate for this timing.
func (t Timing) WPM() int {
	if t.Unit == 0 {
		return 0
	}
	return int(60_000 / (parisUnits * t.Unit))
}

// Dot returns the tone-on duration of a dot.
func (t Timing) Dot() uint32 { return dotUnits * t.Unit }

// Dash returns the tone-on duration of a dash.
func (t Timing) Dash() uint32 { return dashUnits * t.Unit }

// ElementGap returns the silence between elements of one character.
func (t Timing) ElementGap() uint32 { return elementGapUnits * t.Unit }

// CharacterGap returns the silence the host inserts between characters.
func (t Timing) CharacterGap() uint32 { return characterGapUnits * t.Unit }

// WordGap returns the silence played for a space.
func (t Timing) WordGap() uint32 { return wordGapUnits * t.Unit }

func (t Timing) elementDuration(e Element) uint32 {
	if e == Dash {
		return t.Dash()
	}
	return t.Dot()
}
