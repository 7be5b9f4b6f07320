package ports

import "github.com/bft-labs/tinymorse/pkg/morse"

// ToneOutput switches the tone on and off. Frequency and duty are fixed by
// the adapter before playback begins.
type ToneOutput = morse.ToneOutput

// Delayer blocks for a whole number of milliseconds.
type Delayer = morse.Delayer
