//go:build (linux && cgo) || windows || darwin

package tone

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

var speakerInit sync.Once
var speakerErr error

// Speaker plays a continuous sine tone on the default audio device and gates
// it on Enable and Disable.
type Speaker struct {
	gate *sineGate
}

// NewSpeaker initialises the audio device and starts a silent tone.
func NewSpeaker(cfg SpeakerConfig) (*Speaker, error) {
	cfg.setDefaults()
	sr := beep.SampleRate(cfg.SampleRate)
	speakerInit.Do(func() {
		// 10ms of buffering keeps the on/off latency well under one unit.
		speakerErr = speaker.Init(sr, cfg.SampleRate/100)
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}
	g := newSineGate(cfg.SampleRate, cfg.Frequency, cfg.Volume)
	speaker.Play(g)
	return &Speaker{gate: g}, nil
}

// Enable opens the gate.
func (s *Speaker) Enable() { s.gate.set(true) }

// Disable closes the gate.
func (s *Speaker) Disable() { s.gate.set(false) }

// Close silences and stops the speaker.
func (s *Speaker) Close() error {
	s.gate.set(false)
	speaker.Clear()
	return nil
}
