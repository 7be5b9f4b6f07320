package tone

import "errors"

// ErrAudioUnavailable is returned by NewSpeaker on builds without an audio
// backend (linux without cgo).
var ErrAudioUnavailable = errors.New("tone: audio output requires cgo on linux")

// Default speaker settings.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 700 // Hz
	DefaultVolume     = 0.5
)

// SpeakerConfig fixes the tone before playback begins.
type SpeakerConfig struct {
	SampleRate int
	Frequency  float64
	Volume     float64
}

// DefaultSpeakerConfig returns the standard 700 Hz tone at half volume.
func DefaultSpeakerConfig() SpeakerConfig {
	return SpeakerConfig{
		SampleRate: DefaultSampleRate,
		Frequency:  DefaultFrequency,
		Volume:     DefaultVolume,
	}
}

func (c *SpeakerConfig) setDefaults() {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Frequency <= 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Volume <= 0 || c.Volume > 1 {
		c.Volume = DefaultVolume
	}
}
