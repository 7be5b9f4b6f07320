//go:build !((linux && cgo) || windows || darwin)

package tone

// Speaker is unavailable on builds without an audio backend.
type Speaker struct{}

// NewSpeaker always returns ErrAudioUnavailable on this build.
func NewSpeaker(cfg SpeakerConfig) (*Speaker, error) {
	return nil, ErrAudioUnavailable
}

// Enable does nothing.
func (s *Speaker) Enable() {}

// Disable does nothing.
func (s *Speaker) Disable() {}

// Close does nothing.
func (s *Speaker) Close() error { return nil }
