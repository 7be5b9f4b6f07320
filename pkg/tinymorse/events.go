package tinymorse

import (
	"github.com/bft-labs/tinymorse/internal/app"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

// StateChangeEvent is emitted on every lifecycle transition.
type StateChangeEvent struct {
	Previous State
	Current  State
	Reason   string
}

// CharacterEvent is emitted after a character has been played.
type CharacterEvent struct {
	// Char is the uppercased character.
	Char byte
	// Action is ActionTone for letters and digits, ActionSilence for a space.
	Action morse.Action
}

// HaltEvent is emitted when a buffer stops on a character that has no morse
// code. The rest of that buffer is dropped.
type HaltEvent struct {
	Byte    byte
	Dropped int
}

// EventHandler receives Player events. Methods are called synchronously from
// the playback goroutine and should return quickly; a slow handler stretches
// the gap after each character.
type EventHandler interface {
	OnStateChange(StateChangeEvent)
	OnCharacter(CharacterEvent)
	OnHalt(HaltEvent)
}

// BaseEventHandler implements EventHandler with no-ops. Embed it to handle
// only some events.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent) {}
func (BaseEventHandler) OnCharacter(CharacterEvent)     {}
func (BaseEventHandler) OnHalt(HaltEvent)               {}

// eventEmitterWrapper adapts EventHandler to the internal emitter interfaces.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnStateChange(previous, current app.State, reason string) {
	if e.handler == nil {
		return
	}
	e.handler.OnStateChange(StateChangeEvent{
		Previous: convertState(previous),
		Current:  convertState(current),
		Reason:   reason,
	})
}

func (e *eventEmitterWrapper) OnCharacter(c byte, action morse.Action) {
	if e.handler == nil {
		return
	}
	e.handler.OnCharacter(CharacterEvent{Char: c, Action: action})
}

func (e *eventEmitterWrapper) OnHalt(b byte, dropped int) {
	if e.handler == nil {
		return
	}
	e.handler.OnHalt(HaltEvent{Byte: b, Dropped: dropped})
}
