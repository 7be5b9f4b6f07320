//go:build tinygo

package pico

import (
	"machine"

	"github.com/bft-labs/tinymorse/internal/ports"
)

// DefaultBuzzerPeriod drives a passive buzzer at about 1 kHz.
const DefaultBuzzerPeriod = 1e9 / 1000 // ns

// pwmGroup is the part of a TinyGo PWM slice the buzzer needs.
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Buzzer drives a buzzer from one PWM channel. The duty cycle is fixed when
// the buzzer is created; Enable and Disable only gate it.
type Buzzer struct {
	pwm     pwmGroup
	channel uint8
	duty    uint32
}

// NewBuzzer configures pwm with the given period (ns) on pin. Duty is held at
// half the counter range.
func NewBuzzer(pwm pwmGroup, pin machine.Pin, period uint64) (*Buzzer, error) {
	if err := pwm.Configure(machine.PWMConfig{Period: period}); err != nil {
		return nil, err
	}
	ch, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	b := &Buzzer{pwm: pwm, channel: ch, duty: pwm.Top() / 2}
	b.Disable()
	return b, nil
}

// Enable starts the tone.
func (b *Buzzer) Enable() { b.pwm.Set(b.channel, b.duty) }

// Disable silences the tone.
func (b *Buzzer) Disable() { b.pwm.Set(b.channel, 0) }

var _ ports.ToneOutput = (*Buzzer)(nil)
