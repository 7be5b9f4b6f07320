//go:build tinygo

// Command tinymorse-pico is the RP2040 firmware: text typed into the USB
// serial port is played on a buzzer wired to GPIO18.
//
//	tinygo flash -target=pico ./cmd/tinymorse-pico
package main

import (
	"context"
	"machine"
	"time"

	"github.com/bft-labs/tinymorse/internal/adapters/clock"
	"github.com/bft-labs/tinymorse/internal/adapters/pico"
	"github.com/bft-labs/tinymorse/internal/app"
	"github.com/bft-labs/tinymorse/pkg/morse"
)

func main() {
	logger := pico.Logger{}

	buzzer, err := pico.NewBuzzer(machine.PWM1, machine.GPIO18, pico.DefaultBuzzerPeriod)
	if err != nil {
		logger.Error("buzzer setup failed")
		return
	}

	host := app.NewHost(app.HostConfig{
		Timing:        morse.DefaultTiming(),
		PollInterval:  10 * time.Millisecond,
		BufferSize:    app.DefaultBufferSize,
		Greeting:      app.DefaultGreeting,
		GreetingDelay: app.DefaultGreetingDelay,
	}, pico.NewSerial(machine.Serial), buzzer, clock.NewSleeper(), logger, nil)

	for {
		if err := host.Run(context.Background()); err != nil {
			logger.Error("host stopped, restarting")
		}
	}
}
