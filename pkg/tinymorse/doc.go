// Package tinymorse provides an embeddable morse code player.
//
// A Player polls a [Transport] for text and plays each character through a
// tone output with standard morse timing: a dot is one unit, a dash three,
// one unit between the elements of a character, three between characters
// and seven for a space. Letters are case-folded; digits and spaces are
// supported. A buffer stops at the first character with no morse code and
// the rest of that buffer is dropped.
//
// # Basic Usage
//
//	p, err := tinymorse.New(tinymorse.Config{Timing: morse.TimingForWPM(15)},
//	    tinymorse.WithTransport(tinymorse.NewReaderTransport(os.Stdin, os.Stdout)),
//	    tinymorse.WithTone(myBuzzer),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Stop()
//
// The tone output and delay source are the only hardware touch points; see
// [morse.ToneOutput] and [morse.Delayer]. Without [WithTone] playback is
// silent, and without [WithDelayer] delays sleep on the wall clock.
//
// # Event Handling
//
// Implement [EventHandler] (embed [BaseEventHandler] for defaults) and pass it
// via [WithEventHandler] to observe state changes, each played character and
// halts on unsupported input.
//
// # Lifecycle States
//
// A Player can be in one of five states: [StateStopped], [StateStarting],
// [StateRunning], [StateStopping], or [StateCrashed]. With Config.Once set,
// the player returns to StateStopped by itself once input goes idle.
package tinymorse
