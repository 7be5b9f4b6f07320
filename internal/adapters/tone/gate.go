package tone

import (
	"math"
	"sync/atomic"
)

// sineGate is an endless sine streamer whose amplitude follows an on/off gate.
// The gain ramps over a few milliseconds on each edge so toggling does not
// click. It satisfies beep.Streamer.
type sineGate struct {
	on     atomic.Bool
	phase  float64
	step   float64
	gain   float64
	ramp   float64
	volume float64
}

func newSineGate(sampleRate int, frequency, volume float64) *sineGate {
	rampSamples := float64(sampleRate) * 0.004
	if rampSamples < 1 {
		rampSamples = 1
	}
	return &sineGate{
		step:   2 * math.Pi * frequency / float64(sampleRate),
		ramp:   1 / rampSamples,
		volume: volume,
	}
}

func (g *sineGate) set(on bool) { g.on.Store(on) }

// Stream fills samples and never ends.
func (g *sineGate) Stream(samples [][2]float64) (n int, ok bool) {
	target := 0.0
	if g.on.Load() {
		target = 1
	}
	for i := range samples {
		switch {
		case g.gain < target:
			g.gain = math.Min(target, g.gain+g.ramp)
		case g.gain > target:
			g.gain = math.Max(target, g.gain-g.ramp)
		}
		v := math.Sin(g.phase) * g.gain * g.volume
		samples[i][0] = v
		samples[i][1] = v
		g.phase += g.step
		if g.phase >= 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

// Err always returns nil.
func (g *sineGate) Err() error { return nil }
