package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// note is one step of a sound cue.
type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
	wave Wave
}

// oscillator produces a fixed-length periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	wave     Wave
	rate     beep.SampleRate
	position int
	length   int
}

func newOscillator(freq float64, dur time.Duration, wave Wave, rate beep.SampleRate) *oscillator {
	return &oscillator{freq: freq, wave: wave, rate: rate, length: rate.N(dur)}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch {
		case o.freq <= 0:
			val = 0
		case o.wave == WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case o.wave == WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear release over the last part of a stream so notes
// do not click when they stop.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

func newFade(s beep.Streamer, dur, release time.Duration, rate beep.SampleRate) *fade {
	return &fade{streamer: s, total: rate.N(dur), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		remaining := f.total - f.position
		if f.release > 0 && remaining < f.release {
			vol := float64(remaining) / float64(f.release)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume wraps s with a linear gain in (0, 1]. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// render turns a note sequence into a single streamer.
func render(notes []note, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := newOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, newFade(osc, n.dur, n.dur/4, rate))
	}
	return beep.Seq(parts...)
}

// length returns the total duration of a note sequence.
func length(notes []note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.dur
	}
	return d
}
