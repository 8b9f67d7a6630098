// Package audio synthesises the game's sound cues with beep. No samples are
// loaded from disk; every sound is built from oscillators and envelopes.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveTriangle
	WaveSaw
	WaveSine
	WaveNoise
)

// oscillator generates one wave, gliding linearly from one frequency to
// another over its duration.
type oscillator struct {
	wave     Wave
	from, to float64
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(wave Wave, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewGlide(wave, freq, freq, d, rate)
}

// NewGlide creates an oscillator sweeping from one frequency to another.
func NewGlide(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:  wave,
		from:  from,
		to:    to,
		total: rate.N(d),
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(from*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream and cuts it at
// its total length.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{streamer: s, attack: att, release: rel, total: total}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if left := e.total - e.pos; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gainAt(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) gainAt(pos int) float64 {
	if e.attack > 0 && pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	if start := e.total - e.release; e.release > 0 && pos >= start {
		return float64(e.total-pos) / float64(e.release)
	}
	return 1
}

func (e *envelope) Err() error { return e.streamer.Err() }

// gain converts a linear volume in [0, 1] into effects.Volume settings.
// math.Log2(0) is -Inf, so zero is reported as silent.
func gain(vol float64) (level float64, silent bool) {
	if vol <= 0 || math.IsNaN(vol) {
		return 0, true
	}
	return math.Log2(vol), false
}

func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	level, silent := gain(vol)
	return &effects.Volume{Streamer: s, Base: 2, Volume: level, Silent: silent}
}

// loop replays the streamer built by next until it is removed from the mixer.
type loop struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func newLoop(next func() beep.Streamer) beep.Streamer {
	return &loop{next: next}
}

func (l *loop) Stream(samples [][2]float64) (n int, ok bool) {
	empty := 0
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.next()
		}
		m, more := l.cur.Stream(samples[n:])
		n += m
		if m > 0 {
			empty = 0
		}
		if !more {
			l.cur = nil
			if m == 0 {
				empty++
				if empty > 1 {
					// phrase produces nothing
					return n, n > 0
				}
			}
		}
	}
	return n, true
}

func (l *loop) Err() error { return nil }
