package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

var semitones = map[string]int{
	"C": -9, "C#": -8, "D": -7, "D#": -6, "E": -5, "F": -4,
	"F#": -3, "G": -2, "G#": -1, "A": 0, "A#": 1, "B": 2,
}

// Note returns the equal-tempered frequency of name in octave, A4 = 440 Hz.
// Unknown names return 440.
func Note(name string, octave int) float64 {
	st, ok := semitones[name]
	if !ok {
		return 440
	}
	return 440 * math.Pow(2, float64(st+12*(octave-4))/12)
}

type tone struct {
	name   string
	octave int
	steps  int
}

// phrase renders tones of steps x step each on one voice. gate is the sounding
// fraction of every note.
func phrase(rate beep.SampleRate, wave Wave, tones []tone, step time.Duration, gate, vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(tones)*2)
	for _, t := range tones {
		d := time.Duration(t.steps) * step
		on := time.Duration(float64(d) * gate)
		osc := NewOscillator(wave, Note(t.name, t.octave), on, rate)
		parts = append(parts,
			newVolume(NewEnvelope(osc, on, on*3/10, on*7/10, rate), vol),
			beep.Silence(rate.N(d-on)),
		)
	}
	return beep.Seq(parts...)
}

func delayed(rate beep.SampleRate, d time.Duration, s beep.Streamer) beep.Streamer {
	return beep.Seq(beep.Silence(rate.N(d)), s)
}

func flapSound(rate beep.SampleRate) beep.Streamer {
	whoosh := NewEnvelope(NewOscillator(WaveNoise, 0, 100*time.Millisecond, rate),
		100*time.Millisecond, 0, 90*time.Millisecond, rate)
	flick := NewEnvelope(NewGlide(WaveTriangle, 400, 600, 50*time.Millisecond, rate),
		50*time.Millisecond, 0, 40*time.Millisecond, rate)
	return beep.Mix(newVolume(whoosh, 0.35), newVolume(flick, 0.4))
}

func scoreSound(rate beep.SampleRate) beep.Streamer {
	osc := NewGlide(WaveTriangle, 120, 180, 150*time.Millisecond, rate)
	return newVolume(NewEnvelope(osc, 150*time.Millisecond, 0, 100*time.Millisecond, rate), 0.5)
}

func deathSound(rate beep.SampleRate) beep.Streamer {
	impact := NewEnvelope(NewGlide(WaveSaw, 150, 50, 200*time.Millisecond, rate),
		200*time.Millisecond, 0, 200*time.Millisecond, rate)
	fall := phrase(rate, WaveSquare, []tone{
		{"A", 4, 3}, {"F", 4, 3}, {"D", 4, 4}, {"A", 3, 8},
	}, 50*time.Millisecond, 0.9, 0.2)
	rumble := NewEnvelope(NewGlide(WaveTriangle, 80, 40, 500*time.Millisecond, rate),
		500*time.Millisecond, 50*time.Millisecond, 450*time.Millisecond, rate)

	return beep.Mix(
		newVolume(impact, 0.4),
		delayed(rate, 100*time.Millisecond, fall),
		delayed(rate, 800*time.Millisecond, newVolume(rumble, 0.25)),
	)
}

func clickSound(rate beep.SampleRate) beep.Streamer {
	lo := NewEnvelope(NewOscillator(WaveSquare, 600, 30*time.Millisecond, rate),
		30*time.Millisecond, 0, 10*time.Millisecond, rate)
	hi := NewEnvelope(NewOscillator(WaveSquare, 900, 50*time.Millisecond, rate),
		50*time.Millisecond, 0, 40*time.Millisecond, rate)
	return newVolume(beep.Mix(lo, delayed(rate, 20*time.Millisecond, hi)), 0.15)
}

// gameplayTheme is one pass of the in-game loop: a square lead over a
// triangle bass, 95 bpm sixteenths.
func gameplayTheme(rate beep.SampleRate) beep.Streamer {
	step := time.Minute / 95 / 4
	lead := phrase(rate, WaveSquare, []tone{
		{"B", 4, 2}, {"E", 5, 2}, {"G", 5, 4},
		{"F#", 5, 2}, {"E", 5, 2}, {"D", 5, 4},
		{"E", 5, 2}, {"G", 5, 2}, {"B", 5, 4},
		{"A", 5, 2}, {"G", 5, 2}, {"F#", 5, 4},
	}, step, 0.9, 0.25)
	bass := phrase(rate, WaveTriangle, []tone{
		{"E", 2, 8}, {"C", 2, 8}, {"G", 2, 8}, {"D", 2, 8},
	}, step, 0.8, 0.35)
	return beep.Mix(lead, bass)
}

// gameOverTheme is a short falling phrase played once, 78 bpm.
func gameOverTheme(rate beep.SampleRate) beep.Streamer {
	step := time.Minute / 78 / 4
	return phrase(rate, WaveSquare, []tone{
		{"B", 4, 2}, {"E", 5, 3}, {"D", 5, 1},
		{"C", 5, 2}, {"B", 4, 2}, {"A", 4, 4},
		{"G", 4, 2}, {"A", 4, 2}, {"B", 4, 2}, {"E", 4, 8},
	}, step, 0.9, 0.25)
}
