// Package clock turns raw host frame times into bounded, smoothed simulation
// deltas and provides a recurring scheduler for headless hosts.
package clock

import (
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// Smoother sanitises raw frame deltas: non-positive or tiny samples become the
// nominal frame, spikes are capped, single-frame outliers are rejected by a
// rolling median, and the median is exponentially smoothed before a final clamp.
type Smoother struct {
	cfg      config.ClockConfig
	frameMs  float64
	history  []float64
	next     int
	filled   int
	smoothed float64
	scratch  []float64
}

// NewSmoother creates a smoother for the given clock tuning.
func NewSmoother(cfg config.ClockConfig) *Smoother {
	size := cfg.HistorySize
	if size < 1 {
		size = 1
	}
	s := &Smoother{
		cfg:     cfg,
		frameMs: cfg.FrameMs(),
		history: make([]float64, size),
		scratch: make([]float64, size),
	}
	s.Reset()
	return s
}

// Reset clears the sample history. Call it whenever the host loop restarts
// or resumes after a suspension.
func (s *Smoother) Reset() {
	for i := range s.history {
		s.history[i] = 0
	}
	s.next = 0
	s.filled = 0
	s.smoothed = s.frameMs
}

// Next accepts one raw frame time and returns the delta the simulation should use.
func (s *Smoother) Next(raw time.Duration) time.Duration {
	return msToDuration(s.NextMs(durationToMs(raw)))
}

// NextMs is Next in milliseconds.
func (s *Smoother) NextMs(rawMs float64) float64 {
	sample := rawMs
	switch {
	case math.IsNaN(sample) || math.IsInf(sample, 0) || sample <= 0 || sample < s.cfg.MinSampleMs:
		sample = s.frameMs
	case sample > s.cfg.MaxSampleMs:
		sample = s.cfg.MaxSampleMs
	}

	s.history[s.next] = sample
	s.next = (s.next + 1) % len(s.history)
	if s.filled < len(s.history) {
		s.filled++
	}

	median := s.median()
	w := s.cfg.Smoothing
	s.smoothed = s.smoothed*w + median*(1-w)

	return clamp(s.smoothed, s.cfg.MinDeltaMs, s.cfg.MaxDeltaMs)
}

// FrameMs returns the nominal frame time in milliseconds.
func (s *Smoother) FrameMs() float64 {
	return s.frameMs
}

func (s *Smoother) median() float64 {
	n := s.filled
	vals := s.scratch[:n]
	if n < len(s.history) {
		copy(vals, s.history[:n])
	} else {
		copy(vals, s.history)
	}
	sort.Float64s(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

func durationToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
