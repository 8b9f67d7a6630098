package effects

import "github.com/vovakirdan/razor-flap/internal/config"

// SlowMotionValues are the composite outputs of the slow-motion effect.
type SlowMotionValues struct {
	TimeScale    float64
	Zoom         float64
	Desaturation float64
	Aberration   float64
	Vignette     float64
}

// NeutralSlowMotion is reported whenever slow motion is inactive.
var NeutralSlowMotion = SlowMotionValues{TimeScale: 1, Zoom: 1}

// SlowMotion drives the cinematic death sequence.
type SlowMotion struct {
	cfg config.SlowMotionConfig
	t   timer
}

// NewSlowMotion creates an inactive slow-motion effect.
func NewSlowMotion(cfg config.SlowMotionConfig) *SlowMotion {
	return &SlowMotion{cfg: cfg}
}

// Start (re)starts the sequence from normal speed.
func (s *SlowMotion) Start() {
	s.t.start(s.cfg.DurationMs)
}

// Update advances the sequence by dtMs of real, unscaled time.
func (s *SlowMotion) Update(dtMs float64) {
	s.t.update(dtMs)
}

// Active reports whether the sequence is running.
func (s *SlowMotion) Active() bool {
	return s.t.active
}

// Reset returns to normal speed immediately.
func (s *SlowMotion) Reset() {
	s.t.stop()
}

// Intensity returns the envelope in [0, 1]: ease-out-quartic ramp in over the
// first 20%, hold until 50%, ease-in-out-cubic return over the rest.
func (s *SlowMotion) Intensity() float64 {
	if !s.t.active {
		return 0
	}
	p := s.t.progress()
	switch {
	case p < 0.2:
		return EaseOutQuart(p / 0.2)
	case p < 0.5:
		return 1
	default:
		return 1 - EaseInOutCubic((p-0.5)/0.5)
	}
}

// Values returns the current composite values.
func (s *SlowMotion) Values() SlowMotionValues {
	if !s.t.active {
		return NeutralSlowMotion
	}
	i := s.Intensity()
	return SlowMotionValues{
		TimeScale:    Lerp(1, s.cfg.MinTimeScale, i),
		Zoom:         Lerp(1, s.cfg.MaxZoom, i),
		Desaturation: s.cfg.Desaturation * i,
		Aberration:   s.cfg.Aberration * i,
		Vignette:     s.cfg.Vignette * i,
	}
}

// TimeScale is shorthand for Values().TimeScale.
func (s *SlowMotion) TimeScale() float64 {
	return s.Values().TimeScale
}
