package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// Bias and jitter shares of the shake magnitude; they sum to 1 so an offset
// never exceeds the current magnitude on either axis.
const (
	shakeJitter = 0.7
	shakeBias   = 0.3
	// Angular frequency of the directional bias, radians per ms.
	shakeBiasFreq = 0.045
)

// Shake is a decaying camera shake.
type Shake struct {
	cfg config.ShakeConfig
	t   timer
}

// NewShake creates an inactive shake.
func NewShake(cfg config.ShakeConfig) *Shake {
	return &Shake{cfg: cfg}
}

// Start (re)starts the shake from full intensity.
func (s *Shake) Start() {
	s.t.start(s.cfg.DurationMs)
}

// Update advances the shake by dtMs of real time.
func (s *Shake) Update(dtMs float64) {
	s.t.update(dtMs)
}

// Active reports whether the shake is running.
func (s *Shake) Active() bool {
	return s.t.active
}

// Magnitude returns intensity*(1 - p^2), or 0 when inactive.
func (s *Shake) Magnitude() float64 {
	if !s.t.active {
		return 0
	}
	p := s.t.progress()
	return s.cfg.Intensity * (1 - p*p)
}

// Offset returns the camera translation for this frame.
func (s *Shake) Offset(rng *rand.Rand) (x, y float64) {
	mag := s.Magnitude()
	if mag == 0 {
		return 0, 0
	}
	phase := s.t.elapsed * shakeBiasFreq
	x = (rng.Float64()*2-1)*mag*shakeJitter + math.Sin(phase)*mag*shakeBias
	y = (rng.Float64()*2-1)*mag*shakeJitter + math.Cos(phase*1.3)*mag*shakeBias
	return x, y
}

// Reset stops the shake.
func (s *Shake) Reset() {
	s.t.stop()
}
