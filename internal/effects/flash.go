package effects

import "github.com/vovakirdan/razor-flap/internal/config"

// Flash is a full-screen overlay with a ramp-in, hold, ramp-out envelope.
type Flash struct {
	cfg config.FlashConfig
	t   timer
}

// NewFlash creates an inactive flash.
func NewFlash(cfg config.FlashConfig) *Flash {
	return &Flash{cfg: cfg}
}

// Start (re)starts the flash from the beginning of its envelope.
func (f *Flash) Start() {
	f.t.start(f.cfg.DurationMs)
}

// Update advances the flash by dtMs of real time.
func (f *Flash) Update(dtMs float64) {
	f.t.update(dtMs)
}

// Active reports whether the flash is visible.
func (f *Flash) Active() bool {
	return f.t.active
}

// Reset stops the flash immediately.
func (f *Flash) Reset() {
	f.t.stop()
}

// Alpha returns the overlay opacity in [0, PeakAlpha].
func (f *Flash) Alpha() float64 {
	if !f.t.active {
		return 0
	}
	p := f.t.progress()
	switch {
	case p < 0.2:
		return f.cfg.PeakAlpha * (p / 0.2)
	case p < 0.5:
		return f.cfg.PeakAlpha
	default:
		return f.cfg.PeakAlpha * (1 - (p-0.5)/0.5)
	}
}
