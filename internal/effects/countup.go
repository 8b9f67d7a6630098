package effects

import (
	"math"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// CountUp animates a displayed number from 0 to a target. It is display only.
type CountUp struct {
	cfg    config.CountUpConfig
	target int
	t      timer
	done   bool
}

// NewCountUp creates an idle counter showing 0.
func NewCountUp(cfg config.CountUpConfig) *CountUp {
	return &CountUp{cfg: cfg}
}

// Start begins counting towards target.
func (c *CountUp) Start(target int) {
	c.target = target
	c.done = false
	c.t.start(c.Duration(target))
	if !c.t.active {
		c.done = true
	}
}

// Duration returns clamp(target*PerPointMs, MinMs, MaxMs).
func (c *CountUp) Duration(target int) float64 {
	d := float64(target) * c.cfg.PerPointMs
	return math.Max(c.cfg.MinMs, math.Min(c.cfg.MaxMs, d))
}

// Update advances the counter.
func (c *CountUp) Update(dtMs float64) {
	if c.done {
		return
	}
	c.t.update(dtMs)
	if !c.t.active {
		c.done = true
	}
}

// Value returns the number to display.
func (c *CountUp) Value() int {
	if c.done {
		return c.target
	}
	if !c.t.active {
		return 0
	}
	return int(math.Round(float64(c.target) * EaseOutCubic(c.t.progress())))
}

// Done reports whether the counter has reached its target.
func (c *CountUp) Done() bool {
	return c.done
}

// Reset returns the counter to an idle 0.
func (c *CountUp) Reset() {
	c.target = 0
	c.done = false
	c.t.stop()
}
