// Package effects implements time-boxed feedback effects: screen shake,
// full-screen flash, cinematic slow motion, particle bursts and the eased
// score counter. Every effect advances on raw frame time in milliseconds and
// reports exactly neutral values once its timer has expired.
package effects

import "github.com/tanema/gween/ease"

// curve evaluates a gween easing function over the unit interval.
func curve(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(Clamp01(t)), 0, 1, 1))
}

// EaseOutQuart decelerates to t=1.
func EaseOutQuart(t float64) float64 {
	return curve(ease.OutQuart, t)
}

// EaseOutCubic decelerates to t=1.
func EaseOutCubic(t float64) float64 {
	return curve(ease.OutCubic, t)
}

// EaseInOutCubic accelerates until t=0.5, then decelerates.
func EaseInOutCubic(t float64) float64 {
	return curve(ease.InOutCubic, t)
}

// Clamp01 restricts t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// timer is a one-shot progress timer shared by all effects.
type timer struct {
	duration float64
	elapsed  float64
	active   bool
}

func (t *timer) start(durationMs float64) {
	t.duration = durationMs
	t.elapsed = 0
	t.active = durationMs > 0
}

// update advances the timer and deactivates it once elapsed reaches duration.
func (t *timer) update(dtMs float64) {
	if !t.active {
		return
	}
	t.elapsed += dtMs
	if t.elapsed >= t.duration {
		t.active = false
	}
}

func (t *timer) progress() float64 {
	if !t.active {
		return 1
	}
	return Clamp01(t.elapsed / t.duration)
}

func (t *timer) stop() {
	t.active = false
	t.elapsed = 0
}
