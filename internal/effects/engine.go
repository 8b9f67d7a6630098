package effects

import (
	"math/rand"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// Engine bundles every feedback effect of a session.
type Engine struct {
	Shake      *Shake
	Flash      *Flash
	SlowMotion *SlowMotion
	Particles  *Particles
	CountUp    *CountUp

	cfg config.EffectsConfig
}

// NewEngine creates an engine with all effects inactive.
func NewEngine(cfg config.EffectsConfig, frameMs float64) *Engine {
	return &Engine{
		Shake:      NewShake(cfg.Shake),
		Flash:      NewFlash(cfg.Flash),
		SlowMotion: NewSlowMotion(cfg.SlowMotion),
		Particles:  NewParticles(cfg.Particles, frameMs),
		CountUp:    NewCountUp(cfg.CountUp),
		cfg:        cfg,
	}
}

// TriggerDeath starts the death sequence centred on (x, y).
func (e *Engine) TriggerDeath(x, y float64, rng *rand.Rand) {
	e.Shake.Start()
	e.Flash.Start()
	e.SlowMotion.Start()
	e.Particles.Burst(x, y, e.cfg.Particles.DeathBurst, ParticleShard, rng)
}

// TriggerScore emits the small score burst at (x, y).
func (e *Engine) TriggerScore(x, y float64, rng *rand.Rand) {
	e.Particles.Burst(x, y, e.cfg.Particles.ScoreBurst, ParticleSpark, rng)
}

// Update advances all effects on raw frame time.
func (e *Engine) Update(dtMs float64) {
	e.Shake.Update(dtMs)
	e.Flash.Update(dtMs)
	e.SlowMotion.Update(dtMs)
	e.Particles.Update(dtMs)
	e.CountUp.Update(dtMs)
}

// Reset stops every effect.
func (e *Engine) Reset() {
	e.Shake.Reset()
	e.Flash.Reset()
	e.SlowMotion.Reset()
	e.Particles.Clear()
	e.CountUp.Reset()
}
