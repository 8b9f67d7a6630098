package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/razor-flap/internal/config"
)

// ParticleKind selects how a particle is drawn.
type ParticleKind uint8

const (
	ParticleShard ParticleKind = iota
	ParticleSpark
)

// Per-frame velocity retention.
const particleDrag = 0.97

// Particle is one burst fragment in logical space.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Kind    ParticleKind
}

// Fade returns remaining life in [0, 1].
func (p Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return Clamp01(1 - p.Life/p.MaxLife)
}

// Particles is a bounded pool; when full, new particles overwrite the oldest
// slots in circular order.
type Particles struct {
	cfg     config.ParticleConfig
	frameMs float64
	P       []Particle
	ovrIdx  int
}

// NewParticles creates an empty pool.
func NewParticles(cfg config.ParticleConfig, frameMs float64) *Particles {
	max := cfg.Max
	if max <= 0 {
		max = 1
	}
	cfg.Max = max
	return &Particles{
		cfg:     cfg,
		frameMs: frameMs,
		P:       make([]Particle, 0, max),
	}
}

// Add inserts one particle.
func (ps *Particles) Add(p Particle) {
	if len(ps.P) < ps.cfg.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.cfg.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Burst emits n particles radiating from (x, y).
func (ps *Particles) Burst(x, y float64, n int, kind ParticleKind, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		ang := rng.Float64() * math.Pi * 2
		spd := ps.cfg.Speed * (0.35 + rng.Float64()*0.65)
		ps.Add(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang)*spd - ps.cfg.Speed*0.25,
			MaxLife: ps.cfg.LifeMs * (0.6 + rng.Float64()*0.4),
			Kind:    kind,
		})
	}
}

// Update ages and moves particles, removing expired ones.
func (ps *Particles) Update(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	scale := dtMs / ps.frameMs
	drag := math.Pow(particleDrag, scale)

	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life += dtMs
		if p.Life >= p.MaxLife {
			ps.P[i] = ps.P[len(ps.P)-1]
			ps.P = ps.P[:len(ps.P)-1]
			continue
		}
		p.VY += ps.cfg.Gravity * scale
		p.VX *= drag
		p.VY *= drag
		p.X += p.VX * scale
		p.Y += p.VY * scale
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.P)
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}
