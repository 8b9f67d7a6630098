package flap

import "github.com/vovakirdan/razor-flap/internal/config"

// integrate applies gravity, the fall-speed cap and nose-dive rotation.
// scale is the delta expressed in nominal 60 Hz frames.
func integrate(p *Player, cfg config.PhysicsConfig, scale float64) {
	p.Velocity += cfg.Gravity * scale
	if p.Velocity > cfg.MaxFallSpeed {
		p.Velocity = cfg.MaxFallSpeed
	}

	p.Y += p.Velocity * scale

	if p.Velocity > 0 {
		p.Rotation += cfg.RotationSpeed * scale
		if p.Rotation > cfg.MaxRotation {
			p.Rotation = cfg.MaxRotation
		}
	}
}

// flap sets, never adds, the jump velocity and rotation and restarts the
// flap animation.
func flap(p *Player, cfg config.PhysicsConfig) {
	p.Velocity = cfg.JumpVelocity
	p.Rotation = cfg.JumpRotation
	p.Frame = 0
	p.FrameTimer = 0
}

// animateFlap cycles the flap frames on wall-clock time.
func animateFlap(p *Player, cfg config.AnimationConfig, dtMs float64) {
	p.FrameTimer += dtMs
	if p.FrameTimer >= cfg.FlapFrameMs {
		p.FrameTimer = 0
		p.Frame = (p.Frame + 1) % cfg.FlapFrames
	}
}

// animateDeath plays the death frames once and holds the last one.
func animateDeath(p *Player, cfg config.AnimationConfig, dtMs float64) {
	if p.DeathDone {
		return
	}
	p.DeathTimer += dtMs
	if p.DeathTimer >= cfg.DeathFrameMs {
		p.DeathTimer = 0
		p.DeathFrame++
		if p.DeathFrame >= cfg.DeathFrames {
			p.DeathFrame = cfg.DeathFrames - 1
			p.DeathDone = true
		}
	}
}
