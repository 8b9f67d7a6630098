package flap

import (
	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
)

// Player is the flapping character. X and Y are the sprite's top-left corner
// in logical pixels; Rotation is in degrees, positive is nose down.
type Player struct {
	X, Y     float64
	Velocity float64
	Rotation float64

	Frame      int     // flap animation frame
	FrameTimer float64 // ms since the last flap frame change

	DeathFrame int
	DeathTimer float64
	DeathDone  bool
}

func newPlayer(cfg config.FlapConfig) Player {
	return Player{
		X: cfg.Player.X,
		Y: cfg.StartY(),
	}
}

// Rect returns the sprite rectangle.
func (p Player) Rect(cfg config.PlayerConfig) core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: cfg.Width, H: cfg.Height}
}

// Hitbox returns the sprite rectangle shrunk by the hitbox padding.
func (p Player) Hitbox(cfg config.PlayerConfig) core.RectF {
	return p.Rect(cfg).Inset(cfg.HitboxPadding)
}
