package flap

import "github.com/vovakirdan/razor-flap/internal/effects"

// RenderState is an immutable snapshot of everything the renderer needs.
// Slices are copies and may be retained by the caller.
type RenderState struct {
	State        State
	Score        int
	Best         int
	DisplayScore int // eased count-up on game over, the live score otherwise
	NewBest      bool

	Player    Player
	Obstacles []Obstacle
	Particles []effects.Particle

	ShakeX, ShakeY float64
	FlashAlpha     float64
	SlowMotion     effects.SlowMotionValues

	Ready       ReadyScreen
	Certificate *DeathCertificate
	Buttons     []Button
	PlayerName  string

	Geometry Geometry
}

// ReadyScreen holds the cosmetic ready-screen animation.
type ReadyScreen struct {
	FlapFrame  int
	DeathFrame int
	Bob        float64 // vertical offset of the flying character
	Wobble     float64 // rotation of the falling character, degrees
	Pulse      float64 // prompt opacity in [0, 1]
}

// Geometry carries the sizes the renderer maps into cells.
type Geometry struct {
	Width, Height    float64
	PlayerW, PlayerH float64
	HitboxPadding    float64
	ObstacleW        float64
	BladeH           float64
	EdgePadding      float64
	Gap              float64
}
