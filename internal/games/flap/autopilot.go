package flap

// Autopilot flaps whenever the player sinks below the centre of the next gap.
// It drives headless runs; it is not meant to play well.
type Autopilot struct {
	// Margin is how far below the gap centre the player may fall before a flap.
	Margin float64
}

// ShouldFlap reports whether the autopilot would press now.
func (a Autopilot) ShouldFlap(s *Session) bool {
	switch s.State() {
	case StateReady:
		return true
	case StatePlaying:
	default:
		return false
	}

	cfg := s.Config()
	p := s.Player()
	if p.Velocity < 0 {
		return false // still rising from the last flap
	}

	target := cfg.Playfield.Height / 2
	for _, o := range s.Obstacles() {
		if o.Right(cfg.Obstacles) >= p.X {
			target = o.GapY + cfg.Obstacles.Gap/2
			break
		}
	}
	return p.Y+cfg.Player.Height/2 > target+a.Margin
}
