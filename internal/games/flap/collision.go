package flap

import (
	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
)

// Cause tags what ended a run.
type Cause string

const (
	CauseNone           Cause = "none"
	CauseFloor          Cause = "floor"
	CauseTopObstacle    Cause = "top-obstacle"
	CauseBottomObstacle Cause = "bottom-obstacle"
)

// Collision is the result of a hit test.
type Collision struct {
	Cause    Cause
	Obstacle *Obstacle // copy of the obstacle that was hit, nil otherwise
	Ceiling  bool      // hitbox touched the ceiling; never fatal
}

// Fatal reports whether the collision ends the run.
func (c Collision) Fatal() bool {
	return c.Cause != CauseNone
}

// Detect tests a player hitbox against the floor, the ceiling and every
// obstacle. The floor wins over obstacles; among obstacles the first hit in
// slice order wins.
func Detect(hitbox core.RectF, obstacles []Obstacle, field config.PlayfieldConfig, cfg config.ObstacleConfig) Collision {
	if hitbox.Bottom() >= field.Height {
		return Collision{Cause: CauseFloor}
	}

	result := Collision{Cause: CauseNone, Ceiling: hitbox.Y <= 0}

	for i := range obstacles {
		o := obstacles[i]

		// Cheap proximity pre-filter before the exact test.
		if o.X > hitbox.Right()+cfg.ProximityMargin || o.Right(cfg) < hitbox.X-cfg.ProximityMargin {
			continue
		}

		// Blades reach a full field past the edges, so a player above the
		// ceiling still meets the top one.
		left := o.X + cfg.EdgePadding
		w := cfg.Width - 2*cfg.EdgePadding
		top := core.RectF{X: left, Y: -field.Height, W: w, H: o.GapY + field.Height}
		bottom := core.RectF{X: left, Y: o.GapY + cfg.Gap, W: w, H: 2 * field.Height}

		switch {
		case hitbox.Intersects(top):
			result.Cause = CauseTopObstacle
		case hitbox.Intersects(bottom):
			result.Cause = CauseBottomObstacle
		default:
			continue
		}
		result.Obstacle = &o
		return result
	}

	return result
}
