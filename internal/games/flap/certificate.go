package flap

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// DeathCertificate records the outcome of a run. It is created when the
// player dies and handed to the ResultSink once the run reaches game over.
type DeathCertificate struct {
	ID         string
	Cause      Cause
	Score      int
	Best       int
	NewBest    bool
	DurationMs int64 // wall clock from start of play to death
	Timestamp  time.Time
	Obstacle   *Obstacle // obstacle that was hit, nil for the floor
	PlayerY    float64
	Rotation   float64
	PlayerName string
}

func newCertificate(cause Cause, obstacle *Obstacle, score, best int, start, at time.Time, p Player, name string) DeathCertificate {
	var snap *Obstacle
	if obstacle != nil {
		o := *obstacle
		snap = &o
	}
	return DeathCertificate{
		ID:         uuid.NewString(),
		Cause:      cause,
		Score:      score,
		Best:       best,
		DurationMs: at.Sub(start).Milliseconds(),
		Timestamp:  at,
		Obstacle:   snap,
		PlayerY:    p.Y,
		Rotation:   p.Rotation,
		PlayerName: name,
	}
}

// Duration returns the run length.
func (c DeathCertificate) Duration() time.Duration {
	return time.Duration(c.DurationMs) * time.Millisecond
}

// Summary is a one-line shareable description of the run.
func (c DeathCertificate) Summary() string {
	name := c.PlayerName
	if name == "" {
		name = "anonymous"
	}
	best := ""
	if c.NewBest {
		best = ", new best"
	}
	return fmt.Sprintf("%s scored %s in %.1fs (%s%s)",
		name, humanize.Comma(int64(c.Score)), c.Duration().Seconds(), describeCause(c.Cause), best)
}

func describeCause(c Cause) string {
	switch c {
	case CauseFloor:
		return "hit the floor"
	case CauseTopObstacle:
		return "sliced by the top razor"
	case CauseBottomObstacle:
		return "sliced by the bottom razor"
	default:
		return "unknown"
	}
}
