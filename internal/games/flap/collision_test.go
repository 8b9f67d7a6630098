package flap

import (
	"testing"

	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
)

// hitboxAt returns the padded hitbox for a sprite whose top-left is (x, y).
func hitboxAt(cfg config.FlapConfig, x, y float64) core.RectF {
	return Player{X: x, Y: y}.Hitbox(cfg.Player)
}

func TestDetectBoundaries(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	pad := cfg.Player.HitboxPadding
	w := cfg.Obstacles.Width
	edge := cfg.Obstacles.EdgePadding
	gap := cfg.Obstacles.Gap
	H := cfg.Playfield.Height

	obs := Obstacle{ID: 3, X: 600, GapY: 500}

	tests := []struct {
		name    string
		hitbox  core.RectF
		want    Cause
		ceiling bool
	}{
		{
			name:   "open sky",
			hitbox: hitboxAt(cfg, 270, 675),
			want:   CauseNone,
		},
		{
			name:   "touching padded left edge",
			hitbox: core.RectF{X: obs.X + edge - 190, Y: 100, W: 190, H: 190},
			want:   CauseNone,
		},
		{
			name:   "overlapping padded left edge",
			hitbox: core.RectF{X: obs.X + edge - 189.9, Y: 100, W: 190, H: 190},
			want:   CauseTopObstacle,
		},
		{
			name:   "touching padded right edge",
			hitbox: core.RectF{X: obs.X + w - edge, Y: 100, W: 190, H: 190},
			want:   CauseNone,
		},
		{
			name:   "top of hitbox exactly at gap start",
			hitbox: core.RectF{X: obs.X, Y: obs.GapY, W: 190, H: 190},
			want:   CauseNone,
		},
		{
			name:   "top of hitbox just above gap start",
			hitbox: core.RectF{X: obs.X, Y: obs.GapY - 0.01, W: 190, H: 190},
			want:   CauseTopObstacle,
		},
		{
			name:   "bottom of hitbox exactly at gap end",
			hitbox: core.RectF{X: obs.X, Y: obs.GapY + gap - 190, W: 190, H: 190},
			want:   CauseNone,
		},
		{
			name:   "bottom of hitbox just below gap end",
			hitbox: core.RectF{X: obs.X, Y: obs.GapY + gap - 189.99, W: 190, H: 190},
			want:   CauseBottomObstacle,
		},
		{
			name:   "floor exactly",
			hitbox: core.RectF{X: 310, Y: H - 190, W: 190, H: 190},
			want:   CauseFloor,
		},
		{
			name:   "just above floor",
			hitbox: core.RectF{X: 310, Y: H - 190.01, W: 190, H: 190},
			want:   CauseNone,
		},
		{
			name:    "ceiling is not fatal",
			hitbox:  core.RectF{X: 310, Y: 0, W: 190, H: 190},
			want:    CauseNone,
			ceiling: true,
		},
		{
			name:    "above ceiling",
			hitbox:  hitboxAt(cfg, 270, -pad-20),
			want:    CauseNone,
			ceiling: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.hitbox, []Obstacle{obs}, cfg.Playfield, cfg.Obstacles)
			if got.Cause != tt.want {
				t.Errorf("Cause = %s, want %s", got.Cause, tt.want)
			}
			if got.Ceiling != tt.ceiling {
				t.Errorf("Ceiling = %v, want %v", got.Ceiling, tt.ceiling)
			}
			if got.Fatal() != (tt.want != CauseNone) {
				t.Errorf("Fatal = %v for cause %s", got.Fatal(), got.Cause)
			}
			if tt.want == CauseTopObstacle || tt.want == CauseBottomObstacle {
				if got.Obstacle == nil || got.Obstacle.ID != obs.ID {
					t.Errorf("Obstacle = %+v, want ID %d", got.Obstacle, obs.ID)
				}
			} else if got.Obstacle != nil {
				t.Errorf("Obstacle = %+v, want nil", got.Obstacle)
			}
		})
	}
}

func TestDetectGridInsideGap(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	obs := []Obstacle{{X: 300, GapY: 400}}
	size := 190.0
	for x := 0.0; x <= 900; x += 12.5 {
		for y := 400.0; y+size <= 400+cfg.Obstacles.Gap; y += 10 {
			hb := core.RectF{X: x, Y: y, W: size, H: size}
			if got := Detect(hb, obs, cfg.Playfield, cfg.Obstacles); got.Cause != CauseNone || got.Ceiling {
				t.Fatalf("hitbox %+v inside the gap reported %+v", hb, got)
			}
		}
	}
}

func TestDetectFirstHitWins(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	hb := core.RectF{X: 310, Y: 300, W: 190, H: 190}
	obs := []Obstacle{
		{ID: 1, X: 2000, GapY: 900}, // far away, filtered by proximity
		{ID: 2, X: 300, GapY: 600},  // top hit
		{ID: 3, X: 350, GapY: 0},    // bottom hit
	}
	got := Detect(hb, obs, cfg.Playfield, cfg.Obstacles)
	if got.Cause != CauseTopObstacle || got.Obstacle.ID != 2 {
		t.Errorf("got %s on %+v, want top-obstacle on ID 2", got.Cause, got.Obstacle)
	}

	got = Detect(hb, obs[2:], cfg.Playfield, cfg.Obstacles)
	if got.Cause != CauseBottomObstacle || got.Obstacle.ID != 3 {
		t.Errorf("got %s on %+v, want bottom-obstacle on ID 3", got.Cause, got.Obstacle)
	}
}

func TestDetectFloorBeatsObstacle(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	hb := core.RectF{X: 310, Y: cfg.Playfield.Height - 100, W: 190, H: 190}
	got := Detect(hb, []Obstacle{{X: 300, GapY: 500}}, cfg.Playfield, cfg.Obstacles)
	if got.Cause != CauseFloor {
		t.Errorf("Cause = %s, want floor", got.Cause)
	}
}
