package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultFlapYAML []byte

// DefaultFlapConfig returns the hard-coded tuning, matching defaults/flap.yaml.
func DefaultFlapConfig() FlapConfig {
	return FlapConfig{
		Clock: ClockConfig{
			TargetFPS:   60,
			MinSampleMs: 1,
			MaxSampleMs: 50,
			HistorySize: 5,
			Smoothing:   0.85,
			MinDeltaMs:  4,
			MaxDeltaMs:  25,
		},
		Playfield: PlayfieldConfig{
			Width:  1080,
			Height: 1620,
		},
		Physics: PhysicsConfig{
			Gravity:       1.2,
			JumpVelocity:  -24,
			MaxFallSpeed:  34,
			RotationSpeed: 4,
			JumpRotation:  -25,
			MaxRotation:   90,
		},
		Player: PlayerConfig{
			X:             270,
			Width:         270,
			Height:        270,
			HitboxPadding: 40,
		},
		Animation: AnimationConfig{
			FlapFrames:           3,
			FlapFrameMs:          100,
			DeathFrames:          3,
			DeathFrameMs:         300,
			ReadyFrameMs:         150,
			GameOverMusicDelayMs: 600,
		},
		Obstacles: ObstacleConfig{
			Width:           170,
			BladeHeight:     170,
			Gap:             470,
			Speed:           8.5,
			SpawnIntervalMs: 1800,
			MinY:            270,
			MaxY:            1620 - 470 - 270,
			EdgePadding:     17,
			ProximityMargin: 200,
		},
		Effects: EffectsConfig{
			Shake: ShakeConfig{DurationMs: 500, Intensity: 30},
			Flash: FlashConfig{DurationMs: 300, PeakAlpha: 0.85},
			SlowMotion: SlowMotionConfig{
				DurationMs:   1200,
				MinTimeScale: 0.15,
				MaxZoom:      1.35,
				Desaturation: 0.85,
				Aberration:   12,
				Vignette:     0.6,
			},
			Particles: ParticleConfig{
				Max:        96,
				DeathBurst: 28,
				ScoreBurst: 6,
				Speed:      14,
				LifeMs:     900,
				Gravity:    0.6,
			},
			CountUp: CountUpConfig{PerPointMs: 40, MinMs: 300, MaxMs: 1500},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.6,
				IntervalReduction: 500,
			},
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultFlapYAML
}
