// Package config provides YAML-based game tuning and difficulty management.
// All distances are in logical pixels (1080x1620 playfield) and all physics
// rates are per nominal 60 Hz frame; times are in milliseconds.
package config

import (
	"errors"
	"fmt"
)

// FlapConfig contains all tunables of the game core.
type FlapConfig struct {
	Clock      ClockConfig      `yaml:"clock"`
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Animation  AnimationConfig  `yaml:"animation"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ClockConfig defines frame delta sanitising.
type ClockConfig struct {
	TargetFPS   float64 `yaml:"target_fps"`
	MinSampleMs float64 `yaml:"min_sample_ms"` // raw samples below this are replaced by the nominal frame
	MaxSampleMs float64 `yaml:"max_sample_ms"` // raw samples above this are clamped (tab backgrounded, SSH stall)
	HistorySize int     `yaml:"history_size"`
	Smoothing   float64 `yaml:"smoothing"` // weight of the previous smoothed value
	MinDeltaMs  float64 `yaml:"min_delta_ms"`
	MaxDeltaMs  float64 `yaml:"max_delta_ms"`
}

// FrameMs returns the nominal frame time in milliseconds.
func (c ClockConfig) FrameMs() float64 {
	return 1000.0 / c.TargetFPS
}

// PlayfieldConfig defines the logical render surface.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player motion.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	JumpRotation  float64 `yaml:"jump_rotation"`
	MaxRotation   float64 `yaml:"max_rotation"`
}

// PlayerConfig defines the player sprite and hitbox.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// AnimationConfig defines cosmetic frame timings.
type AnimationConfig struct {
	FlapFrames           int     `yaml:"flap_frames"`
	FlapFrameMs          float64 `yaml:"flap_frame_ms"`
	DeathFrames          int     `yaml:"death_frames"`
	DeathFrameMs         float64 `yaml:"death_frame_ms"`
	ReadyFrameMs         float64 `yaml:"ready_frame_ms"`
	GameOverMusicDelayMs float64 `yaml:"game_over_music_delay_ms"`
}

// ObstacleConfig defines razor pairs.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	BladeHeight     float64 `yaml:"blade_height"`
	Gap             float64 `yaml:"gap"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMs float64 `yaml:"spawn_interval_ms"`
	MinY            float64 `yaml:"min_y"`
	MaxY            float64 `yaml:"max_y"`
	EdgePadding     float64 `yaml:"edge_padding"`
	ProximityMargin float64 `yaml:"proximity_margin"`
}

// EffectsConfig groups the feedback effect tunables.
type EffectsConfig struct {
	Shake      ShakeConfig      `yaml:"shake"`
	Flash      FlashConfig      `yaml:"flash"`
	SlowMotion SlowMotionConfig `yaml:"slow_motion"`
	Particles  ParticleConfig   `yaml:"particles"`
	CountUp    CountUpConfig    `yaml:"count_up"`
}

// ShakeConfig defines the death screen shake.
type ShakeConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	Intensity  float64 `yaml:"intensity"`
}

// FlashConfig defines the full-screen flash.
type FlashConfig struct {
	DurationMs float64 `yaml:"duration_ms"`
	PeakAlpha  float64 `yaml:"peak_alpha"`
}

// SlowMotionConfig defines the cinematic death sequence.
type SlowMotionConfig struct {
	DurationMs   float64 `yaml:"duration_ms"`
	MinTimeScale float64 `yaml:"min_time_scale"`
	MaxZoom      float64 `yaml:"max_zoom"`
	Desaturation float64 `yaml:"desaturation"`
	Aberration   float64 `yaml:"aberration"`
	Vignette     float64 `yaml:"vignette"`
}

// ParticleConfig defines death and score bursts.
type ParticleConfig struct {
	Max        int     `yaml:"max"`
	DeathBurst int     `yaml:"death_burst"`
	ScoreBurst int     `yaml:"score_burst"`
	Speed      float64 `yaml:"speed"`
	LifeMs     float64 `yaml:"life_ms"`
	Gravity    float64 `yaml:"gravity"`
}

// CountUpConfig defines the game-over score animation.
type CountUpConfig struct {
	PerPointMs float64 `yaml:"per_point_ms"`
	MinMs      float64 `yaml:"min_ms"`
	MaxMs      float64 `yaml:"max_ms"`
}

// DifficultyConfig defines the optional difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
// Gap height is never scaled.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Spawn interval reduction in ms at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// StartY returns the player's starting top edge, centred vertically.
func (c FlapConfig) StartY() float64 {
	return c.Playfield.Height/2 - c.Player.Height/2
}

// Validate reports every inconsistent tunable, joined into one error.
func (c FlapConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Clock.TargetFPS > 0, "clock.target_fps must be positive, got %v", c.Clock.TargetFPS)
	check(c.Clock.HistorySize > 0, "clock.history_size must be positive, got %d", c.Clock.HistorySize)
	check(c.Clock.Smoothing >= 0 && c.Clock.Smoothing < 1, "clock.smoothing must be in [0, 1), got %v", c.Clock.Smoothing)
	check(c.Clock.MinDeltaMs > 0 && c.Clock.MinDeltaMs <= c.Clock.MaxDeltaMs,
		"clock delta clamp [%v, %v] is invalid", c.Clock.MinDeltaMs, c.Clock.MaxDeltaMs)
	check(c.Clock.MaxSampleMs >= c.Clock.MaxDeltaMs, "clock.max_sample_ms must be >= max_delta_ms")
	check(c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield must have a positive size")
	check(c.Player.Width > 2*c.Player.HitboxPadding && c.Player.Height > 2*c.Player.HitboxPadding,
		"player.hitbox_padding %v leaves no hitbox", c.Player.HitboxPadding)
	check(c.Physics.JumpRotation <= c.Physics.MaxRotation, "physics.jump_rotation must not exceed max_rotation")
	check(c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive")
	check(c.Obstacles.Width > 2*c.Obstacles.EdgePadding, "obstacles.edge_padding %v leaves no blade", c.Obstacles.EdgePadding)
	check(c.Obstacles.Gap > 0, "obstacles.gap must be positive")
	check(c.Obstacles.MinY <= c.Obstacles.MaxY, "obstacles gap range [%v, %v] is inverted", c.Obstacles.MinY, c.Obstacles.MaxY)
	check(c.Obstacles.MaxY+c.Obstacles.Gap <= c.Playfield.Height, "obstacles.max_y plus gap exceeds the playfield")
	check(c.Obstacles.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive")
	check(c.Animation.FlapFrames > 0 && c.Animation.DeathFrames > 0, "animation frame counts must be positive")
	check(c.Animation.FlapFrameMs > 0 && c.Animation.DeathFrameMs > 0 && c.Animation.ReadyFrameMs > 0,
		"animation frame times must be positive")
	check(c.Effects.SlowMotion.MinTimeScale > 0 && c.Effects.SlowMotion.MinTimeScale <= 1,
		"effects.slow_motion.min_time_scale must be in (0, 1]")
	check(c.Effects.CountUp.MinMs <= c.Effects.CountUp.MaxMs, "effects.count_up min_ms exceeds max_ms")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flap config: %w", errors.Join(errs...))
	}
	return nil
}
