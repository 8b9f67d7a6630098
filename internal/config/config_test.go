package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultFlapConfigValid(t *testing.T) {
	cfg := DefaultFlapConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if got := cfg.StartY(); got != 675 {
		t.Errorf("StartY() = %v, want 675", got)
	}
	if got := cfg.Obstacles.MaxY; got != 880 {
		t.Errorf("Obstacles.MaxY = %v, want 880", got)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseFlap(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded yaml: %v", err)
	}
	if cfg != DefaultFlapConfig() {
		t.Errorf("embedded yaml differs from DefaultFlapConfig:\n got %+v\nwant %+v", cfg, DefaultFlapConfig())
	}
}

func TestLoadFlapCustomPathPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flap.yaml")
	data := "physics:\n  gravity: 2.5\nobstacles:\n  gap: 500\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlap(path)
	if err != nil {
		t.Fatalf("LoadFlap: %v", err)
	}
	if cfg.Physics.Gravity != 2.5 {
		t.Errorf("Gravity = %v, want 2.5", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 500 {
		t.Errorf("Gap = %v, want 500", cfg.Obstacles.Gap)
	}
	// Untouched fields keep their defaults.
	if cfg.Physics.JumpVelocity != -24 {
		t.Errorf("JumpVelocity = %v, want -24", cfg.Physics.JumpVelocity)
	}
}

func TestLoadFlapErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("obstacles:\n  min_y: 900\n  max_y: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
		{"fails validation", invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFlap(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if cfg != DefaultFlapConfig() {
				t.Error("expected defaults on error")
			}
		})
	}
}

func TestValidateReportsProblems(t *testing.T) {
	cfg := DefaultFlapConfig()
	cfg.Clock.TargetFPS = 0
	cfg.Player.HitboxPadding = 200
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"target_fps", "hitbox_padding"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %s", msg, want)
		}
	}
}

func TestApplyFlapPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initLevel float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultFlapConfig()
			ApplyFlapPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.initLevel {
				t.Errorf("InitialLevel = %v, want %v", cfg.Difficulty.InitialLevel, tt.initLevel)
			}
		})
	}

	cfg := DefaultFlapConfig()
	ApplyFlapPreset(&cfg, "")
	if cfg != DefaultFlapConfig() {
		t.Error("empty preset should not change config")
	}
}

func TestDifficultyManager(t *testing.T) {
	base := DefaultFlapConfig().Difficulty

	t.Run("disabled keeps base values", func(t *testing.T) {
		dm := NewDifficultyManager(base)
		if dm.IsEnabled() {
			t.Error("expected disabled")
		}
		if got := dm.Speed(8.5, 1000, 1e9); got != 8.5 {
			t.Errorf("Speed = %v, want 8.5", got)
		}
		if got := dm.SpawnInterval(1800, 1000, 1e9); got != 1800 {
			t.Errorf("SpawnInterval = %v, want 1800", got)
		}
	})

	t.Run("score progression", func(t *testing.T) {
		cfg := base
		cfg.Enabled = true
		dm := NewDifficultyManager(cfg)
		if got := dm.Level(0, 0); got != 0 {
			t.Errorf("Level(0) = %v, want 0", got)
		}
		if got := dm.Level(30, 0); got != 0.5 {
			t.Errorf("Level(30) = %v, want 0.5", got)
		}
		if got := dm.Level(600, 0); got != 1 {
			t.Errorf("Level(600) = %v, want 1", got)
		}
		if got := dm.SpawnInterval(1800, 60, 0); got != 1300 {
			t.Errorf("SpawnInterval at max = %v, want 1300", got)
		}
	})

	t.Run("time progression", func(t *testing.T) {
		cfg := base
		cfg.Enabled = true
		cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 10000}
		dm := NewDifficultyManager(cfg)
		if got := dm.Level(0, 5000); got != 0.5 {
			t.Errorf("Level(5s) = %v, want 0.5", got)
		}
	})

	t.Run("interval floor", func(t *testing.T) {
		cfg := base
		cfg.Enabled = true
		cfg.Scaling.IntervalReduction = 5000
		dm := NewDifficultyManager(cfg)
		if got := dm.SpawnInterval(1800, 60, 0); got != 900 {
			t.Errorf("SpawnInterval = %v, want 900", got)
		}
	})
}
