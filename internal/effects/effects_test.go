package effects

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/razor-flap/internal/config"
)

const frameMs = 1000.0 / 60

func testEffects() config.EffectsConfig {
	return config.DefaultFlapConfig().Effects
}

func TestEasingEndpoints(t *testing.T) {
	fns := map[string]func(float64) float64{
		"EaseOutQuart":   EaseOutQuart,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
	}
	for name, fn := range fns {
		if got := fn(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := fn(-3); got != 0 {
			t.Errorf("%s(-3) = %v, want 0", name, got)
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev {
				t.Fatalf("%s not monotonic at %d", name, i)
			}
			prev = v
		}
	}
	if got := EaseInOutCubic(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
}

func TestShakeMagnitudeAndNeutral(t *testing.T) {
	s := NewShake(testEffects().Shake)
	rng := rand.New(rand.NewSource(1))

	if x, y := s.Offset(rng); x != 0 || y != 0 {
		t.Fatalf("inactive shake offset = (%v, %v)", x, y)
	}

	s.Start()
	if got := s.Magnitude(); got != 30 {
		t.Errorf("magnitude at start = %v, want 30", got)
	}
	s.Update(250)
	if got := s.Magnitude(); math.Abs(got-22.5) > 1e-9 {
		t.Errorf("magnitude at 50%% = %v, want 22.5", got)
	}
	for i := 0; i < 10; i++ {
		x, y := s.Offset(rng)
		mag := s.Magnitude()
		if math.Abs(x) > mag || math.Abs(y) > mag {
			t.Fatalf("offset (%v, %v) exceeds magnitude %v", x, y, mag)
		}
	}

	s.Update(250)
	if s.Active() {
		t.Fatal("shake still active at full duration")
	}
	if x, y := s.Offset(rng); x != 0 || y != 0 {
		t.Errorf("expired shake offset = (%v, %v)", x, y)
	}
}

func TestFlashEnvelope(t *testing.T) {
	f := NewFlash(testEffects().Flash)
	peak := testEffects().Flash.PeakAlpha
	f.Start()

	tests := []struct {
		atMs float64
		want float64
	}{
		{30, peak * 0.5},  // 10%: half way up the ramp
		{90, peak},        // 30%: hold
		{150, peak},       // 50%: start of ramp out
		{225, peak * 0.5}, // 75%
	}
	elapsed := 0.0
	for _, tt := range tests {
		f.Update(tt.atMs - elapsed)
		elapsed = tt.atMs
		if got := f.Alpha(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("alpha at %vms = %v, want %v", tt.atMs, got, tt.want)
		}
	}
	f.Update(300)
	if got := f.Alpha(); got != 0 {
		t.Errorf("expired alpha = %v, want 0", got)
	}
}

func TestSlowMotionPhases(t *testing.T) {
	cfg := testEffects().SlowMotion
	s := NewSlowMotion(cfg)

	if s.Values() != NeutralSlowMotion {
		t.Fatal("inactive slow motion not neutral")
	}

	s.Start()
	if got := s.TimeScale(); got != 1 {
		t.Errorf("time scale at start = %v, want 1", got)
	}

	// 30%: hold phase, full intensity.
	s.Update(cfg.DurationMs * 0.3)
	v := s.Values()
	if math.Abs(v.TimeScale-cfg.MinTimeScale) > 1e-9 {
		t.Errorf("hold time scale = %v, want %v", v.TimeScale, cfg.MinTimeScale)
	}
	if math.Abs(v.Zoom-cfg.MaxZoom) > 1e-9 {
		t.Errorf("hold zoom = %v, want %v", v.Zoom, cfg.MaxZoom)
	}
	if math.Abs(v.Vignette-cfg.Vignette) > 1e-9 {
		t.Errorf("hold vignette = %v, want %v", v.Vignette, cfg.Vignette)
	}

	// 75%: half way back.
	s.Update(cfg.DurationMs * 0.45)
	if got := s.Intensity(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("intensity at 75%% = %v, want 0.5", got)
	}

	s.Update(cfg.DurationMs)
	if s.Active() {
		t.Fatal("slow motion still active")
	}
	if s.Values() != NeutralSlowMotion {
		t.Errorf("expired values = %+v, want neutral", s.Values())
	}
}

func TestSlowMotionTimeScaleBounds(t *testing.T) {
	cfg := testEffects().SlowMotion
	s := NewSlowMotion(cfg)
	s.Start()
	for s.Active() {
		ts := s.TimeScale()
		if ts < cfg.MinTimeScale-1e-12 || ts > 1 {
			t.Fatalf("time scale %v outside [%v, 1]", ts, cfg.MinTimeScale)
		}
		s.Update(7)
	}
}

func TestParticlesPoolBounded(t *testing.T) {
	cfg := testEffects().Particles
	cfg.Max = 10
	ps := NewParticles(cfg, frameMs)
	rng := rand.New(rand.NewSource(7))

	ps.Burst(100, 100, 25, ParticleShard, rng)
	if ps.Len() != 10 {
		t.Fatalf("Len = %d, want 10", ps.Len())
	}

	ps.Update(frameMs)
	for _, p := range ps.P {
		if p.X == 100 && p.Y == 100 {
			t.Fatal("particle did not move")
		}
	}

	ps.Update(cfg.LifeMs)
	if ps.Len() != 0 {
		t.Errorf("Len after lifetime = %d, want 0", ps.Len())
	}
}

func TestParticlesFallUnderGravity(t *testing.T) {
	cfg := testEffects().Particles
	ps := NewParticles(cfg, frameMs)
	ps.Add(Particle{X: 0, Y: 0, MaxLife: 10000})
	for i := 0; i < 30; i++ {
		ps.Update(frameMs)
	}
	if ps.P[0].Y <= 0 {
		t.Errorf("particle Y = %v, want > 0", ps.P[0].Y)
	}
	if f := ps.P[0].Fade(); f <= 0 || f >= 1 {
		t.Errorf("Fade = %v, want in (0, 1)", f)
	}
}

func TestCountUp(t *testing.T) {
	cfg := testEffects().CountUp
	c := NewCountUp(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 300},
		{5, 300},
		{20, 800},
		{100, 1500},
	}
	for _, tt := range tests {
		if got := c.Duration(tt.score); got != tt.want {
			t.Errorf("Duration(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if c.Value() != 0 {
		t.Fatal("idle counter should show 0")
	}

	c.Start(20)
	if c.Value() != 0 {
		t.Errorf("Value at start = %d, want 0", c.Value())
	}
	last := 0
	for i := 0; i < 40; i++ {
		c.Update(25)
		v := c.Value()
		if v < last || v > 20 {
			t.Fatalf("Value %d after %d steps not monotonic within target", v, i)
		}
		last = v
	}
	if !c.Done() || c.Value() != 20 {
		t.Errorf("after duration Done=%v Value=%d, want true 20", c.Done(), c.Value())
	}

	c.Reset()
	if c.Value() != 0 || c.Done() {
		t.Error("Reset did not return to idle 0")
	}
}

func TestEngineDeathAndReset(t *testing.T) {
	e := NewEngine(testEffects(), frameMs)
	rng := rand.New(rand.NewSource(3))

	e.TriggerDeath(400, 800, rng)
	if !e.Shake.Active() || !e.Flash.Active() || !e.SlowMotion.Active() {
		t.Fatal("death should start shake, flash and slow motion")
	}
	if e.Particles.Len() != testEffects().Particles.DeathBurst {
		t.Errorf("particles = %d, want %d", e.Particles.Len(), testEffects().Particles.DeathBurst)
	}

	for i := 0; i < 200; i++ {
		e.Update(frameMs)
	}
	if e.Shake.Active() || e.Flash.Active() || e.SlowMotion.Active() {
		t.Error("effects still active after their durations")
	}
	if e.SlowMotion.Values() != NeutralSlowMotion || e.Flash.Alpha() != 0 || e.Shake.Magnitude() != 0 {
		t.Error("expired effects not neutral")
	}

	e.TriggerDeath(0, 0, rng)
	e.Reset()
	if e.Shake.Active() || e.Particles.Len() != 0 {
		t.Error("Reset left effects running")
	}
}
