package flap

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/razor-flap/internal/config"
)

type recordingAudio struct {
	calls []string
}

func (a *recordingAudio) PlayFlapSound()      { a.calls = append(a.calls, "flap") }
func (a *recordingAudio) PlayScoreSound()     { a.calls = append(a.calls, "score") }
func (a *recordingAudio) PlayDeathSound()     { a.calls = append(a.calls, "death") }
func (a *recordingAudio) StartGameplayMusic() { a.calls = append(a.calls, "music") }
func (a *recordingAudio) StopMusic()          { a.calls = append(a.calls, "stop") }
func (a *recordingAudio) PlayGameOverMusic()  { a.calls = append(a.calls, "gameover") }
func (a *recordingAudio) PlayUIClickSound()   { a.calls = append(a.calls, "click") }

func (a *recordingAudio) count(name string) int {
	n := 0
	for _, c := range a.calls {
		if c == name {
			n++
		}
	}
	return n
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type failingBest struct{}

func (failingBest) LoadBest() (int, error) { return 0, errors.New("disk gone") }
func (failingBest) SaveBest(int) error     { return errors.New("disk gone") }

// step advances the session n times by dt milliseconds.
func step(s *Session, n int, dt float64) {
	for i := 0; i < n; i++ {
		s.Advance(dt)
	}
}

func TestEndToEndRun(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	cfg.Physics.Gravity = 0 // hover so the scenario is scripted by obstacle placement

	audio := &recordingAudio{}
	clk := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	var submitted []DeathCertificate
	s := NewSession(cfg, Hooks{
		Audio:   audio,
		Results: ResultFunc(func(c DeathCertificate) { submitted = append(submitted, c) }),
	}, WithSeed(7), WithClock(clk.Now), WithPlayerName("tester"))

	if s.State() != StateReady {
		t.Fatalf("initial state = %s, want ready", s.State())
	}

	// Start.
	s.Activate()
	if s.State() != StatePlaying || s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Fatalf("after start: state %s score %d obstacles %d", s.State(), s.Score(), len(s.Obstacles()))
	}
	if s.field.SpawnTimer() != cfg.Obstacles.SpawnIntervalMs {
		t.Fatalf("spawn timer = %v, want pre-loaded", s.field.SpawnTimer())
	}
	if audio.count("music") != 1 {
		t.Errorf("gameplay music started %d times", audio.count("music"))
	}

	// One spawn interval with no input: exactly one obstacle.
	const dt = 20.0
	s.Advance(dt)
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("after first tick: %d obstacles, want 1", n)
	}
	if g := s.Obstacles()[0].GapY; g < cfg.Obstacles.MinY || g > cfg.Obstacles.MaxY {
		t.Fatalf("GapY %v outside [%v, %v]", g, cfg.Obstacles.MinY, cfg.Obstacles.MaxY)
	}
	s.field.obstacles[0].GapY = 500 // hovering hitbox fits the gap
	step(s, int(cfg.Obstacles.SpawnIntervalMs/dt)-1, dt)
	if n := len(s.Obstacles()); n != 1 {
		t.Fatalf("after one spawn interval: %d obstacles, want 1", n)
	}

	// Fly past it: score becomes 1 exactly once.
	for i := 0; i < 50 && s.Score() == 0; i++ {
		s.Advance(dt)
		for j := range s.field.obstacles {
			s.field.obstacles[j].GapY = 500
		}
	}
	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}
	first := s.Obstacles()[0]
	if first.Right(cfg.Obstacles) > cfg.Player.X {
		t.Errorf("scored before the trailing edge passed: right %v", first.Right(cfg.Obstacles))
	}
	step(s, 5, dt)
	if s.Score() != 1 || audio.count("score") != 1 {
		t.Fatalf("score %d, score sounds %d, want 1 and 1", s.Score(), audio.count("score"))
	}

	// Force a collision with the top razor of the newest obstacle.
	clk.Advance(5 * time.Second)
	last := len(s.field.obstacles) - 1
	s.field.obstacles[last].X = s.player.X
	s.field.obstacles[last].GapY = cfg.Obstacles.MaxY
	s.Advance(dt)
	if s.State() != StateDying {
		t.Fatalf("state = %s, want dying", s.State())
	}
	cert := s.Certificate()
	if cert == nil || cert.Cause != CauseTopObstacle {
		t.Fatalf("certificate = %+v, want top-obstacle", cert)
	}
	if cert.Obstacle == nil || cert.Score != 1 || cert.DurationMs != 5000 || cert.PlayerName != "tester" {
		t.Errorf("certificate = %+v", cert)
	}
	if cert.ID == "" {
		t.Error("certificate without ID")
	}
	if audio.count("stop") != 1 || audio.count("death") != 1 {
		t.Errorf("death audio calls: %v", audio.calls)
	}
	if len(submitted) != 0 {
		t.Fatal("run submitted before game over")
	}

	// Input is ignored while dying.
	s.Activate()
	if s.State() != StateDying || audio.count("flap") != 0 {
		t.Fatalf("activate while dying changed state to %s", s.State())
	}

	// Let gravity take the player to the floor.
	s.cfg.Physics.Gravity = 1.2
	for i := 0; i < 3000 && s.State() == StateDying; i++ {
		s.Advance(dt)
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %s, want game_over", s.State())
	}
	p := s.Player()
	if p.Y+cfg.Player.Height < cfg.Playfield.Height || !p.DeathDone {
		t.Errorf("game over without floor contact and finished animation: %+v", p)
	}
	if len(submitted) != 1 || submitted[0].Score != 1 || submitted[0].Cause != CauseTopObstacle {
		t.Fatalf("submitted = %+v", submitted)
	}
	if !submitted[0].NewBest || s.Best() != 1 {
		t.Errorf("best = %d, new best %v", s.Best(), submitted[0].NewBest)
	}

	// Count-up settles on the final score; the music cue fires after its delay.
	step(s, 100, dt)
	rs := s.Snapshot()
	if rs.DisplayScore != 1 || rs.Score != 1 {
		t.Errorf("display score %d score %d, want 1", rs.DisplayScore, rs.Score)
	}
	if audio.count("gameover") != 1 {
		t.Errorf("game-over music played %d times", audio.count("gameover"))
	}

	// Restart resets score and obstacles.
	s.Activate()
	if s.State() != StatePlaying || s.Score() != 0 || len(s.Obstacles()) != 0 {
		t.Fatalf("after restart: state %s score %d obstacles %d", s.State(), s.Score(), len(s.Obstacles()))
	}
	if s.Certificate() != nil {
		t.Error("certificate kept across restart")
	}
}

func TestGameOverMusicCancelledByRestart(t *testing.T) {
	audio := &recordingAudio{}
	s := NewSession(config.DefaultFlapConfig(), Hooks{Audio: audio}, WithSeed(1))
	s.Activate()
	for i := 0; i < 5000 && s.State() != StateGameOver; i++ {
		s.Advance(16)
	}
	if s.State() != StateGameOver {
		t.Fatalf("state = %s, want game_over", s.State())
	}
	s.Advance(100)
	s.Activate()
	step(s, 60, 16)
	if n := audio.count("gameover"); n != 0 {
		t.Errorf("game-over music played %d times after restart", n)
	}
}

func TestCeilingIsNotFatal(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(1))
	s.Activate()
	s.player.Y = -cfg.Player.HitboxPadding - 30
	s.player.Velocity = cfg.Physics.JumpVelocity

	s.Advance(16)
	if s.State() != StatePlaying {
		t.Fatalf("state = %s, want playing", s.State())
	}
	p := s.Player()
	if p.Y != -cfg.Player.HitboxPadding || p.Velocity != 0 {
		t.Errorf("player not clamped to ceiling: y %v v %v", p.Y, p.Velocity)
	}
}

func TestFloorIsFatal(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(1))
	s.Activate()
	s.player.Y = cfg.Playfield.Height - cfg.Player.Height + cfg.Player.HitboxPadding + 5

	s.Advance(16)
	if s.State() != StateDying {
		t.Fatalf("state = %s, want dying", s.State())
	}
	cert := s.Certificate()
	if cert.Cause != CauseFloor || cert.Obstacle != nil {
		t.Errorf("certificate = %+v, want floor without obstacle", cert)
	}
}

func TestDyingMidAirWaitsForFloor(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(1))
	s.Activate()
	s.Advance(16)

	// Kill the player high up, then switch gravity off.
	s.field.obstacles[0].X = s.player.X
	s.field.obstacles[0].GapY = cfg.Obstacles.MaxY
	s.Advance(16)
	if s.State() != StateDying {
		t.Fatalf("state = %s, want dying", s.State())
	}
	s.cfg.Physics.Gravity = 0
	s.player.Velocity = 0

	step(s, 500, 20)
	if !s.Player().DeathDone {
		t.Fatal("death animation did not finish")
	}
	if s.State() != StateDying {
		t.Fatalf("state = %s before reaching the floor, want dying", s.State())
	}
}

func TestStateOrderAndInvariants(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(42))
	s.Activate()

	prev := s.State()
	sawDying := false
	for i := 0; i < 20000; i++ {
		if i%23 == 0 {
			s.Activate()
		}
		dt := 4 + float64(i%22)
		rs := s.Advance(dt)

		if st := rs.State; st != prev {
			switch {
			case st == StateDying && prev != StatePlaying:
				t.Fatalf("entered dying from %s", prev)
			case st == StateGameOver && prev != StateDying:
				t.Fatalf("entered game_over from %s", prev)
			case st == StatePlaying && prev != StateGameOver:
				t.Fatalf("entered playing from %s", prev)
			}
			if st == StateDying {
				sawDying = true
				if rs.Certificate == nil {
					t.Fatal("dying without a certificate")
				}
			}
			if st == StatePlaying && (rs.Score != 0 || len(rs.Obstacles) > 1) {
				t.Fatalf("restart left score %d and %d obstacles", rs.Score, len(rs.Obstacles))
			}
			prev = st
		}

		if st := rs.State; st == StatePlaying || st == StateDying {
			if rs.Player.Velocity > cfg.Physics.MaxFallSpeed {
				t.Fatalf("velocity %v > max", rs.Player.Velocity)
			}
			if rs.Player.Rotation < cfg.Physics.JumpRotation || rs.Player.Rotation > cfg.Physics.MaxRotation {
				t.Fatalf("rotation %v out of range", rs.Player.Rotation)
			}
		}
	}
	if !sawDying {
		t.Error("run never died")
	}
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() (int, []Obstacle) {
		s := NewSession(config.DefaultFlapConfig(), Hooks{}, WithSeed(2024))
		s.Activate()
		for i := 0; i < 600; i++ {
			if i%18 == 0 {
				s.Activate()
			}
			s.Advance(16)
		}
		return s.Score(), s.Obstacles()
	}
	scoreA, obsA := run()
	scoreB, obsB := run()
	if scoreA != scoreB || len(obsA) != len(obsB) {
		t.Fatalf("runs differ: %d/%d vs %d/%d", scoreA, len(obsA), scoreB, len(obsB))
	}
	for i := range obsA {
		if obsA[i] != obsB[i] {
			t.Errorf("obstacle %d differs", i)
		}
	}
}

func TestBestScoreStoreFailuresAreTolerated(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{Best: failingBest{}}, WithSeed(1))
	if s.Best() != 0 {
		t.Fatalf("best = %d, want 0 after load failure", s.Best())
	}
	s.Activate()
	s.score = 3
	s.player.Y = cfg.Playfield.Height
	for i := 0; i < 2000 && s.State() != StateGameOver; i++ {
		s.Advance(16)
	}
	if s.State() != StateGameOver || s.Best() != 3 {
		t.Errorf("state %s best %d, want game_over and 3", s.State(), s.Best())
	}
}

func TestClickButtons(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	audio := &recordingAudio{}
	s := NewSession(cfg, Hooks{Audio: audio}, WithSeed(1))

	lb := s.Buttons()[0]
	cx, cy := lb.Rect.Center()
	if got := s.Click(cx, cy); got != ButtonLeaderboard {
		t.Fatalf("Click on leaderboard = %s", got)
	}
	if s.State() != StateReady || audio.count("click") != 1 {
		t.Fatalf("button press changed state to %s or missed click sound", s.State())
	}

	if got := s.Click(10, 10); got != ButtonNone {
		t.Fatalf("Click off buttons = %s", got)
	}
	if s.State() != StatePlaying {
		t.Fatalf("click outside buttons did not start the game: %s", s.State())
	}

	// Buttons are not live while playing: the same point flaps.
	if got := s.Click(cx, cy); got != ButtonNone || audio.count("flap") != 1 {
		t.Errorf("click while playing = %s, flaps %d", got, audio.count("flap"))
	}
}

func TestAdvanceSanitizesDelta(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(1))
	s.Activate()
	before := s.Player()

	s.Advance(-50)
	s.Advance(math.NaN())
	if s.Player() != before || len(s.Obstacles()) != 0 {
		t.Fatal("non-positive delta advanced the simulation")
	}

	s.Advance(10_000)
	p := s.Player()
	maxFrames := cfg.Clock.MaxDeltaMs / cfg.Clock.FrameMs()
	if p.Velocity > cfg.Physics.Gravity*maxFrames+1e-9 {
		t.Errorf("huge delta not capped: velocity %v", p.Velocity)
	}
}

func TestReadyAnimation(t *testing.T) {
	cfg := config.DefaultFlapConfig()
	s := NewSession(cfg, Hooks{}, WithSeed(1))
	first := s.Snapshot()
	if first.Ready.Pulse != 0.5 {
		t.Errorf("initial pulse = %v, want 0.5", first.Ready.Pulse)
	}

	// deltas are capped, so reach one ready frame in max-sized steps
	var rs RenderState
	steps := int(math.Ceil(cfg.Animation.ReadyFrameMs / cfg.Clock.MaxDeltaMs))
	for range steps {
		rs = s.Advance(cfg.Clock.MaxDeltaMs)
	}
	if rs.Ready.FlapFrame != 1 || rs.Ready.DeathFrame != 1 {
		t.Errorf("ready frames = %d/%d, want 1/1", rs.Ready.FlapFrame, rs.Ready.DeathFrame)
	}
	if rs.Ready.Pulse < 0 || rs.Ready.Pulse > 1 || math.Abs(rs.Ready.Bob) > 10 {
		t.Errorf("ready animation out of range: %+v", rs.Ready)
	}
	if len(rs.Buttons) != 2 {
		t.Errorf("ready screen has %d buttons, want 2", len(rs.Buttons))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewSession(config.DefaultFlapConfig(), Hooks{}, WithSeed(1))
	s.Activate()
	rs := s.Advance(16)
	rs.Obstacles[0].X = -999
	if s.Obstacles()[0].X == -999 {
		t.Error("snapshot shares obstacle storage with the session")
	}
}

func TestAutopilot(t *testing.T) {
	s := NewSession(config.DefaultFlapConfig(), Hooks{}, WithSeed(3))
	pilot := Autopilot{}

	if !pilot.ShouldFlap(s) {
		t.Error("autopilot should start a run from READY")
	}

	s.Activate()
	s.Activate()
	if s.Player().Velocity >= 0 {
		t.Fatalf("velocity after flap = %v, want negative", s.Player().Velocity)
	}
	if pilot.ShouldFlap(s) {
		t.Error("autopilot flapped while rising")
	}
}
