package flap

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/effects"
	"github.com/vovakirdan/razor-flap/internal/settings"
)

// Session is one player's game: it owns the player, the obstacle field,
// scores, effects, timers and collaborators, and is the only writer of State.
// A Session is not safe for concurrent use; the host serialises calls.
type Session struct {
	cfg     config.FlapConfig
	hooks   Hooks
	now     func() time.Time
	frameMs float64

	rng   *rand.Rand // per-run obstacle seeds
	fxRng *rand.Rand // cosmetic randomness, kept apart from the simulation

	state   State
	player  Player
	field   *ObstacleField
	fx      *effects.Engine
	buttons []Button

	score   int
	best    int
	newBest bool
	cert    *DeathCertificate

	runStart     time.Time
	runMs        float64 // simulated play time, drives difficulty
	floorContact bool

	musicPending bool
	musicTimer   float64

	ready      ReadyScreen
	readyTimer float64
	readyClock float64

	shakeX, shakeY float64
	playerName     string
}

// Option configures a Session.
type Option func(*Session)

// WithSeed fixes the RNG seed. Two sessions with the same seed and the same
// inputs and deltas produce the same obstacles.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
		s.fxRng = rand.New(rand.NewSource(seed ^ 0x5eed))
	}
}

// WithClock injects the wall clock used for run duration and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithPlayerName sets the name recorded in death certificates.
func WithPlayerName(name string) Option {
	return func(s *Session) {
		s.playerName = settings.NormalizeName(name)
	}
}

// NewSession creates a session in the READY state and loads the best score.
func NewSession(cfg config.FlapConfig, hooks Hooks, opts ...Option) *Session {
	seed := time.Now().UnixNano()
	s := &Session{
		cfg:     cfg,
		hooks:   hooks.withDefaults(),
		now:     time.Now,
		frameMs: cfg.Clock.FrameMs(),
		rng:     rand.New(rand.NewSource(seed)),
		fxRng:   rand.New(rand.NewSource(seed ^ 0x5eed)),
		state:   StateReady,
		buttons: LayoutButtons(cfg.Playfield),
		ready:   ReadyScreen{Pulse: 0.5},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = newPlayer(cfg)
	s.field = NewObstacleField(cfg, s.rng.Int63())
	s.fx = effects.NewEngine(cfg.Effects, s.frameMs)

	best, err := s.hooks.Best.LoadBest()
	if err != nil {
		s.hooks.Logger.Warn("load best score failed", "err", err)
		best = 0
	}
	s.best = best

	return s
}

// Activate is the single player action: start from READY, flap while
// PLAYING, restart from GAME_OVER. It is ignored while DYING.
func (s *Session) Activate() {
	switch s.state {
	case StateReady, StateGameOver:
		s.start()
	case StatePlaying:
		flap(&s.player, s.cfg.Physics)
		s.hooks.Audio.PlayFlapSound()
	case StateDying:
		// input race: ignored
	}
}

// Click handles a pointer press at logical (x, y). On the ready and game-over
// screens a press on a button selects it; any other press is Activate.
func (s *Session) Click(x, y float64) ButtonID {
	if s.state == StateReady || s.state == StateGameOver {
		if b, ok := HitTest(s.buttons, x, y); ok {
			s.hooks.Audio.PlayUIClickSound()
			s.hooks.Logger.Debug("button pressed", "button", b.ID)
			return b.ID
		}
	}
	s.Activate()
	return ButtonNone
}

// start is the shared reset path for READY->PLAYING and GAME_OVER->PLAYING.
func (s *Session) start() {
	s.player = newPlayer(s.cfg)
	s.field.Reset(s.rng.Int63())
	s.fx.Reset()

	s.score = 0
	s.newBest = false
	s.cert = nil
	s.runStart = s.now()
	s.runMs = 0
	s.floorContact = false
	s.musicPending = false
	s.musicTimer = 0
	s.shakeX, s.shakeY = 0, 0

	s.state = StatePlaying
	s.hooks.Audio.StartGameplayMusic()
	s.hooks.Logger.Debug("run started")
}

// Advance runs the simulation pass then the presentation pass and returns a
// snapshot for rendering.
func (s *Session) Advance(deltaMs float64) RenderState {
	s.Simulate(deltaMs)
	s.Present(deltaMs)
	return s.Snapshot()
}

// Simulate advances physics, obstacles, collisions and state transitions.
func (s *Session) Simulate(deltaMs float64) {
	dt := s.sanitize(deltaMs)
	if dt == 0 {
		return
	}

	switch s.state {
	case StatePlaying:
		s.simulatePlaying(dt)
	case StateDying:
		s.simulateDying(dt)
	}
}

func (s *Session) simulatePlaying(dt float64) {
	integrate(&s.player, s.cfg.Physics, dt/s.frameMs)
	animateFlap(&s.player, s.cfg.Animation, dt)
	s.runMs += dt

	passed := s.field.Update(dt, s.player.X, s.score, s.runMs)
	for i := 0; i < passed; i++ {
		s.score++
		s.hooks.Audio.PlayScoreSound()
		cx, cy := s.player.Rect(s.cfg.Player).Center()
		s.fx.TriggerScore(cx, cy, s.fxRng)
	}

	col := Detect(s.player.Hitbox(s.cfg.Player), s.field.Obstacles(), s.cfg.Playfield, s.cfg.Obstacles)
	if col.Ceiling {
		s.player.Y = -s.cfg.Player.HitboxPadding
		s.player.Velocity = 0
	}
	if col.Fatal() {
		if col.Cause == CauseFloor {
			// rest the hitbox on the floor
			s.player.Y = s.cfg.Playfield.Height - s.cfg.Player.Height + s.cfg.Player.HitboxPadding
		}
		s.die(col)
	}
}

func (s *Session) simulateDying(dt float64) {
	scaled := dt * s.fx.SlowMotion.TimeScale()

	if !s.floorContact {
		integrate(&s.player, s.cfg.Physics, scaled/s.frameMs)
	}
	animateDeath(&s.player, s.cfg.Animation, scaled)

	floor := s.cfg.Playfield.Height - s.cfg.Player.Height
	if s.player.Y >= floor {
		s.player.Y = floor
		s.player.Velocity = 0
		s.floorContact = true
	}

	if s.floorContact && s.player.DeathDone {
		s.gameOver()
	}
}

// die enters DYING. It records the certificate and starts the death effects.
func (s *Session) die(col Collision) {
	s.state = StateDying
	s.player.DeathFrame = 0
	s.player.DeathTimer = 0
	s.player.DeathDone = false

	cert := newCertificate(col.Cause, col.Obstacle, s.score, s.best, s.runStart, s.now(), s.player, s.playerName)
	s.cert = &cert

	cx, cy := s.player.Rect(s.cfg.Player).Center()
	s.fx.TriggerDeath(cx, cy, s.fxRng)

	s.hooks.Audio.StopMusic()
	s.hooks.Audio.PlayDeathSound()
	s.hooks.Logger.Debug("player died", "cause", col.Cause, "score", s.score)
}

// gameOver enters GAME_OVER: persists a new best, starts the count-up,
// submits the run and schedules the game-over music.
func (s *Session) gameOver() {
	s.state = StateGameOver

	if s.score > s.best {
		s.best = s.score
		s.newBest = true
		if err := s.hooks.Best.SaveBest(s.best); err != nil {
			s.hooks.Logger.Warn("save best score failed", "err", err)
		}
	}

	if s.cert != nil {
		s.cert.Best = s.best
		s.cert.NewBest = s.newBest
		s.hooks.Results.SubmitRun(*s.cert)
	}

	s.fx.CountUp.Start(s.score)
	s.musicPending = true
	s.musicTimer = 0
	s.hooks.Logger.Info("game over", "score", s.score, "best", s.best, "new_best", s.newBest)
}

// Present advances cosmetic state: effects, the ready-screen animation and
// the delayed game-over music cue. It never touches simulation state.
func (s *Session) Present(deltaMs float64) {
	dt := s.sanitize(deltaMs)

	s.fx.Update(dt)
	s.shakeX, s.shakeY = s.fx.Shake.Offset(s.fxRng)

	if s.musicPending && s.state == StateGameOver {
		s.musicTimer += dt
		if s.musicTimer >= s.cfg.Animation.GameOverMusicDelayMs {
			s.musicPending = false
			s.hooks.Audio.PlayGameOverMusic()
		}
	}

	if s.state == StateReady {
		s.readyClock += dt
		s.readyTimer += dt
		if s.readyTimer >= s.cfg.Animation.ReadyFrameMs {
			s.readyTimer = 0
			s.ready.FlapFrame = (s.ready.FlapFrame + 1) % s.cfg.Animation.FlapFrames
			s.ready.DeathFrame = (s.ready.DeathFrame + 1) % s.cfg.Animation.DeathFrames
		}
		s.ready.Bob = math.Sin(s.readyClock/200) * 10
		s.ready.Wobble = math.Sin(s.readyClock/150) * 5
		s.ready.Pulse = 0.5 + 0.5*math.Sin(s.readyClock/500)
	}
}

// sanitize drops negative or NaN deltas and caps the rest at the clock's
// maximum delta, so a host that skips smoothing cannot break invariants.
func (s *Session) sanitize(deltaMs float64) float64 {
	if math.IsNaN(deltaMs) || deltaMs <= 0 {
		return 0
	}
	if deltaMs > s.cfg.Clock.MaxDeltaMs {
		return s.cfg.Clock.MaxDeltaMs
	}
	return deltaMs
}

// Snapshot returns the current RenderState.
func (s *Session) Snapshot() RenderState {
	rs := RenderState{
		State:        s.state,
		Score:        s.score,
		Best:         s.best,
		DisplayScore: s.score,
		NewBest:      s.newBest,
		Player:       s.player,
		Obstacles:    append([]Obstacle(nil), s.field.Obstacles()...),
		Particles:    append([]effects.Particle(nil), s.fx.Particles.P...),
		ShakeX:       s.shakeX,
		ShakeY:       s.shakeY,
		FlashAlpha:   s.fx.Flash.Alpha(),
		SlowMotion:   s.fx.SlowMotion.Values(),
		Ready:        s.ready,
		PlayerName:   s.playerName,
		Geometry: Geometry{
			Width:         s.cfg.Playfield.Width,
			Height:        s.cfg.Playfield.Height,
			PlayerW:       s.cfg.Player.Width,
			PlayerH:       s.cfg.Player.Height,
			HitboxPadding: s.cfg.Player.HitboxPadding,
			ObstacleW:     s.cfg.Obstacles.Width,
			BladeH:        s.cfg.Obstacles.BladeHeight,
			EdgePadding:   s.cfg.Obstacles.EdgePadding,
			Gap:           s.cfg.Obstacles.Gap,
		},
	}
	if s.state == StateGameOver {
		rs.DisplayScore = s.fx.CountUp.Value()
	}
	if s.state == StateReady || s.state == StateGameOver {
		rs.Buttons = append([]Button(nil), s.buttons...)
	}
	if s.cert != nil {
		cert := *s.cert
		rs.Certificate = &cert
	}
	return rs
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the authoritative score of the current run.
func (s *Session) Score() int { return s.score }

// Best returns the best score known to the session.
func (s *Session) Best() int { return s.best }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Obstacles returns a copy of the active obstacles.
func (s *Session) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.field.Obstacles()...)
}

// Certificate returns the last death certificate, or nil.
func (s *Session) Certificate() *DeathCertificate {
	if s.cert == nil {
		return nil
	}
	c := *s.cert
	return &c
}

// Buttons returns the logical UI buttons.
func (s *Session) Buttons() []Button {
	return append([]Button(nil), s.buttons...)
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.FlapConfig { return s.cfg }

// PlayerName returns the name recorded with runs.
func (s *Session) PlayerName() string { return s.playerName }

// SetPlayerName changes the name recorded with future runs.
func (s *Session) SetPlayerName(name string) {
	s.playerName = settings.NormalizeName(name)
}

// ToLogical converts physical surface coordinates into logical space.
func (s *Session) ToLogical(px, py, physW, physH float64) (float64, float64) {
	return ToLogical(px, py, physW, physH, s.cfg.Playfield)
}
