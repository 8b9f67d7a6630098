package flap

import (
	"math/rand"

	"github.com/vovakirdan/razor-flap/internal/config"
	"github.com/vovakirdan/razor-flap/internal/core"
)

// Obstacle is a razor pair. GapY is the top of the passable gap; the gap
// height is fixed by configuration.
type Obstacle struct {
	ID     int
	X      float64
	GapY   float64
	Scored bool
}

// Right returns the trailing edge.
func (o Obstacle) Right(cfg config.ObstacleConfig) float64 {
	return o.X + cfg.Width
}

// TopRect is the visual extent of the top razor, from the ceiling to the gap.
func (o Obstacle) TopRect(cfg config.ObstacleConfig) core.RectF {
	return core.RectF{X: o.X, Y: 0, W: cfg.Width, H: o.GapY}
}

// BottomRect is the visual extent of the bottom razor, from the gap to the floor.
func (o Obstacle) BottomRect(cfg config.ObstacleConfig, fieldH float64) core.RectF {
	y := o.GapY + cfg.Gap
	return core.RectF{X: o.X, Y: y, W: cfg.Width, H: fieldH - y}
}

// ObstacleField spawns, moves, scores and recycles obstacles.
type ObstacleField struct {
	cfg        config.ObstacleConfig
	fieldW     float64
	frameMs    float64
	obstacles  []Obstacle
	rng        *rand.Rand
	spawnTimer float64
	nextID     int
	difficulty *config.DifficultyManager
}

// NewObstacleField creates an empty field with the spawn timer pre-loaded.
func NewObstacleField(cfg config.FlapConfig, seed int64) *ObstacleField {
	f := &ObstacleField{
		cfg:        cfg.Obstacles,
		fieldW:     cfg.Playfield.Width,
		frameMs:    cfg.Clock.FrameMs(),
		obstacles:  make([]Obstacle, 0, 8),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles, reseeds the RNG and pre-loads the spawn timer
// so the first obstacle appears on the first update.
func (f *ObstacleField) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.spawnTimer = f.cfg.SpawnIntervalMs
	f.nextID = 0
}

// Update advances the field by dtMs and returns how many obstacles were newly
// passed by playerX. Order: spawn, move, score, remove, so an obstacle always
// scores before it can leave the field.
func (f *ObstacleField) Update(dtMs, playerX float64, score int, runMs float64) int {
	scale := dtMs / f.frameMs
	speed := f.difficulty.Speed(f.cfg.Speed, score, runMs)
	interval := f.difficulty.SpawnInterval(f.cfg.SpawnIntervalMs, score, runMs)

	f.spawnTimer += dtMs
	if f.spawnTimer >= interval {
		f.spawn()
		f.spawnTimer = 0
	}

	passed := 0
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		o.X -= speed * scale

		if !o.Scored && o.Right(f.cfg) <= playerX {
			o.Scored = true
			passed++
		}

		if o.Right(f.cfg) < 0 {
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept

	return passed
}

// spawn adds an obstacle at the right edge with a uniform gap start.
func (f *ObstacleField) spawn() {
	gapY := f.cfg.MinY + f.rng.Float64()*(f.cfg.MaxY-f.cfg.MinY)
	f.obstacles = append(f.obstacles, Obstacle{
		ID:   f.nextID,
		X:    f.fieldW,
		GapY: gapY,
	})
	f.nextID++
}

// Obstacles returns the active obstacles. The slice is owned by the field.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of active obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// SpawnTimer returns the ms accumulated towards the next spawn.
func (f *ObstacleField) SpawnTimer() float64 {
	return f.spawnTimer
}
