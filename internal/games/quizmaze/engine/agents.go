package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/quiz-maze/internal/config"
	"github.com/vovakirdan/quiz-maze/internal/core"
)

// Behavior tags an enemy's speed profile.
type Behavior int

const (
	Chaser Behavior = iota
	Stalker
)

// String returns the behavior name.
func (b Behavior) String() string {
	if b == Stalker {
		return "stalker"
	}
	return "chaser"
}

// Wander heading weights. What remains after keep and toward is a random
// cardinal direction.
const (
	wanderKeepWeight   = 0.5
	wanderTowardWeight = 0.3
)

var cardinals = [4]core.Vec2{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Enemy is a hostile agent.
type Enemy struct {
	Body
	Behavior Behavior
	Speed    float64 // Chase speed with difficulty applied

	heading    core.Vec2 // Unit wander direction
	nextWander time.Duration
}

// Chasing reports whether the enemy pursued the player on the last step.
func (e *Enemy) Chasing() bool {
	return e.heading.IsZero()
}

// Director spawns enemies and steers them.
type Director struct {
	grid   *Grid
	cfg    config.EnemyConfig
	diff   *config.DifficultyManager
	rng    *rand.Rand
	minCol int
	minRow int
	maxCol int
	maxRow int
}

// NewDirector creates a director for the grid. It panics when the spawn
// region has no walkable tile, since spawning could never succeed.
func NewDirector(g *Grid, cfg config.EnemyConfig, diff *config.DifficultyManager, rng *rand.Rand) *Director {
	minCol, minRow, maxCol, maxRow := spawnRegion(g, cfg)
	d := &Director{
		grid:   g,
		cfg:    cfg,
		diff:   diff,
		rng:    rng,
		minCol: minCol,
		minRow: minRow,
		maxCol: maxCol,
		maxRow: maxRow,
	}
	if err := checkSpawnRegion(g, cfg); err != nil {
		panic(err.Error())
	}
	return d
}

// spawnRegion returns the inclusive tile bounds enemies may spawn in.
func spawnRegion(g *Grid, cfg config.EnemyConfig) (minCol, minRow, maxCol, maxRow int) {
	minCol = max(cfg.SpawnMin, 0)
	minRow = max(cfg.SpawnMin, 0)
	maxCol = min(g.Cols()-cfg.SpawnMargin, g.Cols()-1)
	maxRow = min(g.Rows()-cfg.SpawnMargin, g.Rows()-1)
	return minCol, minRow, maxCol, maxRow
}

// checkSpawnRegion fails when the spawn region holds no walkable tile.
func checkSpawnRegion(g *Grid, cfg config.EnemyConfig) error {
	minCol, minRow, maxCol, maxRow := spawnRegion(g, cfg)
	if len(g.PathCells(minCol, minRow, maxCol, maxRow)) == 0 {
		return fmt.Errorf("engine: no walkable tile in spawn region cols %d-%d rows %d-%d",
			minCol, maxCol, minRow, maxRow)
	}
	return nil
}

// BaseSpeed returns the undifficulted chase speed of a behavior.
func (d *Director) BaseSpeed(b Behavior) float64 {
	if b == Stalker {
		return d.cfg.StalkerSpeed
	}
	return d.cfg.ChaserSpeed
}

// SpawnEnemies places count enemies on random walkable tiles of the spawn
// region. The first one is the Stalker.
func (d *Director) SpawnEnemies(count int, multiplier float64, level int) []*Enemy {
	enemies := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		behavior := Chaser
		if i == 0 {
			behavior = Stalker
		}
		cell := d.randomPathCell()
		enemies = append(enemies, &Enemy{
			Body: Body{
				Pos:    d.grid.ToWorld(cell.Col, cell.Row),
				Radius: d.cfg.Radius,
			},
			Behavior: behavior,
			Speed:    d.diff.EnemySpeed(d.BaseSpeed(behavior), multiplier, level),
		})
	}
	return enemies
}

// randomPathCell samples tiles in the spawn region until one is walkable.
func (d *Director) randomPathCell() CellPos {
	for {
		col := d.minCol + d.rng.Intn(d.maxCol-d.minCol+1)
		row := d.minRow + d.rng.Intn(d.maxRow-d.minRow+1)
		if !d.grid.IsWall(col, row) {
			return CellPos{Col: col, Row: row}
		}
	}
}

// Steer sets the enemy's velocity for this step.
// Inside the engagement radius it heads straight for target at full speed;
// outside it wanders on a heading re-rolled every wander interval.
func (d *Director) Steer(e *Enemy, target core.Vec2, now time.Duration) {
	toTarget := target.Sub(e.Pos)
	if toTarget.Len() <= d.cfg.EngagementRadius {
		e.heading = core.Vec2{}
		e.nextWander = 0
		e.Vel = toTarget.Normalize().Scale(e.Speed)
		return
	}

	if e.heading.IsZero() || now >= e.nextWander {
		e.heading = d.rollHeading(e.heading, toTarget)
		e.nextWander = now + d.cfg.WanderInterval()
	}
	e.Vel = e.heading.Scale(e.Speed * d.cfg.WanderSpeedFactor)
}

func (d *Director) rollHeading(current, toTarget core.Vec2) core.Vec2 {
	r := d.rng.Float64()
	switch {
	case r < wanderKeepWeight && !current.IsZero():
		return current
	case r < wanderKeepWeight+wanderTowardWeight:
		if h := toTarget.Normalize(); !h.IsZero() {
			return h
		}
	}
	return cardinals[d.rng.Intn(len(cardinals))]
}

// Deflect turns the wander heading away from a wall the enemy hit.
func (e *Enemy) Deflect(hitX, hitY bool) {
	if hitX {
		e.heading.X = -e.heading.X
	}
	if hitY {
		e.heading.Y = -e.heading.Y
	}
}
