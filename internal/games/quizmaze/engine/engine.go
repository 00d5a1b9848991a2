package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/quiz-maze/internal/config"
	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/quiz"
)

// minPush is the push-back speed below which the impulse is dropped.
const minPush = 1.0

// Player is a snapshot of the player body and its encounter flags.
type Player struct {
	Body
	Push         core.Vec2 // Decaying wrong-answer impulse, included in Vel
	Invulnerable bool
	Safe         bool
}

type pendingQuestion struct {
	question quiz.Question
	level    int
}

// Engine runs one maze. All state changes happen inside Step; only
// ApplyQuestion may be called from another goroutine.
type Engine struct {
	cfg      config.MazeConfig
	grid     *Grid
	world    *World
	diff     *config.DifficultyManager
	director *Director
	rng      *rand.Rand
	seed     int64
	sink     Sink
	rooms    []core.RectF
	spawn    core.Vec2

	now     time.Duration
	player  Body
	push    core.Vec2
	enemies []*Enemy
	zones   ZoneSet
	enc     encounter

	question    quiz.Question
	hasQuestion bool
	level       int
	completed   int
	multiplier  float64
	generation  int

	mu      sync.Mutex
	pending *pendingQuestion
}

// New builds an engine from a validated configuration. A nil sink discards
// events. The seed drives every random choice, so equal seeds and inputs
// replay identically.
func New(cfg config.MazeConfig, seed int64, sink Sink) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	grid, err := ParseGrid(cfg.Grid.Layout, cfg.Grid.TileSize)
	if err != nil {
		return nil, err
	}
	spawn := CellPos{Col: cfg.Player.SpawnCol, Row: cfg.Player.SpawnRow}
	if !grid.InBounds(spawn.Col, spawn.Row) || grid.IsWall(spawn.Col, spawn.Row) {
		return nil, fmt.Errorf("engine: player spawn (%d,%d) is not a walkable tile", spawn.Col, spawn.Row)
	}

	if err := checkSpawnRegion(grid, cfg.Enemies); err != nil {
		return nil, err
	}

	rooms := make([]core.RectF, len(cfg.Rooms))
	for i, r := range cfg.Rooms {
		if !grid.InBounds(r.Col, r.Row) || !grid.InBounds(r.Col+r.W-1, r.Row+r.H-1) {
			return nil, fmt.Errorf("engine: room %d at (%d,%d) size %dx%d lies outside the %dx%d grid",
				i, r.Col, r.Row, r.W, r.H, grid.Cols(), grid.Rows())
		}
		rooms[i] = grid.TileRect(r.Col, r.Row, r.W, r.H)
	}

	if sink == nil {
		sink = discardSink{}
	}

	e := &Engine{
		cfg:   cfg,
		grid:  grid,
		world: NewWorld(grid),
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		rng:   rand.New(rand.NewSource(seed)),
		seed:  seed,
		sink:  sink,
		rooms: rooms,
		spawn: grid.ToWorld(spawn.Col, spawn.Row),
	}
	e.director = NewDirector(grid, cfg.Enemies, e.diff, e.rng)
	e.Reset()
	return e, nil
}

// Reset restores the freshly constructed scene: no question, level 0 enemies,
// player at spawn and the clock at zero. A pending question is discarded.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.pending = nil
	e.mu.Unlock()

	e.rng.Seed(e.seed)
	e.now = 0
	e.enc = newEncounter(e.cfg.Timing)
	e.zones.Clear()
	e.question = quiz.Question{}
	e.hasQuestion = false
	e.level = 0
	e.completed = 0
	e.multiplier = e.diff.SpeedMultiplier(0)
	e.generation = 0
	e.resetPlayer()
	e.enemies = e.director.SpawnEnemies(e.diff.EnemyCount(0), e.multiplier, 0)
}

// ApplyQuestion validates q and queues it for the next Step, where it
// replaces the rooms and enemies. A later call before that Step wins.
// Nothing is queued when q is invalid.
func (e *Engine) ApplyQuestion(q quiz.Question, level int) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("engine: apply question: %w", err)
	}
	if level < 0 {
		return fmt.Errorf("engine: apply question: negative level %d", level)
	}
	e.mu.Lock()
	e.pending = &pendingQuestion{question: q, level: level}
	e.mu.Unlock()
	return nil
}

// Step advances the simulation by dt using the input sampled for this tick.
func (e *Engine) Step(dt time.Duration, input core.InputFrame) {
	e.applyPending()

	if dt < 0 {
		dt = 0
	}
	e.now += dt
	secs := dt.Seconds()

	nextLevel, rearm := e.enc.advance(e.now)
	if nextLevel {
		e.completed++
		e.multiplier = e.diff.StepMultiplier(e.multiplier)
		e.resetPlayer()
		e.sink.OnGameEvent(EventNextLevel)
	}
	if rearm {
		e.zones.RearmAll()
	}

	vel := e.movePlayer(input, secs)

	for _, en := range e.enemies {
		e.director.Steer(en, e.player.Pos, e.now)
		hitX, hitY := e.world.Move(&en.Body, secs, Reflect, e.cfg.Enemies.Bounce)
		en.Deflect(hitX, hitY)
	}

	if e.hasQuestion && !e.enc.safe {
		if hit, ok := e.zones.Evaluate(e.player.Pos); ok {
			e.resolveZone(hit, vel)
		}
	}

	for _, en := range e.enemies {
		if Overlaps(e.player, en.Body) {
			if e.enc.contact(e.now) {
				e.sink.OnGameEvent(EventLoseLife)
			}
			break
		}
	}
}

// applyPending swaps in a queued question. It waits while a correct-answer
// transition is still running so NextLevel always precedes the new rooms.
func (e *Engine) applyPending() {
	if e.enc.transitioning {
		return
	}
	e.mu.Lock()
	p := e.pending
	e.pending = nil
	e.mu.Unlock()
	if p == nil {
		return
	}

	e.question = p.question
	e.hasQuestion = true
	e.level = p.level
	e.generation++
	e.multiplier = math.Max(e.multiplier, e.diff.SpeedMultiplier(p.level))

	e.zones.Arm(p.question, e.rooms)
	e.enemies = e.director.SpawnEnemies(e.diff.EnemyCount(p.level), e.multiplier, p.level)
	e.resetPlayer()
	e.enc.armed()
}

// movePlayer sets the player's velocity from input plus the decaying
// push-back and moves it. It returns the velocity used this step.
func (e *Engine) movePlayer(input core.InputFrame, secs float64) core.Vec2 {
	dx, dy := input.Direction()
	vel := core.V(float64(dx), float64(dy)).Normalize().Scale(e.cfg.Player.Speed).Add(e.push)
	e.player.Vel = vel

	hitX, hitY := e.world.Move(&e.player, secs, Stop, 0)
	if hitX {
		e.push.X = 0
	}
	if hitY {
		e.push.Y = 0
	}

	if !e.push.IsZero() {
		e.push = e.push.Scale(math.Pow(e.cfg.Penalty.Retention, secs))
		if e.push.Len() < minPush {
			e.push = core.Vec2{}
		}
	}
	return vel
}

// resolveZone applies the outcome of entering a room.
func (e *Engine) resolveZone(hit ZoneHit, vel core.Vec2) {
	e.zones.DisarmAll()
	switch hit.Outcome {
	case OutcomeCorrect:
		e.enc.correct(e.now)
		e.sink.OnGameEvent(EventScoreUp)
	case OutcomeIncorrect:
		e.enc.incorrect(e.now)
		if e.cfg.Penalty.ResetToSpawn {
			e.resetPlayer()
		} else {
			e.push = vel.Scale(e.cfg.Penalty.PushBack)
		}
		e.sink.OnGameEvent(EventLoseLife)
	}
}

func (e *Engine) resetPlayer() {
	e.player = Body{Pos: e.spawn, Radius: e.cfg.Player.Radius}
	e.push = core.Vec2{}
}

// Player returns a snapshot of the player.
func (e *Engine) Player() Player {
	return Player{
		Body:         e.player,
		Push:         e.push,
		Invulnerable: e.enc.invulnerable,
		Safe:         e.enc.safe,
	}
}

// PlayerVisible reports whether the player should be drawn this frame.
func (e *Engine) PlayerVisible() bool {
	return e.enc.visible(e.now)
}

// Enemies returns a snapshot of the current generation's enemies.
func (e *Engine) Enemies() []Enemy {
	out := make([]Enemy, len(e.enemies))
	for i, en := range e.enemies {
		out[i] = *en
	}
	return out
}

// Zones returns a snapshot of the answer rooms. Empty before the first question.
func (e *Engine) Zones() []RoomZone {
	return e.zones.Zones()
}

// Question returns the question on display, if any.
func (e *Engine) Question() (quiz.Question, bool) {
	return e.question, e.hasQuestion
}

// Phase returns the dominant encounter state.
func (e *Engine) Phase() Phase {
	return e.enc.phase()
}

// Level returns the level index of the applied question.
func (e *Engine) Level() int { return e.level }

// Completed returns how many levels were finished since the last Reset.
func (e *Engine) Completed() int { return e.completed }

// SpeedMultiplier returns the current difficulty speed multiplier.
func (e *Engine) SpeedMultiplier() float64 { return e.multiplier }

// Generation returns how many questions have been applied since the last Reset.
func (e *Engine) Generation() int { return e.generation }

// Now returns the simulated clock.
func (e *Engine) Now() time.Duration { return e.now }

// Grid returns the maze.
func (e *Engine) Grid() *Grid { return e.grid }

// World returns the static collision world.
func (e *Engine) World() *World { return e.world }

// Spawn returns the player's spawn position.
func (e *Engine) Spawn() core.Vec2 { return e.spawn }
