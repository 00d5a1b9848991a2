// Package quizmaze hosts the maze engine as an arcade game: it draws
// questions from a bank, keeps lives and score, and renders the maze.
package quizmaze

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quiz-maze/internal/config"
	"github.com/vovakirdan/quiz-maze/internal/core"
	"github.com/vovakirdan/quiz-maze/internal/games/quizmaze/engine"
	"github.com/vovakirdan/quiz-maze/internal/quiz"
	"github.com/vovakirdan/quiz-maze/internal/registry"
)

// Session states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every question answered (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // One pass through the bank
	ModeEndless                  // Cycle the bank until lives run out
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	bankOverride     *quiz.Bank
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetBank sets the question bank used by new sessions.
// With no bank set, sessions load one with quiz.LoadBank.
func SetBank(b *quiz.Bank) {
	bankOverride = b
}

// Game is a quiz maze session.
type Game struct {
	mode GameMode

	engine *engine.Engine
	events []engine.Event // Emitted during the current engine step
	bank   *quiz.Bank
	cfg    config.MazeConfig

	state      string
	score      int
	lives      int
	levelIndex int
	completed  int
	heading    core.Action // Sticky movement direction
	initErr    error

	runtime        core.RuntimeConfig
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign session.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless session.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "quizmaze_endless"
	}
	return "quizmaze"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Quiz Maze (Endless)"
	}
	return "Quiz Maze"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Warn("using default maze config", "path", configPath, "error", err)
		cfg = config.DefaultMazeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.bank = bankOverride
	if g.bank.Len() == 0 {
		bank, err := quiz.LoadBank("")
		if err != nil {
			log.Warn("using default question bank", "error", err)
			bank = quiz.DefaultBank()
		}
		g.bank = bank
	}

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.levelIndex = 0
	g.completed = 0
	g.heading = core.ActionNone
	g.events = g.events[:0]
	g.state = StatePlaying

	g.minScreenW = len(cfg.Grid.Layout[0])*tileCols + 2
	g.minScreenH = len(cfg.Grid.Layout) + hudRows + footerRows
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.engine, g.initErr = engine.New(cfg, runtime.Seed, engine.SinkFunc(g.onEvent))
	if g.initErr != nil {
		log.Error("cannot build maze", "error", g.initErr)
		return
	}
	g.applyQuestion()

	log.Debug("quizmaze session started",
		"mode", g.ID(), "questions", g.bank.Len(), "lives", g.lives, "seed", runtime.Seed)
}

// Resize records a new terminal size. The maze keeps its size, so only the
// fit check changes and the session continues.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// onEvent queues engine events for processing after the step.
func (g *Game) onEvent(e engine.Event) {
	g.events = append(g.events, e)
}

// applyQuestion hands the question for the current level to the engine.
func (g *Game) applyQuestion() {
	idx := g.levelIndex
	if g.mode == ModeEndless {
		idx %= g.bank.Len()
	}
	q, ok := g.bank.At(idx)
	if !ok {
		return
	}
	if err := g.engine.ApplyQuestion(q, g.levelIndex); err != nil {
		// Banks are validated on load, so this only trips on a hand-built bank.
		log.Error("skipping invalid question", "level", g.levelIndex, "error", err)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.initErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.updateHeading(in)

	move := core.NewInputFrame()
	if g.heading != core.ActionNone {
		move.Set(g.heading)
	}
	g.engine.Step(time.Second/time.Duration(g.runtime.TickRate), move)

	for _, e := range g.events {
		if g.state != StatePlaying {
			break
		}
		g.handleEvent(e)
	}
	g.events = g.events[:0]

	return core.StepResult{State: g.State()}
}

// updateHeading keeps the last pressed direction until another one or Stop.
// Terminals report key presses but not releases.
func (g *Game) updateHeading(in core.InputFrame) {
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if in.Has(a) {
			g.heading = a
		}
	}
	if in.Has(core.ActionStop) {
		g.heading = core.ActionNone
	}
}

// handleEvent applies one engine event to the session.
func (g *Game) handleEvent(e engine.Event) {
	switch e {
	case engine.EventLoseLife:
		g.lives--
		g.heading = core.ActionNone
		log.Debug("life lost", "lives", g.lives, "level", g.levelIndex, "phase", g.engine.Phase())
		if g.lives <= 0 {
			g.lives = 0
			g.state = StateGameOver
			log.Info("game over", "score", g.score, "level", g.levelIndex+1)
		}

	case engine.EventScoreUp:
		g.score += g.cfg.Gameplay.PointsPerAnswer
		log.Debug("correct answer", "score", g.score, "level", g.levelIndex)

	case engine.EventNextLevel:
		g.completed++
		g.heading = core.ActionNone
		if every := g.cfg.Gameplay.BonusLifeEvery; every > 0 && g.completed%every == 0 && g.lives < g.cfg.Gameplay.MaxLives {
			g.lives++
			log.Debug("bonus life", "lives", g.lives)
		}

		g.levelIndex++
		if g.mode == ModeCampaign && g.levelIndex >= g.bank.Len() {
			g.state = StateWin
			log.Info("all questions answered", "score", g.score)
			return
		}
		g.applyQuestion()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Victory:  g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Engine exposes the running engine, e.g. for inspection in tests.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Register the games with the registry
func init() {
	registry.Register("quizmaze", func() registry.Game {
		return New()
	})
	registry.Register("quizmaze_endless", func() registry.Game {
		return NewEndless()
	})
}
