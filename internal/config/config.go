// Package config provides YAML-based configuration loading and difficulty
// management for the quiz maze.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MazeConfig contains all tunables of the quiz maze.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Rooms      []RoomConfig     `yaml:"rooms"`
	Timing     TimingConfig     `yaml:"timing"`
	Penalty    PenaltyConfig    `yaml:"penalty"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// GridConfig defines the static maze.
type GridConfig struct {
	TileSize float64  `yaml:"tile_size"`
	Layout   []string `yaml:"layout"` // '#' or '1' = wall, '.' or '0' = path
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Speed    float64 `yaml:"speed"`  // World units per second
	Radius   float64 `yaml:"radius"` // Collision radius
	SpawnCol int     `yaml:"spawn_col"`
	SpawnRow int     `yaml:"spawn_row"`
}

// EnemyConfig defines enemy bodies and AI tuning.
type EnemyConfig struct {
	Radius            float64 `yaml:"radius"`
	ChaserSpeed       float64 `yaml:"chaser_speed"`
	StalkerSpeed      float64 `yaml:"stalker_speed"`
	EngagementRadius  float64 `yaml:"engagement_radius"`   // Pursue the player inside this distance
	Bounce            float64 `yaml:"bounce"`              // Velocity kept (reflected) after hitting a wall
	WanderSpeedFactor float64 `yaml:"wander_speed_factor"` // Fraction of chase speed while wandering
	WanderIntervalMs  int     `yaml:"wander_interval_ms"`
	SpawnMin          int     `yaml:"spawn_min"`    // Lowest spawn column/row
	SpawnMargin       int     `yaml:"spawn_margin"` // Highest spawn column/row is size - margin
}

// RoomConfig places one answer room, in tiles.
type RoomConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
	W   int `yaml:"w"`
	H   int `yaml:"h"`
}

// TimingConfig defines the fixed timers of the encounter state machine.
type TimingConfig struct {
	FlickerCycles int `yaml:"flicker_cycles"`
	FlickerMs     int `yaml:"flicker_ms"`
	TransitionMs  int `yaml:"transition_ms"` // Correct answer -> NextLevel
	CooldownMs    int `yaml:"cooldown_ms"`   // Incorrect answer -> zones re-armed
}

// PenaltyConfig defines the wrong-answer push-back.
type PenaltyConfig struct {
	PushBack     float64 `yaml:"push_back"` // Velocity multiplier applied on a wrong answer
	Retention    float64 `yaml:"retention"` // Fraction of the push-back left after one second
	ResetToSpawn bool    `yaml:"reset_to_spawn"`
}

// DifficultyConfig defines the difficulty progression policy.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	BaseEnemies     int     `yaml:"base_enemies"`
	EnemyStep       int     `yaml:"enemy_step"`        // One more enemy every N levels
	SpeedStep       float64 `yaml:"speed_step"`        // Multiplier added per completed level
	LevelSpeedBonus float64 `yaml:"level_speed_bonus"` // Flat speed added per level index
}

// GameplayConfig defines host bookkeeping.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`
	MaxLives        int `yaml:"max_lives"`
	BonusLifeEvery  int `yaml:"bonus_life_every"` // Completed levels per bonus life, 0 disables
	PointsPerAnswer int `yaml:"points_per_answer"`
}

// Invulnerable returns the length of the post-hit invulnerability window.
func (t TimingConfig) Invulnerable() time.Duration {
	return time.Duration(t.FlickerCycles) * t.Flicker()
}

// Flicker returns the length of one visibility flicker cycle.
func (t TimingConfig) Flicker() time.Duration {
	return time.Duration(t.FlickerMs) * time.Millisecond
}

// Transition returns the delay between a correct answer and NextLevel.
func (t TimingConfig) Transition() time.Duration {
	return time.Duration(t.TransitionMs) * time.Millisecond
}

// Cooldown returns how long zones stay disarmed after a wrong answer.
func (t TimingConfig) Cooldown() time.Duration {
	return time.Duration(t.CooldownMs) * time.Millisecond
}

// WanderInterval returns how often a wandering enemy picks a new heading.
func (e EnemyConfig) WanderInterval() time.Duration {
	return time.Duration(e.WanderIntervalMs) * time.Millisecond
}

// Validate reports configuration values the engine cannot run with.
func (c MazeConfig) Validate() error {
	var errs []error
	if c.Grid.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.tile_size must be positive, got %v", c.Grid.TileSize))
	}
	if len(c.Grid.Layout) == 0 {
		errs = append(errs, errors.New("grid.layout is empty"))
	}
	if len(c.Rooms) != 4 {
		errs = append(errs, fmt.Errorf("rooms must list exactly 4 answer rooms, got %d", len(c.Rooms)))
	}
	for i, r := range c.Rooms {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("rooms[%d] has empty size %dx%d", i, r.W, r.H))
		}
	}
	if c.Player.Radius <= 0 || c.Enemies.Radius <= 0 {
		errs = append(errs, errors.New("player and enemy radius must be positive"))
	}
	if c.Player.Radius*2 >= c.Grid.TileSize {
		errs = append(errs, fmt.Errorf("player radius %v does not fit a %v corridor", c.Player.Radius, c.Grid.TileSize))
	}
	if c.Timing.FlickerCycles < 0 || c.Timing.FlickerMs < 0 || c.Timing.TransitionMs < 0 || c.Timing.CooldownMs < 0 {
		errs = append(errs, errors.New("timing values must not be negative"))
	}
	if c.Penalty.Retention < 0 || c.Penalty.Retention >= 1 {
		errs = append(errs, fmt.Errorf("penalty.retention must be in [0,1), got %v", c.Penalty.Retention))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
