package config

import (
	_ "embed"
)

//go:embed defaults/quizmaze.yaml
var defaultMazeYAML []byte

// DefaultLayout is the built-in 22x18 maze. The outer ring is solid wall.
var DefaultLayout = []string{
	"######################",
	"#.....#........#.....#",
	"#.###.#.######.#.###.#",
	"#.#...#.#..........#.#",
	"#.#.###.#.########.#.#",
	"#....................#",
	"###.###.###.####.#####",
	"#...#...#......#.....#",
	"#.###.###.####.#####.#",
	"#...#...#......#...#.#",
	"###.#######.######.#.#",
	"#....................#",
	"#.#####.########.#####",
	"#.#...#........#.....#",
	"#.#.#.#####.########.#",
	"#.#.#................#",
	"#...################.#",
	"######################",
}

// DefaultMazeConfig returns the built-in configuration.
// It matches defaults/quizmaze.yaml and is used when the embedded YAML
// cannot be decoded.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			TileSize: 64,
			Layout:   append([]string(nil), DefaultLayout...),
		},
		Player: PlayerConfig{
			Speed:    350,
			Radius:   14,
			SpawnCol: 1,
			SpawnRow: 1,
		},
		Enemies: EnemyConfig{
			Radius:            16,
			ChaserSpeed:       130,
			StalkerSpeed:      190,
			EngagementRadius:  450,
			Bounce:            0.6,
			WanderSpeedFactor: 0.5,
			WanderIntervalMs:  700,
			SpawnMin:          5,
			SpawnMargin:       2,
		},
		Rooms: []RoomConfig{
			{Col: 2, Row: 2, W: 4, H: 3},
			{Col: 12, Row: 2, W: 4, H: 3},
			{Col: 2, Row: 12, W: 4, H: 3},
			{Col: 12, Row: 12, W: 4, H: 3},
		},
		Timing: TimingConfig{
			FlickerCycles: 8,
			FlickerMs:     100,
			TransitionMs:  1200,
			CooldownMs:    1000,
		},
		Penalty: PenaltyConfig{
			PushBack:     -4,
			Retention:    0.02,
			ResetToSpawn: false,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			BaseEnemies:     2,
			EnemyStep:       3,
			SpeedStep:       0.15,
			LevelSpeedBonus: 5,
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			MaxLives:        5,
			BonusLifeEvery:  3,
			PointsPerAnswer: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for writing a
// starter config file.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
