package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quiz-maze/internal/config"
	"github.com/vovakirdan/quiz-maze/internal/core"
)

func testDirector(t *testing.T, seed int64) (*Director, *Grid) {
	t.Helper()
	cfg := config.DefaultMazeConfig()
	g, err := ParseGrid(cfg.Grid.Layout, cfg.Grid.TileSize)
	require.NoError(t, err)
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewDirector(g, cfg.Enemies, diff, rand.New(rand.NewSource(seed))), g
}

func TestSpawnEnemies(t *testing.T) {
	d, g := testDirector(t, 7)

	enemies := d.SpawnEnemies(5, 1, 0)
	require.Len(t, enemies, 5)

	for i, e := range enemies {
		cell := g.CellAt(e.Pos)
		assert.False(t, g.IsWall(cell.Col, cell.Row), "enemy %d on a wall", i)
		assert.GreaterOrEqual(t, cell.Col, 5)
		assert.GreaterOrEqual(t, cell.Row, 5)
		assert.LessOrEqual(t, cell.Col, g.Cols()-2)
		assert.LessOrEqual(t, cell.Row, g.Rows()-2)
		assert.Equal(t, g.ToWorld(cell.Col, cell.Row), e.Pos, "enemies spawn on tile centres")
		assert.Equal(t, 16.0, e.Radius)
	}

	assert.Equal(t, Stalker, enemies[0].Behavior)
	for _, e := range enemies[1:] {
		assert.Equal(t, Chaser, e.Behavior)
	}
}

func TestSpawnEnemiesSpeed(t *testing.T) {
	d, _ := testDirector(t, 1)

	enemies := d.SpawnEnemies(2, 1.3, 2)
	assert.InDelta(t, 190*1.3+10, enemies[0].Speed, 1e-9)
	assert.InDelta(t, 130*1.3+10, enemies[1].Speed, 1e-9)
}

func TestSpawnIsSeeded(t *testing.T) {
	a, _ := testDirector(t, 42)
	b, _ := testDirector(t, 42)

	ea := a.SpawnEnemies(4, 1, 0)
	eb := b.SpawnEnemies(4, 1, 0)
	for i := range ea {
		assert.Equal(t, ea[i].Pos, eb[i].Pos)
	}
}

func TestDirectorPanicsWithoutSpawnCells(t *testing.T) {
	g, err := ParseGrid([]string{
		"#######",
		"#.....#",
		"#######",
	}, 64)
	require.NoError(t, err)
	cfg := config.DefaultMazeConfig().Enemies
	diff := config.NewDifficultyManager(config.DefaultMazeConfig().Difficulty)

	assert.Panics(t, func() {
		NewDirector(g, cfg, diff, rand.New(rand.NewSource(1)))
	})
}

func TestSteerChasesInsideEngagementRadius(t *testing.T) {
	d, _ := testDirector(t, 3)
	e := &Enemy{Body: Body{Pos: core.V(500, 500), Radius: 16}, Speed: 130}

	d.Steer(e, core.V(800, 500), 0)

	assert.InDelta(t, 130, e.Vel.X, 1e-9)
	assert.InDelta(t, 0, e.Vel.Y, 1e-9)
	assert.True(t, e.Chasing())
}

func TestSteerWandersOutsideEngagementRadius(t *testing.T) {
	d, _ := testDirector(t, 3)
	e := &Enemy{Body: Body{Pos: core.V(100, 100), Radius: 16}, Speed: 200}
	target := core.V(1300, 1000)

	d.Steer(e, target, 0)
	assert.False(t, e.Chasing())
	assert.InDelta(t, 100, e.Vel.Len(), 1e-9, "wandering runs at half chase speed")

	// The heading holds until the wander interval elapses.
	first := e.heading
	d.Steer(e, target, 500*time.Millisecond)
	assert.Equal(t, first, e.heading)

	for i := 1; i <= 20; i++ {
		d.Steer(e, target, time.Duration(i)*700*time.Millisecond)
		assert.InDelta(t, 100, e.Vel.Len(), 1e-9)
	}
}

func TestDeflect(t *testing.T) {
	e := &Enemy{heading: core.V(1, 0)}
	e.Deflect(true, false)
	assert.Equal(t, core.V(-1, 0), e.heading)
	e.Deflect(false, true)
	assert.Equal(t, core.V(-1, 0), e.heading)
}
