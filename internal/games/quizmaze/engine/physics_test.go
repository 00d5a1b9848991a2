package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quiz-maze/internal/core"
)

func testWorld(t *testing.T, lines ...string) *World {
	t.Helper()
	g, err := ParseGrid(lines, 64)
	require.NoError(t, err)
	return NewWorld(g)
}

func TestOverlaps(t *testing.T) {
	a := Body{Pos: core.V(0, 0), Radius: 10}

	tests := []struct {
		name string
		b    Body
		want bool
	}{
		{"same spot", Body{Pos: core.V(0, 0), Radius: 1}, true},
		{"overlapping", Body{Pos: core.V(15, 0), Radius: 10}, true},
		{"touching", Body{Pos: core.V(20, 0), Radius: 10}, false},
		{"apart", Body{Pos: core.V(30, 30), Radius: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, a))
		})
	}
}

func TestWallsRegisteredOnce(t *testing.T) {
	w := testWorld(t,
		"#####",
		"#...#",
		"#####",
	)
	assert.Len(t, w.Walls(), 12)
}

func TestMoveDoesNotTunnel(t *testing.T) {
	w := testWorld(t,
		"#####",
		"#...#",
		"#####",
	)
	b := Body{Pos: core.V(96, 96), Vel: core.V(100000, 0), Radius: 14}

	hitX, hitY := w.Move(&b, 1, Stop, 0)

	assert.True(t, hitX)
	assert.False(t, hitY)
	assert.InDelta(t, 256-14, b.Pos.X, 1e-3, "body rests against the east wall")
	assert.Equal(t, 96.0, b.Pos.Y)
	assert.Zero(t, b.Vel.X, "player response is a hard stop")
	assert.False(t, w.Blocked(b))
}

func TestMoveExactCornerContact(t *testing.T) {
	w := testWorld(t,
		"#####",
		"#...#",
		"#.#.#",
		"#...#",
		"#####",
	)
	// The wall tile (2,2) spans y [128,192); the body passes 8 units below it.
	b := Body{Pos: core.V(100, 200), Vel: core.V(500, 0), Radius: 14}

	hitX, _ := w.Move(&b, 0.1, Stop, 0)

	require.True(t, hitX)
	want := 128 - math.Sqrt(14*14-8*8)
	assert.InDelta(t, want, b.Pos.X, 1e-3)
	assert.Equal(t, 200.0, b.Pos.Y)
}

func TestMoveSlidesAlongWall(t *testing.T) {
	w := testWorld(t,
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	// Pressing into the north wall while moving east keeps the east motion.
	b := Body{Pos: core.V(96, 80), Vel: core.V(100, -100), Radius: 14}

	hitX, hitY := w.Move(&b, 0.5, Stop, 0)

	assert.False(t, hitX)
	assert.True(t, hitY)
	assert.InDelta(t, 146, b.Pos.X, 1e-6)
	assert.InDelta(t, 78, b.Pos.Y, 1e-3)
}

func TestMoveReflectsWithBounce(t *testing.T) {
	w := testWorld(t,
		"#####",
		"#...#",
		"#####",
	)
	b := Body{Pos: core.V(96, 96), Vel: core.V(-1000, 0), Radius: 16}

	hitX, _ := w.Move(&b, 0.1, Reflect, 0.6)

	assert.True(t, hitX)
	assert.InDelta(t, 600, b.Vel.X, 1e-9)
	assert.Greater(t, b.Pos.X, 64.0+16)
	assert.False(t, w.Blocked(b))
}

func TestMoveClampsToWorld(t *testing.T) {
	w := testWorld(t,
		"...",
		"...",
	)
	b := Body{Pos: core.V(20, 20), Vel: core.V(-500, -500), Radius: 10}

	hitX, hitY := w.Move(&b, 1, Stop, 0)

	assert.True(t, hitX)
	assert.True(t, hitY)
	assert.Equal(t, core.V(10, 10), b.Pos)
	assert.True(t, b.Vel.IsZero())
}

func TestMoveZeroDt(t *testing.T) {
	w := testWorld(t,
		"###",
		"#.#",
		"###",
	)
	b := Body{Pos: core.V(96, 96), Vel: core.V(300, 0), Radius: 14}

	hitX, hitY := w.Move(&b, 0, Stop, 0)

	assert.False(t, hitX)
	assert.False(t, hitY)
	assert.Equal(t, core.V(96, 96), b.Pos)
}
