package engine

import (
	"math"

	"github.com/vovakirdan/quiz-maze/internal/core"
)

// contactEpsilon keeps a resolved body strictly clear of the wall it touched.
const contactEpsilon = 1e-6

// Body is a circular moving entity in world coordinates.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2 // World units per second
	Radius float64
}

// Overlaps reports whether two bodies strictly overlap.
func Overlaps(a, b Body) bool {
	r := a.Radius + b.Radius
	d := a.Pos.Sub(b.Pos)
	return d.X*d.X+d.Y*d.Y < r*r
}

// WallResponse selects what happens to velocity on the blocked axis.
type WallResponse int

const (
	// Stop zeroes the blocked component.
	Stop WallResponse = iota
	// Reflect reverses the blocked component and scales it by the bounce factor.
	Reflect
)

// World holds the static wall bodies registered from a grid.
type World struct {
	grid   *Grid
	walls  []core.RectF
	lookup []int // Per tile: index into walls, or -1
	width  float64
	height float64
}

// NewWorld registers every wall tile of the grid once.
func NewWorld(g *Grid) *World {
	w := &World{
		grid:   g,
		lookup: make([]int, g.Cols()*g.Rows()),
	}
	w.width, w.height = g.WorldBounds()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			idx := row*g.Cols() + col
			if g.IsWall(col, row) {
				w.lookup[idx] = len(w.walls)
				w.walls = append(w.walls, g.CellRect(col, row))
			} else {
				w.lookup[idx] = -1
			}
		}
	}
	return w
}

// Walls returns the registered wall rectangles.
func (w *World) Walls() []core.RectF {
	return w.walls
}

// Blocked reports whether a body at its current position overlaps any wall.
func (w *World) Blocked(b Body) bool {
	blocked := false
	w.eachNearbyWall(b, func(r core.RectF) {
		if r.IntersectsCircle(b.Pos, b.Radius) {
			blocked = true
		}
	})
	return blocked
}

// Move integrates b's velocity over dt seconds against the walls.
//
// Movement is split into sub-steps no longer than half the body radius so a
// fast body cannot pass through a tile. Each sub-step moves along X, resolves
// contact, then does the same along Y. The body ends clamped to the world.
// The returned flags report which axes were blocked at least once.
func (w *World) Move(b *Body, dt float64, resp WallResponse, bounce float64) (hitX, hitY bool) {
	if dt > 0 && !b.Vel.IsZero() {
		dist := math.Max(math.Abs(b.Vel.X), math.Abs(b.Vel.Y)) * dt
		steps := 1
		if maxStep := b.Radius / 2; maxStep > 0 {
			steps = max(1, int(math.Ceil(dist/maxStep)))
		}
		h := dt / float64(steps)

		for i := 0; i < steps && !b.Vel.IsZero(); i++ {
			if b.Vel.X != 0 {
				b.Pos.X += b.Vel.X * h
				if w.resolveX(b) {
					hitX = true
					b.Vel.X = respond(b.Vel.X, resp, bounce)
				}
			}
			if b.Vel.Y != 0 {
				b.Pos.Y += b.Vel.Y * h
				if w.resolveY(b) {
					hitY = true
					b.Vel.Y = respond(b.Vel.Y, resp, bounce)
				}
			}
		}
	}

	cx, cy := w.clampToBounds(b)
	if cx {
		hitX = true
		b.Vel.X = respond(b.Vel.X, resp, bounce)
	}
	if cy {
		hitY = true
		b.Vel.Y = respond(b.Vel.Y, resp, bounce)
	}
	return hitX, hitY
}

func respond(v float64, resp WallResponse, bounce float64) float64 {
	if resp == Reflect {
		return -v * bounce
	}
	return 0
}

// resolveX pushes the body back along X to exact contact with any wall it overlaps.
func (w *World) resolveX(b *Body) bool {
	hit := false
	w.eachNearbyWall(*b, func(r core.RectF) {
		if !r.IntersectsCircle(b.Pos, b.Radius) {
			return
		}
		off := contactOffset(b.Pos.Y, r.Y, r.Bottom(), b.Radius)
		if b.Vel.X > 0 {
			b.Pos.X = r.X - off - contactEpsilon
		} else {
			b.Pos.X = r.Right() + off + contactEpsilon
		}
		hit = true
	})
	return hit
}

// resolveY pushes the body back along Y to exact contact with any wall it overlaps.
func (w *World) resolveY(b *Body) bool {
	hit := false
	w.eachNearbyWall(*b, func(r core.RectF) {
		if !r.IntersectsCircle(b.Pos, b.Radius) {
			return
		}
		off := contactOffset(b.Pos.X, r.X, r.Right(), b.Radius)
		if b.Vel.Y > 0 {
			b.Pos.Y = r.Y - off - contactEpsilon
		} else {
			b.Pos.Y = r.Bottom() + off + contactEpsilon
		}
		hit = true
	})
	return hit
}

// contactOffset returns how far from a wall edge the circle centre sits at
// contact, given the centre's coordinate c on the other axis and the wall's
// extent [lo, hi] on that axis.
func contactOffset(c, lo, hi, r float64) float64 {
	d := 0.0
	if c < lo {
		d = lo - c
	} else if c > hi {
		d = c - hi
	}
	if d >= r {
		return 0
	}
	return math.Sqrt(r*r - d*d)
}

// eachNearbyWall calls fn for every wall tile under the body's bounding box.
func (w *World) eachNearbyWall(b Body, fn func(core.RectF)) {
	tile := w.grid.TileSize()
	minCol := int(math.Floor((b.Pos.X - b.Radius) / tile))
	maxCol := int(math.Floor((b.Pos.X + b.Radius) / tile))
	minRow := int(math.Floor((b.Pos.Y - b.Radius) / tile))
	maxRow := int(math.Floor((b.Pos.Y + b.Radius) / tile))

	cols, rows := w.grid.Cols(), w.grid.Rows()
	for row := max(minRow, 0); row <= min(maxRow, rows-1); row++ {
		for col := max(minCol, 0); col <= min(maxCol, cols-1); col++ {
			if idx := w.lookup[row*cols+col]; idx >= 0 {
				fn(w.walls[idx])
			}
		}
	}
}

// clampToBounds keeps the whole circle inside the world.
func (w *World) clampToBounds(b *Body) (clampedX, clampedY bool) {
	x := core.ClampF(b.Pos.X, b.Radius, w.width-b.Radius)
	y := core.ClampF(b.Pos.Y, b.Radius, w.height-b.Radius)
	clampedX, clampedY = x != b.Pos.X, y != b.Pos.Y
	b.Pos.X, b.Pos.Y = x, y
	return clampedX, clampedY
}
