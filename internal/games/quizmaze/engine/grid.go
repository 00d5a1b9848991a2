// Package engine implements the real-time quiz maze: wall collision, player
// and enemy movement, answer-room detection, enemy AI and the encounter state
// machine. It has no rendering, no I/O and no global state; a host drives it
// by calling Step once per tick and reacts to the events it emits.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/quiz-maze/internal/core"
)

// Cell is the content of one maze tile.
type Cell uint8

const (
	Path Cell = iota
	Wall
)

// CellPos addresses a tile by column and row.
type CellPos struct {
	Col, Row int
}

// Grid is an immutable rectangular maze.
type Grid struct {
	cells    []Cell // Row-major
	cols     int
	rows     int
	tileSize float64
}

// ParseGrid builds a grid from ASCII rows.
// '#' and '1' are walls, '.', '0' and ' ' are paths.
func ParseGrid(lines []string, tileSize float64) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("engine: tile size must be positive, got %v", tileSize)
	}
	if len(lines) == 0 {
		return nil, errors.New("engine: empty maze layout")
	}

	cols := len([]rune(lines[0]))
	if cols == 0 {
		return nil, errors.New("engine: maze layout has empty rows")
	}

	g := &Grid{
		cells:    make([]Cell, 0, cols*len(lines)),
		cols:     cols,
		rows:     len(lines),
		tileSize: tileSize,
	}
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("engine: maze row %d has %d columns, want %d", row, len(runes), cols)
		}
		for col, ch := range runes {
			switch ch {
			case '#', '1':
				g.cells = append(g.cells, Wall)
			case '.', '0', ' ':
				g.cells = append(g.cells, Path)
			default:
				return nil, fmt.Errorf("engine: unknown maze tile %q at (%d,%d)", ch, col, row)
			}
		}
	}
	return g, nil
}

// Cols returns the grid width in tiles.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in tiles.
func (g *Grid) Rows() int { return g.rows }

// TileSize returns the world size of one tile.
func (g *Grid) TileSize() float64 { return g.tileSize }

// InBounds reports whether (col,row) addresses a tile.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

func (g *Grid) index(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside %dx%d grid", col, row, g.cols, g.rows))
	}
	return row*g.cols + col
}

// IsWall reports whether a tile is solid. Panics outside the grid.
func (g *Grid) IsWall(col, row int) bool {
	return g.cells[g.index(col, row)] == Wall
}

// WorldBounds returns the world size covered by the grid.
func (g *Grid) WorldBounds() (w, h float64) {
	return float64(g.cols) * g.tileSize, float64(g.rows) * g.tileSize
}

// ToWorld returns the world position of a tile's centre. Panics outside the grid.
func (g *Grid) ToWorld(col, row int) core.Vec2 {
	g.index(col, row)
	return core.V((float64(col)+0.5)*g.tileSize, (float64(row)+0.5)*g.tileSize)
}

// CellAt maps a world position to the tile containing it.
// The result may lie outside the grid; check it with InBounds.
func (g *Grid) CellAt(p core.Vec2) CellPos {
	return CellPos{
		Col: int(math.Floor(p.X / g.tileSize)),
		Row: int(math.Floor(p.Y / g.tileSize)),
	}
}

// CellRect returns the world rectangle of a tile.
func (g *Grid) CellRect(col, row int) core.RectF {
	return core.NewRectF(float64(col)*g.tileSize, float64(row)*g.tileSize, g.tileSize, g.tileSize)
}

// PathCells lists the walkable tiles in the inclusive region, clipped to the grid.
func (g *Grid) PathCells(minCol, minRow, maxCol, maxRow int) []CellPos {
	minCol, minRow = core.Max(minCol, 0), core.Max(minRow, 0)
	maxCol, maxRow = core.Min(maxCol, g.cols-1), core.Min(maxRow, g.rows-1)

	var cells []CellPos
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if g.cells[row*g.cols+col] == Path {
				cells = append(cells, CellPos{Col: col, Row: row})
			}
		}
	}
	return cells
}

// TileRect converts a rectangle in tiles to world coordinates.
func (g *Grid) TileRect(col, row, w, h int) core.RectF {
	return core.NewRectF(float64(col)*g.tileSize, float64(row)*g.tileSize, float64(w)*g.tileSize, float64(h)*g.tileSize)
}
