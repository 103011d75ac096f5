// Package cave implements Grapplecore: a turn-synchronized grid platformer in
// which the player steps, jumps, grapples and falls through a cave while a
// flyer and a row of crabs move in lockstep with every cell the player
// crosses.
//
// The package is pure simulation. It never logs and never touches the
// terminal; the platform drives it one tick at a time through Game.Step and
// reads it back through Render and Snapshot.
package cave

import (
	"fmt"

	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
)

// Coord addresses one cell of the cave.
// X increases to the right, Y increases downward.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Rect returns the 1x1 collision rectangle of the cell.
func (c Coord) Rect() core.Rect {
	return core.CellRect(c.X, c.Y)
}

// StepToward returns the neighbour of c one cell closer to target along the
// dominant axis.
func (c Coord) StepToward(target Coord) Coord {
	dx := target.X - c.X
	dy := target.Y - c.Y
	if core.Abs(dx) > core.Abs(dy) {
		return c.Add(core.Sign(dx), 0)
	}
	return c.Add(0, core.Sign(dy))
}

// Chebyshev returns the number of whole cells between a and b when diagonal
// steps are free.
func Chebyshev(a, b Coord) int {
	return core.Max(core.Abs(a.X-b.X), core.Abs(a.Y-b.Y))
}

func fromConfig(c config.Cell) Coord {
	return Coord{X: c.X, Y: c.Y}
}

// Tile is the content of one world cell.
type Tile uint8

const (
	Air Tile = iota
	Solid
)

// World is the static occupancy map of the cave. It never changes during a
// life; a restart builds a new one.
type World struct {
	w, h  int
	tiles []Tile // row-major, index = y*w + x
}

// NewWorld builds the cave layout: air interior, a solid floor one row above
// the bottom edge, solid side walls above the floor, a solid top row, and the
// configured platforms.
func NewWorld(grid config.GridConfig, level config.LevelConfig) *World {
	w := &World{
		w:     grid.Width,
		h:     grid.Height,
		tiles: make([]Tile, grid.Width*grid.Height),
	}

	floor := w.h - 2
	for x := 0; x < w.w; x++ {
		w.set(C(x, floor), Solid)
		w.set(C(x, 0), Solid)
	}
	for y := 0; y < floor; y++ {
		w.set(C(0, y), Solid)
		w.set(C(w.w-1, y), Solid)
	}

	for _, p := range level.Platforms {
		for x := p.From; x <= p.To; x++ {
			w.set(C(x, p.Row), Solid)
		}
	}

	return w
}

func (w *World) set(c Coord, t Tile) {
	if w.InBounds(c) {
		w.tiles[c.Y*w.w+c.X] = t
	}
}

// Width returns the number of columns.
func (w *World) Width() int {
	return w.w
}

// Height returns the number of rows.
func (w *World) Height() int {
	return w.h
}

// InBounds returns true if the cell lies inside the cave.
func (w *World) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < w.w && c.Y >= 0 && c.Y < w.h
}

// Tile returns the tile at c. Out-of-bounds cells read as Air; use InBounds
// or IsPassable when that matters.
func (w *World) Tile(c Coord) Tile {
	if !w.InBounds(c) {
		return Air
	}
	return w.tiles[c.Y*w.w+c.X]
}

// IsSolid returns true if c is an in-bounds rock cell.
func (w *World) IsSolid(c Coord) bool {
	return w.Tile(c) == Solid
}

// IsPassable returns true if the player may occupy c.
func (w *World) IsPassable(c Coord) bool {
	return w.InBounds(c) && !w.IsSolid(c)
}

// FallDistance counts the contiguous passable cells straight below c.
func (w *World) FallDistance(c Coord) int {
	n := 0
	for below := c.Add(0, 1); w.IsPassable(below); below = below.Add(0, 1) {
		n++
	}
	return n
}
