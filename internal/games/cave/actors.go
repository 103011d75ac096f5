package cave

import "github.com/vovakirdan/grapplecore/internal/config"

// Killable is a hazard the grapple can strike. Death is one-way for the rest
// of the life.
type Killable interface {
	Cell() Coord
	Alive() bool
	Kill()
}

// Flyer patrols a column, bouncing between a ceiling and a floor row one cell
// per synchronized advance.
type Flyer struct {
	pos     Coord
	dir     int // +1 moving down, -1 moving up
	ceiling int
	floor   int
}

// NewFlyer creates a flyer heading down from its start cell.
func NewFlyer(cfg config.FlyerConfig) *Flyer {
	return &Flyer{
		pos:     fromConfig(cfg.Start),
		dir:     1,
		ceiling: cfg.Ceiling,
		floor:   cfg.Floor,
	}
}

// Cell returns the flyer's current cell.
func (f *Flyer) Cell() Coord {
	return f.pos
}

// Dir returns +1 while descending and -1 while climbing.
func (f *Flyer) Dir() int {
	return f.dir
}

// Advance moves the flyer one cell and flips direction on reaching a bound.
func (f *Flyer) Advance() {
	if f.dir > 0 {
		f.pos.Y++
		if f.pos.Y >= f.floor {
			f.dir = -1
		}
		return
	}
	f.pos.Y--
	if f.pos.Y <= f.ceiling {
		f.dir = 1
	}
}

// Crab patrols a row between its start column and start+range. It is the
// only Killable hazard in the cave: grappling one yields an amber.
type Crab struct {
	pos    Coord
	dir    int // +1 moving right, -1 moving left
	startX int
	span   int
	alive  bool
}

// NewCrab creates a living crab heading right from its start cell.
func NewCrab(cfg config.CrabConfig) *Crab {
	return &Crab{
		pos:    fromConfig(cfg.Start),
		dir:    1,
		startX: cfg.Start.X,
		span:   cfg.Range,
		alive:  true,
	}
}

// Cell returns the crab's current cell.
func (c *Crab) Cell() Coord {
	return c.pos
}

// Alive reports whether the crab still patrols.
func (c *Crab) Alive() bool {
	return c.alive
}

// Kill removes the crab from play until the next life.
func (c *Crab) Kill() {
	c.alive = false
}

// Dir returns +1 while moving right and -1 while moving left.
func (c *Crab) Dir() int {
	return c.dir
}

// Bounds returns the leftmost and rightmost columns of the patrol.
func (c *Crab) Bounds() (int, int) {
	return c.startX, c.startX + c.span
}

// Advance moves a living crab one cell and flips direction on reaching a
// bound. Dead crabs stay where they fell.
func (c *Crab) Advance() {
	if !c.alive {
		return
	}
	if c.dir > 0 {
		c.pos.X++
		if c.pos.X >= c.startX+c.span {
			c.dir = -1
		}
		return
	}
	c.pos.X--
	if c.pos.X <= c.startX {
		c.dir = 1
	}
}

var _ Killable = (*Crab)(nil)
