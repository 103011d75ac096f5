package cave

import (
	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
)

// Registry holds every non-player entity of a life: static poison zones and
// exit, plus the patrolling crabs and flyer. Lookups take a cell-unit
// rectangle so callers can test any footprint.
type Registry struct {
	poison    []Coord
	exit      Coord
	crabs     []*Crab
	flyer     *Flyer
	killables []Killable
}

// NewRegistry places the configured hazards and exit.
func NewRegistry(hz config.HazardsConfig, exit config.Cell) *Registry {
	r := &Registry{
		exit:  fromConfig(exit),
		flyer: NewFlyer(hz.Flyer),
	}
	for _, p := range hz.Poison {
		r.poison = append(r.poison, fromConfig(p))
	}
	for _, cc := range hz.Crabs {
		crab := NewCrab(cc)
		r.crabs = append(r.crabs, crab)
		r.killables = append(r.killables, crab)
	}
	return r
}

// Advance moves every patrolling hazard one cell.
func (r *Registry) Advance() {
	r.flyer.Advance()
	for _, c := range r.crabs {
		c.Advance()
	}
}

// PoisonAt returns the first poison zone overlapping rect.
func (r *Registry) PoisonAt(rect core.Rect) (Coord, bool) {
	for _, p := range r.poison {
		if rect.Intersects(p.Rect()) {
			return p, true
		}
	}
	return Coord{}, false
}

// ExitAt reports whether rect overlaps the exit.
func (r *Registry) ExitAt(rect core.Rect) bool {
	return rect.Intersects(r.exit.Rect())
}

// CrabAt returns the first living crab overlapping rect.
func (r *Registry) CrabAt(rect core.Rect) (*Crab, bool) {
	for _, c := range r.crabs {
		if c.Alive() && rect.Intersects(c.Cell().Rect()) {
			return c, true
		}
	}
	return nil, false
}

// FlyerAt reports whether rect overlaps the flyer.
func (r *Registry) FlyerAt(rect core.Rect) bool {
	return rect.Intersects(r.flyer.Cell().Rect())
}

// KillableAt returns the first living grapple target overlapping rect.
func (r *Registry) KillableAt(rect core.Rect) (Killable, bool) {
	for _, k := range r.killables {
		if k.Alive() && rect.Intersects(k.Cell().Rect()) {
			return k, true
		}
	}
	return nil, false
}

// Poison returns the poison zone cells.
func (r *Registry) Poison() []Coord {
	return r.poison
}

// Exit returns the exit cell.
func (r *Registry) Exit() Coord {
	return r.exit
}

// Crabs returns all crabs, dead or alive.
func (r *Registry) Crabs() []*Crab {
	return r.crabs
}

// Flyer returns the flyer.
func (r *Registry) Flyer() *Flyer {
	return r.flyer
}
