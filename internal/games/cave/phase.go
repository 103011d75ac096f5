package cave

import "github.com/vovakirdan/grapplecore/internal/config"

// PhaseKind names the player's motion mode.
type PhaseKind int

const (
	PhaseIdle PhaseKind = iota
	PhaseGrappling
	PhaseFalling
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseGrappling:
		return "grappling"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Phase is the player's current motion mode: exactly one of Idle, Grappling
// or Falling. The set is closed; advance is the only transition function.
type Phase interface {
	Kind() PhaseKind
}

// Idle accepts the next intent.
type Idle struct{}

// Grappling pulls the player toward Target. TicksLeft counts down to zero;
// the player crosses a cell whenever it is a multiple of the per-cell cost.
type Grappling struct {
	Target    Coord
	TicksLeft int
}

// Falling drops the player CellsLeft more cells, one each time DelayLeft
// runs out.
type Falling struct {
	CellsLeft int
	DelayLeft int
}

func (Idle) Kind() PhaseKind      { return PhaseIdle }
func (Grappling) Kind() PhaseKind { return PhaseGrappling }
func (Falling) Kind() PhaseKind   { return PhaseFalling }

// newGrapple starts a pull toward target costing ticksPerCell per cell.
func newGrapple(from, target Coord, ticksPerCell int) Grappling {
	return Grappling{
		Target:    target,
		TicksLeft: Chebyshev(from, target) * ticksPerCell,
	}
}

// newFall returns Falling when there is room below pos, Idle otherwise.
func newFall(w *World, pos Coord, ticksPerCell int) Phase {
	n := w.FallDistance(pos)
	if n == 0 {
		return Idle{}
	}
	return Falling{CellsLeft: n, DelayLeft: ticksPerCell}
}

// advance runs one tick of phase p for a player standing at pos. It returns
// the next phase, the new position and whether a whole cell was crossed.
// A phase that completes returns Idle; the caller decides whether a fall
// follows.
func advance(p Phase, pos Coord, t config.TimingConfig) (Phase, Coord, bool) {
	switch ph := p.(type) {
	case Grappling:
		if ph.TicksLeft <= 0 {
			return Idle{}, pos, false
		}
		moved := false
		if ph.TicksLeft%t.GrappleTicksPerCell == 0 && pos != ph.Target {
			pos = pos.StepToward(ph.Target)
			moved = true
		}
		ph.TicksLeft--
		if ph.TicksLeft == 0 {
			return Idle{}, pos, moved
		}
		return ph, pos, moved

	case Falling:
		moved := false
		ph.DelayLeft--
		if ph.DelayLeft <= 0 {
			pos = pos.Add(0, 1)
			ph.CellsLeft--
			ph.DelayLeft = t.FallTicksPerCell
			moved = true
		}
		if ph.CellsLeft <= 0 {
			return Idle{}, pos, moved
		}
		return ph, pos, moved

	default:
		return Idle{}, pos, false
	}
}
