package cave

// Intent is one discrete player request, consumed at most once per turn.
type Intent int

const (
	IntentNone Intent = iota
	IntentStepLeft
	IntentStepRight
	IntentJump
	IntentGrappleLeft
	IntentGrappleRight
	IntentGrappleUp
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentStepLeft:
		return "step-left"
	case IntentStepRight:
		return "step-right"
	case IntentJump:
		return "jump"
	case IntentGrappleLeft:
		return "grapple-left"
	case IntentGrappleRight:
		return "grapple-right"
	case IntentGrappleUp:
		return "grapple-up"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// delta returns the cell offset of a movement intent.
func (i Intent) delta() (int, int) {
	switch i {
	case IntentStepLeft, IntentGrappleLeft:
		return -1, 0
	case IntentStepRight, IntentGrappleRight:
		return 1, 0
	case IntentJump, IntentGrappleUp:
		return 0, -1
	default:
		return 0, 0
	}
}

func (i Intent) isGrapple() bool {
	return i == IntentGrappleLeft || i == IntentGrappleRight || i == IntentGrappleUp
}

// Resolution describes what Submit did with an intent.
type Resolution int

const (
	Rejected   Resolution = iota // illegal; nothing changed, no turn spent
	Stepped                      // instant one-cell move, possibly into a fall
	Grappled                     // grapple phase started
	StruckCrab                   // grapple killed a crab; turn spent, no movement
)

// Terminal is the life-ending result of a synchronized advance.
type Terminal int

const (
	TerminalNone Terminal = iota
	TerminalDied
	TerminalEscaped
)

// Outcome reports what a tick did.
type Outcome struct {
	Moved      bool // the player crossed a whole cell this tick
	AmberSpent bool
	Terminal   Terminal
	Cause      string // "poison", "crab" or "flyer" when Terminal is TerminalDied
}

// Submit resolves one intent against the idle controller. Intents that cannot
// be carried out leave the session untouched and return Rejected.
func (s *Session) Submit(in Intent) Resolution {
	if !s.AcceptsInput() {
		return Rejected
	}
	dx, dy := in.delta()
	if dx == 0 && dy == 0 {
		return Rejected
	}

	if in.isGrapple() {
		return s.grapple(dx, dy)
	}

	target := s.Player.Pos.Add(dx, dy)
	if !s.World.IsPassable(target) {
		return Rejected
	}
	s.Player.Pos = target
	s.Player.JustMoved = true
	s.Player.Phase = newFall(s.World, target, s.timing.FallTicksPerCell)
	s.Turns++
	s.WaitingForInput = false
	return Stepped
}

func (s *Session) grapple(dx, dy int) Resolution {
	target, struck := s.scanGrapple(dx, dy)
	if struck != nil {
		struck.Kill()
		s.Amber++
		s.Turns++
		return StruckCrab
	}
	if target == s.Player.Pos {
		return Rejected
	}
	s.Player.Phase = newGrapple(s.Player.Pos, target, s.timing.GrappleTicksPerCell)
	s.Turns++
	s.WaitingForInput = false
	return Grappled
}

// scanGrapple walks from the player one cell at a time in (dx, dy). A living
// killable in a scanned cell stops the hook and is returned. Otherwise the
// first solid or out-of-bounds cell stops it and the last open cell before
// it is the anchor.
func (s *Session) scanGrapple(dx, dy int) (Coord, Killable) {
	cur := s.Player.Pos
	for {
		next := cur.Add(dx, dy)
		if k, ok := s.Hazards.KillableAt(next.Rect()); ok {
			return cur, k
		}
		if !s.World.IsPassable(next) {
			return cur, nil
		}
		cur = next
	}
}

// Tick advances the active phase by one simulation tick. Hazards move and
// collisions are evaluated only on ticks where the player crossed a whole
// cell.
func (s *Session) Tick() Outcome {
	var out Outcome
	if s.GameOver {
		return out
	}

	if s.Player.JustMoved {
		// The step itself is this tick's displacement; a fall it started
		// begins on the next tick.
		s.Player.JustMoved = false
		out.Moved = true
	} else if !s.Player.IsIdle() {
		next, pos, moved := advance(s.Player.Phase, s.Player.Pos, s.timing)
		s.Player.Pos = pos
		if next.Kind() == PhaseIdle {
			next = newFall(s.World, pos, s.timing.FallTicksPerCell)
		}
		s.Player.Phase = next
		out.Moved = moved
	}

	if out.Moved {
		s.Hazards.Advance()
		s.evaluate(&out)
	}

	if s.Player.IsIdle() && !s.GameOver {
		s.WaitingForInput = true
	}
	return out
}

// evaluate applies collision outcomes in fixed order: poison, exit, crab,
// flyer. The first terminal outcome wins; at most one poison zone applies.
func (s *Session) evaluate(out *Outcome) {
	rect := s.Player.Pos.Rect()

	if _, ok := s.Hazards.PoisonAt(rect); ok {
		if s.Amber > 0 {
			s.Amber--
			out.AmberSpent = true
		} else {
			s.die(out, "poison")
			return
		}
	}

	if s.Hazards.ExitAt(rect) {
		out.Terminal = TerminalEscaped
		return
	}

	if _, ok := s.Hazards.CrabAt(rect); ok {
		s.die(out, "crab")
		return
	}

	if s.Hazards.FlyerAt(rect) {
		s.die(out, "flyer")
	}
}

func (s *Session) die(out *Outcome, cause string) {
	s.GameOver = true
	s.WaitingForInput = false
	out.Terminal = TerminalDied
	out.Cause = cause
}
