package cave

// Player is the grappler. Position is always a whole cell.
type Player struct {
	Pos   Coord
	Phase Phase

	// JustMoved is set when an instant step or jump displaced the player
	// during intent handling; the next tick consumes it as that tick's
	// synchronized advance.
	JustMoved bool
}

// NewPlayer places a resting player at pos.
func NewPlayer(pos Coord) Player {
	return Player{Pos: pos, Phase: Idle{}}
}

// IsIdle reports whether the player can take a new intent.
func (p *Player) IsIdle() bool {
	return p.Phase == nil || p.Phase.Kind() == PhaseIdle
}

// GrappleTarget returns the hook's anchor cell while grappling.
func (p *Player) GrappleTarget() (Coord, bool) {
	if g, ok := p.Phase.(Grappling); ok {
		return g.Target, true
	}
	return Coord{}, false
}

// FallCellsLeft returns how many cells remain in the current fall, or 0.
func (p *Player) FallCellsLeft() int {
	if f, ok := p.Phase.(Falling); ok {
		return f.CellsLeft
	}
	return 0
}
