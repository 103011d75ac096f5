package cave

// CrabView is the read-only state of one crab.
type CrabView struct {
	Cell  Coord
	Dir   int
	Alive bool
}

// Snapshot captures the complete visible state for renderers, replays and
// determinism tests.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Solid  []Coord // every solid cell, row-major

	Player        Coord
	Phase         PhaseKind
	GrappleTarget Coord
	Grappling     bool
	FallCellsLeft int

	Flyer    Coord
	FlyerDir int
	Crabs    []CrabView
	Poison   []Coord
	Exit     Coord

	Amber    int
	Turns    int
	GameOver bool
	Waiting  bool
	Paused   bool

	FadeAlpha int
	FadeMax   int
	FadeMode  FadeMode
	Frozen    bool

	Tally Tally
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.life == nil {
		return Snapshot{}
	}
	snap := g.life.Snapshot()
	snap.Paused = g.paused
	return snap
}

// Snapshot returns the current lifecycle snapshot.
func (l *Lifecycle) Snapshot() Snapshot {
	s := l.session
	w := s.World

	var solid []Coord
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if w.IsSolid(C(x, y)) {
				solid = append(solid, C(x, y))
			}
		}
	}

	crabs := make([]CrabView, 0, len(s.Hazards.Crabs()))
	for _, c := range s.Hazards.Crabs() {
		crabs = append(crabs, CrabView{Cell: c.Cell(), Dir: c.Dir(), Alive: c.Alive()})
	}

	target, grappling := s.Player.GrappleTarget()
	phase := PhaseIdle
	if s.Player.Phase != nil {
		phase = s.Player.Phase.Kind()
	}

	return Snapshot{
		Tick:          l.tick,
		Width:         w.Width(),
		Height:        w.Height(),
		Solid:         solid,
		Player:        s.Player.Pos,
		Phase:         phase,
		GrappleTarget: target,
		Grappling:     grappling,
		FallCellsLeft: s.Player.FallCellsLeft(),
		Flyer:         s.Hazards.Flyer().Cell(),
		FlyerDir:      s.Hazards.Flyer().Dir(),
		Crabs:         crabs,
		Poison:        append([]Coord(nil), s.Hazards.Poison()...),
		Exit:          s.Hazards.Exit(),
		Amber:         s.Amber,
		Turns:         s.Turns,
		GameOver:      s.GameOver,
		Waiting:       s.WaitingForInput,
		FadeAlpha:     l.fade.Alpha,
		FadeMax:       l.fade.Max(),
		FadeMode:      l.fade.Mode,
		Frozen:        l.Frozen(),
		Tally:         l.tally,
	}
}
