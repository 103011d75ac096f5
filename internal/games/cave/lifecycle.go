package cave

import (
	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
)

// FadeMode is the direction of the screen transition.
type FadeMode int

const (
	FadeNone FadeMode = iota
	FadeOut
	FadeIn
)

func (m FadeMode) String() string {
	switch m {
	case FadeNone:
		return "none"
	case FadeOut:
		return "out"
	case FadeIn:
		return "in"
	default:
		return "unknown"
	}
}

// Fade is the death/restart transition. Alpha climbs to Max during a
// fade-out, then drops back to 0 during the fade-in that follows.
type Fade struct {
	Alpha int
	Mode  FadeMode
	step  int
	max   int
}

// NewFade creates an inactive fade.
func NewFade(step, maxAlpha int) Fade {
	return Fade{step: step, max: maxAlpha}
}

// Max returns the fully faded alpha.
func (f Fade) Max() int {
	return f.max
}

// Active reports whether a transition is running.
func (f Fade) Active() bool {
	return f.Mode != FadeNone
}

// StartOut begins fading out from the current alpha.
func (f *Fade) StartOut() {
	f.Mode = FadeOut
}

// StartIn begins fading in from the current alpha.
func (f *Fade) StartIn() {
	f.Mode = FadeIn
}

// Tick moves alpha one step. It returns true exactly once per fade-out, on
// the tick alpha reaches max; the caller restarts and the fade turns into a
// fade-in.
func (f *Fade) Tick() bool {
	switch f.Mode {
	case FadeOut:
		f.Alpha = core.Clamp(f.Alpha+f.step, 0, f.max)
		if f.Alpha == f.max {
			f.Mode = FadeIn
			return true
		}
	case FadeIn:
		f.Alpha = core.Clamp(f.Alpha-f.step, 0, f.max)
		if f.Alpha == 0 {
			f.Mode = FadeNone
		}
	}
	return false
}

// Tally accumulates results across lives.
type Tally struct {
	Life      int // 1-based number of the current life
	Escapes   int
	Deaths    int
	BestTurns int // fewest turns over all escapes, 0 before the first
}

// Lifecycle owns the current Session and replaces it wholesale on restart.
// One call to Step is one simulation tick.
type Lifecycle struct {
	cfg     config.CaveConfig
	session *Session
	fade    Fade
	tally   Tally
	tick    uint64
	quit    bool
}

// NewLifecycle starts the first life.
func NewLifecycle(cfg config.CaveConfig) *Lifecycle {
	return &Lifecycle{
		cfg:     cfg,
		session: NewSession(cfg),
		fade:    NewFade(cfg.Timing.FadeStep, cfg.Timing.FadeMax),
		tally:   Tally{Life: 1},
	}
}

// Session returns the current life.
func (l *Lifecycle) Session() *Session {
	return l.session
}

// Fade returns the transition state.
func (l *Lifecycle) Fade() Fade {
	return l.fade
}

// Tally returns the run totals.
func (l *Lifecycle) Tally() Tally {
	return l.tally
}

// Tick returns the number of simulation ticks run so far.
func (l *Lifecycle) Tick() uint64 {
	return l.tick
}

// Quit reports whether the player asked to leave.
func (l *Lifecycle) Quit() bool {
	return l.quit
}

// Frozen reports whether play is suspended for a running transition.
func (l *Lifecycle) Frozen() bool {
	return l.cfg.Session.FreezeDuringFade && l.fade.Active()
}

// Step runs one tick: the fade, then the submitted intent, then the active
// phase of the current life. It returns what happened, in order.
func (l *Lifecycle) Step(in Intent) []core.Event {
	l.tick++
	if in == IntentQuit {
		l.quit = true
		return nil
	}

	var events []core.Event
	frozen := l.Frozen()

	if l.fade.Active() && l.fade.Tick() {
		l.restart()
		events = append(events, l.event(core.EventRestarted))
	}
	if frozen {
		return events
	}

	s := l.session
	if in != IntentNone && s.AcceptsInput() {
		switch s.Submit(in) {
		case Rejected:
			ev := l.event(core.EventIntentRejected)
			ev.Cause = in.String()
			events = append(events, ev)
		case StruckCrab:
			events = append(events, l.event(core.EventCrabKilled))
		}
	}

	out := s.Tick()
	if out.AmberSpent {
		events = append(events, l.event(core.EventAmberSpent))
	}

	switch out.Terminal {
	case TerminalDied:
		ev := l.event(core.EventDied)
		ev.Cause = out.Cause
		events = append(events, ev)
		l.tally.Deaths++
		l.fade.StartOut()

	case TerminalEscaped:
		events = append(events, l.event(core.EventEscaped))
		l.tally.Escapes++
		if l.tally.BestTurns == 0 || s.Turns < l.tally.BestTurns {
			l.tally.BestTurns = s.Turns
		}
		l.restart()
		l.fade.StartIn()
		events = append(events, l.event(core.EventRestarted))
	}

	return events
}

func (l *Lifecycle) restart() {
	l.session = NewSession(l.cfg)
	l.tally.Life++
}

// event stamps an event with the current tick, player cell and life.
func (l *Lifecycle) event(kind core.EventKind) core.Event {
	s := l.session
	return core.Event{
		Kind:  kind,
		Tick:  l.tick,
		X:     s.Player.Pos.X,
		Y:     s.Player.Pos.Y,
		Amber: s.Amber,
		Turns: s.Turns,
		Life:  l.tally.Life,
	}
}
