package cave

import (
	"testing"

	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
)

func kinds(events []core.Event) []core.EventKind {
	out := make([]core.EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func hasKind(events []core.Event, k core.EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func TestFadeCycle(t *testing.T) {
	f := NewFade(5, 255)
	if f.Active() {
		t.Fatal("NewFade() should be inactive")
	}

	f.StartOut()
	restarts := 0
	prev := f.Alpha
	for i := 0; i < 51; i++ {
		if f.Tick() {
			restarts++
		}
		if f.Mode == FadeOut && f.Alpha <= prev {
			t.Fatalf("alpha did not increase during fade-out: %d -> %d", prev, f.Alpha)
		}
		prev = f.Alpha
	}
	if restarts != 1 || f.Alpha != 255 || f.Mode != FadeIn {
		t.Fatalf("after fade-out: restarts %d alpha %d mode %v", restarts, f.Alpha, f.Mode)
	}

	for i := 0; i < 51; i++ {
		if f.Tick() {
			t.Fatal("Tick() signalled a restart during fade-in")
		}
	}
	if f.Alpha != 0 || f.Active() {
		t.Errorf("after fade-in: alpha %d active %v, expected 0 false", f.Alpha, f.Active())
	}
}

func TestDeathFadeRestart(t *testing.T) {
	cfg := smallCave()
	cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
	cfg.Hazards.Crabs = []config.CrabConfig{{Start: config.Cell{X: 6, Y: 5}, Range: 2}}
	l := NewLifecycle(cfg)

	events := l.Step(IntentStepRight)
	if !hasKind(events, core.EventDied) {
		t.Fatalf("Step() events = %v, expected died", kinds(events))
	}
	if events[len(events)-1].Cause != "poison" {
		t.Errorf("death cause = %q, expected poison", events[len(events)-1].Cause)
	}
	if !l.Session().GameOver {
		t.Fatal("GameOver = false after death")
	}
	old := l.Session()

	prev := 0
	restartedAt := 0
	for i := 1; i <= 60 && restartedAt == 0; i++ {
		ev := l.Step(IntentStepLeft)
		if hasKind(ev, core.EventRestarted) {
			restartedAt = i
			break
		}
		if a := l.Fade().Alpha; a <= prev {
			t.Fatalf("alpha not increasing: %d -> %d", prev, a)
		}
		prev = l.Fade().Alpha
		if l.Session() != old {
			t.Fatal("session replaced before fade-out finished")
		}
	}
	if restartedAt != 51 {
		t.Errorf("restart after %d ticks, expected 51", restartedAt)
	}

	s := l.Session()
	if s == old {
		t.Fatal("session not replaced on restart")
	}
	if s.GameOver || s.Amber != 0 || s.Turns != 0 {
		t.Errorf("new session not fresh: game over %v amber %d turns %d", s.GameOver, s.Amber, s.Turns)
	}
	if s.Player.Pos != C(2, 5) {
		t.Errorf("Player.Pos = %v, expected spawn", s.Player.Pos)
	}
	if !s.Hazards.Crabs()[0].Alive() || s.Hazards.Crabs()[0].Cell() != C(6, 5) {
		t.Error("crab not restored on restart")
	}
	if tally := l.Tally(); tally.Life != 2 || tally.Deaths != 1 {
		t.Errorf("Tally() = %+v, expected life 2 with 1 death", tally)
	}
}

func TestFreezeDuringFade(t *testing.T) {
	cfg := smallCave()
	cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
	l := NewLifecycle(cfg)
	l.Step(IntentStepRight)

	// Run out the fade-out and all but the last fade-in tick.
	for i := 0; i < 51+50; i++ {
		l.Step(IntentNone)
	}
	if !l.Frozen() {
		t.Fatal("Frozen() = false during fade-in")
	}
	l.Step(IntentStepRight)
	if l.Session().Player.Pos != C(2, 5) || l.Session().Turns != 0 {
		t.Error("intent accepted while frozen")
	}
	if l.Fade().Active() {
		t.Fatal("fade still active")
	}

	l.Step(IntentJump)
	if l.Session().Turns != 1 {
		t.Errorf("Turns = %d after fade ended, expected 1", l.Session().Turns)
	}
}

func TestClassicPlaysDuringFade(t *testing.T) {
	cfg := smallCave()
	cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
	if err := config.ApplyPreset(&cfg, config.PresetClassic); err != nil {
		t.Fatalf("ApplyPreset() error = %v", err)
	}
	l := NewLifecycle(cfg)
	l.Step(IntentStepRight)

	for i := 0; i < 51; i++ {
		l.Step(IntentNone)
	}
	if l.Fade().Mode != FadeIn {
		t.Fatalf("fade mode = %v, expected in", l.Fade().Mode)
	}

	l.Step(IntentJump)
	if l.Session().Turns != 1 {
		t.Errorf("Turns = %d, expected the jump to be accepted during fade-in", l.Session().Turns)
	}
}

func TestEscapeRestartsLife(t *testing.T) {
	cfg := smallCave()
	cfg.Level.Exit = config.Cell{X: 3, Y: 5}
	l := NewLifecycle(cfg)
	l.Session().Amber = 3

	events := l.Step(IntentStepRight)
	got := kinds(events)
	if len(got) != 2 || got[0] != core.EventEscaped || got[1] != core.EventRestarted {
		t.Fatalf("Step() events = %v, expected [escaped restarted]", got)
	}

	tally := l.Tally()
	if tally.Escapes != 1 || tally.BestTurns != 1 || tally.Life != 2 {
		t.Errorf("Tally() = %+v, expected 1 escape in 1 turn, life 2", tally)
	}
	if s := l.Session(); s.Amber != 0 || s.Player.Pos != C(2, 5) {
		t.Errorf("session after escape: amber %d pos %v, expected fresh", s.Amber, s.Player.Pos)
	}
	if l.Fade().Mode != FadeIn {
		t.Errorf("fade mode = %v, expected in", l.Fade().Mode)
	}
}

func TestEscapeRevivesCrabs(t *testing.T) {
	cfg := smallCave()
	cfg.Level.Exit = config.Cell{X: 1, Y: 5}
	cfg.Hazards.Crabs = []config.CrabConfig{
		{Start: config.Cell{X: 6, Y: 5}, Range: 2},
		{Start: config.Cell{X: 5, Y: 2}, Range: 3},
	}
	l := NewLifecycle(cfg)

	events := l.RunScript([]Intent{IntentGrappleRight, IntentStepRight, IntentStepLeft}, 100)
	if !hasKind(events, core.EventCrabKilled) {
		t.Fatalf("RunScript() events = %v, expected a crab kill", kinds(events))
	}
	crabs := l.Session().Hazards.Crabs()
	if crabs[0].Alive() {
		t.Fatal("grappled crab should be dead before the escape")
	}
	if crabs[1].Cell() != C(7, 2) {
		t.Fatalf("patrolling crab at %v, expected (7,2) before the escape", crabs[1].Cell())
	}
	if l.Session().Amber != 1 {
		t.Fatalf("Amber = %d before the escape, expected 1", l.Session().Amber)
	}

	events = l.Step(IntentStepLeft)
	if !hasKind(events, core.EventEscaped) {
		t.Fatalf("Step() events = %v, expected an escape", kinds(events))
	}

	s := l.Session()
	if s.Amber != 0 {
		t.Errorf("Amber = %d after the escape, expected 0", s.Amber)
	}
	for i, crab := range s.Hazards.Crabs() {
		start := C(cfg.Hazards.Crabs[i].Start.X, cfg.Hazards.Crabs[i].Start.Y)
		if !crab.Alive() {
			t.Errorf("crab %d is dead after the escape", i)
		}
		if crab.Cell() != start {
			t.Errorf("crab %d at %v after the escape, expected %v", i, crab.Cell(), start)
		}
		if crab.Dir() != 1 {
			t.Errorf("crab %d Dir() = %d after the escape, expected 1", i, crab.Dir())
		}
	}
}

func TestLifecycleFadeAccessors(t *testing.T) {
	cfg := smallCave()
	cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
	l := NewLifecycle(cfg)

	if l.Fade().Active() || l.Fade().Max() != 255 {
		t.Fatalf("Fade() = %+v, expected inactive with max 255", l.Fade())
	}
	l.Step(IntentStepRight)
	if !l.Fade().Active() || l.Fade().Mode != FadeOut {
		t.Errorf("Fade() = %+v after dying, expected an active fade-out", l.Fade())
	}
}

func TestLifecycleEvents(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.Level.Spawn = config.Cell{X: 2, Y: 21}
	l := NewLifecycle(cfg)

	events := l.Step(IntentGrappleRight)
	if len(events) != 1 || events[0].Kind != core.EventCrabKilled {
		t.Fatalf("Step() events = %v, expected [crab killed]", kinds(events))
	}
	if e := events[0]; e.Amber != 1 || e.Turns != 1 || e.Life != 1 || e.Tick != 1 {
		t.Errorf("crab event = %+v", e)
	}

	events = l.Step(IntentStepLeft)
	if len(events) != 0 {
		t.Errorf("Step(StepLeft) events = %v, expected none", kinds(events))
	}
	tickCave(l, 10)

	cfg = smallCave()
	cfg.Level.Spawn = config.Cell{X: 1, Y: 5}
	l = NewLifecycle(cfg)
	events = l.Step(IntentStepLeft)
	if len(events) != 1 || events[0].Kind != core.EventIntentRejected || events[0].Cause != "step-left" {
		t.Errorf("Step(StepLeft) into wall = %+v, expected one rejected event", events)
	}
}

func TestQuit(t *testing.T) {
	l := NewLifecycle(smallCave())
	if l.Quit() {
		t.Fatal("Quit() = true before quitting")
	}
	if ev := l.Step(IntentQuit); len(ev) != 0 {
		t.Errorf("Step(Quit) events = %v, expected none", kinds(ev))
	}
	if !l.Quit() {
		t.Error("Quit() = false after IntentQuit")
	}
}

func tickCave(l *Lifecycle, n int) {
	for i := 0; i < n; i++ {
		l.Step(IntentNone)
	}
}
