package cave

import (
	"testing"

	"github.com/vovakirdan/grapplecore/internal/config"
)

func TestSpawnFloatsUntilFirstMove(t *testing.T) {
	s := NewSession(config.DefaultCaveConfig())

	for i := 0; i < 10; i++ {
		if out := s.Tick(); out.Moved {
			t.Fatalf("Tick() moved an idle player on tick %d", i+1)
		}
	}
	if s.Player.Pos != C(2, 5) {
		t.Errorf("Player.Pos = %v, expected spawn (2,5)", s.Player.Pos)
	}
	if !s.AcceptsInput() {
		t.Error("AcceptsInput() = false, expected true")
	}
}

func TestStepFallsToFloor(t *testing.T) {
	s := NewSession(config.DefaultCaveConfig())

	if got := s.Submit(IntentStepRight); got != Stepped {
		t.Fatalf("Submit(StepRight) = %v, expected Stepped", got)
	}
	if s.Player.Pos != C(3, 5) {
		t.Fatalf("Player.Pos = %v, expected (3,5)", s.Player.Pos)
	}
	if got := s.Player.FallCellsLeft(); got != 16 {
		t.Errorf("FallCellsLeft() = %d, expected 16", got)
	}
	if s.AcceptsInput() {
		t.Error("AcceptsInput() = true during a fall")
	}

	// The step tick, then three ticks per fallen cell.
	if n := tickUntilIdle(s, 200); n != 1+16*3 {
		t.Errorf("fall took %d ticks, expected %d", n, 1+16*3)
	}
	if s.Player.Pos != C(3, 21) {
		t.Errorf("Player.Pos = %v, expected (3,21)", s.Player.Pos)
	}
	if s.GameOver {
		t.Error("GameOver = true after a safe landing")
	}
	if s.Turns != 1 {
		t.Errorf("Turns = %d, expected 1", s.Turns)
	}
}

func TestJumpFromFloatReturnsToFloor(t *testing.T) {
	cfg := smallCave()
	cfg.Level.Spawn = config.Cell{X: 2, Y: 2}
	s := NewSession(cfg)

	if got := s.Submit(IntentJump); got != Stepped {
		t.Fatalf("Submit(Jump) = %v, expected Stepped", got)
	}
	if s.Player.Pos != C(2, 1) {
		t.Fatalf("Player.Pos = %v, expected (2,1)", s.Player.Pos)
	}

	for i := 0; i < 12; i++ {
		s.Tick()
	}
	if s.Player.Pos != C(2, 4) {
		t.Errorf("Player.Pos after 12 ticks = %v, expected (2,4)", s.Player.Pos)
	}

	s.Tick()
	if s.Player.Pos != C(2, 5) {
		t.Errorf("Player.Pos after 13 ticks = %v, expected (2,5)", s.Player.Pos)
	}
	if !s.AcceptsInput() {
		t.Error("AcceptsInput() = false after landing")
	}
}

func TestGrappleTiming(t *testing.T) {
	s := NewSession(smallCave())

	if got := s.Submit(IntentGrappleRight); got != Grappled {
		t.Fatalf("Submit(GrappleRight) = %v, expected Grappled", got)
	}
	target, ok := s.Player.GrappleTarget()
	if !ok || target != C(10, 5) {
		t.Fatalf("GrappleTarget() = %v, %v; expected (10,5), true", target, ok)
	}

	for i := 0; i < 22; i++ {
		s.Tick()
	}
	if s.Player.Pos != C(10, 5) {
		t.Errorf("Player.Pos after 22 ticks = %v, expected (10,5)", s.Player.Pos)
	}
	if s.Player.Phase.Kind() != PhaseGrappling {
		t.Errorf("phase after 22 ticks = %v, expected grappling", s.Player.Phase.Kind())
	}

	s.Tick()
	s.Tick()
	if !s.AcceptsInput() {
		t.Errorf("AcceptsInput() = false after 24 ticks, phase %v", s.Player.Phase.Kind())
	}
}

func TestGrappleEndsInFall(t *testing.T) {
	s := NewSession(smallCave())

	if got := s.Submit(IntentGrappleUp); got != Grappled {
		t.Fatalf("Submit(GrappleUp) = %v, expected Grappled", got)
	}
	// Four cells up, then four cells back down.
	if n := tickUntilIdle(s, 100); n != 4*3+4*3 {
		t.Errorf("grapple up and fall took %d ticks, expected 24", n)
	}
	if s.Player.Pos != C(2, 5) {
		t.Errorf("Player.Pos = %v, expected (2,5)", s.Player.Pos)
	}
}

func TestHazardsMoveOnlyWithPlayer(t *testing.T) {
	cfg := smallCave()
	cfg.Grid.Height = 10 // floor on row 8
	cfg.Level.Spawn = config.Cell{X: 2, Y: 7}
	cfg.Hazards.Flyer = config.FlyerConfig{Start: config.Cell{X: 9, Y: 1}, Ceiling: 1, Floor: 6}
	s := NewSession(cfg)

	s.Submit(IntentGrappleRight)
	s.Tick()
	s.Tick()
	if got := s.Hazards.Flyer().Cell(); got != C(9, 2) {
		t.Errorf("flyer after one crossed cell = %v, expected (9,2)", got)
	}

	moves := 1
	for !s.AcceptsInput() {
		if s.Tick().Moved {
			moves++
		}
	}
	if moves != 8 {
		t.Errorf("crossed %d cells, expected 8", moves)
	}
	// Down to the floor bound at row 6, then back up two.
	if got := s.Hazards.Flyer().Cell(); got != C(9, 3) {
		t.Errorf("flyer after 8 advances = %v, expected (9,3)", got)
	}
	if s.Hazards.Flyer().Dir() != -1 {
		t.Errorf("flyer Dir() = %d, expected -1", s.Hazards.Flyer().Dir())
	}

	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if got := s.Hazards.Flyer().Cell(); got != C(9, 3) {
		t.Errorf("flyer moved while the player was idle: %v", got)
	}
}

func TestRejectedIntents(t *testing.T) {
	tests := []struct {
		name  string
		spawn config.Cell
		in    Intent
	}{
		{"step into wall", config.Cell{X: 1, Y: 5}, IntentStepLeft},
		{"grapple into adjacent wall", config.Cell{X: 1, Y: 5}, IntentGrappleLeft},
		{"jump into ceiling", config.Cell{X: 3, Y: 1}, IntentJump},
		{"grapple into adjacent ceiling", config.Cell{X: 3, Y: 1}, IntentGrappleUp},
		{"no intent", config.Cell{X: 3, Y: 5}, IntentNone},
		{"quit is not a move", config.Cell{X: 3, Y: 5}, IntentQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallCave()
			cfg.Level.Spawn = tt.spawn
			s := NewSession(cfg)
			before := s.Player.Pos

			if got := s.Submit(tt.in); got != Rejected {
				t.Errorf("Submit(%v) = %v, expected Rejected", tt.in, got)
			}
			if s.Player.Pos != before {
				t.Errorf("Player.Pos = %v, expected unchanged %v", s.Player.Pos, before)
			}
			if s.Turns != 0 {
				t.Errorf("Turns = %d, expected 0", s.Turns)
			}
			if !s.AcceptsInput() {
				t.Error("AcceptsInput() = false after a rejected intent")
			}
		})
	}
}

func TestIntentRejectedWhileMoving(t *testing.T) {
	s := NewSession(smallCave())
	s.Submit(IntentGrappleRight)
	s.Tick()

	pos := s.Player.Pos
	if got := s.Submit(IntentStepLeft); got != Rejected {
		t.Errorf("Submit() during grapple = %v, expected Rejected", got)
	}
	if s.Player.Pos != pos || s.Turns != 1 {
		t.Errorf("intent during grapple changed state: pos %v turns %d", s.Player.Pos, s.Turns)
	}
}

func TestGrappleKillsCrab(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.Level.Spawn = config.Cell{X: 2, Y: 21}
	s := NewSession(cfg)

	if got := s.Submit(IntentGrappleRight); got != StruckCrab {
		t.Fatalf("Submit(GrappleRight) = %v, expected StruckCrab", got)
	}

	crab := s.Hazards.Crabs()[0]
	if crab.Alive() {
		t.Error("crab still alive after being struck")
	}
	if s.Amber != 1 {
		t.Errorf("Amber = %d, expected 1", s.Amber)
	}
	if s.Turns != 1 {
		t.Errorf("Turns = %d, expected 1", s.Turns)
	}
	if s.Player.Pos != C(2, 21) || !s.Player.IsIdle() {
		t.Errorf("player moved or left idle: pos %v phase %v", s.Player.Pos, s.Player.Phase.Kind())
	}

	out := s.Tick()
	if out.Moved {
		t.Error("Tick() after a crab kill reported movement")
	}
	if crab.Cell() != C(5, 21) {
		t.Errorf("dead crab moved to %v", crab.Cell())
	}
	if !s.AcceptsInput() {
		t.Error("AcceptsInput() = false after a crab kill")
	}
}

func TestDeadCrabsStayDeadAndDoNotBlock(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.Level.Spawn = config.Cell{X: 2, Y: 21}
	s := NewSession(cfg)

	s.Submit(IntentGrappleRight)
	s.Tick()

	// The dead crab no longer stops the hook; the next living one does.
	if got := s.Submit(IntentGrappleRight); got != StruckCrab {
		t.Fatalf("second Submit(GrappleRight) = %v, expected StruckCrab", got)
	}
	if s.Hazards.Crabs()[1].Alive() {
		t.Error("second crab still alive")
	}
	if s.Amber != 2 {
		t.Errorf("Amber = %d, expected 2", s.Amber)
	}

	// Walk across the corpse; dead crabs never kill or revive.
	s.Tick()
	for i := 0; i < 5; i++ {
		s.Submit(IntentStepRight)
		tickUntilIdle(s, 10)
	}
	if s.GameOver {
		t.Fatal("walking over a dead crab ended the life")
	}
	for i, c := range s.Hazards.Crabs()[:2] {
		if c.Alive() {
			t.Errorf("crab %d came back to life", i)
		}
	}
}

func TestPoisonCollision(t *testing.T) {
	tests := []struct {
		name      string
		amber     int
		gameOver  bool
		amberLeft int
	}{
		{"no amber", 0, true, 0},
		{"one amber", 1, false, 0},
		{"two amber", 2, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := smallCave()
			cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
			s := NewSession(cfg)
			s.Amber = tt.amber

			s.Submit(IntentStepRight)
			out := s.Tick()

			if s.GameOver != tt.gameOver {
				t.Errorf("GameOver = %v, expected %v", s.GameOver, tt.gameOver)
			}
			if s.Amber != tt.amberLeft {
				t.Errorf("Amber = %d, expected %d", s.Amber, tt.amberLeft)
			}
			if tt.gameOver && (out.Terminal != TerminalDied || out.Cause != "poison") {
				t.Errorf("Tick() = %+v, expected died of poison", out)
			}
			if !tt.gameOver && !out.AmberSpent {
				t.Error("Tick() did not report the spent amber")
			}
		})
	}
}

func TestCollisionOrder(t *testing.T) {
	t.Run("poison before exit", func(t *testing.T) {
		cfg := smallCave()
		cfg.Level.Exit = config.Cell{X: 3, Y: 5}
		cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
		s := NewSession(cfg)

		s.Submit(IntentStepRight)
		if out := s.Tick(); out.Terminal != TerminalDied {
			t.Errorf("Tick() terminal = %v, expected died", out.Terminal)
		}
	})

	t.Run("amber lets the exit win", func(t *testing.T) {
		cfg := smallCave()
		cfg.Level.Exit = config.Cell{X: 3, Y: 5}
		cfg.Hazards.Poison = []config.Cell{{X: 3, Y: 5}}
		s := NewSession(cfg)
		s.Amber = 1

		s.Submit(IntentStepRight)
		out := s.Tick()
		if out.Terminal != TerminalEscaped || !out.AmberSpent {
			t.Errorf("Tick() = %+v, expected escape with amber spent", out)
		}
	})

	t.Run("exit before flyer", func(t *testing.T) {
		cfg := smallCave()
		cfg.Level.Exit = config.Cell{X: 3, Y: 5}
		cfg.Hazards.Flyer = config.FlyerConfig{Start: config.Cell{X: 3, Y: 4}, Ceiling: 4, Floor: 5}
		s := NewSession(cfg)

		s.Submit(IntentStepRight)
		if out := s.Tick(); out.Terminal != TerminalEscaped {
			t.Errorf("Tick() terminal = %v, expected escaped", out.Terminal)
		}
	})
}

func TestPatrolCollisions(t *testing.T) {
	t.Run("crab", func(t *testing.T) {
		cfg := smallCave()
		cfg.Hazards.Crabs = []config.CrabConfig{{Start: config.Cell{X: 4, Y: 5}, Range: 1}}
		s := NewSession(cfg)

		s.Submit(IntentStepRight)
		s.Tick()
		if s.GameOver {
			t.Fatal("first step should pass the crab")
		}
		s.Submit(IntentStepRight)
		out := s.Tick()
		if out.Terminal != TerminalDied || out.Cause != "crab" {
			t.Errorf("Tick() = %+v, expected death by crab", out)
		}
	})

	t.Run("flyer", func(t *testing.T) {
		cfg := smallCave()
		cfg.Hazards.Flyer = config.FlyerConfig{Start: config.Cell{X: 3, Y: 4}, Ceiling: 4, Floor: 5}
		s := NewSession(cfg)

		s.Submit(IntentStepRight)
		out := s.Tick()
		if out.Terminal != TerminalDied || out.Cause != "flyer" {
			t.Errorf("Tick() = %+v, expected death by flyer", out)
		}
		if s.WaitingForInput || s.AcceptsInput() {
			t.Error("dead player still accepts input")
		}
	})
}

func TestNoClipThroughRock(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	cfg.Hazards.Crabs = nil
	cfg.Hazards.Poison = nil
	cfg.Hazards.Flyer = config.FlyerConfig{Start: config.Cell{X: 1, Y: 1}, Ceiling: 1, Floor: 1}
	cfg.Level.Exit = config.Cell{X: 1, Y: 21}
	s := NewSession(cfg)

	script := []Intent{
		IntentGrappleRight, IntentStepRight, IntentGrappleUp, IntentGrappleLeft,
		IntentJump, IntentStepLeft, IntentGrappleRight, IntentGrappleUp,
	}
	for _, in := range script {
		s.Submit(in)
		for i := 0; i < 200 && !s.AcceptsInput() && !s.GameOver; i++ {
			s.Tick()
			if !s.World.IsPassable(s.Player.Pos) {
				t.Fatalf("player inside rock at %v after %v", s.Player.Pos, in)
			}
		}
	}
}
