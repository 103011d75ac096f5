package cave

import "github.com/vovakirdan/grapplecore/internal/config"

// smallCave is a 12x8 cave with the floor on row 6, no platforms, no crabs
// and no poison. The flyer bobs between rows 3 and 4 of column 10.
func smallCave() config.CaveConfig {
	return config.CaveConfig{
		Grid: config.GridConfig{Width: 12, Height: 8},
		Level: config.LevelConfig{
			Spawn: config.Cell{X: 2, Y: 5},
			Exit:  config.Cell{X: 10, Y: 1},
		},
		Hazards: config.HazardsConfig{
			Flyer: config.FlyerConfig{Start: config.Cell{X: 10, Y: 3}, Ceiling: 3, Floor: 3},
		},
		Timing: config.TimingConfig{
			GrappleTicksPerCell: 3,
			FallTicksPerCell:    3,
			FadeStep:            5,
			FadeMax:             255,
		},
		Session: config.SessionConfig{FreezeDuringFade: true},
	}
}

// tickUntilIdle runs ticks until the session waits for input again and
// returns how many ticks that took.
func tickUntilIdle(s *Session, limit int) int {
	for i := 1; i <= limit; i++ {
		s.Tick()
		if s.AcceptsInput() || s.GameOver {
			return i
		}
	}
	return -1
}
