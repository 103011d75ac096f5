package cave

import (
	"errors"
	"testing"

	"github.com/vovakirdan/grapplecore/internal/config"
)

func TestValidateDefaultLevel(t *testing.T) {
	if err := ValidateLevel(config.DefaultCaveConfig()); err != nil {
		t.Errorf("ValidateLevel(default) error = %v", err)
	}
}

func TestValidateLevelErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.CaveConfig)
		code   string
	}{
		{
			name:   "tiny grid",
			mutate: func(c *config.CaveConfig) { c.Grid = config.GridConfig{Width: 2, Height: 2} },
			code:   CodeBadGrid,
		},
		{
			name:   "spawn outside",
			mutate: func(c *config.CaveConfig) { c.Level.Spawn = config.Cell{X: 40, Y: 5} },
			code:   CodeOutOfBounds,
		},
		{
			name:   "exit in rock",
			mutate: func(c *config.CaveConfig) { c.Level.Exit = config.Cell{X: 9, Y: 18} },
			code:   CodeBlocked,
		},
		{
			name:   "poison in wall",
			mutate: func(c *config.CaveConfig) { c.Hazards.Poison = append(c.Hazards.Poison, config.Cell{X: 0, Y: 4}) },
			code:   CodeBlocked,
		},
		{
			name:   "crab without range",
			mutate: func(c *config.CaveConfig) { c.Hazards.Crabs[0].Range = 0 },
			code:   CodeBadPatrol,
		},
		{
			name:   "crab walks out",
			mutate: func(c *config.CaveConfig) { c.Hazards.Crabs[2].Range = 10 },
			code:   CodeBadPatrol,
		},
		{
			name:   "flyer outside its patrol",
			mutate: func(c *config.CaveConfig) { c.Hazards.Flyer.Start.Y = 21; c.Hazards.Flyer.Floor = 10 },
			code:   CodeBadPatrol,
		},
		{
			name: "exit sealed in",
			mutate: func(c *config.CaveConfig) {
				c.Level.Exit = config.Cell{X: 5, Y: 3}
				c.Level.Platforms = append(c.Level.Platforms,
					config.Platform{Row: 2, From: 4, To: 6},
					config.Platform{Row: 4, From: 4, To: 6},
					config.Platform{Row: 3, From: 4, To: 4},
					config.Platform{Row: 3, From: 6, To: 6},
				)
			},
			code: CodeUnreachableExit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultCaveConfig()
			tt.mutate(&cfg)

			err := ValidateLevel(cfg)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateLevel() error = %v, expected ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("ValidateLevel() code = %s, expected %s (%v)", verr.Code, tt.code, err)
			}
		})
	}
}

func TestReachable(t *testing.T) {
	cfg := config.DefaultCaveConfig()
	w := NewWorld(cfg.Grid, cfg.Level)
	r := Reachable(w, fromConfig(cfg.Level.Spawn))

	for _, c := range []Coord{C(2, 5), C(3, 21), C(30, 21), C(1, 21)} {
		if !r.Rest[c] {
			t.Errorf("Rest[%v] = false, expected true", c)
		}
	}
	if !r.Reaches(C(30, 2)) {
		t.Error("Reaches(exit) = false")
	}
	if r.Rest[C(30, 2)] {
		t.Error("the exit cell is not a place to rest")
	}
	for c := range r.Crossed {
		if !w.IsPassable(c) {
			t.Errorf("Crossed contains rock %v", c)
		}
	}
}
