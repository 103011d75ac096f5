package config

import (
	_ "embed"
)

//go:embed defaults/cave.yaml
var defaultCaveYAML []byte

// DefaultCaveConfig returns the compiled-in cave. It matches defaults/cave.yaml
// and is used when the embedded YAML cannot be parsed.
func DefaultCaveConfig() CaveConfig {
	return CaveConfig{
		Grid: GridConfig{
			Width:  32,
			Height: 24,
		},
		Level: LevelConfig{
			Platforms: []Platform{
				{Row: 18, From: 8, To: 11},
				{Row: 16, From: 20, To: 23},
				{Row: 12, From: 15, To: 17},
			},
			Spawn: Cell{X: 2, Y: 5},
			Exit:  Cell{X: 30, Y: 2},
		},
		Hazards: HazardsConfig{
			Flyer: FlyerConfig{
				Start:   Cell{X: 15, Y: 1},
				Ceiling: 1,
				Floor:   21,
			},
			Crabs: []CrabConfig{
				{Start: Cell{X: 5, Y: 21}, Range: 4},
				{Start: Cell{X: 15, Y: 21}, Range: 4},
				{Start: Cell{X: 25, Y: 21}, Range: 4},
			},
			Poison: []Cell{
				{X: 28, Y: 18},
				{X: 12, Y: 18},
				{X: 6, Y: 16},
			},
		},
		Timing: TimingConfig{
			GrappleTicksPerCell: 3,
			FallTicksPerCell:    3,
			FadeStep:            5,
			FadeMax:             255,
		},
		Session: SessionConfig{
			FreezeDuringFade: true,
		},
	}
}

// DefaultYAML returns the embedded default cave YAML.
func DefaultYAML() []byte {
	return defaultCaveYAML
}
