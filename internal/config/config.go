// Package config provides YAML-based cave configuration loading and
// tuning presets for Grapplecore.
package config

// CaveConfig contains all configuration for the cave simulation.
type CaveConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Level   LevelConfig   `yaml:"level"`
	Hazards HazardsConfig `yaml:"hazards"`
	Timing  TimingConfig  `yaml:"timing"`
	Session SessionConfig `yaml:"session"`
}

// GridConfig defines the cave dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Cell is a grid coordinate as written in YAML.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Platform is a horizontal run of solid cells on one row, columns inclusive.
type Platform struct {
	Row  int `yaml:"row"`
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// LevelConfig defines the static layout: solid platforms, spawn and exit.
// The border walls, ceiling and floor are always generated from the grid size.
type LevelConfig struct {
	Platforms []Platform `yaml:"platforms"`
	Spawn     Cell       `yaml:"spawn"`
	Exit      Cell       `yaml:"exit"`
}

// FlyerConfig defines the vertically patrolling flyer.
type FlyerConfig struct {
	Start   Cell `yaml:"start"`
	Ceiling int  `yaml:"ceiling"` // Topmost row of the patrol
	Floor   int  `yaml:"floor"`   // Bottom row of the patrol
}

// CrabConfig defines one horizontally patrolling crab.
type CrabConfig struct {
	Start Cell `yaml:"start"`
	Range int  `yaml:"range"` // Cells to the right of Start the crab patrols
}

// HazardsConfig lists every hazard placed in the level.
type HazardsConfig struct {
	Flyer  FlyerConfig  `yaml:"flyer"`
	Crabs  []CrabConfig `yaml:"crabs"`
	Poison []Cell       `yaml:"poison"`
}

// TimingConfig defines tick-level pacing of multi-tick phases and fades.
type TimingConfig struct {
	GrappleTicksPerCell int `yaml:"grapple_ticks_per_cell"`
	FallTicksPerCell    int `yaml:"fall_ticks_per_cell"`
	FadeStep            int `yaml:"fade_step"` // Alpha change per tick
	FadeMax             int `yaml:"fade_max"`  // Fully faded alpha
}

// SessionConfig defines lifecycle policy.
type SessionConfig struct {
	// FreezeDuringFade stops intents and simulation while a fade is active.
	// When false, fades run alongside normal play.
	FreezeDuringFade bool `yaml:"freeze_during_fade"`
}

// Preset represents a named tuning of timing and session policy.
type Preset string

const (
	PresetCalm    Preset = "calm"
	PresetClassic Preset = "classic"
	PresetSlow    Preset = "slow"
)

// Presets lists the accepted preset names.
func Presets() []Preset {
	return []Preset{PresetCalm, PresetClassic, PresetSlow}
}
