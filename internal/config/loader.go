package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCave loads the cave configuration.
// Search order: customPath -> ~/.grapplecore/configs/cave.yaml -> ./configs/cave.yaml -> embedded default
func LoadCave(customPath string) (CaveConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readCave(customPath)
		if err != nil {
			return cfg, err
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cave.yaml"); userCfgPath != "" {
		if cfg, err := readCave(userCfgPath); err == nil {
			return normalize(cfg), nil
		}
	}

	// Try local configs directory
	if cfg, err := readCave(filepath.Join("configs", "cave.yaml")); err == nil {
		return normalize(cfg), nil
	}

	return ParseCave(defaultCaveYAML)
}

// ParseCave decodes a cave from YAML on top of the defaults, so keys the
// document leaves out keep their default values.
func ParseCave(data []byte) (CaveConfig, error) {
	cfg := DefaultCaveConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultCaveConfig(), fmt.Errorf("config: failed to parse cave: %w", err)
	}
	return normalize(cfg), nil
}

func readCave(path string) (CaveConfig, error) {
	cfg := DefaultCaveConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// normalize replaces sizes and timings a document set to zero or less with
// the defaults.
func normalize(cfg CaveConfig) CaveConfig {
	def := DefaultCaveConfig()
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg.Grid = def.Grid
	}
	if cfg.Timing.GrappleTicksPerCell <= 0 {
		cfg.Timing.GrappleTicksPerCell = def.Timing.GrappleTicksPerCell
	}
	if cfg.Timing.FallTicksPerCell <= 0 {
		cfg.Timing.FallTicksPerCell = def.Timing.FallTicksPerCell
	}
	if cfg.Timing.FadeStep <= 0 {
		cfg.Timing.FadeStep = def.Timing.FadeStep
	}
	if cfg.Timing.FadeMax <= 0 {
		cfg.Timing.FadeMax = def.Timing.FadeMax
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".grapplecore", "configs", filename)
}

// ApplyPreset modifies timing and session policy for a named preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *CaveConfig, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetCalm:
		cfg.Session.FreezeDuringFade = true
	case PresetClassic:
		cfg.Session.FreezeDuringFade = false
		cfg.Timing.GrappleTicksPerCell = 3
		cfg.Timing.FallTicksPerCell = 3
		cfg.Timing.FadeStep = 5
	case PresetSlow:
		cfg.Session.FreezeDuringFade = true
		cfg.Timing.GrappleTicksPerCell = 4
		cfg.Timing.FallTicksPerCell = 4
		cfg.Timing.FadeStep = 3
	default:
		return fmt.Errorf("config: unknown preset %q (want one of %v)", preset, Presets())
	}
	return nil
}
