package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/games/cave"
)

// newLogger builds the command-line logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "grapplecore",
		Level:           level,
	}), nil
}

// openLogFile opens the play log for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// loadCave loads the cave config, applies the preset and validates the level.
func loadCave(logger *log.Logger) (config.CaveConfig, error) {
	cfg, err := config.LoadCave(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	if err := cave.ValidateLevel(cfg); err != nil {
		return cfg, fmt.Errorf("invalid cave: %w", err)
	}

	logger.Debug("cave loaded",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"crabs", len(cfg.Hazards.Crabs),
		"poison", len(cfg.Hazards.Poison),
		"preset", flagPreset,
		"freeze_during_fade", cfg.Session.FreezeDuringFade,
	)
	return cfg, nil
}
