package cave

import (
	"fmt"

	"github.com/vovakirdan/grapplecore/internal/config"
)

// ValidationError contains details about a level that cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeBadGrid         = "BAD_GRID"
	CodeOutOfBounds     = "OUT_OF_BOUNDS"
	CodeBlocked         = "BLOCKED"
	CodeBadPatrol       = "BAD_PATROL"
	CodeUnreachableExit = "UNREACHABLE_EXIT"
)

// ValidateLevel checks a cave configuration and returns the first problem.
// Checks:
//   - The grid is large enough for walls and a floor
//   - Spawn, exit and every hazard sit on open cells inside the cave
//   - Patrol ranges stay inside the cave
//   - Some sequence of moves from the spawn passes through the exit
func ValidateLevel(cfg config.CaveConfig) error {
	if cfg.Grid.Width < 3 || cfg.Grid.Height < 4 {
		return ValidationError{
			Code:    CodeBadGrid,
			Message: fmt.Sprintf("grid %dx%d is smaller than 3x4", cfg.Grid.Width, cfg.Grid.Height),
		}
	}

	w := NewWorld(cfg.Grid, cfg.Level)

	if err := validatePlacement(w, cfg); err != nil {
		return err
	}
	if err := validatePatrols(w, cfg.Hazards); err != nil {
		return err
	}

	spawn := fromConfig(cfg.Level.Spawn)
	exit := fromConfig(cfg.Level.Exit)
	if !Reachable(w, spawn).Reaches(exit) {
		return ValidationError{
			Code:    CodeUnreachableExit,
			Message: fmt.Sprintf("exit %s cannot be reached from spawn %s", exit, spawn),
		}
	}

	return nil
}

// validatePlacement checks that every placed entity starts on an open cell.
func validatePlacement(w *World, cfg config.CaveConfig) error {
	type placed struct {
		name string
		cell config.Cell
	}

	items := []placed{
		{"spawn", cfg.Level.Spawn},
		{"exit", cfg.Level.Exit},
		{"flyer", cfg.Hazards.Flyer.Start},
	}
	for i, c := range cfg.Hazards.Crabs {
		items = append(items, placed{fmt.Sprintf("crab %d", i+1), c.Start})
	}
	for i, p := range cfg.Hazards.Poison {
		items = append(items, placed{fmt.Sprintf("poison %d", i+1), p})
	}

	for _, it := range items {
		c := fromConfig(it.cell)
		if !w.InBounds(c) {
			return ValidationError{
				Code:    CodeOutOfBounds,
				Message: fmt.Sprintf("%s at %s is outside the %dx%d cave", it.name, c, w.Width(), w.Height()),
			}
		}
		if w.IsSolid(c) {
			return ValidationError{
				Code:    CodeBlocked,
				Message: fmt.Sprintf("%s at %s is inside rock", it.name, c),
			}
		}
	}

	return nil
}

// validatePatrols checks that patrol bounds are ordered and inside the cave.
func validatePatrols(w *World, hz config.HazardsConfig) error {
	f := hz.Flyer
	if f.Ceiling > f.Floor || f.Start.Y < f.Ceiling || f.Start.Y > f.Floor {
		return ValidationError{
			Code:    CodeBadPatrol,
			Message: fmt.Sprintf("flyer start row %d outside patrol rows %d..%d", f.Start.Y, f.Ceiling, f.Floor),
		}
	}
	if f.Ceiling < 0 || f.Floor >= w.Height() {
		return ValidationError{
			Code:    CodeBadPatrol,
			Message: fmt.Sprintf("flyer patrol rows %d..%d leave the cave", f.Ceiling, f.Floor),
		}
	}

	for i, c := range hz.Crabs {
		if c.Range < 1 {
			return ValidationError{
				Code:    CodeBadPatrol,
				Message: fmt.Sprintf("crab %d has range %d, want at least 1", i+1, c.Range),
			}
		}
		if end := c.Start.X + c.Range; end >= w.Width() {
			return ValidationError{
				Code:    CodeBadPatrol,
				Message: fmt.Sprintf("crab %d patrols to column %d, outside the cave", i+1, end),
			}
		}
	}

	return nil
}
