package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/grapplecore/internal/config"
	"github.com/vovakirdan/grapplecore/internal/core"
	"github.com/vovakirdan/grapplecore/internal/games/cave"
)

var flagLevelYAML bool

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Show and validate the cave layout",
	Long: `Print the cave as it will be played, check that it is well formed and
report how many resting cells the player can reach from the spawn.

Examples:
  grapplecore level
  grapplecore level --config ./my-cave.yaml
  grapplecore level --preset slow --yaml`,
	Args: cobra.NoArgs,
	RunE: runLevel,
}

func init() {
	levelCmd.Flags().BoolVar(&flagLevelYAML, "yaml", false, "Print the effective config as YAML")
}

func runLevel(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadCave(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if flagLevelYAML {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("cannot encode config: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	game := cave.New(cfg)
	game.Reset(core.DefaultConfig())
	snap := game.Snapshot()
	scr := core.NewScreen(snap.Width*2, snap.Height)
	game.Render(scr)
	fmt.Fprintln(out, scr.String())
	fmt.Fprintln(out)

	world := game.Lifecycle().Session().World
	spawn := cave.C(cfg.Level.Spawn.X, cfg.Level.Spawn.Y)
	reach := cave.Reachable(world, spawn)
	exit := cave.C(cfg.Level.Exit.X, cfg.Level.Exit.Y)

	fmt.Fprintf(out, "Grid:        %dx%d\n", world.Width(), world.Height())
	fmt.Fprintf(out, "Spawn:       %v\n", spawn)
	fmt.Fprintf(out, "Exit:        %v (reachable: %t)\n", exit, reach.Reaches(exit))
	fmt.Fprintf(out, "Rest cells:  %d reachable\n", len(reach.Rest))
	fmt.Fprintf(out, "Crabs:       %d\n", len(cfg.Hazards.Crabs))
	fmt.Fprintf(out, "Poison:      %d cells\n", len(cfg.Hazards.Poison))

	if err := cave.ValidateLevel(cfg); err != nil {
		var verr cave.ValidationError
		if errors.As(err, &verr) {
			logger.Error("level check failed", "code", verr.Code, "message", verr.Message)
		}
		return fmt.Errorf("invalid cave: %w", err)
	}
	fmt.Fprintln(out, "Status:      OK")
	return nil
}
