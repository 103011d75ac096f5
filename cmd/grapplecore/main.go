// grapplecore is a turn-synchronized grappling-hook cave platformer for the
// terminal.
//
// Usage:
//
//	grapplecore                   - Play (same as "grapplecore play")
//	grapplecore play              - Play interactively
//	grapplecore replay --moves M  - Run a move script headlessly and print the result
//	grapplecore level             - Print, validate and analyse the cave layout
//	grapplecore runs              - Browse the ledger of finished lives
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set run ledger path (default: ~/.grapplecore/runs.db)
//	--config <path>      - Load a custom cave YAML
//	--preset <name>      - Tuning preset: calm, classic, slow
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log destination while playing (default: ~/.grapplecore/grapplecore.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "grapplecore",
	Short: "Grapplecore - grapple your way out of the cave",
	Long: `Grapplecore is a turn-based cave platformer played in the terminal.

Every cell you move, the cave moves with you: the bat flaps, the crabs
scuttle. Stand still and nothing happens. Grapple crabs for amber, spend
amber to survive poison, and reach the exit.

Available commands:
  play     - Play interactively (default)
  replay   - Run a scripted sequence of moves without a terminal UI
  level    - Show and validate the cave layout
  runs     - Browse finished lives

Examples:
  grapplecore
  grapplecore play --preset classic
  grapplecore replay --moves "d>^"
  grapplecore level --config ./my-cave.yaml
  grapplecore runs --plain`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")
	pf.StringVar(&flagDBPath, "db", "~/.grapplecore/runs.db", "Path to run ledger database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom cave config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Tuning preset: calm, classic, slow")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.grapplecore/grapplecore.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(runsCmd)
}
