package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grapplecore/internal/core"
	"github.com/vovakirdan/grapplecore/internal/games/cave"
	"github.com/vovakirdan/grapplecore/internal/platform/tui"
	"github.com/vovakirdan/grapplecore/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Grapplecore",
	Long: `Start playing in the terminal.

Controls:
  A / D        - Step left / right
  W / Space    - Jump one cell
  Arrow keys   - Fire the grapple left, right or up
  P / Esc      - Pause
  Ctrl+S       - Save a text screenshot
  Q / Ctrl+C   - Quit

The terminal must be at least 64x24. Logs go to --log-file while playing.

Examples:
  grapplecore play
  grapplecore play --preset classic
  grapplecore play --config ./my-cave.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	caveCfg, err := loadCave(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// The ledger is optional; play continues without it.
	var runs tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		cmd.PrintErrf("Warning: could not open run ledger: %v\n", err)
	} else {
		defer store.Close()
		runs = store
	}

	return tui.Run(cave.New(caveCfg), runs, logger, cfg)
}
