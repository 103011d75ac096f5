package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grapplecore/internal/core"
	"github.com/vovakirdan/grapplecore/internal/games/cave"
	"github.com/vovakirdan/grapplecore/internal/platform/tui"
	"github.com/vovakirdan/grapplecore/internal/storage"
)

var (
	flagMoves     string
	flagWaitTicks int
	flagRecord    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a move script headlessly",
	Long: `Play a scripted sequence of turns without a terminal UI, then print the
final frame and the run totals. Between moves the cave idles until the
player can act again.

Moves:
  a / d   - Step left / right
  w       - Jump
  < > ^   - Grapple left, right, up

Examples:
  grapplecore replay --moves "d>^"
  grapplecore replay --moves "d > ^" --preset slow --log-level debug
  grapplecore replay --moves "d>" --record`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script (required)")
	replayCmd.Flags().IntVar(&flagWaitTicks, "wait", 1000, "Maximum ticks to wait for each turn")
	replayCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished lives to the run ledger")
	_ = replayCmd.MarkFlagRequired("moves")
}

func runReplay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	caveCfg, err := loadCave(logger)
	if err != nil {
		return err
	}

	moves, err := cave.ParseMoves(flagMoves)
	if err != nil {
		return err
	}

	game := cave.New(caveCfg)
	game.Reset(core.DefaultConfig())
	events := game.Lifecycle().RunScript(moves, flagWaitTicks)

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for _, ev := range events {
		tui.LogEvent(logger, ev)
		if run, ok := storage.RunFromEvent(ev); ok && store != nil {
			if _, err := store.SaveRun(run); err != nil {
				return err
			}
		}
	}

	snap := game.Snapshot()
	scr := core.NewScreen(snap.Width*2, snap.Height)
	game.Render(scr)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, scr.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Ticks: %d  Moves: %d  Life: %d  Escapes: %d  Deaths: %d\n",
		snap.Tick, len(moves), snap.Tally.Life, snap.Tally.Escapes, snap.Tally.Deaths)
	fmt.Fprintf(out, "Player: %v  Amber: %d  Turns this life: %d\n", snap.Player, snap.Amber, snap.Turns)
	if snap.Tally.BestTurns > 0 {
		fmt.Fprintf(out, "Best escape: %d turns\n", snap.Tally.BestTurns)
	}
	return nil
}
