package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grapplecore/internal/platform/tui"
	"github.com/vovakirdan/grapplecore/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsClear bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse finished lives",
	Long: `Show the ledger of finished lives: how each one ended, how many turns it
took and how much amber was held.

Examples:
  grapplecore runs
  grapplecore runs --plain --limit 10
  grapplecore runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain text table instead of the interactive viewer")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show with --plain")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		logger.Info("run ledger cleared", "db", flagDBPath)
		return nil
	}

	if !flagRunsPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.ShowRunHistory(store, width, height)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-6s  %-6s  %-5s  %s\n", "#", "Outcome", "Cause", "Turns", "Amber", "Life", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-12s  %-6s  %-6s  %-5s  %s\n", "-", "-------", "-----", "-----", "-----", "----", "----")
	for i, r := range runs {
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8s  %-12s  %-6d  %-6d  %-5d  %s\n",
			i+1, r.Outcome, cause, r.Turns, r.Amber, r.Life, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.FormatStats(stats))
	return nil
}
