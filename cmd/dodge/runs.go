package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Browse recorded runs",
	Long: `Browse the run journal, newest first.

Interactively, pick a run with Enter to watch it, x deletes it and Tab
switches the variant filter. With --plain the runs are printed instead.

Examples:
  dodge runs
  dodge runs --plain
  dodge runs classic --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs instead of opening the browser")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print with --plain")
}

func runRuns(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagRunsPlain {
		width, height := terminalSize()
		browseRuns(store, width, height)
		return
	}

	runs, err := store.RecentRuns(gameID, flagRunsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to record one!")
		return
	}

	total, err := store.CountRuns(gameID)
	if err != nil {
		total = len(runs)
	}

	fmt.Printf("  %-8s  %-8s  %8s  %7s  %s\n", "Run", "Variant", "Score", "Length", "When")
	fmt.Printf("  %-8s  %-8s  %8s  %7s  %s\n", "---", "-------", "-----", "------", "----")
	now := time.Now()
	for _, r := range runs {
		secs := r.Ticks / max(r.TickRate, 1)
		fmt.Printf("  %-8s  %-8s  %8s  %7s  %s\n",
			r.ID[:min(8, len(r.ID))],
			r.GameID,
			humanize.Comma(int64(r.Score)),
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		)
	}

	fmt.Println()
	fmt.Printf("Showing %d of %s runs. Watch one with 'dodge replay <run> --watch'.\n", len(runs), humanize.Comma(int64(total)))
}
