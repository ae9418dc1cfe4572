package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var flagReplayWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Verify or watch a recorded run",
	Long: `Replay a run from the journal. A unique prefix of the run ID is enough.

By default the run is replayed headless and the replayed score is
compared with the recorded one; the command fails on a mismatch.
With --watch the run is played back in the terminal.

Playback controls:
  Space/P  - Pause
  +/-      - Faster/slower
  Q/Esc    - Quit

Examples:
  dodge replay 3f2a9c1e
  dodge replay 3f2a --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Play the run back on screen")
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}

	run, err := store.RunByID(args[0])
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run matches %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'dodge runs --plain' to list recorded runs.")
		os.Exit(1)
	}

	if flagReplayWatch {
		width, height := terminalSize()
		if err := tui.RunReplay(run, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	res, err := replay.Verify(run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s (%s, seed %d, %d ticks at %d fps)\n", run.ID, run.GameID, run.Seed, run.Ticks, run.TickRate)
	fmt.Printf("  recorded score: %d\n", res.Expected)
	fmt.Printf("  replayed score: %d (%s after %d ticks)\n", res.Snapshot.Score, res.Snapshot.State, res.Snapshot.Tick)

	if !res.Matches() {
		fmt.Println("MISMATCH: the replay diverged from the recording")
		os.Exit(1)
	}
	fmt.Println("OK")
}
