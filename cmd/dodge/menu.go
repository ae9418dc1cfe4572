package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a variant and Tab to
browse recorded runs. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Recorded runs
  Q            - Quit

Examples:
  dodge menu
  dodge menu --fps 30
  dodge menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound and music")
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := interactiveLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	player := openAudio(gameCfg.Audio, logger)
	defer player.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsRuns {
			browseRuns(store, cfg.ScreenW, cfg.ScreenH)
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if p, ok := game.(pinnable); ok {
			p.UseConfig(gameCfg)
		}

		// Fresh seed per game unless one was pinned on the command line
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		if _, err := tui.Run(game, runCfg, tui.Options{
			Store:  store,
			Audio:  player,
			Logger: logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}

// browseRuns shows the run browser and plays back picked runs until the
// user leaves it.
func browseRuns(store *storage.Store, width, height int) {
	for {
		id, err := tui.RunRunsBrowser(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if id == "" {
			return
		}

		run, err := store.RunByID(id)
		if err != nil || run == nil {
			fmt.Fprintf(os.Stderr, "Error loading run %s: %v\n", id, err)
			return
		}
		if err := tui.RunReplay(run, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
}
