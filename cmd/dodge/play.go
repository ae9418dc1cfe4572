package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/audio"
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var flagNoAudio bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: dodge).

Terminals report key presses but not releases, so a direction stays held
while the key auto-repeats and for a moment after. Press the other
direction or space to stop at once.

Controls:
  Left/A/H   - Move left
  Right/D/L  - Move right
  Space/S    - Stop
  P/Esc      - Pause
  R          - Restart (the finished run is saved)
  M          - Toggle music
  Ctrl+S     - Screenshot to ~/.dodge/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow blocks, long spawn interval
  normal - The default ramp
  hard   - Fast blocks from the start
  fixed  - No progression

Examples:
  dodge play
  dodge play classic
  dodge play --difficulty hard --seed 42
  dodge play --config ./my-dodge.yaml --no-audio`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound and music")
}

// pinnable is implemented by games that accept a preloaded config.
type pinnable interface {
	UseConfig(cfg config.DodgeConfig)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "dodge"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available variants.")
		os.Exit(1)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := interactiveLogger()

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if p, ok := game.(pinnable); ok {
		p.UseConfig(gameCfg)
	}

	store := openStore(logger)
	player := openAudio(gameCfg.Audio, logger)

	lastRun, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
	})

	// Release resources before potential exit
	player.Close()
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if lastRun != "" {
		fmt.Printf("Last run saved as %s. Watch it with: dodge replay %s --watch\n", lastRun[:8], lastRun[:8])
	}
}

// openStore opens the run journal. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("runs will not be recorded", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openAudio opens the speaker unless --no-audio is set.
func openAudio(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if flagNoAudio {
		cfg.Enabled = false
	}
	return audio.Open(cfg, logger)
}
