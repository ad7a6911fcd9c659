package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mouse-dash/internal/assets"
	"github.com/vovakirdan/mouse-dash/internal/core"
	"github.com/vovakirdan/mouse-dash/internal/games/dash"
	"github.com/vovakirdan/mouse-dash/internal/platform/tui"
	"github.com/vovakirdan/mouse-dash/internal/storage"
)

var (
	flagConfig   string
	flagAssetDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Mouse Dash",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD - Move
  1/2/3       - Pick difficulty and start (menu)
  Enter/Space - Start run / play again
  P/Esc       - Pause
  R           - Restart run
  M           - Back to menu (paused / game over)
  Q           - Back to menu; quit from the menu
  Ctrl+C      - Quit immediately

Examples:
  mousedash play
  mousedash play --seed 42
  mousedash play --config ./my-dash.yaml
  mousedash play --assets ./art`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagAssetDir, "assets", ".", "Directory probed for sprite art")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	dash.SetConfigPath(flagConfig)

	game := dash.New()
	game.AttachAssets(assets.Load(flagAssetDir, nil))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
	} else {
		game.AttachScores(store)
	}

	runErr := tui.Run(game, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
