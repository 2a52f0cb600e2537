package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/platform/tui"
	"github.com/vovakirdan/neon-dodge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Neon Dodge straight away.

Controls:
  Arrows/WASD  - Steer (hold to keep moving)
  P/Space      - Pause
  Esc/B        - Pause, then back out
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  neondodge play
  neondodge play --difficulty hard
  neondodge play --seed 42 --fps 30
  neondodge play --config ./my-neondodge.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := screenLogger()
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		fatal("creating game: %v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(), logger, playerName()); err != nil {
		fatal("running game: %v", err)
	}
}
