package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodge/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Neon Dodge in interactive menu mode.

The menu offers Play, High Scores and Quit. After a run you return to the
menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  neondodge menu
  neondodge menu --fps 30
  neondodge menu --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := screenLogger()
	if err != nil {
		fatal("%v", err)
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.RunSession(store, logger, tui.SessionOptions{
		GameID:  gameID,
		Config:  cfg,
		Runtime: runtimeConfig(),
		Player:  playerName(),
	})
	if err != nil {
		fatal("%v", err)
	}
}
