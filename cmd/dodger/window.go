package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and start a game immediately.

Controls:
  Left/A, Right/D  - Move
  R                - Restart (after game over)
  Esc/Q            - Quit

Examples:
  dodger window
  dodger window --shape circle --color blue --log-level debug`,
	Run: runWindow,
}

func init() {
	addSetupFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	kind, color, _ := resolveSetup(cfg)

	logger := newLogger("dodger")
	store := openStore(logger)

	runErr := window.Run(window.Options{
		Config:  cfg,
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Kind:    kind,
		Color:   color,
		Player:  currentUser(),
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
