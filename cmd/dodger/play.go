package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Without --shape or --color an interactive picker is shown first.

Controls:
  Left/A, Right/D  - Move
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to setup (paused or game over)
  Ctrl+S           - Save a PNG screenshot
  Q/Ctrl+C         - Quit

Examples:
  dodger play
  dodger play --shape triangle --color cyan
  dodger play --seed 42 --fps 30`,
	Run: runPlay,
}

func init() {
	addSetupFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	kind, color, explicit := resolveSetup(cfg)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Only startup warnings reach stderr; the session itself runs unlogged
	// while the alt screen owns the terminal.
	logger := newLogger("dodger")
	store := openStore(logger)

	runErr := tui.RunSession(tui.SessionOptions{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Player:    currentUser(),
		Store:     store,
		Initial:   tui.Setup{Kind: kind, Color: color},
		SkipSetup: explicit,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// currentUser names the local player for the scoreboard.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "player"
}
