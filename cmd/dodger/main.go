// dodger is a shape dodging game: catch falling shapes of your color and
// avoid every other one.
//
// Usage:
//
//	dodger play              - Play in the terminal
//	dodger window            - Play in a desktop window
//	dodger serve             - Start SSH server for remote play
//	dodger scores            - Show high scores
//	dodger simulate          - Run headless games and export a tick trace
//	dodger snapshot          - Run headless and save the final frame as PNG
//	dodger config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.dodger/scores.db)
//	--config <path>     - Load game config from a YAML file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/logging"
	"github.com/vovakirdan/shape-dodger/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Setup flags shared by play, window, simulate and snapshot
	flagShape string
	flagColor string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Shape Dodger - catch your color, dodge the rest",
	Long: `Shape Dodger drops colored shapes from the top of the screen.
Touching a shape of your own color scores points and morphs your shape;
touching any other color ends the game.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run headless games and export a parquet trace
  snapshot  - Run headless and save the final frame as PNG
  config    - Print the default configuration

Examples:
  dodger play
  dodger play --shape circle --color green
  dodger window --seed 42
  dodger serve --ssh :2222
  dodger simulate --games 10 --out trace.parquet`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodger/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(configCmd)
}

// addSetupFlags registers --shape and --color on cmd.
func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagShape, "shape", "", "Player shape: rectangle, circle, triangle, square or 0-3")
	cmd.Flags().StringVar(&flagColor, "color", "", "Player color: red, green, blue, yellow, magenta, cyan or 0-5")
}

// loadConfig loads the game config or exits.
func loadConfig() config.DodgerConfig {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// resolveSetup picks the player shape and color from flags, falling back to
// the config defaults. explicit is true when either flag was given.
func resolveSetup(cfg config.DodgerConfig) (kind dodger.Kind, color dodger.ColorID, explicit bool) {
	kind = dodger.KindFromIndex(cfg.Player.Shape)
	color = dodger.ColorFromIndex(cfg.Player.Color)

	if flagShape != "" {
		k, err := dodger.ParseKind(flagShape)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		kind = k
		explicit = true
	}
	if flagColor != "" {
		c, err := dodger.ParseColor(flagColor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		color = c
		explicit = true
	}
	return kind, color, explicit
}

// newLogger builds a stderr logger at the --log-level.
func newLogger(prefix string) *log.Logger {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	return logging.New(prefix, level)
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
