package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/sim"
	"github.com/vovakirdan/shape-dodger/internal/trace"
)

var (
	flagSimTicks int
	flagSimGames int
	flagSimPilot string
	flagSimOut   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless games and export a tick trace",
	Long: `Run games without a display, driven by a scripted pilot.

Pilots:
%s
With --out every tick is written to a zstd-compressed parquet file.

Examples:
  dodger simulate --seed 1
  dodger simulate --games 20 --pilot random --out runs.parquet
  dodger simulate --ticks 50000 --shape square --color yellow`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

// pilotList renders the registered pilots for help text.
func pilotList() string {
	var b strings.Builder
	for _, p := range sim.Pilots() {
		fmt.Fprintf(&b, "  %-8s - %s\n", p.Name, p.Description)
	}
	return b.String()
}

func init() {
	simulateCmd.Long = fmt.Sprintf(simulateCmd.Long, pilotList())
	addSetupFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 10_000, "Maximum ticks across all games")
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1, "Games to play, restarting after each game over")
	simulateCmd.Flags().StringVar(&flagSimPilot, "pilot", "chase", "Input pilot: chase, random, idle")
	simulateCmd.Flags().StringVar(&flagSimOut, "out", "", "Write a parquet tick trace to this path")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	kind, color, _ := resolveSetup(cfg)
	logger := newLogger("dodger-sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pilot, err := sim.ParsePilot(flagSimPilot, cfg, dodger.NewRand(seed+1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var rec *trace.Recorder
	if flagSimOut != "" {
		rec = trace.NewRecorder(fmt.Sprintf("%s-%d", pilot.Name(), seed), seed)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	sum, err := sim.Run(ctx, sim.Options{
		Config:   cfg,
		Seed:     seed,
		Kind:     kind,
		Color:    color,
		MaxTicks: flagSimTicks,
		Pilot:    pilot,
		Games:    flagSimGames,
		Recorder: rec,
		Logger:   logger,
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("simulation finished",
		"seed", seed,
		"pilot", pilot.Name(),
		"ticks", sum.Ticks,
		"games", sum.Games,
		"best", sum.BestScore,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Pilot:    %s\n", pilot.Name())
	fmt.Printf("Setup:    %s %s\n", kind, color)
	fmt.Printf("Ticks:    %d\n", sum.Ticks)
	fmt.Printf("Games:    %d\n", sum.Games)
	fmt.Printf("Spawned:  %d\n", sum.Spawned)
	fmt.Printf("Scored:   %d\n", sum.Scored)
	fmt.Printf("Scores:   %v\n", sum.Scores)
	fmt.Printf("Best:     %d\n", sum.BestScore)

	if rec != nil {
		if err := rec.WriteFile(flagSimOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing trace: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Trace:    %s (%d rows)\n", flagSimOut, rec.Len())
	}

	if ctx.Err() != nil {
		fmt.Println("Interrupted before all games finished.")
	}
}
