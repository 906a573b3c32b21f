// Package sim drives a game without a display, for traces, snapshots and
// quick balance checks.
package sim

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-dodger/internal/config"
	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
	"github.com/vovakirdan/shape-dodger/internal/logging"
	"github.com/vovakirdan/shape-dodger/internal/trace"
)

// Options configures a headless run.
type Options struct {
	Config   config.DodgerConfig
	Seed     int64
	Kind     dodger.Kind
	Color    dodger.ColorID
	MaxTicks int
	Pilot    Pilot // Chase when nil
	Games    int   // Restart after game over until this many games end; 0 means 1

	Recorder *trace.Recorder // Optional
	Logger   *log.Logger     // Optional
}

// Summary describes the outcome of a run.
type Summary struct {
	Ticks     int
	Games     int // Games that ended in game over
	Scores    []int
	BestScore int
	Spawned   int
	Scored    int
	Final     dodger.State
}

// Run advances a fresh game until the requested number of games end, the
// tick budget runs out, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 10_000
	}
	if opts.Games <= 0 {
		opts.Games = 1
	}
	pilot := opts.Pilot
	if pilot == nil {
		pilot = NewChase(opts.Config)
	}

	g := dodger.New(opts.Config, dodger.NewRand(opts.Seed), nil)
	g.Reset(opts.Kind, opts.Color)

	var sum Summary
	frame := core.NewInputFrame()
	// snap is the state after the last tick, shared by the pilot and recorder
	snap := g.Snapshot()
	for sum.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			sum.Final = snap
			return sum, err
		}

		frame.Clear()
		if snap.Over {
			frame.Set(core.ActionRestart)
		} else {
			pilot.Decide(snap, &frame)
		}
		in := frame.Clone()

		res := g.Tick(&frame)
		snap = g.Snapshot()
		sum.Ticks++
		logging.Events(opts.Logger, res)

		for _, e := range res.Events {
			switch e.Kind {
			case core.EventSpawned:
				sum.Spawned++
			case core.EventScored:
				sum.Scored++
			case core.EventGameOver:
				sum.Games++
				sum.Scores = append(sum.Scores, e.Score)
				sum.BestScore = max(sum.BestScore, e.Score)
			}
		}

		if opts.Recorder != nil {
			opts.Recorder.Record(in, snap, res)
		}

		if sum.Games >= opts.Games {
			break
		}
	}

	sum.Final = snap
	return sum, nil
}
