// Package logging builds the charmbracelet loggers shared by every host and
// reports simulation events through them.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shape-dodger/internal/core"
)

// ScoreEvery is the tick interval of the periodic score line.
const ScoreEvery = 100

// New returns a timestamped logger writing to stderr.
func New(prefix string, level log.Level) *log.Logger {
	return NewWriter(os.Stderr, prefix, level)
}

// NewWriter returns a timestamped logger writing to w.
func NewWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger
}

// ParseLevel accepts debug, info, warn, error or fatal.
func ParseLevel(s string) (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return lvl, nil
}

// Events logs the notable outcomes of one tick. Spawns and scores go to debug,
// game over and restarts to info. Every ScoreEvery ticks the running score is
// logged at debug level.
func Events(logger *log.Logger, res core.StepResult) {
	if logger == nil {
		return
	}
	for _, e := range res.Events {
		switch e.Kind {
		case core.EventGameOver:
			logger.Info("Game Over!", "score", e.Score, "ticks", res.State.Ticks)
		case core.EventRestarted:
			logger.Info("restarted")
		default:
			logger.Debug(e.Kind.String(), "score", e.Score)
		}
	}

	if !res.State.GameOver && res.State.Ticks > 0 && res.State.Ticks%ScoreEvery == 0 {
		logger.Debug("Score", "score", res.State.Score, "ticks", res.State.Ticks)
	}
}
