// Package trace records per-tick game state and exports it as Parquet.
package trace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// SchemaVersion is stored in the file metadata under the "schema" key.
const SchemaVersion = "dodger_tick_v1"

// TickRow is one simulated frame.
type TickRow struct {
	RunID   string `parquet:"run_id,dict"`
	Seed    int64  `parquet:"seed"`
	Tick    int32  `parquet:"tick"`
	Left    bool   `parquet:"left"`
	Right   bool   `parquet:"right"`
	Restart bool   `parquet:"restart"`

	PlayerX     float32 `parquet:"player_x"`
	PlayerKind  string  `parquet:"player_kind,dict"`
	PlayerColor string  `parquet:"player_color,dict"`

	Score int32 `parquet:"score"`
	Over  bool  `parquet:"over"`

	ObstacleX    []float32 `parquet:"obstacle_x"`
	ObstacleY    []float32 `parquet:"obstacle_y"`
	ObstacleKind []int32   `parquet:"obstacle_kind"`

	Events []string `parquet:"events"`
}

// Recorder accumulates rows for a single run.
type Recorder struct {
	runID string
	seed  int64
	rows  []TickRow
}

// NewRecorder creates an empty recorder.
func NewRecorder(runID string, seed int64) *Recorder {
	return &Recorder{runID: runID, seed: seed}
}

// Record appends the frame produced by one Tick. in is the input as it was
// before the tick consumed any restart signal.
func (r *Recorder) Record(in core.InputFrame, s dodger.State, res core.StepResult) {
	row := TickRow{
		RunID:       r.runID,
		Seed:        r.seed,
		Tick:        int32(len(r.rows)),
		Left:        in.Has(core.ActionLeft),
		Right:       in.Has(core.ActionRight),
		Restart:     in.Has(core.ActionRestart),
		PlayerX:     float32(s.Player.X),
		PlayerKind:  s.Player.Kind.String(),
		PlayerColor: colorName(s.Player.Color),
		Score:       int32(res.State.Score),
		Over:        res.State.GameOver,
	}

	if n := len(s.Obstacles); n > 0 {
		row.ObstacleX = make([]float32, n)
		row.ObstacleY = make([]float32, n)
		row.ObstacleKind = make([]int32, n)
		for i, o := range s.Obstacles {
			row.ObstacleX[i] = float32(o.X)
			row.ObstacleY[i] = float32(o.Y)
			row.ObstacleKind[i] = int32(o.Kind)
		}
	}

	for _, e := range res.Events {
		row.Events = append(row.Events, e.Kind.String())
	}

	r.rows = append(r.rows, row)
}

// Rows returns the recorded rows.
func (r *Recorder) Rows() []TickRow {
	return r.rows
}

// Len returns the number of recorded rows.
func (r *Recorder) Len() int {
	return len(r.rows)
}

// WriteFile exports the recorded rows to outPath.
func (r *Recorder) WriteFile(outPath string) error {
	return Write(outPath, r.rows)
}

// Write stores rows as a zstd-compressed Parquet file. The file is written
// to a temporary path and renamed into place.
func Write(outPath string, rows []TickRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("trace: create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SchemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("trace: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("trace: rename parquet: %w", err)
	}
	return nil
}

// Read loads every row from a trace file.
func Read(path string) ([]TickRow, error) {
	rows, err := parquet.ReadFile[TickRow](path)
	if err != nil {
		return nil, fmt.Errorf("trace: read parquet: %w", err)
	}
	return rows, nil
}

func colorName(c dodger.RGB) string {
	if id, ok := dodger.Lookup(c); ok {
		return id.String()
	}
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255))
}
