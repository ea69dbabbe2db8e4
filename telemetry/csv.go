package telemetry

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
)

// MetricsRow is one tick's worth of resolution metrics, shaped for
// both structured logging and CSV export.
type MetricsRow struct {
	Tick               int64 `csv:"tick"`
	ClusterCount       int   `csv:"cluster_count"`
	PermutationsTested int   `csv:"permutations_tested"`
	StalemateCount     int   `csv:"stalemate_count"`
	SuccessCount       int   `csv:"success_count"`
	HeuristicFallbacks int   `csv:"heuristic_fallbacks"`
}

// LogValue implements slog.LogValuer.
func (r MetricsRow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", r.Tick),
		slog.Int("cluster_count", r.ClusterCount),
		slog.Int("permutations_tested", r.PermutationsTested),
		slog.Int("stalemate_count", r.StalemateCount),
		slog.Int("success_count", r.SuccessCount),
		slog.Int("heuristic_fallbacks", r.HeuristicFallbacks),
	)
}

// Dump writes rows to path as CSV, overwriting any existing file. A
// one-shot writer is enough: the replay CLI holds its whole run's
// rows in memory rather than streaming them tick by tick.
func Dump(path string, rows []MetricsRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		return fmt.Errorf("writing metrics csv: %w", err)
	}
	return nil
}
