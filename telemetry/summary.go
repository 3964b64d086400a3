package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NodeCostSummary reports the distribution of g-costs across every node a
// finished search expanded, letting a caller sanity-check how much of the
// run was spent on cheap coasting versus expensive press/jump sequences.
type NodeCostSummary struct {
	Count  int     `csv:"count"`
	Mean   float64 `csv:"mean"`
	P10    float64 `csv:"p10"`
	P50    float64 `csv:"p50"`
	P90    float64 `csv:"p90"`
	Max    float64 `csv:"max"`
}

// Summarize computes quantiles over costs, which must already be sorted
// ascending (stat.Quantile requires it).
func Summarize(sortedCosts []float64) NodeCostSummary {
	n := len(sortedCosts)
	if n == 0 {
		return NodeCostSummary{}
	}

	mean := stat.Mean(sortedCosts, nil)

	return NodeCostSummary{
		Count: n,
		Mean:  mean,
		P10:   stat.Quantile(0.10, stat.Empirical, sortedCosts, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sortedCosts, nil),
		P90:   stat.Quantile(0.90, stat.Empirical, sortedCosts, nil),
		Max:   sortedCosts[n-1],
	}
}

// SortedCosts returns costs sorted ascending, ready for Summarize.
func SortedCosts(costs []float64) []float64 {
	sorted := make([]float64, len(costs))
	copy(sorted, costs)
	sort.Float64s(sorted)
	return sorted
}

// LogSummary writes s as one structured "node cost summary" line via slog.
func LogSummary(logger *slog.Logger, label string, s NodeCostSummary) {
	logger.Info("node cost summary",
		slog.String("label", label),
		slog.Int("count", s.Count),
		slog.Float64("mean", s.Mean),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("max", s.Max),
	)
}
