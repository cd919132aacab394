package analysis

import (
	"fmt"
	"strings"

	"github.com/sonyahq/sleep-coach/pkg/stats"
)

// minClusterRecords is the minimum number of usable nights before a
// two-cluster partition says anything meaningful.
const minClusterRecords = 10

// differentiatorRatio: a feature differentiates bad nights from good ones
// when the bad-cluster mean exceeds the good-cluster mean by more than half
// the good-cluster mean.
const differentiatorRatio = 0.5

// analyzeClusters partitions nights into two archetypes by duration,
// quality, awakenings, and stress, labels the cluster with higher mean
// quality as the good one, and reports which features separate bad nights
// from good ones. Degenerate input (zero-variance features, inseparable
// nights) yields an empty result rather than an error.
func analyzeClusters(ds Dataset) Result {
	if len(ds.Rows) < minClusterRecords {
		return skipped(AnalyzerCluster,
			fmt.Sprintf("need at least %d records, have %d", minClusterRecords, len(ds.Rows)))
	}

	features := make([][]float64, len(ds.Rows))
	for i, row := range ds.Rows {
		features[i] = []float64{
			row.Record.SleepDuration,
			float64(row.Record.SleepQuality),
			float64(row.Record.Awakenings),
			float64(row.Record.StressLevel),
		}
	}

	scaled, err := stats.Standardize(features)
	if err != nil {
		return emptyResult(AnalyzerCluster, "degenerate features: "+err.Error())
	}

	assignments, err := stats.KMeans2(scaled)
	if err != nil {
		return emptyResult(AnalyzerCluster, "clustering failed: "+err.Error())
	}

	var quality, awakenings, stress [2][]float64
	for i, c := range assignments {
		quality[c] = append(quality[c], float64(ds.Rows[i].Record.SleepQuality))
		awakenings[c] = append(awakenings[c], float64(ds.Rows[i].Record.Awakenings))
		stress[c] = append(stress[c], float64(ds.Rows[i].Record.StressLevel))
	}
	if len(quality[0]) == 0 || len(quality[1]) == 0 {
		return emptyResult(AnalyzerCluster, "clustering collapsed to a single group")
	}

	good := 0
	if stats.Mean(quality[1]) > stats.Mean(quality[0]) {
		good = 1
	}
	bad := 1 - good

	type diff struct {
		label string
		delta float64
	}
	var diffs []diff
	if d := stats.Mean(stress[bad]) - stats.Mean(stress[good]); d > differentiatorRatio*stats.Mean(stress[good]) {
		diffs = append(diffs, diff{label: "stress", delta: d})
	}
	if d := stats.Mean(awakenings[bad]) - stats.Mean(awakenings[good]); d > differentiatorRatio*stats.Mean(awakenings[good]) {
		diffs = append(diffs, diff{label: "awakenings", delta: d})
	}

	if len(diffs) == 0 {
		return emptyResult(AnalyzerCluster, "")
	}

	var sb strings.Builder
	sb.WriteString("Your data shows two kinds of nights: good sleep and bad sleep. On the bad nights there are:\n")
	for _, d := range diffs {
		switch d.label {
		case "stress":
			fmt.Fprintf(&sb, "- Noticeably higher stress levels (+%.1f points)\n", d.delta)
		case "awakenings":
			fmt.Fprintf(&sb, "- More awakenings (+%.1f)\n", d.delta)
		}
	}
	sb.WriteString("\nOn high-stress days, try:\n")
	sb.WriteString("- A relaxation technique before bed\n")
	sb.WriteString("- A cup of chamomile tea\n")
	sb.WriteString("- An earlier bedtime")

	return findings(AnalyzerCluster, []string{sb.String()})
}
