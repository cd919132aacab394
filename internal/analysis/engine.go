package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sonyahq/sleep-coach/internal/domain"
)

const (
	// MinHistoryRecords is the engine-wide minimum-history gate: with less
	// diary data than this, no statistical analyzer runs at all.
	MinHistoryRecords = 7

	// MaxRecommendations caps the final list at the highest-priority
	// (earliest-emitted) entries.
	MaxRecommendations = 5
)

const (
	// NoticeNeedMoreData is the single message returned below the
	// minimum-history gate.
	NoticeNeedMoreData = "I need more data about your sleep for an accurate analysis. " +
		"Please keep filling out the surveys for a few more days."

	// NoticeKeepGoing is the fallback when every analyzer came back empty.
	NoticeKeepGoing = "I don't have specific recommendations for you yet. " +
		"Keep filling out the surveys!"
)

// Engine runs the full analysis pipeline over one user's diary snapshot.
// It is stateless and side-effect free; concurrent invocations for
// different users need no coordination.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Report is the outcome of one engine invocation.
type Report struct {
	// Recommendations is the final merged, deduplicated, truncated list.
	Recommendations []string
	// Results holds per-analyzer outcomes in merge order.
	Results []Result
	// RecordCount is the number of diary records the engine received.
	RecordCount int
}

// Analyze derives metrics from the records and runs all analyzers. The four
// data-dependent analyzers run concurrently; the aggregation waits for all
// of them plus the profile recommender before merging. The only error it
// can return is a missing/unusable profile; analyzer-level failures are
// absorbed into their Result.
func (e *Engine) Analyze(ctx context.Context, user domain.User, records []domain.DiaryRecord) (*Report, error) {
	if user.Age < 1 || user.Age > 120 {
		return nil, domain.ErrMissingProfile
	}

	report := &Report{RecordCount: len(records)}

	if len(records) < MinHistoryRecords {
		reason := "fewer than the minimum of 7 diary records"
		report.Results = []Result{
			skipped(AnalyzerBaseline, reason),
			skipped(AnalyzerCorrelation, reason),
			skipped(AnalyzerTemporal, reason),
			skipped(AnalyzerCluster, reason),
			skipped(AnalyzerProfile, reason),
		}
		report.Recommendations = []string{NoticeNeedMoreData}
		return report, nil
	}

	ds := Derive(records)

	// Fixed merge order: baseline, correlation, temporal, cluster, profile.
	results := make([]Result, 5)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		results[0] = analyzeBaseline(ds, user)
		return nil
	})
	g.Go(func() error {
		results[1] = analyzeCorrelation(ds, user)
		return nil
	})
	g.Go(func() error {
		results[2] = analyzeTemporal(ds)
		return nil
	})
	g.Go(func() error {
		results[3] = analyzeClusters(ds)
		return nil
	})
	g.Go(func() error {
		results[4] = profileRecommendations(user)
		return nil
	})

	// Analyzers never return errors; Wait is purely the join barrier.
	_ = g.Wait()

	report.Results = results
	report.Recommendations = mergeRecommendations(results)
	return report, nil
}

// mergeRecommendations concatenates analyzer output in merge order, drops
// exact-text duplicates keeping the first occurrence, truncates to the cap,
// and substitutes the fallback notice when nothing remains.
func mergeRecommendations(results []Result) []string {
	seen := make(map[string]struct{})
	var merged []string

	for _, res := range results {
		for _, rec := range res.Recommendations {
			if _, dup := seen[rec]; dup {
				continue
			}
			seen[rec] = struct{}{}
			merged = append(merged, rec)
		}
	}

	if len(merged) > MaxRecommendations {
		merged = merged[:MaxRecommendations]
	}
	if len(merged) == 0 {
		merged = []string{NoticeKeepGoing}
	}
	return merged
}
