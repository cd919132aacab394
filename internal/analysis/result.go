package analysis

// Status classifies an analyzer run so the aggregator's merge is total:
// every analyzer reports either findings, an explicit empty result, or the
// reason it was skipped. Nothing is silently swallowed.
type Status string

const (
	// StatusFindings means the analyzer produced one or more recommendations.
	StatusFindings Status = "findings"
	// StatusEmpty means the analyzer ran but found nothing worth reporting
	// (including locally-handled degenerate statistics).
	StatusEmpty Status = "empty"
	// StatusSkipped means the analyzer did not run, usually for lack of data.
	StatusSkipped Status = "skipped"
)

// Analyzer names, in the aggregator's fixed merge order.
const (
	AnalyzerBaseline    = "baseline"
	AnalyzerCorrelation = "correlation"
	AnalyzerTemporal    = "temporal"
	AnalyzerCluster     = "cluster"
	AnalyzerProfile     = "profile"
)

// Result is one analyzer's outcome for a single engine run.
type Result struct {
	Analyzer        string
	Status          Status
	Recommendations []string
	// Reason explains a skip or an empty result caused by degenerate input.
	Reason string
}

func findings(analyzer string, recs []string) Result {
	if len(recs) == 0 {
		return Result{Analyzer: analyzer, Status: StatusEmpty}
	}
	return Result{Analyzer: analyzer, Status: StatusFindings, Recommendations: recs}
}

func skipped(analyzer, reason string) Result {
	return Result{Analyzer: analyzer, Status: StatusSkipped, Reason: reason}
}

func emptyResult(analyzer, reason string) Result {
	return Result{Analyzer: analyzer, Status: StatusEmpty, Reason: reason}
}
