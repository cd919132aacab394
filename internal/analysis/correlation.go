package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/pkg/stats"
)

// minCorrelationRecords is the minimum history before Pearson correlations
// are considered stable enough to act on.
const minCorrelationRecords = 7

// topFactors is how many of the strongest-correlated factors are examined.
const topFactors = 3

// Behavioral factors correlated against sleep quality, in a fixed order so
// ties rank deterministically.
const (
	factorStress     = "stress_level"
	factorExercise   = "exercise"
	factorCaffeine   = "caffeine"
	factorAlcohol    = "alcohol"
	factorScreenTime = "screen_time"
	factorBedtime    = "bedtime_num"
	factorAwakenings = "awakenings"
	factorMood       = "mood_morning"
)

var correlationFactors = []string{
	factorStress, factorExercise, factorCaffeine, factorAlcohol,
	factorScreenTime, factorBedtime, factorAwakenings, factorMood,
}

type factorCorrelation struct {
	factor string
	r      float64
}

// analyzeCorrelation ranks behavioral factors by the strength of their
// Pearson correlation with sleep quality and applies factor-specific rules
// to the top three. Factors whose correlation is undefined (zero variance)
// are silently skipped; the analyzer never fails.
func analyzeCorrelation(ds Dataset, user domain.User) Result {
	if len(ds.Rows) < minCorrelationRecords {
		return skipped(AnalyzerCorrelation,
			fmt.Sprintf("need at least %d records, have %d", minCorrelationRecords, len(ds.Rows)))
	}

	ranked := make([]factorCorrelation, 0, len(correlationFactors))
	for _, factor := range correlationFactors {
		xs, ys := factorPairs(ds, factor)
		r, err := stats.Pearson(xs, ys)
		if err != nil {
			if errors.Is(err, stats.ErrDegenerate) {
				continue // undefined correlation, skip the factor
			}
			continue
		}
		ranked = append(ranked, factorCorrelation{factor: factor, r: r})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].r) > math.Abs(ranked[j].r)
	})
	if len(ranked) > topFactors {
		ranked = ranked[:topFactors]
	}

	var recs []string
	for _, fc := range ranked {
		if msg := factorAdvice(ds, user, fc); msg != "" {
			recs = append(recs, msg)
		}
	}

	return findings(AnalyzerCorrelation, recs)
}

// factorPairs extracts the (factor, quality) value pairs for correlation.
// Bedtime uses only rows whose clock fields parsed.
func factorPairs(ds Dataset, factor string) (xs, ys []float64) {
	for _, row := range ds.Rows {
		var x float64
		switch factor {
		case factorStress:
			x = float64(row.Record.StressLevel)
		case factorExercise:
			x = float64(row.Record.Exercise)
		case factorCaffeine:
			x = float64(row.Record.Caffeine)
		case factorAlcohol:
			x = float64(row.Record.Alcohol)
		case factorScreenTime:
			x = float64(row.Record.ScreenTime)
		case factorBedtime:
			if !row.TimesValid {
				continue
			}
			x = row.BedtimeNum
		case factorAwakenings:
			x = float64(row.Record.Awakenings)
		case factorMood:
			x = float64(row.Record.MoodMorning)
		default:
			continue
		}
		xs = append(xs, x)
		ys = append(ys, float64(row.Record.SleepQuality))
	}
	return xs, ys
}

// factorAdvice applies the per-factor trigger rules. Each rule has its own
// minimum correlation strength before it fires.
func factorAdvice(ds Dataset, user domain.User, fc factorCorrelation) string {
	switch fc.factor {
	case factorStress:
		if fc.r < -0.4 {
			return fmt.Sprintf(
				"There is a strong negative link between your stress level and sleep quality (r=%.2f). "+
					"Stress-management techniques could noticeably improve your sleep:\n"+
					"- Evening meditation or breathing exercises\n"+
					"- Writing down a worry list before bed\n"+
					"- A warm shower or bath an hour before sleep", fc.r)
		}
	case factorExercise:
		if fc.r > 0.4 {
			meanExercise := meanOf(ds, func(r Row) (float64, bool) {
				return float64(r.Record.Exercise), true
			})
			msg := fmt.Sprintf("Physical activity has a positive effect on your sleep (r=%.2f). ", fc.r)
			if meanExercise < 30 {
				msg += fmt.Sprintf("You average only %.1f minutes a day. "+
					"Try building up to 30-40 minutes, especially aerobic exercise.", meanExercise)
			} else {
				msg += "Great, keep it up! Just avoid intense workouts within 3 hours of bedtime."
			}
			return msg
		}
	case factorScreenTime:
		if fc.r < -0.3 {
			meanScreen := meanOf(ds, func(r Row) (float64, bool) {
				return float64(r.Record.ScreenTime), true
			})
			return fmt.Sprintf(
				"Screen time before bed is hurting your sleep quality (r=%.2f). "+
					"You average %.1f minutes on devices before sleep. Try:\n"+
					"- Enabling night mode on your devices\n"+
					"- Blue-light filter apps\n"+
					"- Paper books instead of screens", fc.r, meanScreen)
		}
	case factorBedtime:
		if math.Abs(fc.r) > 0.3 && fc.r > 0 {
			// Later bedtime correlates with worse quality.
			meanBedtime := meanOf(ds, func(r Row) (float64, bool) {
				return r.BedtimeNum, r.TimesValid
			})
			idealBedtime := 22.5
			if user.Age < 18 {
				idealBedtime = 21.5
			}
			if meanBedtime > idealBedtime {
				return fmt.Sprintf(
					"Going to bed later is linked to worse sleep quality for you (r=%.2f). "+
						"You usually turn in around %s. "+
						"Try gradually shifting your bedtime toward %s.",
					fc.r, FormatClock(meanBedtime), FormatClock(idealBedtime))
			}
		}
	}
	return ""
}

func meanOf(ds Dataset, pick func(Row) (float64, bool)) float64 {
	var values []float64
	for _, row := range ds.Rows {
		if v, ok := pick(row); ok {
			values = append(values, v)
		}
	}
	return stats.Mean(values)
}
