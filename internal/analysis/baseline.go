package analysis

import (
	"fmt"

	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/pkg/stats"
)

const (
	// minQuality is the 1-10 quality score below which hygiene advice fires.
	minQuality = 6.0
	// minEfficiency is the sleep-efficiency floor before advice fires.
	minEfficiency = 0.85
)

// analyzeBaseline checks mean duration, quality, and efficiency against
// age-normalized thresholds. Purely threshold-driven, no randomness.
func analyzeBaseline(ds Dataset, user domain.User) Result {
	if len(ds.Rows) == 0 {
		return skipped(AnalyzerBaseline, "no diary records")
	}

	var durations, qualities, efficiencies []float64
	for _, row := range ds.Rows {
		durations = append(durations, row.Record.SleepDuration)
		qualities = append(qualities, float64(row.Record.SleepQuality))
		if row.EfficiencyValid {
			efficiencies = append(efficiencies, row.SleepEfficiency)
		}
	}

	avgSleep := stats.Mean(durations)
	avgQuality := stats.Mean(qualities)

	var recs []string

	ideal := idealSleepHours(user.Age)
	if avgSleep < ideal-1 {
		recs = append(recs, fmt.Sprintf(
			"For your age (%d), the recommended sleep duration is %.1f-%.1f hours. "+
				"You sleep %.1f hours on average. Try to increase your sleep by %.1f hours.",
			user.Age, ideal, ideal+1, avgSleep, ideal-avgSleep))
	} else if avgSleep > ideal+1 {
		recs = append(recs, fmt.Sprintf(
			"You sleep more (%.1f hours) than the norm recommended for your age (%.1f hours). "+
				"Excess sleep can reduce productivity. Try shortening your sleep by 30 minutes.",
			avgSleep, ideal))
	}

	if avgQuality < minQuality {
		recs = append(recs, fmt.Sprintf(
			"Your average sleep quality (%.1f/10) is below optimal. "+
				"Consider improving your sleep hygiene: a consistent bedtime, "+
				"a comfortable bedroom, and limiting caffeine and screens before sleep.",
			avgQuality))
	}

	if len(efficiencies) > 0 {
		avgEfficiency := stats.Mean(efficiencies)
		if avgEfficiency < minEfficiency {
			recs = append(recs, fmt.Sprintf(
				"Your sleep efficiency (%.0f%%) is below the optimal 85%%. "+
					"That means you spend a lot of time in bed without sleeping. "+
					"Try going to bed only when you actually feel sleepy.",
				avgEfficiency*100))
		}
	}

	return findings(AnalyzerBaseline, recs)
}

// idealSleepHours returns the age-normalized ideal sleep duration. Older
// adults often need slightly more again, hence the uptick at 65.
func idealSleepHours(age int) float64 {
	switch {
	case age < 18:
		return 9
	case age < 25:
		return 8
	case age < 45:
		return 7.5
	case age < 65:
		return 7
	default:
		return 7.5
	}
}
