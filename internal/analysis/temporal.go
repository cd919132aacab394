package analysis

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sonyahq/sleep-coach/pkg/stats"
)

const (
	// minWeekendRecords / minWeekdayRecords gate the social-jetlag check.
	minWeekendRecords = 3
	minWeekdayRecords = 6
	// jetlagThresholdHours is the weekend/weekday duration gap that counts
	// as social jetlag.
	jetlagThresholdHours = 1.5

	// minTrendBuckets is the number of populated weekly buckets needed
	// before a trend is called.
	minTrendBuckets = 3
	// trendSlopeThreshold separates a real trend from noise.
	trendSlopeThreshold = 0.3
)

// analyzeTemporal runs two independent checks: weekend/weekday drift and a
// multi-week sleep-quality trend. Each check needs its own minimum data and
// failing one never affects the other.
func analyzeTemporal(ds Dataset) Result {
	var recs []string

	if msg := weekendDrift(ds); msg != "" {
		recs = append(recs, msg)
	}
	if msg := qualityTrend(ds); msg != "" {
		recs = append(recs, msg)
	}

	return findings(AnalyzerTemporal, recs)
}

// weekendDrift compares mean sleep duration between weekend and weekday
// nights and flags social jetlag when they diverge by more than 1.5 hours.
func weekendDrift(ds Dataset) string {
	var weekend, weekday []float64
	for _, row := range ds.Rows {
		if row.IsWeekend {
			weekend = append(weekend, row.Record.SleepDuration)
		} else {
			weekday = append(weekday, row.Record.SleepDuration)
		}
	}

	if len(weekend) < minWeekendRecords || len(weekday) < minWeekdayRecords {
		return ""
	}

	weekendSleep := stats.Mean(weekend)
	weekdaySleep := stats.Mean(weekday)
	if math.Abs(weekendSleep-weekdaySleep) <= jetlagThresholdHours {
		return ""
	}

	return fmt.Sprintf(
		"I noticed a significant difference between how long you sleep on weekends (%.1f h) "+
			"and on weekdays (%.1f h). Swings like that can cause social jetlag. "+
			"Try to keep the gap within 1 hour by getting up at most an hour later on weekends.",
		weekendSleep, weekdaySleep)
}

// qualityTrend buckets sleep quality into ISO weeks ending Sunday and
// reports a declining or improving trend over at least three weeks.
func qualityTrend(ds Dataset) string {
	buckets := make(map[time.Time][]float64)
	for _, row := range ds.Rows {
		key := weekEndingSunday(row.Record.Date)
		buckets[key] = append(buckets[key], float64(row.Record.SleepQuality))
	}

	if len(buckets) < minTrendBuckets {
		return ""
	}

	weeks := make([]time.Time, 0, len(buckets))
	for week := range buckets {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	first := stats.Mean(buckets[weeks[0]])
	last := stats.Mean(buckets[weeks[len(weeks)-1]])
	slope := (last - first) / float64(len(weeks))

	switch {
	case slope < -trendSlopeThreshold:
		return "Over the past weeks I have noticed your sleep quality declining. " +
			"This can come with higher stress, a changed daily routine, or other factors. " +
			"Let's talk about what has changed in your life recently."
	case slope > trendSlopeThreshold:
		return "Great news! Your sleep quality has been gradually improving. " +
			"Keep practicing the good sleep habits you have built."
	}
	return ""
}
