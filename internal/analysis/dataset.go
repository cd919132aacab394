// Package analysis implements the recommendation engine: it derives
// analysis-ready metrics from raw diary records, runs a set of independent
// analyzers over them, and merges their findings into a ranked, deduplicated
// recommendation list. The package performs no I/O; callers hand it an
// immutable snapshot of one user's history and profile.
package analysis

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/pkg/stats"
)

// regularityWindow is the rolling window (in records) for the bedtime
// standard deviation used as the sleep-regularity signal.
const regularityWindow = 3

// MalformedTimeError reports a bedtime or wake-up value that is not a valid
// HH:MM clock string. The affected record is excluded from time-dependent
// computations but still participates everywhere else.
type MalformedTimeError struct {
	Field string
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed %s value %q: want HH:MM", e.Field, e.Value)
}

// Row is one diary record with its derived metrics.
type Row struct {
	Record domain.DiaryRecord

	// BedtimeNum and WakeupNum are decimal hours (hour + minute/60),
	// meaningful only when TimesValid is true.
	BedtimeNum float64
	WakeupNum  float64
	TimesValid bool

	// SleepRegularity is the rolling sample std of BedtimeNum over the
	// last regularityWindow records; zero while the window is incomplete.
	SleepRegularity float64

	// SleepEfficiency is sleep duration over time in bed (midnight
	// rollover corrected), meaningful only when EfficiencyValid is true.
	SleepEfficiency float64
	EfficiencyValid bool

	Weekday   int // 0=Monday .. 6=Sunday
	IsWeekend bool
}

// Dataset holds derived rows aligned 1:1 with the input records, ordered by
// date ascending.
type Dataset struct {
	Rows []Row
}

// Derive computes derived metrics for the given records. It is a pure
// function of its input: identical records always yield identical output.
// Records whose clock fields cannot be parsed are logged and flagged rather
// than dropped.
func Derive(records []domain.DiaryRecord) Dataset {
	sorted := make([]domain.DiaryRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	rows := make([]Row, len(sorted))
	for i, rec := range sorted {
		row := Row{Record: rec}

		bed, errBed := ParseClock(rec.Bedtime)
		wake, errWake := ParseClock(rec.WakeupTime)
		if errBed != nil {
			log.Printf("diary %s: %v", rec.Date.Format("2006-01-02"), &MalformedTimeError{Field: "bedtime", Value: rec.Bedtime})
		}
		if errWake != nil {
			log.Printf("diary %s: %v", rec.Date.Format("2006-01-02"), &MalformedTimeError{Field: "wakeup_time", Value: rec.WakeupTime})
		}

		if errBed == nil && errWake == nil {
			row.TimesValid = true
			row.BedtimeNum = bed
			row.WakeupNum = wake

			timeInBed := wake - bed
			if wake < bed {
				timeInBed += 24 // sleep crossed midnight
			}
			if timeInBed > 0 {
				row.SleepEfficiency = rec.SleepDuration / timeInBed
				row.EfficiencyValid = true
			}
		}

		// Go weeks start on Sunday; shift so 0=Monday like the diary.
		row.Weekday = (int(rec.Date.Weekday()) + 6) % 7
		row.IsWeekend = row.Weekday >= 5

		rows[i] = row
	}

	// Rolling bedtime std: needs a full window of parseable bedtimes.
	for i := regularityWindow - 1; i < len(rows); i++ {
		window := make([]float64, 0, regularityWindow)
		for j := i - regularityWindow + 1; j <= i; j++ {
			if !rows[j].TimesValid {
				window = nil
				break
			}
			window = append(window, rows[j].BedtimeNum)
		}
		if len(window) == regularityWindow {
			rows[i].SleepRegularity = stats.SampleStd(window)
		}
	}

	return Dataset{Rows: rows}
}

// ParseClock parses an HH:MM string into decimal hours.
func ParseClock(value string) (float64, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Field: "clock", Value: value}
	}
	hour, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &MalformedTimeError{Field: "clock", Value: value}
	}
	return float64(hour) + float64(minute)/60, nil
}

// FormatClock renders decimal hours as HH:MM, truncating partial minutes.
func FormatClock(hours float64) string {
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// weekEndingSunday returns the date of the Sunday that closes the ISO week
// containing d, used as the weekly trend bucket key.
func weekEndingSunday(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	daysToSunday := (7 - int(day.Weekday())) % 7
	return day.AddDate(0, 0, daysToSunday)
}
