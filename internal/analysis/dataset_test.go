package analysis

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/sonyahq/sleep-coach/internal/domain"
)

// day parses a YYYY-MM-DD date for test fixtures.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// record builds a plausible diary record for the given date; mod tweaks it.
func record(date string, mod func(*domain.DiaryRecord)) domain.DiaryRecord {
	r := domain.DiaryRecord{
		Date:          day(date),
		Bedtime:       "23:00",
		WakeupTime:    "07:00",
		SleepDuration: 7.5,
		Awakenings:    1,
		SleepQuality:  7,
		MoodMorning:   7,
		StressLevel:   4,
		Exercise:      30,
		Caffeine:      1,
		Alcohol:       0,
		ScreenTime:    60,
	}
	if mod != nil {
		mod(&r)
	}
	return r
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "23:30", want: 23.5},
		{in: "00:00", want: 0},
		{in: "7:15", want: 7.25},
		{in: "06:30", want: 6.5},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "midnight", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tt.in, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDerive_MidnightRollover(t *testing.T) {
	// Bedtime 23:30, wakeup 06:30: time in bed must be 7.0h, not -17.0h.
	records := []domain.DiaryRecord{
		record("2024-03-15", func(r *domain.DiaryRecord) {
			r.Bedtime = "23:30"
			r.WakeupTime = "06:30"
			r.SleepDuration = 7.0
		}),
	}

	ds := Derive(records)
	row := ds.Rows[0]
	if !row.EfficiencyValid {
		t.Fatal("expected valid efficiency")
	}
	if math.Abs(row.SleepEfficiency-1.0) > 1e-9 {
		t.Errorf("efficiency = %v, want 1.0 (7.0h sleep over 7.0h in bed)", row.SleepEfficiency)
	}
}

func TestDerive_NoRolloverNeeded(t *testing.T) {
	// Early-morning bedtime on the same day as wakeup.
	records := []domain.DiaryRecord{
		record("2024-03-15", func(r *domain.DiaryRecord) {
			r.Bedtime = "01:00"
			r.WakeupTime = "09:00"
			r.SleepDuration = 6.0
		}),
	}

	ds := Derive(records)
	if got := ds.Rows[0].SleepEfficiency; math.Abs(got-0.75) > 1e-9 {
		t.Errorf("efficiency = %v, want 0.75", got)
	}
}

func TestDerive_Pure(t *testing.T) {
	records := []domain.DiaryRecord{
		record("2024-03-15", nil),
		record("2024-03-13", func(r *domain.DiaryRecord) { r.Bedtime = "22:45" }),
		record("2024-03-14", func(r *domain.DiaryRecord) { r.Bedtime = "00:15" }),
	}

	first := Derive(records)
	second := Derive(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("Derive is not deterministic for identical input")
	}
}

func TestDerive_SortsByDate(t *testing.T) {
	records := []domain.DiaryRecord{
		record("2024-03-15", nil),
		record("2024-03-13", nil),
		record("2024-03-14", nil),
	}

	ds := Derive(records)
	for i := 1; i < len(ds.Rows); i++ {
		if ds.Rows[i].Record.Date.Before(ds.Rows[i-1].Record.Date) {
			t.Fatal("rows are not sorted by date ascending")
		}
	}
}

func TestDerive_MalformedTime(t *testing.T) {
	records := []domain.DiaryRecord{
		record("2024-03-13", nil),
		record("2024-03-14", func(r *domain.DiaryRecord) { r.Bedtime = "25:99" }),
		record("2024-03-15", nil),
	}

	ds := Derive(records)
	if len(ds.Rows) != 3 {
		t.Fatalf("malformed record must stay in the dataset, got %d rows", len(ds.Rows))
	}

	bad := ds.Rows[1]
	if bad.TimesValid {
		t.Error("expected TimesValid=false for malformed bedtime")
	}
	if bad.EfficiencyValid {
		t.Error("efficiency must be invalid without parseable times")
	}
	if !ds.Rows[0].TimesValid || !ds.Rows[2].TimesValid {
		t.Error("well-formed neighbors must stay valid")
	}
}

func TestDerive_SleepRegularity(t *testing.T) {
	records := []domain.DiaryRecord{
		record("2024-03-11", func(r *domain.DiaryRecord) { r.Bedtime = "22:00" }),
		record("2024-03-12", func(r *domain.DiaryRecord) { r.Bedtime = "23:00" }),
		record("2024-03-13", func(r *domain.DiaryRecord) { r.Bedtime = "21:00" }),
	}

	ds := Derive(records)

	if ds.Rows[0].SleepRegularity != 0 || ds.Rows[1].SleepRegularity != 0 {
		t.Error("regularity must be zero while the rolling window is incomplete")
	}
	if ds.Rows[2].SleepRegularity == 0 {
		t.Error("expected non-zero regularity for a full varying window")
	}

	// Constant bedtimes have zero spread.
	constant := []domain.DiaryRecord{
		record("2024-03-11", nil),
		record("2024-03-12", nil),
		record("2024-03-13", nil),
	}
	cds := Derive(constant)
	if got := cds.Rows[2].SleepRegularity; got != 0 {
		t.Errorf("constant bedtime regularity = %v, want 0", got)
	}
}

func TestDerive_WeekendFlag(t *testing.T) {
	tests := []struct {
		date        string
		wantWeekday int
		wantWeekend bool
	}{
		{"2024-03-11", 0, false}, // Monday
		{"2024-03-15", 4, false}, // Friday
		{"2024-03-16", 5, true},  // Saturday
		{"2024-03-17", 6, true},  // Sunday
	}

	for _, tt := range tests {
		ds := Derive([]domain.DiaryRecord{record(tt.date, nil)})
		row := ds.Rows[0]
		if row.Weekday != tt.wantWeekday {
			t.Errorf("%s: weekday = %d, want %d", tt.date, row.Weekday, tt.wantWeekday)
		}
		if row.IsWeekend != tt.wantWeekend {
			t.Errorf("%s: isWeekend = %v, want %v", tt.date, row.IsWeekend, tt.wantWeekend)
		}
	}
}

func TestWeekEndingSunday(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-03-11", "2024-03-17"}, // Monday -> following Sunday
		{"2024-03-17", "2024-03-17"}, // Sunday -> itself
		{"2024-03-18", "2024-03-24"}, // next Monday -> next Sunday
	}
	for _, tt := range tests {
		if got := weekEndingSunday(day(tt.date)); !got.Equal(day(tt.want)) {
			t.Errorf("weekEndingSunday(%s) = %s, want %s", tt.date, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(22.5); got != "22:30" {
		t.Errorf("FormatClock(22.5) = %q, want 22:30", got)
	}
	if got := FormatClock(7.0); got != "07:00" {
		t.Errorf("FormatClock(7.0) = %q, want 07:00", got)
	}
}
