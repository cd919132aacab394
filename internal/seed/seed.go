package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users, diary history and the shared
// tip/fact pool. Safe to call multiple times.
func Run(db *gorm.DB) error {
	users := []domain.User{
		{
			ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Username:  "alice",
			Age:       34,
			Gender:    domain.GenderFemale,
			Lifestyle: domain.LifestyleSedentary,
			Timezone:  "Europe/Amsterdam",
		},
		{
			ID:        uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Username:  "bob",
			Age:       52,
			Gender:    domain.GenderMale,
			Lifestyle: domain.LifestyleLightlyActive,
			Timezone:  "America/New_York",
		},
		{
			ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Username:  "chen",
			Age:       27,
			Gender:    domain.GenderOther,
			Lifestyle: domain.LifestyleActive,
			Timezone:  "Asia/Tokyo",
		},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedDiaryForUser(db, user, rng); err != nil {
			return err
		}
	}

	if err := seedContentPool(db); err != nil {
		return err
	}

	log.Println("Seed completed")
	return nil
}

func seedDiaryForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 1; i <= seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		bedHour := 22 + rng.Intn(2)
		bedMinute := rng.Intn(60)
		durationHours := 6 + rng.Intn(3)
		wakeHour := (bedHour + durationHours) % 24

		record := domain.DiaryRecord{
			UserID:        user.ID,
			Date:          date,
			Bedtime:       fmt.Sprintf("%02d:%02d", bedHour, bedMinute),
			WakeupTime:    fmt.Sprintf("%02d:%02d", wakeHour, bedMinute),
			SleepDuration: float64(durationHours) - 0.5 + rng.Float64(),
			Awakenings:    rng.Intn(3),
			SleepQuality:  4 + rng.Intn(6),
			MoodMorning:   4 + rng.Intn(6),
			StressLevel:   2 + rng.Intn(7),
			Exercise:      rng.Intn(60),
			Caffeine:      rng.Intn(4),
			Alcohol:       rng.Intn(2),
			ScreenTime:    15 + rng.Intn(90),
		}

		if err := db.Where("user_id = ? AND date = ?", user.ID, date).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create diary record for %s: %w", user.ID, err)
		}
	}
	return nil
}

func seedContentPool(db *gorm.DB) error {
	facts := []domain.Fact{
		{Kind: domain.FactKindTip, Text: "Keep the bedroom cool, dark and quiet; around 18 degrees Celsius works for most people."},
		{Kind: domain.FactKindTip, Text: "Put screens away 30-60 minutes before bed and dim the lights."},
		{Kind: domain.FactKindTip, Text: "Go to bed and wake up at the same time every day, including weekends."},
		{Kind: domain.FactKindTip, Text: "Avoid caffeine after mid-afternoon; it lingers in your system for hours."},
		{Kind: domain.FactKindTip, Text: "If you cannot fall asleep within 20 minutes, get up and do something calm until you feel drowsy."},
		{Kind: domain.FactKindFact, Text: "Adults cycle through REM and deep sleep roughly every 90 minutes."},
		{Kind: domain.FactKindFact, Text: "Body temperature naturally drops in the evening to signal sleep onset."},
		{Kind: domain.FactKindFact, Text: "Alcohol may help you fall asleep faster but fragments the second half of the night."},
		{Kind: domain.FactKindFact, Text: "Most adults need between 7 and 9 hours of sleep per night."},
	}

	for _, fact := range facts {
		if err := db.Where("kind = ? AND text = ?", fact.Kind, fact.Text).FirstOrCreate(&fact).Error; err != nil {
			return fmt.Errorf("failed to create content entry: %w", err)
		}
	}
	return nil
}
