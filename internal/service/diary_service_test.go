package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
)

func validDiaryRequest(date string) *domain.CreateDiaryRecordRequest {
	return &domain.CreateDiaryRecordRequest{
		Date:          &date,
		Bedtime:       "23:30",
		WakeupTime:    "06:30",
		SleepDuration: 6.5,
		Awakenings:    1,
		SleepQuality:  7,
		MoodMorning:   6,
		StressLevel:   4,
		Exercise:      30,
		Caffeine:      1,
		ScreenTime:    45,
	}
}

func TestDiaryService_Create(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	diaryRepo := NewMockDiaryRepository()
	svc := NewDiaryService(diaryRepo, userRepo, NewMockAchievementRepository())

	record, granted, err := svc.Create(context.Background(), userID, validDiaryRequest("2024-03-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Date.Format("2006-01-02") != "2024-03-15" {
		t.Errorf("date = %v, want 2024-03-15", record.Date)
	}
	if len(granted) != 0 {
		t.Errorf("one survey must not grant milestones, got %v", granted)
	}
	if !userRepo.users[userID].LastActiveAt.After(time.Time{}) {
		t.Error("expected last_active_at to be touched")
	}
}

func TestDiaryService_CreateDuplicateDate(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	svc := NewDiaryService(NewMockDiaryRepository(), userRepo, NewMockAchievementRepository())

	if _, _, err := svc.Create(context.Background(), userID, validDiaryRequest("2024-03-15")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err := svc.Create(context.Background(), userID, validDiaryRequest("2024-03-15"))
	if err != domain.ErrDuplicateEntry {
		t.Fatalf("err = %v, want ErrDuplicateEntry", err)
	}
}

func TestDiaryService_CreateUnknownUser(t *testing.T) {
	svc := NewDiaryService(NewMockDiaryRepository(), NewMockUserRepository(), NewMockAchievementRepository())

	_, _, err := svc.Create(context.Background(), uuid.New(), validDiaryRequest("2024-03-15"))
	if err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDiaryService_MilestoneGranted(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	diaryRepo := NewMockDiaryRepository()
	achievementRepo := NewMockAchievementRepository()
	svc := NewDiaryService(diaryRepo, userRepo, achievementRepo)

	// Surveys 1-9: no milestone.
	for i := 1; i <= 9; i++ {
		date := fmt.Sprintf("2024-03-%02d", i)
		if _, granted, err := svc.Create(context.Background(), userID, validDiaryRequest(date)); err != nil {
			t.Fatalf("survey %d: unexpected error: %v", i, err)
		} else if len(granted) != 0 {
			t.Fatalf("survey %d: unexpected milestone %v", i, granted)
		}
	}

	// The 10th survey grants "10 surveys", exactly once.
	_, granted, err := svc.Create(context.Background(), userID, validDiaryRequest("2024-03-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(granted) != 1 || granted[0].Type != "10 surveys" {
		t.Fatalf("granted = %v, want the 10-survey milestone", granted)
	}

	_, granted, err = svc.Create(context.Background(), userID, validDiaryRequest("2024-03-11"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(granted) != 0 {
		t.Fatalf("milestone granted twice: %v", granted)
	}
}

func TestDiaryService_List(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	diaryRepo := NewMockDiaryRepository()
	svc := NewDiaryService(diaryRepo, userRepo, NewMockAchievementRepository())

	for i := 1; i <= 25; i++ {
		date := time.Date(2024, 3, i, 0, 0, 0, 0, time.UTC)
		diaryRepo.records[uuid.New()] = &domain.DiaryRecord{
			ID:     uuid.New(),
			UserID: userID,
			Date:   date,
		}
	}

	resp, err := svc.List(context.Background(), userID, domain.DiaryFilter{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Data) != 20 {
		t.Fatalf("got %d records, want 20", len(resp.Data))
	}
	if !resp.Pagination.HasMore {
		t.Error("expected has_more with 25 stored records")
	}
	if resp.Pagination.NextCursor == "" {
		t.Error("expected a next cursor")
	}
	if resp.Data[0].Date != "2024-03-25" {
		t.Errorf("first record = %s, want newest first", resp.Data[0].Date)
	}
}

func TestDiaryService_Achievements(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	achievementRepo := NewMockAchievementRepository()
	achievementRepo.achievements = []domain.Achievement{
		{ID: uuid.New(), UserID: userID, Type: "10 surveys"},
		{ID: uuid.New(), UserID: uuid.New(), Type: "10 surveys"},
	}
	svc := NewDiaryService(NewMockDiaryRepository(), userRepo, achievementRepo)

	resp, err := svc.Achievements(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Type != "10 surveys" {
		t.Fatalf("unexpected achievements: %+v", resp.Data)
	}
}
