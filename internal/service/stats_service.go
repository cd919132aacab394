package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/repository"
)

// lastWeekDays is how many recent diary days the summary includes.
const lastWeekDays = 7

// StatsService summarizes a user's diary history.
type StatsService interface {
	Summary(ctx context.Context, userID uuid.UUID) (*domain.StatsResponse, error)
}

type statsService struct {
	diaryRepo repository.DiaryRepository
	userRepo  repository.UserRepository
}

func NewStatsService(diaryRepo repository.DiaryRepository, userRepo repository.UserRepository) StatsService {
	return &statsService{
		diaryRepo: diaryRepo,
		userRepo:  userRepo,
	}
}

func (s *statsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.StatsResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.diaryRepo.ListAllAsc(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &domain.StatsResponse{
		User:     user.ToResponse(),
		LastWeek: []domain.DayStats{},
	}

	if len(records) == 0 {
		return response, nil
	}

	var durationSum, qualitySum, awakeningsSum float64
	for _, record := range records {
		durationSum += record.SleepDuration
		qualitySum += float64(record.SleepQuality)
		awakeningsSum += float64(record.Awakenings)
	}
	n := float64(len(records))
	response.Stats = domain.SleepStats{
		AvgSleepDuration: durationSum / n,
		AvgSleepQuality:  qualitySum / n,
		AvgAwakenings:    awakeningsSum / n,
		TotalSurveys:     len(records),
	}

	// Last recorded days in chronological order.
	start := len(records) - lastWeekDays
	if start < 0 {
		start = 0
	}
	for _, record := range records[start:] {
		response.LastWeek = append(response.LastWeek, domain.DayStats{
			Date:          record.Date.Format("2006-01-02"),
			SleepDuration: record.SleepDuration,
			SleepQuality:  record.SleepQuality,
		})
	}

	return response, nil
}
