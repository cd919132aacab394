package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/repository"
	"github.com/sonyahq/sleep-coach/pkg/pagination"
)

// surveyMilestones are the survey counts that grant an achievement.
var surveyMilestones = []int64{10, 30, 50, 100}

type DiaryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDiaryRecordRequest) (*domain.DiaryRecord, []domain.Achievement, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error)
	Achievements(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error)
}

type diaryService struct {
	repo            repository.DiaryRepository
	userRepo        repository.UserRepository
	achievementRepo repository.AchievementRepository
}

func NewDiaryService(
	repo repository.DiaryRepository,
	userRepo repository.UserRepository,
	achievementRepo repository.AchievementRepository,
) DiaryService {
	return &diaryService{
		repo:            repo,
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
	}
}

// Create stores one day's survey. A second survey for the same date returns
// domain.ErrDuplicateEntry. Newly crossed survey-count milestones are
// granted and returned alongside the record.
func (s *diaryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDiaryRecordRequest) (*domain.DiaryRecord, []domain.Achievement, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !exists {
		return nil, nil, domain.ErrNotFound
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	record := &domain.DiaryRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date,
		Bedtime:       req.Bedtime,
		WakeupTime:    req.WakeupTime,
		SleepDuration: req.SleepDuration,
		Awakenings:    req.Awakenings,
		SleepQuality:  req.SleepQuality,
		MoodMorning:   req.MoodMorning,
		StressLevel:   req.StressLevel,
		Exercise:      req.Exercise,
		Caffeine:      req.Caffeine,
		Alcohol:       req.Alcohol,
		ScreenTime:    req.ScreenTime,
		Notes:         req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, nil, err
	}

	// Survey is already stored; activity tracking is best-effort.
	_ = s.userRepo.TouchLastActive(ctx, userID, time.Now().UTC())

	granted, err := s.grantMilestones(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return record, granted, nil
}

// grantMilestones creates any survey-count achievements the user just
// reached. Granting is idempotent per milestone.
func (s *diaryService) grantMilestones(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var granted []domain.Achievement
	for _, milestone := range surveyMilestones {
		if count < milestone {
			break
		}
		achievementType := fmt.Sprintf("%d surveys", milestone)
		has, err := s.achievementRepo.Exists(ctx, userID, achievementType)
		if err != nil {
			return nil, err
		}
		if has {
			continue
		}
		achievement := &domain.Achievement{
			ID:     uuid.New(),
			UserID: userID,
			Type:   achievementType,
		}
		if err := s.achievementRepo.Create(ctx, achievement); err != nil {
			return nil, err
		}
		granted = append(granted, *achievement)
	}
	return granted, nil
}

func (s *diaryService) List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.DiaryListResponse{
		Data: make([]domain.DiaryRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *diaryService) Achievements(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	achievements, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &domain.AchievementListResponse{
		Data: make([]domain.AchievementResponse, len(achievements)),
	}
	for i, a := range achievements {
		response.Data[i] = domain.AchievementResponse{
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		}
	}
	return response, nil
}
