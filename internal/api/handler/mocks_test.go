package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Age:       req.Age,
		Gender:    req.Gender,
		Lifestyle: req.Lifestyle,
		Timezone:  "UTC",
	}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockDiaryService is a mock implementation of DiaryService
type MockDiaryService struct {
	createFunc       func(ctx context.Context, userID uuid.UUID, req *domain.CreateDiaryRecordRequest) (*domain.DiaryRecord, []domain.Achievement, error)
	listFunc         func(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error)
	achievementsFunc func(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error)
}

func (m *MockDiaryService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateDiaryRecordRequest) (*domain.DiaryRecord, []domain.Achievement, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.DiaryRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Bedtime:       req.Bedtime,
		WakeupTime:    req.WakeupTime,
		SleepDuration: req.SleepDuration,
		SleepQuality:  req.SleepQuality,
		CreatedAt:     time.Now(),
	}, nil, nil
}

func (m *MockDiaryService) List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DiaryListResponse{
		Data:       []domain.DiaryRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockDiaryService) Achievements(ctx context.Context, userID uuid.UUID) (*domain.AchievementListResponse, error) {
	if m.achievementsFunc != nil {
		return m.achievementsFunc(ctx, userID)
	}
	return &domain.AchievementListResponse{Data: []domain.AchievementResponse{}}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	analyzeFunc  func(ctx context.Context, userID uuid.UUID, force bool) (*domain.AnalyzeResponse, error)
	listFunc     func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationResponse, error)
	feedbackFunc func(ctx context.Context, userID, recID uuid.UUID, req *domain.FeedbackRequest) (*domain.Recommendation, error)
}

func (m *MockRecommendationService) Analyze(ctx context.Context, userID uuid.UUID, force bool) (*domain.AnalyzeResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, force)
	}
	return &domain.AnalyzeResponse{Recommendations: []string{}, Analyzers: []domain.AnalyzerOutcome{}}, nil
}

func (m *MockRecommendationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, limit)
	}
	return []domain.RecommendationResponse{}, nil
}

func (m *MockRecommendationService) SubmitFeedback(ctx context.Context, userID, recID uuid.UUID, req *domain.FeedbackRequest) (*domain.Recommendation, error) {
	if m.feedbackFunc != nil {
		return m.feedbackFunc(ctx, userID, recID, req)
	}
	return &domain.Recommendation{
		ID:        recID,
		UserID:    userID,
		Kind:      domain.KindAnalysis,
		Text:      "text",
		IsHelpful: req.Helpful,
	}, nil
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	deliverFunc func(ctx context.Context, userID uuid.UUID) (*domain.Recommendation, bool, error)
	addFactFunc func(ctx context.Context, req *domain.CreateFactRequest) (*domain.Fact, error)
}

func (m *MockContentService) DeliverDaily(ctx context.Context, userID uuid.UUID) (*domain.Recommendation, bool, error) {
	if m.deliverFunc != nil {
		return m.deliverFunc(ctx, userID)
	}
	return &domain.Recommendation{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   domain.KindTip,
		Text:   "tip",
	}, false, nil
}

func (m *MockContentService) AddFact(ctx context.Context, req *domain.CreateFactRequest) (*domain.Fact, error) {
	if m.addFactFunc != nil {
		return m.addFactFunc(ctx, req)
	}
	return &domain.Fact{ID: uuid.New(), Kind: req.Kind, Text: req.Text}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	summaryFunc func(ctx context.Context, userID uuid.UUID) (*domain.StatsResponse, error)
}

func (m *MockStatsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.StatsResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return &domain.StatsResponse{LastWeek: []domain.DayStats{}}, nil
}
