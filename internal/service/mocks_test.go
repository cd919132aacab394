package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/langfuse"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	if user, ok := m.users[id]; ok {
		user.LastActiveAt = at
	}
	return nil
}

// MockDiaryRepository is a mock implementation of DiaryRepository
type MockDiaryRepository struct {
	records    map[uuid.UUID]*domain.DiaryRecord
	listResult []domain.DiaryRecord
	err        error
}

func NewMockDiaryRepository() *MockDiaryRepository {
	return &MockDiaryRepository{records: make(map[uuid.UUID]*domain.DiaryRecord)}
}

func (m *MockDiaryRepository) Create(ctx context.Context, record *domain.DiaryRecord) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.records {
		if existing.UserID == record.UserID && existing.Date.Equal(record.Date) {
			return domain.ErrDuplicateEntry
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockDiaryRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DiaryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, record := range m.records {
		if record.UserID == userID && record.Date.Equal(date) {
			return record, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockDiaryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) ([]domain.DiaryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.DiaryRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	records := m.byUser(userID)
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records, nil
}

func (m *MockDiaryRepository) ListAllAsc(ctx context.Context, userID uuid.UUID) ([]domain.DiaryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	records := m.byUser(userID)
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records, nil
}

func (m *MockDiaryRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.byUser(userID))), nil
}

func (m *MockDiaryRepository) LastN(ctx context.Context, userID uuid.UUID, n int) ([]domain.DiaryRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	records := m.byUser(userID)
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	if len(records) > n {
		records = records[:n]
	}
	return records, nil
}

func (m *MockDiaryRepository) byUser(userID uuid.UUID) []domain.DiaryRecord {
	var result []domain.DiaryRecord
	for _, record := range m.records {
		if record.UserID == userID {
			result = append(result, *record)
		}
	}
	return result
}

// MockRecommendationRepository is a mock implementation of RecommendationRepository
type MockRecommendationRepository struct {
	recs map[uuid.UUID]*domain.Recommendation
	err  error
}

func NewMockRecommendationRepository() *MockRecommendationRepository {
	return &MockRecommendationRepository{recs: make(map[uuid.UUID]*domain.Recommendation)}
}

func (m *MockRecommendationRepository) CreateBatch(ctx context.Context, recs []domain.Recommendation) error {
	if m.err != nil {
		return m.err
	}
	for i := range recs {
		rec := recs[i]
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		rec.CreatedAt = time.Now()
		m.recs[rec.ID] = &rec
	}
	return nil
}

func (m *MockRecommendationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.recs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (m *MockRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Recommendation, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Recommendation
	for _, rec := range m.recs {
		if rec.UserID == userID {
			result = append(result, *rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockRecommendationRepository) SaveFeedback(ctx context.Context, id uuid.UUID, helpful bool, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	rec, ok := m.recs[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.IsHelpful = &helpful
	rec.FeedbackAt = &at
	return nil
}

func (m *MockRecommendationRepository) HasAnalysisSince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, rec := range m.recs {
		if rec.UserID == userID && rec.Kind == domain.KindAnalysis && !rec.Date.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRecommendationRepository) HasContentOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, rec := range m.recs {
		if rec.UserID == userID && rec.Date.Equal(date) &&
			(rec.Kind == domain.KindTip || rec.Kind == domain.KindFact) {
			return true, nil
		}
	}
	return false, nil
}

// MockFactRepository is a mock implementation of FactRepository
type MockFactRepository struct {
	facts []domain.Fact
	err   error
}

func NewMockFactRepository() *MockFactRepository {
	return &MockFactRepository{}
}

func (m *MockFactRepository) Create(ctx context.Context, fact *domain.Fact) error {
	if m.err != nil {
		return m.err
	}
	if fact.ID == uuid.Nil {
		fact.ID = uuid.New()
	}
	m.facts = append(m.facts, *fact)
	return nil
}

// Random returns the first entry of the kind; deterministic on purpose.
func (m *MockFactRepository) Random(ctx context.Context, kind domain.FactKind) (*domain.Fact, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.facts {
		if m.facts[i].Kind == kind {
			return &m.facts[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockFactRepository) Count(ctx context.Context, kind domain.FactKind) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var count int64
	for _, fact := range m.facts {
		if fact.Kind == kind {
			count++
		}
	}
	return count, nil
}

// MockAchievementRepository is a mock implementation of AchievementRepository
type MockAchievementRepository struct {
	achievements []domain.Achievement
	err          error
}

func NewMockAchievementRepository() *MockAchievementRepository {
	return &MockAchievementRepository{}
}

func (m *MockAchievementRepository) Create(ctx context.Context, achievement *domain.Achievement) error {
	if m.err != nil {
		return m.err
	}
	achievement.CreatedAt = time.Now()
	m.achievements = append(m.achievements, *achievement)
	return nil
}

func (m *MockAchievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Achievement
	for _, a := range m.achievements {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *MockAchievementRepository) Exists(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, a := range m.achievements {
		if a.UserID == userID && a.Type == achievementType {
			return true, nil
		}
	}
	return false, nil
}

// MockLangfuseClient records trace and score calls.
type MockLangfuseClient struct {
	traces []langfuse.TraceInput
	scores []langfuse.ScoreInput
}

func NewMockLangfuseClient() *MockLangfuseClient {
	return &MockLangfuseClient{}
}

func (m *MockLangfuseClient) IsEnabled() bool { return true }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return "trace-" + uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
