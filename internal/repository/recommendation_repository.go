package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"gorm.io/gorm"
)

type RecommendationRepository interface {
	CreateBatch(ctx context.Context, recs []domain.Recommendation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Recommendation, error)
	SaveFeedback(ctx context.Context, id uuid.UUID, helpful bool, at time.Time) error
	HasAnalysisSince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error)
	HasContentOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) CreateBatch(ctx context.Context, recs []domain.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recs).Error
}

func (r *recommendationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
	var rec domain.Recommendation
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Recommendation, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []domain.Recommendation
	if err := query.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recommendationRepository) SaveFeedback(ctx context.Context, id uuid.UUID, helpful bool, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Recommendation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_helpful":  helpful,
			"feedback_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// HasAnalysisSince reports whether an engine run already produced output for
// the user on or after the given date. Used for the weekly suppression.
func (r *recommendationRepository) HasAnalysisSince(ctx context.Context, userID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Recommendation{}).
		Where("user_id = ? AND kind = ? AND date >= ?", userID, domain.KindAnalysis, since).
		Count(&count).Error
	return count > 0, err
}

// HasContentOnDate reports whether the user already got a tip or a fact on
// the given date. A tip suppresses the day's fact and vice versa.
func (r *recommendationRepository) HasContentOnDate(ctx context.Context, userID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Recommendation{}).
		Where("user_id = ? AND kind IN ? AND date = ?", userID,
			[]domain.RecommendationKind{domain.KindTip, domain.KindFact}, date).
		Count(&count).Error
	return count > 0, err
}
