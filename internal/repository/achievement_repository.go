package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *domain.Achievement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error)
	Exists(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *domain.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) Exists(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Achievement{}).
		Where("user_id = ? AND type = ?", userID, achievementType).
		Count(&count).Error
	return count > 0, err
}
