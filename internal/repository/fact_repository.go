package repository

import (
	"context"

	"github.com/sonyahq/sleep-coach/internal/domain"
	"gorm.io/gorm"
)

type FactRepository interface {
	Create(ctx context.Context, fact *domain.Fact) error
	Random(ctx context.Context, kind domain.FactKind) (*domain.Fact, error)
	Count(ctx context.Context, kind domain.FactKind) (int64, error)
}

type factRepository struct {
	db *gorm.DB
}

func NewFactRepository(db *gorm.DB) FactRepository {
	return &factRepository{db: db}
}

func (r *factRepository) Create(ctx context.Context, fact *domain.Fact) error {
	return r.db.WithContext(ctx).Create(fact).Error
}

// Random picks a uniformly random entry of the given kind. The content pool
// is small, so ORDER BY RANDOM() is fine here.
func (r *factRepository) Random(ctx context.Context, kind domain.FactKind) (*domain.Fact, error) {
	var fact domain.Fact
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("RANDOM()").
		First(&fact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &fact, nil
}

func (r *factRepository) Count(ctx context.Context, kind domain.FactKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Fact{}).
		Where("kind = ?", kind).
		Count(&count).Error
	return count, err
}
