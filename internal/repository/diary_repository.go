package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/pkg/pagination"
	"gorm.io/gorm"
)

type DiaryRepository interface {
	Create(ctx context.Context, record *domain.DiaryRecord) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DiaryRecord, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) ([]domain.DiaryRecord, error)
	ListAllAsc(ctx context.Context, userID uuid.UUID) ([]domain.DiaryRecord, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	LastN(ctx context.Context, userID uuid.UUID, n int) ([]domain.DiaryRecord, error)
}

type diaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

func (r *diaryRepository) Create(ctx context.Context, record *domain.DiaryRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicateEntry
	}
	return err
}

// isUniqueViolation matches the one-survey-per-day unique index regardless
// of driver error type.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func (r *diaryRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DiaryRecord, error) {
	var record domain.DiaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *diaryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DiaryFilter) ([]domain.DiaryRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with date < cursor.Date
			// or same date but id < cursor.ID
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.DiaryRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// ListAllAsc returns the user's full diary history ordered by date
// ascending, the order the analysis engine expects.
func (r *diaryRepository) ListAllAsc(ctx context.Context, userID uuid.UUID) ([]domain.DiaryRecord, error) {
	var records []domain.DiaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *diaryRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.DiaryRecord{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// LastN returns the most recent n records, newest first.
func (r *diaryRepository) LastN(ctx context.Context, userID uuid.UUID, n int) ([]domain.DiaryRecord, error) {
	var records []domain.DiaryRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
