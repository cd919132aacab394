package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/repository"
)

// tipProbability is the chance daily content is a tip rather than a fact.
const tipProbability = 0.7

// ContentService delivers the daily tip-or-fact and manages the shared
// content pool.
type ContentService interface {
	// DeliverDaily picks and stores today's tip or fact for the user.
	// Returns (nil, true, nil) when the user already received content today.
	DeliverDaily(ctx context.Context, userID uuid.UUID) (*domain.Recommendation, bool, error)
	AddFact(ctx context.Context, req *domain.CreateFactRequest) (*domain.Fact, error)
}

type contentService struct {
	factRepo repository.FactRepository
	recRepo  repository.RecommendationRepository
	userRepo repository.UserRepository

	// randFloat is swappable in tests.
	randFloat func() float64
}

func NewContentService(
	factRepo repository.FactRepository,
	recRepo repository.RecommendationRepository,
	userRepo repository.UserRepository,
) ContentService {
	return &contentService{
		factRepo:  factRepo,
		recRepo:   recRepo,
		userRepo:  userRepo,
		randFloat: rand.Float64,
	}
}

func (s *contentService) DeliverDaily(ctx context.Context, userID uuid.UUID) (*domain.Recommendation, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// One piece of content per day: a delivered tip suppresses the fact
	// and a delivered fact suppresses the tip.
	delivered, err := s.recRepo.HasContentOnDate(ctx, userID, today)
	if err != nil {
		return nil, false, err
	}
	if delivered {
		return nil, true, nil
	}

	kind := domain.FactKindFact
	if s.randFloat() < tipProbability {
		kind = domain.FactKindTip
	}

	fact, err := s.factRepo.Random(ctx, kind)
	if err == domain.ErrNotFound {
		// Fall back to the other pool rather than delivering nothing.
		fact, err = s.factRepo.Random(ctx, otherKind(kind))
	}
	if err != nil {
		return nil, false, err
	}

	rec := domain.Recommendation{
		ID:     uuid.New(),
		UserID: userID,
		Date:   today,
		Kind:   contentKind(fact.Kind),
		Text:   fact.Text,
	}
	if err := s.recRepo.CreateBatch(ctx, []domain.Recommendation{rec}); err != nil {
		return nil, false, err
	}

	return &rec, false, nil
}

func (s *contentService) AddFact(ctx context.Context, req *domain.CreateFactRequest) (*domain.Fact, error) {
	fact := &domain.Fact{
		ID:   uuid.New(),
		Kind: req.Kind,
		Text: req.Text,
	}
	if err := s.factRepo.Create(ctx, fact); err != nil {
		return nil, err
	}
	return fact, nil
}

func otherKind(kind domain.FactKind) domain.FactKind {
	if kind == domain.FactKindTip {
		return domain.FactKindFact
	}
	return domain.FactKindTip
}

func contentKind(kind domain.FactKind) domain.RecommendationKind {
	if kind == domain.FactKindTip {
		return domain.KindTip
	}
	return domain.KindFact
}
