package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
)

func newContentFixture() (*MockUserRepository, *MockFactRepository, *MockRecommendationRepository, *contentService) {
	userRepo := NewMockUserRepository()
	factRepo := NewMockFactRepository()
	recRepo := NewMockRecommendationRepository()
	svc := NewContentService(factRepo, recRepo, userRepo).(*contentService)
	return userRepo, factRepo, recRepo, svc
}

func TestContentService_DeliverDailyTip(t *testing.T) {
	userRepo, factRepo, recRepo, svc := newContentFixture()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID}
	factRepo.facts = []domain.Fact{
		{ID: uuid.New(), Kind: domain.FactKindTip, Text: "Keep the bedroom cool."},
		{ID: uuid.New(), Kind: domain.FactKindFact, Text: "Dreams happen in REM sleep."},
	}
	svc.randFloat = func() float64 { return 0.5 } // below 0.7: tip

	rec, suppressed, err := svc.DeliverDaily(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suppressed {
		t.Fatal("first delivery must not be suppressed")
	}
	if rec.Kind != domain.KindTip {
		t.Errorf("kind = %s, want tip", rec.Kind)
	}
	if rec.Text != "Keep the bedroom cool." {
		t.Errorf("unexpected text: %q", rec.Text)
	}
	if len(recRepo.recs) != 1 {
		t.Errorf("delivery not persisted")
	}
}

func TestContentService_DeliverDailyFact(t *testing.T) {
	userRepo, factRepo, _, svc := newContentFixture()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID}
	factRepo.facts = []domain.Fact{
		{ID: uuid.New(), Kind: domain.FactKindTip, Text: "tip"},
		{ID: uuid.New(), Kind: domain.FactKindFact, Text: "fact"},
	}
	svc.randFloat = func() float64 { return 0.9 } // above 0.7: fact

	rec, _, err := svc.DeliverDaily(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != domain.KindFact {
		t.Errorf("kind = %s, want fact", rec.Kind)
	}
}

func TestContentService_EitherKindSuppressesBoth(t *testing.T) {
	userRepo, factRepo, recRepo, svc := newContentFixture()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID}
	factRepo.facts = []domain.Fact{
		{ID: uuid.New(), Kind: domain.FactKindTip, Text: "tip"},
		{ID: uuid.New(), Kind: domain.FactKindFact, Text: "fact"},
	}

	// A fact already delivered today blocks the tip as well.
	today := time.Now().UTC().Truncate(24 * time.Hour)
	id := uuid.New()
	recRepo.recs[id] = &domain.Recommendation{
		ID:     id,
		UserID: userID,
		Date:   today,
		Kind:   domain.KindFact,
		Text:   "fact",
	}
	svc.randFloat = func() float64 { return 0.1 } // would pick a tip

	rec, suppressed, err := svc.DeliverDaily(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !suppressed {
		t.Fatal("expected suppression after any content today")
	}
	if rec != nil {
		t.Errorf("suppressed delivery must return nothing, got %+v", rec)
	}
	if len(recRepo.recs) != 1 {
		t.Error("suppressed delivery must not persist anything")
	}
}

func TestContentService_FallsBackToOtherPool(t *testing.T) {
	userRepo, factRepo, _, svc := newContentFixture()
	userID := uuid.New()
	userRepo.users[userID] = &domain.User{ID: userID}
	factRepo.facts = []domain.Fact{
		{ID: uuid.New(), Kind: domain.FactKindFact, Text: "only a fact"},
	}
	svc.randFloat = func() float64 { return 0.1 } // picks the empty tip pool

	rec, _, err := svc.DeliverDaily(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != domain.KindFact || rec.Text != "only a fact" {
		t.Errorf("expected fallback to the fact pool, got %+v", rec)
	}
}

func TestContentService_AddFact(t *testing.T) {
	_, factRepo, _, svc := newContentFixture()

	fact, err := svc.AddFact(context.Background(), &domain.CreateFactRequest{
		Kind: domain.FactKindTip,
		Text: "Avoid caffeine after noon.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fact.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if count, _ := factRepo.Count(context.Background(), domain.FactKindTip); count != 1 {
		t.Errorf("tip count = %d, want 1", count)
	}
}
