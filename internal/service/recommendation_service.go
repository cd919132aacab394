package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sonyahq/sleep-coach/internal/analysis"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/langfuse"
	"github.com/sonyahq/sleep-coach/internal/repository"
)

// analysisCooldown is how long a stored analysis suppresses a new engine
// run unless the caller forces one.
const analysisCooldown = 7 * 24 * time.Hour

// RecommendationService runs the analysis engine and manages stored
// recommendations and their feedback.
type RecommendationService interface {
	// Analyze runs the engine over the user's full diary history. Unless
	// force is set, a run within the cooldown window is suppressed.
	Analyze(ctx context.Context, userID uuid.UUID, force bool) (*domain.AnalyzeResponse, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationResponse, error)
	SubmitFeedback(ctx context.Context, userID, recID uuid.UUID, req *domain.FeedbackRequest) (*domain.Recommendation, error)
}

type recommendationService struct {
	engine    *analysis.Engine
	recRepo   repository.RecommendationRepository
	diaryRepo repository.DiaryRepository
	userRepo  repository.UserRepository
	langfuse  langfuse.Client
}

func NewRecommendationService(
	engine *analysis.Engine,
	recRepo repository.RecommendationRepository,
	diaryRepo repository.DiaryRepository,
	userRepo repository.UserRepository,
	langfuseClient langfuse.Client,
) RecommendationService {
	return &recommendationService{
		engine:    engine,
		recRepo:   recRepo,
		diaryRepo: diaryRepo,
		userRepo:  userRepo,
		langfuse:  langfuseClient,
	}
}

func (s *recommendationService) Analyze(ctx context.Context, userID uuid.UUID, force bool) (*domain.AnalyzeResponse, error) {
	tracer := otel.Tracer("sleep-coach-api/recommendations")
	ctx, span := tracer.Start(ctx, "RecommendationService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Bool("analysis.force", force),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := now.Truncate(24 * time.Hour)

	if !force {
		recent, err := s.recRepo.HasAnalysisSince(ctx, userID, today.Add(-analysisCooldown))
		if err != nil {
			return nil, err
		}
		if recent {
			span.SetAttributes(attribute.Bool("analysis.suppressed", true))
			return &domain.AnalyzeResponse{Suppressed: true}, nil
		}
	}

	records, err := s.diaryRepo.ListAllAsc(ctx, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("analysis.record_count", len(records)))

	report, err := s.engine.Analyze(ctx, *user, records)
	if err != nil {
		return nil, err
	}

	// Attach input/output payloads for Langfuse
	inputPayload := map[string]any{
		"user_id":      userID.String(),
		"record_count": len(records),
		"force":        force,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}
	if outputJSON, err := json.Marshal(report.Recommendations); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	traceID, _ := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   "sleep-analysis",
		Input:  inputPayload,
		Output: report.Recommendations,
		Tags:   []string{"analysis"},
	})

	// The below-gate notice is transient guidance, not worth persisting.
	if report.RecordCount >= analysis.MinHistoryRecords {
		recs := make([]domain.Recommendation, len(report.Recommendations))
		for i, text := range report.Recommendations {
			recs[i] = domain.Recommendation{
				ID:      uuid.New(),
				UserID:  userID,
				Date:    today,
				Kind:    domain.KindAnalysis,
				Text:    text,
				TraceID: traceID,
			}
		}
		if err := s.recRepo.CreateBatch(ctx, recs); err != nil {
			return nil, err
		}
	}

	return toAnalyzeResponse(report), nil
}

func toAnalyzeResponse(report *analysis.Report) *domain.AnalyzeResponse {
	response := &domain.AnalyzeResponse{
		Recommendations: report.Recommendations,
		RecordCount:     report.RecordCount,
		Analyzers:       make([]domain.AnalyzerOutcome, len(report.Results)),
	}
	for i, res := range report.Results {
		response.Analyzers[i] = domain.AnalyzerOutcome{
			Analyzer: res.Analyzer,
			Status:   string(res.Status),
			Findings: len(res.Recommendations),
			Reason:   res.Reason,
		}
	}
	return response
}

func (s *recommendationService) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RecommendationResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	recs, err := s.recRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecommendationResponse, len(recs))
	for i, rec := range recs {
		responses[i] = rec.ToResponse()
	}
	return responses, nil
}

func (s *recommendationService) SubmitFeedback(ctx context.Context, userID, recID uuid.UUID, req *domain.FeedbackRequest) (*domain.Recommendation, error) {
	rec, err := s.recRepo.GetByID(ctx, recID)
	if err != nil {
		return nil, err
	}

	// Verify ownership
	if rec.UserID != userID {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	if err := s.recRepo.SaveFeedback(ctx, recID, *req.Helpful, now); err != nil {
		return nil, err
	}

	rec.IsHelpful = req.Helpful
	rec.FeedbackAt = &now

	if rec.TraceID != "" {
		value := 0.0
		if *req.Helpful {
			value = 1.0
		}
		// Fire-and-forget; feedback storage never depends on Langfuse.
		_ = s.langfuse.CreateScore(ctx, langfuse.ScoreInput{
			TraceID: rec.TraceID,
			Name:    "user_feedback",
			Value:   value,
			Comment: req.Comment,
		})
	}

	return rec, nil
}
