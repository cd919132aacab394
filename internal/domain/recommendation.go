package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationKind distinguishes engine output from daily tips and facts.
// @Description Kind of message: analysis (engine output), tip, or fact.
type RecommendationKind string

const (
	KindAnalysis RecommendationKind = "analysis"
	KindTip      RecommendationKind = "tip"
	KindFact     RecommendationKind = "fact"
)

// Recommendation is one delivered message. Engine output is stored with no
// feedback; the user may later mark it helpful or not.
type Recommendation struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index:idx_recs_user_date" json:"user_id"`
	Date       time.Time          `gorm:"type:date;not null;index:idx_recs_user_date,sort:desc" json:"date"`
	Kind       RecommendationKind `gorm:"type:varchar(10);not null" json:"kind"`
	Text       string             `gorm:"type:text;not null" json:"text"`
	IsHelpful  *bool              `json:"is_helpful,omitempty"`
	FeedbackAt *time.Time         `json:"feedback_at,omitempty"`
	// TraceID links engine output back to its Langfuse trace for scoring.
	TraceID   string    `gorm:"type:varchar(36)" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// RecommendationResponse is the response body for recommendation endpoints.
// @Description Stored recommendation with feedback state.
type RecommendationResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Date       string             `json:"date" example:"2024-03-17"`
	Kind       RecommendationKind `json:"kind"`
	Text       string             `json:"text"`
	IsHelpful  *bool              `json:"is_helpful,omitempty"`
	FeedbackAt *time.Time         `json:"feedback_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

func (r *Recommendation) ToResponse() RecommendationResponse {
	return RecommendationResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Date:       r.Date.Format("2006-01-02"),
		Kind:       r.Kind,
		Text:       r.Text,
		IsHelpful:  r.IsHelpful,
		FeedbackAt: r.FeedbackAt,
		CreatedAt:  r.CreatedAt,
	}
}

// FeedbackRequest is the request body for recommendation feedback.
// @Description Whether a recommendation helped, with an optional comment.
type FeedbackRequest struct {
	// True if the recommendation helped
	Helpful *bool `json:"helpful" validate:"required" example:"true"`
	// Optional free-text comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"Sleeping much better now."`
}

// AnalyzeResponse is the response body for an engine invocation.
// @Description Result of running the recommendation engine.
type AnalyzeResponse struct {
	// Final ordered recommendation texts (max 5)
	Recommendations []string `json:"recommendations"`
	// Per-analyzer outcome, in merge order
	Analyzers []AnalyzerOutcome `json:"analyzers"`
	// Number of diary records the engine saw
	RecordCount int `json:"record_count" example:"14"`
	// True if the run was suppressed because a recent analysis exists
	Suppressed bool `json:"suppressed,omitempty"`
}

// AnalyzerOutcome reports one analyzer's status for an engine run.
// @Description Status of a single analyzer: findings, empty, or skipped.
type AnalyzerOutcome struct {
	Analyzer string `json:"analyzer" example:"correlation"`
	Status   string `json:"status" example:"findings"`
	Findings int    `json:"findings" example:"2"`
	Reason   string `json:"reason,omitempty" example:"need at least 7 records"`
}
