package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/api/validation"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/service"
	"github.com/sonyahq/sleep-coach/pkg/problem"
)

type RecommendationHandler struct {
	service service.RecommendationService
}

func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Analyze handles POST /v1/users/{userId}/recommendations/analyze
// @Summary Run the recommendation engine
// @Description Analyze the user's full diary history and store the resulting recommendations. A run within a week of the previous one is suppressed unless force=true.
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param force query boolean false "Bypass the weekly cooldown" default(false)
// @Success 200 {object} domain.AnalyzeResponse
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 412 {object} problem.Problem "User profile missing or incomplete"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/recommendations/analyze [post]
func (h *RecommendationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	force := false
	if forceStr := r.URL.Query().Get("force"); forceStr != "" {
		force, err = strconv.ParseBool(forceStr)
		if err != nil {
			problem.BadRequest("force must be a boolean").Write(w)
			return
		}
	}

	response, err := h.service.Analyze(r.Context(), userID, force)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrMissingProfile) {
			problem.PreconditionFailed("User profile is missing or incomplete").Write(w)
			return
		}
		problem.InternalError("Failed to run analysis").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// List handles GET /v1/users/{userId}/recommendations
// @Summary List stored recommendations
// @Description List the user's stored recommendations, tips and facts, newest first
// @Tags recommendations
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Maximum results" default(50)
// @Success 200 {array} domain.RecommendationResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations [get]
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.BadRequest("limit must be a positive integer").Write(w)
			return
		}
	}

	recs, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list recommendations").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recs)
}

// Feedback handles POST /v1/users/{userId}/recommendations/{recId}/feedback
// @Summary Rate a recommendation
// @Description Mark a recommendation as helpful or not. The rating is also forwarded to Langfuse as a score.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param recId path string true "Recommendation UUID" format(uuid)
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 200 {object} domain.RecommendationResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recommendations/{recId}/feedback [post]
func (h *RecommendationHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}
	recID, err := uuid.Parse(chi.URLParam(r, "recId"))
	if err != nil {
		problem.BadRequest("Invalid recommendation ID format").Write(w)
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.SubmitFeedback(r.Context(), userID, recID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Recommendation not found").Write(w)
			return
		}
		problem.InternalError("Failed to store feedback").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec.ToResponse())
}
