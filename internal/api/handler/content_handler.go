package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/api/validation"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/service"
	"github.com/sonyahq/sleep-coach/pkg/problem"
)

type ContentHandler struct {
	service service.ContentService
}

func NewContentHandler(service service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// dailyContentResponse reports the delivered content or that today's
// delivery already happened.
type dailyContentResponse struct {
	Content    *domain.RecommendationResponse `json:"content,omitempty"`
	Suppressed bool                           `json:"suppressed"`
}

// DeliverDaily handles POST /v1/users/{userId}/tips/daily
// @Summary Deliver the daily tip or fact
// @Description Pick and store today's content: a tip with 70% probability, otherwise a fact. Any content already delivered today suppresses a second delivery.
// @Tags content
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} dailyContentResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or content pool empty"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/tips/daily [post]
func (h *ContentHandler) DeliverDaily(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	rec, suppressed, err := h.service.DeliverDaily(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found or no content available").Write(w)
			return
		}
		problem.InternalError("Failed to deliver content").Write(w)
		return
	}

	response := dailyContentResponse{Suppressed: suppressed}
	if rec != nil {
		r := rec.ToResponse()
		response.Content = &r
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateFact handles POST /v1/facts
// @Summary Add a tip or fact to the content pool
// @Tags content
// @Accept json
// @Produce json
// @Param request body domain.CreateFactRequest true "Content entry"
// @Success 201 {object} domain.Fact
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /facts [post]
func (h *ContentHandler) CreateFact(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateFactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	fact, err := h.service.AddFact(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to store content").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fact)
}
