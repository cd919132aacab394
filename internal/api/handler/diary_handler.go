package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/api/validation"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/service"
	"github.com/sonyahq/sleep-coach/pkg/problem"
)

type DiaryHandler struct {
	service service.DiaryService
}

func NewDiaryHandler(service service.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// createDiaryResponse wraps the stored record with any milestones the
// survey just unlocked.
type createDiaryResponse struct {
	Record       domain.DiaryRecordResponse   `json:"record"`
	Achievements []domain.AchievementResponse `json:"achievements,omitempty"`
}

// Create handles POST /v1/users/{userId}/diary
// @Summary Submit a daily sleep survey
// @Description Store one day's survey. Each user can submit at most one survey per date; a duplicate returns 409.
// @Tags diary
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateDiaryRecordRequest true "Survey answers"
// @Success 201 {object} createDiaryResponse "Survey stored, with any freshly unlocked milestones"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Survey already exists for this date"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diary [post]
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateDiaryRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, granted, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrDuplicateEntry) {
			problem.Conflict("A survey already exists for this date").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid survey date").Write(w)
			return
		}
		problem.InternalError("Failed to store survey").Write(w)
		return
	}

	response := createDiaryResponse{Record: record.ToResponse()}
	for _, a := range granted {
		response.Achievements = append(response.Achievements, domain.AchievementResponse{
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// List handles GET /v1/users/{userId}/diary
// @Summary List diary records
// @Description Fetch paginated diary history, newest first. Filter by date range.
// @Tags diary
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start date (YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "End date (YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DiaryListResponse "Diary records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/diary [get]
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseDiaryFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list diary records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Achievements handles GET /v1/users/{userId}/achievements
// @Summary List survey milestones
// @Description List the survey-count milestones the user has reached
// @Tags diary
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AchievementListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/achievements [get]
func (h *DiaryHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.Achievements(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list achievements").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseDiaryFilter(r *http.Request) (domain.DiaryFilter, []problem.FieldError) {
	var filter domain.DiaryFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
