package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/service"
	"github.com/sonyahq/sleep-coach/pkg/problem"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Summary handles GET /v1/users/{userId}/stats
// @Summary Get sleep statistics
// @Description Lifetime survey averages plus the last seven recorded days
// @Tags stats
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.StatsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/stats [get]
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	response, err := h.service.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute statistics").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
