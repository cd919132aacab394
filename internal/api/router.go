package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/sonyahq/sleep-coach/docs"
	"github.com/sonyahq/sleep-coach/internal/api/handler"
	"github.com/sonyahq/sleep-coach/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler           *handler.UserHandler
	diaryHandler          *handler.DiaryHandler
	recommendationHandler *handler.RecommendationHandler
	contentHandler        *handler.ContentHandler
	statsHandler          *handler.StatsHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	diaryHandler *handler.DiaryHandler,
	recommendationHandler *handler.RecommendationHandler,
	contentHandler *handler.ContentHandler,
	statsHandler *handler.StatsHandler,
) *Router {
	return &Router{
		userHandler:           userHandler,
		diaryHandler:          diaryHandler,
		recommendationHandler: recommendationHandler,
		contentHandler:        contentHandler,
		statsHandler:          statsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Content pool
		r.Post("/facts", rt.contentHandler.CreateFact)

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)
			r.Get("/{userId}/stats", rt.statsHandler.Summary)
			r.Get("/{userId}/achievements", rt.diaryHandler.Achievements)
			r.Post("/{userId}/tips/daily", rt.contentHandler.DeliverDaily)

			// Diary (nested under users)
			r.Route("/{userId}/diary", func(r chi.Router) {
				r.Post("/", rt.diaryHandler.Create)
				r.Get("/", rt.diaryHandler.List)
			})

			// Recommendations (nested under users)
			r.Route("/{userId}/recommendations", func(r chi.Router) {
				r.Get("/", rt.recommendationHandler.List)
				r.Post("/analyze", rt.recommendationHandler.Analyze)
				r.Post("/{recId}/feedback", rt.recommendationHandler.Feedback)
			})
		})
	})

	return r
}
