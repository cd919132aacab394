// Sleep Coach API
//
// REST API for sleep diaries, analysis and personalized recommendations.
//
//	@title			Sleep Coach API
//	@version		1.0
//	@description	Collect daily sleep surveys and turn them into personalized sleep recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User registration and profiles
//
//	@tag.name			diary
//	@tag.description	Daily sleep survey endpoints
//
//	@tag.name			recommendations
//	@tag.description	Analysis runs, stored recommendations and feedback
//
//	@tag.name			content
//	@tag.description	Daily tips and facts
//
//	@tag.name			stats
//	@tag.description	Sleep statistics
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/sonyahq/sleep-coach/internal/analysis"
	"github.com/sonyahq/sleep-coach/internal/api"
	"github.com/sonyahq/sleep-coach/internal/api/handler"
	"github.com/sonyahq/sleep-coach/internal/config"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/langfuse"
	"github.com/sonyahq/sleep-coach/internal/repository"
	"github.com/sonyahq/sleep-coach/internal/seed"
	"github.com/sonyahq/sleep-coach/internal/service"
	"github.com/sonyahq/sleep-coach/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OpenTelemetry (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-coach-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.DiaryRecord{},
		&domain.Recommendation{},
		&domain.Fact{},
		&domain.Achievement{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)
	recRepo := repository.NewRecommendationRepository(db)
	factRepo := repository.NewFactRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// Initialize Langfuse client (disabled no-op if not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize services
	engine := analysis.NewEngine()
	userService := service.NewUserService(userRepo)
	diaryService := service.NewDiaryService(diaryRepo, userRepo, achievementRepo)
	recommendationService := service.NewRecommendationService(engine, recRepo, diaryRepo, userRepo, langfuseClient)
	contentService := service.NewContentService(factRepo, recRepo, userRepo)
	statsService := service.NewStatsService(diaryRepo, userRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	diaryHandler := handler.NewDiaryHandler(diaryService)
	recommendationHandler := handler.NewRecommendationHandler(recommendationService)
	contentHandler := handler.NewContentHandler(contentService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Setup router
	router := api.NewRouter(userHandler, diaryHandler, recommendationHandler, contentHandler, statsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
