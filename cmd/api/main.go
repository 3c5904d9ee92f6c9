// Sleep Analytics API
//
// REST API for recording sleep sessions and analyzing sleep quality,
// trends, naps and recommendations.
//
//	@title			Sleep Analytics API
//	@version		1.0
//	@description	Record sleep sessions with stage intervals and get quality scores, trend analysis, nap classification and personalized recommendations.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-sessions
//	@tag.description	Sleep session recording endpoints
//
//	@tag.name			sleep-analysis
//	@tag.description	Sleep analysis and recommendation endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/blaisecz/sleep-analytics/internal/api"
	"github.com/blaisecz/sleep-analytics/internal/api/handler"
	"github.com/blaisecz/sleep-analytics/internal/config"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/langfuse"
	"github.com/blaisecz/sleep-analytics/internal/llm"
	"github.com/blaisecz/sleep-analytics/internal/repository"
	"github.com/blaisecz/sleep-analytics/internal/seed"
	"github.com/blaisecz/sleep-analytics/internal/service"
	"github.com/blaisecz/sleep-analytics/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg := config.Load()

	// Initialize OpenTelemetry (no-op without Langfuse config)
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-analytics-api")
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
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepSession{}, &domain.SleepStage{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize Langfuse client (no-op if not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	analysisService := service.NewAnalysisService(sessionRepo, userRepo)

	// Load the advice system prompt (Langfuse-managed with local fallback)
	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.AdvicePromptName,
		PromptLabel: cfg.AdvicePromptLabel,
		SavePath:    cfg.AdvicePromptPath,
	})
	if err != nil {
		log.Printf("Using built-in advice prompt: %v", err)
		systemPrompt = ""
	}

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISleepAdviceModel, systemPrompt)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, advice endpoint will be unavailable")
	}

	// Initialize advice service
	adviceService := service.NewAdviceService(sessionRepo, userRepo, openaiClient, langfuseClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	analysisHandler := handler.NewAnalysisHandler(analysisService, adviceService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, sessionHandler, analysisHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
