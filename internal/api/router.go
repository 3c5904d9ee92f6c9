package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-analytics/docs"
	"github.com/blaisecz/sleep-analytics/internal/api/handler"
	"github.com/blaisecz/sleep-analytics/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler     *handler.UserHandler
	sessionHandler  *handler.SessionHandler
	analysisHandler *handler.AnalysisHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	sessionHandler *handler.SessionHandler,
	analysisHandler *handler.AnalysisHandler,
) *Router {
	return &Router{
		userHandler:     userHandler,
		sessionHandler:  sessionHandler,
		analysisHandler: analysisHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
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
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Sleep endpoints (nested under users)
			r.Route("/{userId}/sleep", func(r chi.Router) {
				r.Route("/sessions", func(r chi.Router) {
					r.Post("/", rt.sessionHandler.Create)
					r.Get("/", rt.sessionHandler.List)
					r.Get("/{sessionId}", rt.sessionHandler.Get)
				})

				r.Get("/report", rt.analysisHandler.GetReport)
				r.Get("/trends", rt.analysisHandler.GetTrends)
				r.Get("/naps", rt.analysisHandler.GetNaps)
				r.Post("/advice", rt.analysisHandler.PostAdvice)
			})
		})

		// Advice feedback (keyed by trace ID)
		r.Post("/advice/{traceId}/feedback", rt.analysisHandler.PostAdviceFeedback)
	})

	return r
}
