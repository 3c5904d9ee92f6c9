package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-analytics/internal/api/validation"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/langfuse"
	"github.com/blaisecz/sleep-analytics/internal/llm"
	"github.com/blaisecz/sleep-analytics/internal/service"
	"github.com/blaisecz/sleep-analytics/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AnalysisHandler handles sleep analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	adviceService   service.AdviceService
	langfuseClient  langfuse.Client
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(
	analysisService service.AnalysisService,
	adviceService service.AdviceService,
	langfuseClient langfuse.Client,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		adviceService:   adviceService,
		langfuseClient:  langfuseClient,
	}
}

// GetReport handles GET /v1/users/{userId}/sleep/report
// @Summary Get full sleep analysis report
// @Description Run the full analysis pipeline: split-night consolidation, quality scoring of the latest night, multi-day trends, nap classification and synthesized recommendations.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(7) minimum(1) maximum(90)
// @Success 200 {object} domain.SleepReport "Full analysis report"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/report [get]
func (h *AnalysisHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	userID, windowDays, ok := parseAnalysisParams(w, r)
	if !ok {
		return
	}

	report, err := h.analysisService.Report(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build sleep report").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// GetTrends handles GET /v1/users/{userId}/sleep/trends
// @Summary Get sleep trend analysis
// @Description Compute consistency, schedule averages, duration/quality trends and the weekday versus weekend comparison over the window.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(7) minimum(1) maximum(90)
// @Success 200 {object} domain.SleepTrendAnalysis "Trend analysis"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/trends [get]
func (h *AnalysisHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	userID, windowDays, ok := parseAnalysisParams(w, r)
	if !ok {
		return
	}

	trend, err := h.analysisService.Trends(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to compute trends").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trend)
}

// GetNaps handles GET /v1/users/{userId}/sleep/naps
// @Summary Get nap analysis
// @Description Classify daytime naps in the window with quality, recommendations and night-sleep impact.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(7) minimum(1) maximum(90)
// @Success 200 {array} domain.NapAnalysis "Nap analyses"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/naps [get]
func (h *AnalysisHandler) GetNaps(w http.ResponseWriter, r *http.Request) {
	userID, windowDays, ok := parseAnalysisParams(w, r)
	if !ok {
		return
	}

	naps, err := h.analysisService.Naps(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to analyze naps").Write(w)
		return
	}
	if naps == nil {
		naps = []domain.NapAnalysis{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(naps)
}

// PostAdvice handles POST /v1/users/{userId}/sleep/advice
// @Summary Generate LLM-powered sleep advice
// @Description Generate free-text sleep advice from the user's recent sessions and trend analysis.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.AdviceResponse "Generated advice"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/sleep/advice [post]
func (h *AnalysisHandler) PostAdvice(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.adviceService.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate advice from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate advice").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PostAdviceFeedback handles POST /v1/advice/{traceId}/feedback
// @Summary Submit feedback on generated advice
// @Description Submit a user rating and optional comment for a previous advice response.
// @Tags sleep-analysis
// @Accept json
// @Produce json
// @Param traceId path string true "Trace ID from the advice response"
// @Param body body domain.AdviceFeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /advice/{traceId}/feedback [post]
func (h *AnalysisHandler) PostAdviceFeedback(w http.ResponseWriter, r *http.Request) {
	traceID := chi.URLParam(r, "traceId")
	if traceID == "" {
		problem.BadRequest("Trace ID is required").Write(w)
		return
	}

	var req domain.AdviceFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: traceID,
		Name:    "user_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// parseAnalysisParams extracts the user ID and window_days query parameter.
func parseAnalysisParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, 0, false
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultReportWindowDays)
	if windowDays < 1 || windowDays > service.MaxReportWindowDays {
		problem.BadRequest("window_days must be between 1 and 90").Write(w)
		return uuid.Nil, 0, false
	}

	return userID, windowDays, true
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
