package service

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/analysis"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultReportWindowDays is the default window for the full report.
	DefaultReportWindowDays = 7

	// MaxReportWindowDays caps the analysis window.
	MaxReportWindowDays = 90
)

// AnalysisService runs the sleep analysis pipeline over stored sessions.
type AnalysisService interface {
	// Report runs the full pipeline: consolidation, quality, trends, naps
	// and synthesized recommendations.
	Report(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepReport, error)
	// Trends computes only the trend analysis for the window.
	Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepTrendAnalysis, error)
	// Naps classifies daytime naps in the window.
	Naps(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.NapAnalysis, error)
}

type analysisService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository

	// now and rng are injectable for deterministic tests.
	now func() time.Time
	rng *rand.Rand
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(sessionRepo repository.SessionRepository, userRepo repository.UserRepository) AnalysisService {
	return &analysisService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *analysisService) Report(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepReport, error) {
	tracer := otel.Tracer("sleep-analytics-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Report",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	consolidated, loc, from, to, err := s.loadWindow(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":  userID.String(),
		"from":     from.Format(time.RFC3339),
		"to":       to.Format(time.RFC3339),
		"sessions": len(consolidated),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	report := &domain.SleepReport{
		Sessions: make([]domain.SessionResponse, len(consolidated)),
		Naps:     []domain.NapAnalysis{},
	}
	report.Window.From = from
	report.Window.To = to

	for i := range consolidated {
		report.Sessions[i] = consolidated[i].ToResponse()
	}

	trend := analysis.AnalyzeTrends(consolidated, loc)
	report.Trend = &trend

	report.Naps = analysis.AnalyzeNaps(consolidated, loc)

	var last *domain.SleepSession
	if len(consolidated) > 0 {
		last = &consolidated[len(consolidated)-1]
		quality := analysis.AnalyzeQuality(*last, s.rng)
		report.Quality = &quality
	}

	report.Recommendations = analysis.Synthesize(last, report.Quality, report.Trend, report.Naps, loc, s.rng)

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(report.Recommendations); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return report, nil
}

func (s *analysisService) Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepTrendAnalysis, error) {
	consolidated, loc, _, _, err := s.loadWindow(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	trend := analysis.AnalyzeTrends(consolidated, loc)
	return &trend, nil
}

func (s *analysisService) Naps(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.NapAnalysis, error) {
	consolidated, loc, _, _, err := s.loadWindow(ctx, userID, windowDays)
	if err != nil {
		return nil, err
	}

	return analysis.AnalyzeNaps(consolidated, loc), nil
}

// loadWindow fetches the user's sessions in the window, consolidates
// split nights and recomputes metrics on merged records.
func (s *analysisService) loadWindow(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.SleepSession, *time.Location, time.Time, time.Time, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, err
	}

	if windowDays <= 0 {
		windowDays = DefaultReportWindowDays
	}
	if windowDays > MaxReportWindowDays {
		windowDays = MaxReportWindowDays
	}

	to := s.now()
	from := to.AddDate(0, 0, -windowDays)

	sessions, err := s.sessionRepo.ListByEndRange(ctx, userID, from, to)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, err
	}

	loc := time.UTC
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}

	consolidated := analysis.Consolidate(sessions, analysis.DefaultConsolidationGap)
	for i := range consolidated {
		if consolidated[i].HasStageData() {
			consolidated[i] = analysis.WithComputedMetrics(consolidated[i])
		}
	}

	return consolidated, loc, from, to, nil
}
