package service

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/analysis"
	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/langfuse"
	"github.com/blaisecz/sleep-analytics/internal/llm"
	"github.com/blaisecz/sleep-analytics/internal/repository"
	"github.com/google/uuid"
)

const (
	// AdviceWindowDays is the window of sessions sent to the advice LLM.
	AdviceWindowDays = 7
)

// AdviceService generates LLM-backed sleep advice.
type AdviceService interface {
	// Generate creates sleep advice for a user from their recent sessions.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

type adviceService struct {
	sessionRepo    repository.SessionRepository
	userRepo       repository.UserRepository
	llmClient      llm.AdviceLLM
	langfuseClient langfuse.Client

	now func() time.Time
}

// NewAdviceService creates a new AdviceService.
func NewAdviceService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	llmClient llm.AdviceLLM,
	langfuseClient langfuse.Client,
) AdviceService {
	return &adviceService{
		sessionRepo:    sessionRepo,
		userRepo:       userRepo,
		llmClient:      llmClient,
		langfuseClient: langfuseClient,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *adviceService) Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	to := s.now()
	from := to.AddDate(0, 0, -AdviceWindowDays)

	sessions, err := s.sessionRepo.ListByEndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
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

	trend := analysis.AnalyzeTrends(consolidated, loc)

	adviceCtx := &domain.AdviceContext{
		Sessions: make([]domain.SessionResponse, len(consolidated)),
		Trend:    &trend,
	}
	for i := range consolidated {
		adviceCtx.Sessions[i] = consolidated[i].ToResponse()
	}

	output, err := s.llmClient.GenerateAdvice(ctx, adviceCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.AdviceResponse{
		Advice: *output,
	}

	// Record the run in Langfuse for feedback linking (no-op when disabled)
	traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
		UserID: userID.String(),
		Name:   "sleep-advice",
		Input:  adviceCtx,
		Output: output,
		Tags:   []string{"sleep-analytics-api"},
	})
	if err == nil {
		response.TraceID = traceID
	}

	return response, nil
}
