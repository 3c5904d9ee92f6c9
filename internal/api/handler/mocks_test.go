package handler

import (
	"context"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/langfuse"
	"github.com/google/uuid"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error)
	getFunc    func(ctx context.Context, userID uuid.UUID, sessionID string) (*domain.SleepSession, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.SleepSession, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		StartAt:       req.StartAt,
		EndAt:         req.EndAt,
		WakeCount:     req.WakeCount,
		Source:        domain.SourceManual,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, false, nil
}

func (m *MockSessionService) GetByID(ctx context.Context, userID uuid.UUID, sessionID string) (*domain.SleepSession, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, sessionID)
	}
	return &domain.SleepSession{
		ID:            sessionID,
		UserID:        userID,
		StartAt:       time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
		EndAt:         time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
		Source:        domain.SourceManual,
		LocalTimezone: "UTC",
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SessionListResponse{
		Data:       []domain.SessionResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	reportFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepReport, error)
	trendsFunc func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepTrendAnalysis, error)
	napsFunc   func(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.NapAnalysis, error)
}

func (m *MockAnalysisService) Report(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepReport, error) {
	if m.reportFunc != nil {
		return m.reportFunc(ctx, userID, windowDays)
	}
	return &domain.SleepReport{
		Sessions: []domain.SessionResponse{},
		Naps:     []domain.NapAnalysis{},
	}, nil
}

func (m *MockAnalysisService) Trends(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepTrendAnalysis, error) {
	if m.trendsFunc != nil {
		return m.trendsFunc(ctx, userID, windowDays)
	}
	return &domain.SleepTrendAnalysis{
		ConsistencyLevel: "Alta",
		AverageBedtime:   "23:00",
		AverageWakeTime:  "07:00",
	}, nil
}

func (m *MockAnalysisService) Naps(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.NapAnalysis, error) {
	if m.napsFunc != nil {
		return m.napsFunc(ctx, userID, windowDays)
	}
	return []domain.NapAnalysis{}, nil
}

// MockAdviceService is a mock implementation of AdviceService
type MockAdviceService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error)
}

func (m *MockAdviceService) Generate(ctx context.Context, userID uuid.UUID) (*domain.AdviceResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.AdviceResponse{
		Advice: domain.AdviceOutput{
			Tips:        []string{"Mantén un horario fijo."},
			WeeklyTrend: "Estable.",
		},
		TraceID: "trace-123",
	}, nil
}

// mockLangfuseClient is a mock implementation of langfuse.Client
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "trace-123", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return nil
}
