package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/blaisecz/sleep-analytics/internal/langfuse"
	"github.com/google/uuid"
)

// mockLangfuseClient is a mock implementation of langfuse.Client
type mockLangfuseClient struct {
	enabled    bool
	traceID    string
	traceCalls int
	scoreCalls int
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traceCalls++
	return m.traceID, nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	return nil
}

func TestAdviceService_Generate(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")
	seedNights(t, sessionRepo, user.ID, now, 4)

	mockLLM := &MockAdviceLLM{
		output: &domain.AdviceOutput{
			Tips:                  []string{"Mantén un horario fijo.", "Evita pantallas antes de dormir.", "Cena ligero."},
			Warnings:              []string{},
			PositiveReinforcement: []string{"Tu horario es muy regular."},
			WeeklyTrend:           "Tu sueño se mantiene estable esta semana.",
		},
	}
	mockLF := &mockLangfuseClient{enabled: true, traceID: "trace-abc"}

	svc := NewAdviceService(sessionRepo, userRepo, mockLLM, mockLF).(*adviceService)
	svc.now = func() time.Time { return now }

	result, err := svc.Generate(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(result.Advice.Tips) != 3 {
		t.Errorf("Tips = %d, want 3", len(result.Advice.Tips))
	}
	if result.TraceID != "trace-abc" {
		t.Errorf("TraceID = %q, want trace-abc", result.TraceID)
	}
	if mockLF.traceCalls != 1 {
		t.Errorf("expected 1 CreateTrace call, got %d", mockLF.traceCalls)
	}

	// The LLM must receive the consolidated sessions and the trend
	if mockLLM.lastCtx == nil {
		t.Fatal("LLM received no context")
	}
	if len(mockLLM.lastCtx.Sessions) != 4 {
		t.Errorf("LLM context sessions = %d, want 4", len(mockLLM.lastCtx.Sessions))
	}
	if mockLLM.lastCtx.Trend == nil {
		t.Error("LLM context trend is nil")
	}
}

func TestAdviceService_Generate_LLMError(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")

	wantErr := errors.New("request timed out")
	mockLLM := &MockAdviceLLM{err: wantErr}

	svc := NewAdviceService(sessionRepo, userRepo, mockLLM, &mockLangfuseClient{}).(*adviceService)
	svc.now = func() time.Time { return now }

	if _, err := svc.Generate(context.Background(), user.ID); !errors.Is(err, wantErr) {
		t.Errorf("Generate() error = %v, want %v", err, wantErr)
	}
}

func TestAdviceService_Generate_UnknownUser(t *testing.T) {
	svc := NewAdviceService(NewMockSessionRepository(), NewMockUserRepository(), &MockAdviceLLM{}, &mockLangfuseClient{})

	if _, err := svc.Generate(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}
