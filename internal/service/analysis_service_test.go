package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
	"github.com/google/uuid"
)

// seedNights stores count nightly sessions ending before now, newest last.
func seedNights(t *testing.T, repo *MockSessionRepository, userID uuid.UUID, now time.Time, count int) {
	t.Helper()
	for i := count; i >= 1; i-- {
		start := now.AddDate(0, 0, -i).Truncate(24 * time.Hour).Add(23 * time.Hour)
		session := &domain.SleepSession{
			UserID:        userID,
			StartAt:       start,
			EndAt:         start.Add(8 * time.Hour),
			Efficiency:    90,
			LocalTimezone: "UTC",
			Source:        domain.SourceManual,
		}
		if err := repo.Create(context.Background(), session); err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}
}

func TestAnalysisService_Report(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")
	seedNights(t, sessionRepo, user.ID, now, 5)

	svc := NewAnalysisService(sessionRepo, userRepo).(*analysisService)
	svc.now = func() time.Time { return now }

	report, err := svc.Report(context.Background(), user.ID, 7)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if len(report.Sessions) != 5 {
		t.Errorf("Sessions = %d, want 5", len(report.Sessions))
	}
	if report.Quality == nil {
		t.Fatal("Quality is nil with sessions present")
	}
	if report.Quality.Score < 0 || report.Quality.Score > 100 {
		t.Errorf("Quality.Score = %d, out of range", report.Quality.Score)
	}
	if report.Trend == nil {
		t.Fatal("Trend is nil")
	}
	if report.Trend.ConsistencyScore < 90 {
		t.Errorf("ConsistencyScore = %d, want >= 90 for identical bedtimes", report.Trend.ConsistencyScore)
	}
	if report.Recommendations.IdealBedtime == "" || report.Recommendations.IdealWakeTime == "" {
		t.Error("expected an ideal schedule in recommendations")
	}
	if report.Window.From.After(report.Window.To) {
		t.Error("window from is after to")
	}
}

func TestAnalysisService_Report_EmptyWindow(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")

	svc := NewAnalysisService(sessionRepo, userRepo).(*analysisService)
	svc.now = func() time.Time { return now }

	report, err := svc.Report(context.Background(), user.ID, 7)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if report.Quality != nil {
		t.Error("Quality should be nil without sessions")
	}
	if report.Trend == nil {
		t.Fatal("Trend is nil")
	}
	if report.Trend.ConsistencyScore != 0 {
		t.Errorf("ConsistencyScore = %d, want 0", report.Trend.ConsistencyScore)
	}
	if len(report.Naps) != 0 {
		t.Errorf("Naps = %d, want 0", len(report.Naps))
	}
}

func TestAnalysisService_Report_UnknownUser(t *testing.T) {
	svc := NewAnalysisService(NewMockSessionRepository(), NewMockUserRepository())

	if _, err := svc.Report(context.Background(), uuid.New(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Report() error = %v, want ErrNotFound", err)
	}
}

func TestAnalysisService_Report_ConsolidatesSplitNight(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")

	// One night split in two with a 10-minute gap.
	firstStart := time.Date(2024, 1, 19, 23, 0, 0, 0, time.UTC)
	firstEnd := time.Date(2024, 1, 20, 1, 0, 0, 0, time.UTC)
	secondStart := firstEnd.Add(10 * time.Minute)
	secondEnd := time.Date(2024, 1, 20, 7, 0, 0, 0, time.UTC)

	for _, span := range [][2]time.Time{{firstStart, firstEnd}, {secondStart, secondEnd}} {
		if err := sessionRepo.Create(context.Background(), &domain.SleepSession{
			UserID:        user.ID,
			StartAt:       span[0],
			EndAt:         span[1],
			LocalTimezone: "UTC",
			Source:        domain.SourceManual,
		}); err != nil {
			t.Fatalf("failed to seed session: %v", err)
		}
	}

	svc := NewAnalysisService(sessionRepo, userRepo).(*analysisService)
	svc.now = func() time.Time { return now }

	report, err := svc.Report(context.Background(), user.ID, 7)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	if len(report.Sessions) != 1 {
		t.Fatalf("Sessions = %d, want 1 after consolidation", len(report.Sessions))
	}
	if !report.Sessions[0].StartAt.Equal(firstStart) || !report.Sessions[0].EndAt.Equal(secondEnd) {
		t.Errorf("consolidated span = %v..%v, want %v..%v",
			report.Sessions[0].StartAt, report.Sessions[0].EndAt, firstStart, secondEnd)
	}
}

func TestAnalysisService_Naps(t *testing.T) {
	now := time.Date(2024, 1, 20, 20, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")

	napStart := time.Date(2024, 1, 20, 14, 0, 0, 0, time.UTC)
	if err := sessionRepo.Create(context.Background(), &domain.SleepSession{
		UserID:        user.ID,
		StartAt:       napStart,
		EndAt:         napStart.Add(30 * time.Minute),
		LocalTimezone: "UTC",
		Source:        domain.SourceManual,
	}); err != nil {
		t.Fatalf("failed to seed nap: %v", err)
	}

	svc := NewAnalysisService(sessionRepo, userRepo).(*analysisService)
	svc.now = func() time.Time { return now }

	naps, err := svc.Naps(context.Background(), user.ID, 7)
	if err != nil {
		t.Fatalf("Naps() error = %v", err)
	}
	if len(naps) != 1 {
		t.Fatalf("Naps = %d, want 1", len(naps))
	}
	if naps[0].Quality == "" {
		t.Error("nap quality is empty")
	}
}

func TestAnalysisService_Trends(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	sessionRepo := NewMockSessionRepository()
	userRepo := NewMockUserRepository()
	user := seedUser(t, userRepo, "UTC")
	seedNights(t, sessionRepo, user.ID, now, 4)

	svc := NewAnalysisService(sessionRepo, userRepo).(*analysisService)
	svc.now = func() time.Time { return now }

	trend, err := svc.Trends(context.Background(), user.ID, 7)
	if err != nil {
		t.Fatalf("Trends() error = %v", err)
	}
	if trend.AverageDuration != 8*time.Hour {
		t.Errorf("AverageDuration = %v, want 8h", trend.AverageDuration)
	}
	if trend.AverageBedtime != "23:00" {
		t.Errorf("AverageBedtime = %q, want 23:00", trend.AverageBedtime)
	}
}
