package analysis

import (
	"testing"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

func stage(kind domain.SleepStageType, start time.Time, duration time.Duration) domain.SleepStage {
	return domain.SleepStage{
		StartAt: start,
		EndAt:   start.Add(duration),
		Type:    kind,
		Source:  domain.SourcePlatform,
	}
}

func TestStageTimeTotals(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)

	totals := StageTimeTotals([]domain.SleepStage{
		stage(domain.StageLight, base, 2*time.Hour),
		stage(domain.StageLight, base.Add(2*time.Hour), time.Hour),
		stage(domain.StageDeep, base.Add(3*time.Hour), 90*time.Minute),
	})

	if got := totals[domain.StageLight]; got != 3*time.Hour {
		t.Errorf("light total = %v, want 3h", got)
	}
	if got := totals[domain.StageDeep]; got != 90*time.Minute {
		t.Errorf("deep total = %v, want 90m", got)
	}
	if got := totals[domain.StageREM]; got != 0 {
		t.Errorf("rem total = %v, want 0", got)
	}
	if _, ok := totals[domain.StageAwake]; !ok {
		t.Error("awake kind missing from totals")
	}
	if _, ok := totals[domain.StageUnknown]; !ok {
		t.Error("unknown kind missing from totals")
	}
}

func TestStageTimeTotals_Empty(t *testing.T) {
	totals := StageTimeTotals(nil)
	if len(totals) != 5 {
		t.Fatalf("expected 5 tracked kinds, got %d", len(totals))
	}
	for kind, d := range totals {
		if d != 0 {
			t.Errorf("kind %s = %v, want 0", kind, d)
		}
	}
}

func TestStagePercentages_EmptyDefault(t *testing.T) {
	got := StagePercentages(nil)

	want := map[domain.SleepStageType]float64{
		domain.StageLight:   55.0,
		domain.StageDeep:    25.0,
		domain.StageREM:     20.0,
		domain.StageAwake:   0.0,
		domain.StageUnknown: 0.0,
	}
	for kind, pct := range want {
		if got[kind] != pct {
			t.Errorf("percentage[%s] = %v, want %v", kind, got[kind], pct)
		}
	}
}

func TestStagePercentages_ZeroTotalDuration(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)

	// Degenerate stages: end equals (or precedes) start.
	got := StagePercentages([]domain.SleepStage{
		{StartAt: base, EndAt: base, Type: domain.StageLight},
		{StartAt: base, EndAt: base.Add(-time.Hour), Type: domain.StageDeep},
	})

	for kind, pct := range got {
		if pct != 0 {
			t.Errorf("percentage[%s] = %v, want 0", kind, pct)
		}
	}
}

func TestStagePercentages_DividesByStageTime(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)

	// 4h of stages inside a nominally longer session; percentages must be
	// relative to stage time, not the nominal duration.
	got := StagePercentages([]domain.SleepStage{
		stage(domain.StageLight, base, 2*time.Hour),
		stage(domain.StageDeep, base.Add(2*time.Hour), time.Hour),
		stage(domain.StageREM, base.Add(3*time.Hour), time.Hour),
	})

	if got[domain.StageLight] != 50 {
		t.Errorf("light = %v, want 50", got[domain.StageLight])
	}
	if got[domain.StageDeep] != 25 {
		t.Errorf("deep = %v, want 25", got[domain.StageDeep])
	}
	if got[domain.StageREM] != 25 {
		t.Errorf("rem = %v, want 25", got[domain.StageREM])
	}
}

func TestSleepEfficiency(t *testing.T) {
	base := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		stages   []domain.SleepStage
		total    time.Duration
		expected int
	}{
		{
			name:     "zero total duration",
			stages:   []domain.SleepStage{stage(domain.StageLight, base, time.Hour)},
			total:    0,
			expected: 0,
		},
		{
			name:     "negative total duration",
			stages:   []domain.SleepStage{stage(domain.StageLight, base, time.Hour)},
			total:    -time.Hour,
			expected: 0,
		},
		{
			name:     "no stages",
			stages:   nil,
			total:    8 * time.Hour,
			expected: 0,
		},
		{
			name: "awake time excluded",
			stages: []domain.SleepStage{
				stage(domain.StageLight, base, 6*time.Hour),
				stage(domain.StageAwake, base.Add(6*time.Hour), 2*time.Hour),
			},
			total:    8 * time.Hour,
			expected: 75,
		},
		{
			name: "clamped to 100",
			stages: []domain.SleepStage{
				stage(domain.StageLight, base, 10*time.Hour),
			},
			total:    8 * time.Hour,
			expected: 100,
		},
		{
			name: "full coverage",
			stages: []domain.SleepStage{
				stage(domain.StageLight, base, 4*time.Hour),
				stage(domain.StageDeep, base.Add(4*time.Hour), 2*time.Hour),
				stage(domain.StageREM, base.Add(6*time.Hour), 2*time.Hour),
			},
			total:    8 * time.Hour,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepEfficiency(tt.stages, tt.total)
			if got != tt.expected {
				t.Errorf("SleepEfficiency() = %d, want %d", got, tt.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("SleepEfficiency() = %d, out of [0,100]", got)
			}
		})
	}
}

func TestQualityLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Excelente"},
		{90, "Excelente"},
		{89, "Muy buena"},
		{85, "Muy buena"},
		{84, "Buena"},
		{80, "Buena"},
		{79, "Regular"},
		{70, "Regular"},
		{69, "Aceptable"},
		{60, "Aceptable"},
		{59, "Mala"},
		{0, "Mala"},
	}

	for _, tt := range tests {
		if got := QualityLabel(tt.score); got != tt.want {
			t.Errorf("QualityLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
