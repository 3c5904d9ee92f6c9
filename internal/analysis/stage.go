// Package analysis implements the sleep analytics engine: stage metrics,
// nightly consolidation, quality scoring, multi-day trends, nap
// classification and recommendation synthesis.
//
// Every function in this package is a pure transformation over immutable
// inputs. Degenerate inputs (empty lists, zero durations, division by zero)
// degrade to defined defaults instead of returning errors. Ambient context
// (current time, timezone, randomness) is always an explicit parameter, so
// concurrent calls with different inputs never interfere.
package analysis

import (
	"math"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// Default stage distribution used when a session has no recorded stages.
const (
	DefaultLightPct = 55.0
	DefaultDeepPct  = 25.0
	DefaultREMPct   = 20.0
)

// trackedStages are the stage kinds reported by the metric functions.
var trackedStages = []domain.SleepStageType{
	domain.StageAwake,
	domain.StageLight,
	domain.StageDeep,
	domain.StageREM,
	domain.StageUnknown,
}

// StageTimeTotals groups stages by kind and sums their durations.
// All tracked kinds are present in the result, zero when absent.
func StageTimeTotals(stages []domain.SleepStage) map[domain.SleepStageType]time.Duration {
	totals := make(map[domain.SleepStageType]time.Duration, len(trackedStages))
	for _, kind := range trackedStages {
		totals[kind] = 0
	}
	for _, stage := range stages {
		totals[stage.Type] += stage.Duration()
	}
	return totals
}

// StagePercentages returns the share of total stage time per kind.
// An empty stage list yields the default distribution; a zero total
// (all stages degenerate) yields all zeros.
func StagePercentages(stages []domain.SleepStage) map[domain.SleepStageType]float64 {
	percentages := make(map[domain.SleepStageType]float64, len(trackedStages))
	for _, kind := range trackedStages {
		percentages[kind] = 0
	}

	if len(stages) == 0 {
		percentages[domain.StageLight] = DefaultLightPct
		percentages[domain.StageDeep] = DefaultDeepPct
		percentages[domain.StageREM] = DefaultREMPct
		return percentages
	}

	totals := StageTimeTotals(stages)
	var total time.Duration
	for _, stage := range stages {
		total += stage.Duration()
	}
	if total <= 0 {
		return percentages
	}

	for kind, d := range totals {
		pct := d.Seconds() / total.Seconds() * 100
		if math.IsNaN(pct) || math.IsInf(pct, 0) {
			pct = 0
		}
		percentages[kind] = pct
	}
	return percentages
}

// SleepEfficiency is the percentage of the nominal session duration spent
// in a non-awake stage, clamped to [0,100]. Zero when totalDuration is not
// positive or the ratio degenerates.
func SleepEfficiency(stages []domain.SleepStage, totalDuration time.Duration) int {
	if totalDuration <= 0 {
		return 0
	}

	var asleep time.Duration
	for _, stage := range stages {
		if stage.Type == domain.StageAwake {
			continue
		}
		asleep += stage.Duration()
	}

	ratio := asleep.Seconds() / totalDuration.Seconds() * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}
	if ratio < 0 {
		return 0
	}
	if ratio > 100 {
		return 100
	}
	return int(ratio)
}

// QualityLabel bands a 0-100 score into the six user-facing labels.
func QualityLabel(score int) string {
	switch {
	case score >= 90:
		return "Excelente"
	case score >= 85:
		return "Muy buena"
	case score >= 80:
		return "Buena"
	case score >= 70:
		return "Regular"
	case score >= 60:
		return "Aceptable"
	default:
		return "Mala"
	}
}
