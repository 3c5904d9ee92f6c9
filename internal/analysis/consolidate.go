package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// DefaultConsolidationGap is the maximum pause between two raw records
// still treated as the same sleep night.
const DefaultConsolidationGap = 15 * time.Minute

// Consolidate merges raw sessions recorded within gap of each other into
// one session per sleep night. The input list may be unordered; the result
// is ordered by start time. A non-positive gap falls back to the default.
func Consolidate(sessions []domain.SleepSession, gap time.Duration) []domain.SleepSession {
	if len(sessions) == 0 {
		return nil
	}
	if gap <= 0 {
		gap = DefaultConsolidationGap
	}

	sorted := make([]domain.SleepSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})

	var consolidated []domain.SleepSession
	group := []domain.SleepSession{sorted[0]}

	for _, session := range sorted[1:] {
		previous := group[len(group)-1]
		if session.StartAt.Sub(previous.EndAt) <= gap {
			group = append(group, session)
			continue
		}
		consolidated = append(consolidated, mergeGroup(group))
		group = []domain.SleepSession{session}
	}
	consolidated = append(consolidated, mergeGroup(group))

	return consolidated
}

// mergeGroup builds one nightly session from a group of raw sessions.
func mergeGroup(group []domain.SleepSession) domain.SleepSession {
	if len(group) == 1 {
		return group[0]
	}

	merged := domain.SleepSession{
		ID:            group[0].ID + "+" + group[len(group)-1].ID,
		UserID:        group[0].UserID,
		StartAt:       group[0].StartAt,
		EndAt:         group[0].EndAt,
		Source:        domain.SourceManual,
		LocalTimezone: group[0].LocalTimezone,
	}

	var notes []string
	var stages []domain.SleepStage
	for _, session := range group {
		if session.StartAt.Before(merged.StartAt) {
			merged.StartAt = session.StartAt
		}
		if session.EndAt.After(merged.EndAt) {
			merged.EndAt = session.EndAt
		}
		merged.WakeCount += session.WakeCount
		if session.Notes != "" {
			notes = append(notes, session.Notes)
		}
		stages = append(stages, session.Stages...)
	}
	merged.Notes = strings.Join(notes, "\n")

	if len(stages) > 0 {
		merged.Stages = stages
	} else {
		merged.Stages = SynthesizeStages(merged.StartAt, merged.EndAt)
	}

	return merged
}

// SynthesizeStages generates three contiguous stage estimates covering the
// whole span with the default light/deep/REM distribution, tagged as
// simulated. A non-positive span yields no stages.
func SynthesizeStages(start, end time.Time) []domain.SleepStage {
	total := end.Sub(start)
	if total <= 0 {
		return nil
	}

	lightDur := time.Duration(float64(total) * DefaultLightPct / 100)
	deepDur := time.Duration(float64(total) * DefaultDeepPct / 100)

	lightEnd := start.Add(lightDur)
	deepEnd := lightEnd.Add(deepDur)

	return []domain.SleepStage{
		{StartAt: start, EndAt: lightEnd, Type: domain.StageLight, Source: domain.SourceSimulated},
		{StartAt: lightEnd, EndAt: deepEnd, Type: domain.StageDeep, Source: domain.SourceSimulated},
		{StartAt: deepEnd, EndAt: end, Type: domain.StageREM, Source: domain.SourceSimulated},
	}
}

// WithComputedMetrics returns a copy of the session with efficiency and the
// stage-percentage fields recomputed from its stages. Sessions without
// stages keep their stored values.
func WithComputedMetrics(session domain.SleepSession) domain.SleepSession {
	if !session.HasStageData() {
		return session
	}

	percentages := StagePercentages(session.Stages)
	session.LightSleepPct = percentages[domain.StageLight]
	session.DeepSleepPct = percentages[domain.StageDeep]
	session.REMSleepPct = percentages[domain.StageREM]
	session.Efficiency = SleepEfficiency(session.Stages, session.Duration())
	return session
}
