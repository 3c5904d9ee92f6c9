package analysis

import (
	"math/rand"
	"strings"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// List bounds for the synthesized output.
const (
	maxPriorityRecommendations = 3
	maxGeneralRecommendations  = 5
	maxPositiveMessages        = 2
	maxNapRecommendations      = 2
)

// Synthesize merges the quality, trend and nap analyses into one bounded,
// deduplicated recommendation set with an ideal schedule. quality and
// trend may be nil, naps may be empty; the result degrades to defaults.
func Synthesize(
	last *domain.SleepSession,
	quality *domain.SleepQualityAnalysis,
	trend *domain.SleepTrendAnalysis,
	naps []domain.NapAnalysis,
	loc *time.Location,
	rng *rand.Rand,
) domain.SleepRecommendations {
	var priority, general, positive, facts []string

	if quality != nil {
		for i, rec := range quality.Recommendations {
			if i < 2 {
				priority = append(priority, rec)
			} else {
				general = append(general, rec)
			}
		}
		if quality.Score >= 70 {
			positive = append(positive, "Tu última noche tuvo una buena calidad de sueño. ¡Buen trabajo!")
		}
		facts = append(facts, quality.ScientificFact)
	}

	if trend != nil {
		for _, rec := range trend.Recommendations {
			if isUrgentTrendRecommendation(rec) {
				priority = append(priority, rec)
			} else {
				general = append(general, rec)
			}
		}
		if trend.ConsistencyScore >= 75 || isIdealAverageDuration(trend.AverageDuration) {
			positive = append(positive, "Mantienes una buena rutina de sueño esta semana.")
		}
	}

	if napInterferes(naps) {
		priority = append(priority, "Una de tus siestas interfiere con el sueño nocturno. Adelántala o acórtala.")
	}
	napRecs := 0
	for _, nap := range naps {
		for _, rec := range nap.Recommendations {
			if napRecs >= maxNapRecommendations {
				break
			}
			if !contains(general, rec) {
				general = append(general, rec)
				napRecs++
			}
		}
	}

	priority = dedupe(priority)
	general = pruneAgainst(dedupe(general), priority)
	positive = dedupe(positive)

	bedtime, wakeTime := IdealSchedule(trend, last, loc)

	return domain.SleepRecommendations{
		Priority:       truncate(priority, maxPriorityRecommendations),
		General:        truncate(general, maxGeneralRecommendations),
		Positive:       truncate(positive, maxPositiveMessages),
		ScientificFact: pickFact(facts, rng),
		IdealBedtime:   bedtime,
		IdealWakeTime:  wakeTime,
		IdealNapTime:   idealNapTime(naps),
	}
}

// isUrgentTrendRecommendation routes schedule-regularity and regression
// advice to the priority list.
func isUrgentTrendRecommendation(rec string) bool {
	return strings.Contains(rec, "jet lag social") ||
		strings.Contains(rec, "consistencia") ||
		strings.Contains(rec, "disminuyendo")
}

func isIdealAverageDuration(d time.Duration) bool {
	return d >= 7*time.Hour && d <= 9*time.Hour
}

func napInterferes(naps []domain.NapAnalysis) bool {
	for _, nap := range naps {
		if strings.Contains(nap.NightImpact, "significativamente") || strings.Contains(nap.NightImpact, "interfiere") {
			return true
		}
	}
	return false
}

func idealNapTime(naps []domain.NapAnalysis) string {
	if len(naps) > 0 && naps[0].IdealWindow != "" {
		return naps[0].IdealWindow
	}
	return IdealNapWindow
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var result []string
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// pruneAgainst drops general entries that repeat a priority entry, either
// as a substring of it or containing it.
func pruneAgainst(general, priority []string) []string {
	var result []string
	for _, item := range general {
		redundant := false
		for _, p := range priority {
			if strings.Contains(p, item) || strings.Contains(item, p) {
				redundant = true
				break
			}
		}
		if !redundant {
			result = append(result, item)
		}
	}
	return result
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
