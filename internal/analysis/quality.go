package analysis

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// stageTier classifies a deep or REM percentage for narrative output.
type stageTier int

const (
	stageTierInsufficient stageTier = iota
	stageTierAdequate
	stageTierGood
	stageTierOptimal
)

// durationBand classifies the nominal session duration.
type durationBand int

const (
	durationVeryShort     durationBand = iota // < 5h
	durationShort                             // 5-6h
	durationSlightlyShort                     // 6-7h
	durationIdeal                             // 7-9h
	durationSlightlyLong                      // 9-10h
	durationExcessive                         // > 10h
)

// AnalyzeQuality converts one session's stage metrics, duration and wake
// count into a scored quality analysis. rng is used only for the fallback
// scientific-fact pick; nil selects the first pool entry deterministically.
func AnalyzeQuality(session domain.SleepSession, rng *rand.Rand) domain.SleepQualityAnalysis {
	duration := session.Duration()
	hasStages := session.HasStageData()

	score := session.Efficiency
	if hasStages {
		score += stageAdjustment(session.DeepSleepPct)
		score += stageAdjustment(session.REMSleepPct)
		if isBalanced(session) {
			score += 5
		}
	}
	score += durationAdjustment(classifyDuration(duration))
	score += wakeAdjustment(session.WakeCount)

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.SleepQualityAnalysis{
		Score:              score,
		Label:              QualityLabel(score),
		StageAnalysis:      stageAnalysisText(session, hasStages),
		DurationAnalysis:   durationAnalysisText(classifyDuration(duration), duration),
		ContinuityAnalysis: continuityAnalysisText(session.WakeCount),
		Recommendations:    qualityRecommendations(session, duration, hasStages),
		ScientificFact:     selectFact(session, duration, rng),
		Metrics: map[string]float64{
			"score":            float64(score),
			"efficiency":       float64(session.Efficiency),
			"deep_pct":         session.DeepSleepPct,
			"rem_pct":          session.REMSleepPct,
			"light_pct":        session.LightSleepPct,
			"duration_minutes": duration.Minutes(),
			"wake_count":       float64(session.WakeCount),
		},
	}
}

// stageAdjustment maps a deep or REM percentage to a score delta. Both
// stages share the same weighting.
func stageAdjustment(pct float64) int {
	switch {
	case pct >= 25:
		return 10
	case pct >= 20:
		return 5
	case pct >= 15:
		return 0
	case pct >= 10:
		return -5
	default:
		return -10
	}
}

// isBalanced reports whether the stage distribution matches the balanced
// profile rewarded with a bonus.
func isBalanced(session domain.SleepSession) bool {
	return session.LightSleepPct >= 50 && session.LightSleepPct <= 60 &&
		session.DeepSleepPct >= 20 && session.REMSleepPct >= 20
}

func classifyDuration(d time.Duration) durationBand {
	hours := d.Hours()
	switch {
	case hours < 5:
		return durationVeryShort
	case hours < 6:
		return durationShort
	case hours < 7:
		return durationSlightlyShort
	case hours <= 9:
		return durationIdeal
	case hours <= 10:
		return durationSlightlyLong
	default:
		return durationExcessive
	}
}

func durationAdjustment(band durationBand) int {
	switch band {
	case durationIdeal:
		return 5
	case durationSlightlyShort, durationSlightlyLong:
		return 0
	case durationShort, durationExcessive:
		return -5
	default:
		return -10
	}
}

func wakeAdjustment(wakeCount int) int {
	switch wakeCount {
	case 0:
		return 5
	case 1:
		return 2
	case 2:
		return 0
	case 3:
		return -3
	case 4:
		return -5
	default:
		return -10
	}
}

func classifyStagePct(pct float64) stageTier {
	switch {
	case pct >= 25:
		return stageTierOptimal
	case pct >= 20:
		return stageTierGood
	case pct >= 15:
		return stageTierAdequate
	default:
		return stageTierInsufficient
	}
}

var deepTierTexts = map[stageTier]string{
	stageTierOptimal:      "Excelente proporción de sueño profundo (%.0f%%), ideal para la recuperación física.",
	stageTierGood:         "Buena proporción de sueño profundo (%.0f%%).",
	stageTierAdequate:     "Proporción adecuada de sueño profundo (%.0f%%).",
	stageTierInsufficient: "Proporción insuficiente de sueño profundo (%.0f%%); lo recomendado es al menos un 15%%.",
}

var remTierTexts = map[stageTier]string{
	stageTierOptimal:      "Excelente proporción de sueño REM (%.0f%%), clave para la memoria y el aprendizaje.",
	stageTierGood:         "Buena proporción de sueño REM (%.0f%%).",
	stageTierAdequate:     "Proporción adecuada de sueño REM (%.0f%%).",
	stageTierInsufficient: "Proporción insuficiente de sueño REM (%.0f%%); lo recomendado es al menos un 15%%.",
}

func stageAnalysisText(session domain.SleepSession, hasStages bool) string {
	if !hasStages {
		return "No hay datos de fases de sueño para esta sesión."
	}

	text := fmt.Sprintf(deepTierTexts[classifyStagePct(session.DeepSleepPct)], session.DeepSleepPct)
	text += " " + fmt.Sprintf(remTierTexts[classifyStagePct(session.REMSleepPct)], session.REMSleepPct)
	if isBalanced(session) {
		text += " La distribución entre fases está muy bien equilibrada."
	}
	return text
}

var durationTexts = map[durationBand]string{
	durationVeryShort:     "Dormiste solo %.1f horas, muy por debajo de lo recomendado.",
	durationShort:         "Dormiste %.1f horas, algo menos de lo recomendado.",
	durationSlightlyShort: "Dormiste %.1f horas, cerca del mínimo recomendado de 7 horas.",
	durationIdeal:         "Dormiste %.1f horas, dentro del rango ideal de 7 a 9 horas.",
	durationSlightlyLong:  "Dormiste %.1f horas, ligeramente por encima del rango ideal.",
	durationExcessive:     "Dormiste %.1f horas, bastante más de lo recomendado.",
}

func durationAnalysisText(band durationBand, d time.Duration) string {
	return fmt.Sprintf(durationTexts[band], d.Hours())
}

func continuityAnalysisText(wakeCount int) string {
	switch wakeCount {
	case 0:
		return "Dormiste de forma continua, sin despertares. Excelente continuidad del sueño."
	case 1:
		return "Tuviste un único despertar breve; la continuidad del sueño fue muy buena."
	case 2:
		return "Tuviste dos despertares durante la noche, dentro de lo normal."
	case 3:
		return "Tuviste tres despertares; la continuidad del sueño empieza a verse afectada."
	case 4:
		return "Tuviste cuatro despertares, lo que fragmenta el descanso de forma notable."
	default:
		return "Tuviste cinco o más despertares; el sueño estuvo muy fragmentado."
	}
}

func qualityRecommendations(session domain.SleepSession, duration time.Duration, hasStages bool) []string {
	var recs []string

	if hasStages && session.DeepSleepPct < 15 {
		recs = append(recs, "Para aumentar el sueño profundo, evita la cafeína por la tarde y mantén el dormitorio fresco y oscuro.")
	}
	if hasStages && session.REMSleepPct < 15 {
		recs = append(recs, "Para favorecer el sueño REM, evita el alcohol antes de dormir y procura acostarte a la misma hora.")
	}
	if duration.Hours() < 7 {
		recs = append(recs, "Intenta dormir al menos 7 horas; adelanta tu hora de acostarte de forma gradual.")
	}
	if duration.Hours() > 9 {
		recs = append(recs, "Dormir más de 9 horas de forma habitual puede indicar descanso poco reparador; intenta regularizar tu horario.")
	}
	if session.WakeCount > 2 {
		recs = append(recs, "Para reducir los despertares, limita los líquidos antes de dormir y evita las pantallas en la última hora del día.")
	}

	if len(recs) == 0 {
		return []string{"Tu sueño fue de buena calidad. Mantén tus hábitos actuales."}
	}
	if len(recs) > 4 {
		recs = recs[:4]
	}
	return recs
}
