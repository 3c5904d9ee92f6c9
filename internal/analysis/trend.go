package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

const (
	// Minimum samples for the statistical measures.
	minSessionsForConsistency = 3
	minSessionsForTrend       = 4

	insufficientData = "Datos insuficientes"

	secondsPerDay = 24 * 60 * 60
)

// AnalyzeTrends computes multi-day averages, a consistency score, half-window
// trend comparisons and a weekday/weekend narrative over a window of
// sessions (nominally 7 days). loc resolves each instant to local
// time-of-day; nil means UTC.
func AnalyzeTrends(sessions []domain.SleepSession, loc *time.Location) domain.SleepTrendAnalysis {
	if loc == nil {
		loc = time.UTC
	}
	if len(sessions) == 0 {
		return domain.SleepTrendAnalysis{
			OverallTrend:   insufficientData + " para determinar una tendencia general.",
			DurationTrend:  insufficientData,
			QualityTrend:   insufficientData,
			WeekdayWeekend: insufficientData,
			Recommendations: []string{
				"Registra tus sesiones de sueño durante al menos una semana para obtener un análisis de tendencias.",
			},
		}
	}

	sorted := make([]domain.SleepSession, len(sessions))
	copy(sorted, sessions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})

	var bedtimes, wakeTimes []float64
	var totalDuration time.Duration
	for _, session := range sorted {
		bedtimes = append(bedtimes, secondsOfDay(session.StartAt.In(loc)))
		wakeTimes = append(wakeTimes, secondsOfDay(session.EndAt.In(loc)))
		totalDuration += session.Duration()
	}

	avgDuration := (totalDuration / time.Duration(len(sorted))).Round(time.Minute)
	consistency := consistencyScore(bedtimes, wakeTimes)
	durationTrend := durationTrendText(sorted)
	qualityTrend := qualityTrendText(sorted)
	weekdayWeekend := weekdayWeekendText(sorted, loc)

	analysis := domain.SleepTrendAnalysis{
		OverallTrend:     overallTrendText(durationTrend, qualityTrend, consistency),
		ConsistencyScore: consistency,
		ConsistencyLevel: consistencyLevel(consistency),
		AverageDuration:  avgDuration,
		AverageBedtime:   clockString(circularMean(bedtimes)),
		AverageWakeTime:  clockString(circularMean(wakeTimes)),
		DurationTrend:    durationTrend,
		QualityTrend:     qualityTrend,
		WeekdayWeekend:   weekdayWeekend,
	}
	analysis.Recommendations = trendRecommendations(analysis, len(sorted))

	return analysis
}

// consistencyScore maps bedtime and wake-time dispersion to 0-100.
// Bedtime regularity weighs 0.6, wake-time regularity 0.4.
func consistencyScore(bedtimes, wakeTimes []float64) int {
	if len(bedtimes) < minSessionsForConsistency {
		return 0
	}

	bedComponent := 100 - math.Min(circularStdDevMinutes(bedtimes)*1.5, 60)
	wakeComponent := 100 - math.Min(circularStdDevMinutes(wakeTimes)*1.5, 60)

	score := int(math.Round(bedComponent*0.6 + wakeComponent*0.4))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func consistencyLevel(score int) string {
	switch {
	case score >= 90:
		return "Excelente"
	case score >= 75:
		return "Alta"
	case score >= 60:
		return "Moderada"
	case score >= 45:
		return "Media"
	case score >= 30:
		return "Baja"
	default:
		return "Muy baja"
	}
}

// durationTrendText compares mean duration between the first and second
// half of the sorted window.
func durationTrendText(sorted []domain.SleepSession) string {
	if len(sorted) < minSessionsForTrend {
		return insufficientData
	}

	half := len(sorted) / 2
	first := meanDurationMinutes(sorted[:half])
	second := meanDurationMinutes(sorted[half:])
	if first <= 0 {
		return "estable"
	}

	deltaPct := (second - first) / first * 100
	switch {
	case deltaPct > 10:
		return "aumentando significativamente"
	case deltaPct > 5:
		return "aumentando moderadamente"
	case deltaPct < -10:
		return "disminuyendo significativamente"
	case deltaPct < -5:
		return "disminuyendo moderadamente"
	default:
		return "estable"
	}
}

// qualityTrendText compares mean efficiency between the window halves,
// banding the absolute point delta.
func qualityTrendText(sorted []domain.SleepSession) string {
	if len(sorted) < minSessionsForTrend {
		return insufficientData
	}

	half := len(sorted) / 2
	delta := meanEfficiency(sorted[half:]) - meanEfficiency(sorted[:half])
	switch {
	case delta > 10:
		return "mejorando significativamente"
	case delta > 5:
		return "mejorando moderadamente"
	case delta < -10:
		return "empeorando significativamente"
	case delta < -5:
		return "empeorando moderadamente"
	default:
		return "estable"
	}
}

// weekdayWeekendText compares duration, bedtime and wake time between
// weekday and weekend sessions.
func weekdayWeekendText(sessions []domain.SleepSession, loc *time.Location) string {
	var weekdays, weekends []domain.SleepSession
	for _, session := range sessions {
		switch session.StartAt.In(loc).Weekday() {
		case time.Saturday, time.Sunday:
			weekends = append(weekends, session)
		default:
			weekdays = append(weekdays, session)
		}
	}
	if len(weekdays) == 0 || len(weekends) == 0 {
		return insufficientData + " para comparar semana y fin de semana."
	}

	durationDiff := meanDurationMinutes(weekends) - meanDurationMinutes(weekdays)
	bedtimeDiff := circularDiffMinutes(meanTimeOfDay(weekends, loc, false), meanTimeOfDay(weekdays, loc, false))
	wakeDiff := circularDiffMinutes(meanTimeOfDay(weekends, loc, true), meanTimeOfDay(weekdays, loc, true))

	var sentences []string
	if sentence := magnitudeSentence(durationDiff, "Los fines de semana duermes %s más (unos %d minutos).", "Los fines de semana duermes %s menos (unos %d minutos)."); sentence != "" {
		sentences = append(sentences, sentence)
	}
	if sentence := magnitudeSentence(bedtimeDiff, "Los fines de semana te acuestas %s más tarde (unos %d minutos).", "Los fines de semana te acuestas %s más temprano (unos %d minutos)."); sentence != "" {
		sentences = append(sentences, sentence)
	}
	if sentence := magnitudeSentence(wakeDiff, "Los fines de semana te despiertas %s más tarde (unos %d minutos).", "Los fines de semana te despiertas %s más temprano (unos %d minutos)."); sentence != "" {
		sentences = append(sentences, sentence)
	}

	if len(sentences) == 0 {
		return "Tus horarios de semana y fin de semana son muy similares."
	}

	text := strings.Join(sentences, " ")
	if math.Abs(bedtimeDiff) > 90 || math.Abs(wakeDiff) > 90 {
		text += " Este desfase de horarios produce un efecto de jet lag social que dificulta el descanso entre semana."
	}
	return text
}

// magnitudeSentence renders a comparison sentence when the difference
// exceeds 30 minutes; above 60 minutes it is framed as significant.
func magnitudeSentence(diffMinutes float64, positiveFormat, negativeFormat string) string {
	abs := math.Abs(diffMinutes)
	if abs <= 30 {
		return ""
	}
	qualifier := "moderadamente"
	if abs > 60 {
		qualifier = "significativamente"
	}
	format := positiveFormat
	if diffMinutes < 0 {
		format = negativeFormat
	}
	return fmt.Sprintf(format, qualifier, int(math.Round(abs)))
}

// overallTrendText combines the duration and quality trends with the
// consistency score into one narrative.
func overallTrendText(durationTrend, qualityTrend string, consistency int) string {
	durationDecreasing := strings.Contains(durationTrend, "disminuyendo")
	durationIncreasing := strings.Contains(durationTrend, "aumentando")
	qualityWorsening := strings.Contains(qualityTrend, "empeorando")
	qualityImproving := strings.Contains(qualityTrend, "mejorando")

	switch {
	case durationTrend == insufficientData || qualityTrend == insufficientData:
		return insufficientData + " para determinar una tendencia general."
	case durationDecreasing && qualityWorsening:
		return "Tu sueño está empeorando: duermes menos y con peor calidad. Conviene actuar cuanto antes."
	case durationIncreasing && qualityWorsening:
		return "Estás durmiendo más horas pero la calidad está bajando; más tiempo en cama no siempre significa mejor descanso."
	case durationDecreasing && qualityImproving:
		return "Duermes menos horas pero con mejor calidad; vigila que la duración no siga bajando."
	case consistency >= 75:
		return "Excelente: tu sueño es estable o mejora, y mantienes horarios muy regulares."
	default:
		return "Tu sueño se mantiene estable o mejora, aunque ganar regularidad en los horarios lo reforzaría."
	}
}

func trendRecommendations(analysis domain.SleepTrendAnalysis, sampleSize int) []string {
	var recs []string

	if sampleSize >= minSessionsForConsistency {
		if analysis.ConsistencyScore < 50 {
			recs = append(recs, "Tu consistencia de horarios es baja. Fija una hora de acostarte y levantarte, también los fines de semana.")
		} else if analysis.ConsistencyScore < 70 {
			recs = append(recs, "Mejorar la regularidad de tus horarios de sueño elevaría la calidad de tu descanso.")
		}
	}
	if strings.Contains(analysis.DurationTrend, "disminuyendo") {
		recs = append(recs, "Tus horas de sueño están disminuyendo. Revisa qué está retrasando tu hora de acostarte.")
	}
	if strings.Contains(analysis.QualityTrend, "empeorando") {
		recs = append(recs, "La calidad de tu sueño está empeorando. Cuida tu rutina previa a dormir: luz tenue, sin pantallas y sin cafeína.")
	}
	if strings.Contains(analysis.WeekdayWeekend, "jet lag social") {
		recs = append(recs, "Reduce el desfase de horarios entre semana y fin de semana a menos de una hora para evitar el jet lag social.")
	}

	if len(recs) == 0 {
		if analysis.ConsistencyScore >= 75 {
			return []string{"Mantienes horarios de sueño muy regulares. Sigue así."}
		}
		return []string{"Sigue registrando tus sesiones para afinar el análisis de tendencias."}
	}
	return recs
}

func meanDurationMinutes(sessions []domain.SleepSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var total time.Duration
	for _, session := range sessions {
		total += session.Duration()
	}
	return total.Minutes() / float64(len(sessions))
}

func meanEfficiency(sessions []domain.SleepSession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var total float64
	for _, session := range sessions {
		total += float64(session.Efficiency)
	}
	return total / float64(len(sessions))
}

func meanTimeOfDay(sessions []domain.SleepSession, loc *time.Location, useEnd bool) float64 {
	var seconds []float64
	for _, session := range sessions {
		t := session.StartAt
		if useEnd {
			t = session.EndAt
		}
		seconds = append(seconds, secondsOfDay(t.In(loc)))
	}
	return circularMean(seconds)
}

func secondsOfDay(t time.Time) float64 {
	return float64(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// circularMean averages times of day as points on a 24h circle, so values
// straddling midnight (23:50 and 00:10) average to midnight instead of noon.
func circularMean(seconds []float64) float64 {
	if len(seconds) == 0 {
		return 0
	}

	var sinSum, cosSum float64
	for _, s := range seconds {
		angle := s / secondsPerDay * 2 * math.Pi
		sinSum += math.Sin(angle)
		cosSum += math.Cos(angle)
	}

	mean := math.Atan2(sinSum, cosSum) / (2 * math.Pi) * secondsPerDay
	if mean < 0 {
		mean += secondsPerDay
	}
	return mean
}

// circularStdDevMinutes is the population standard deviation of times of
// day, measured along the shortest arc from the circular mean.
func circularStdDevMinutes(seconds []float64) float64 {
	if len(seconds) == 0 {
		return 0
	}

	mean := circularMean(seconds)
	var sumSquares float64
	for _, s := range seconds {
		delta := wrapHalfDay(s - mean)
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares/float64(len(seconds))) / 60
}

// circularDiffMinutes is the signed shortest-arc difference between two
// times of day, in minutes.
func circularDiffMinutes(a, b float64) float64 {
	return wrapHalfDay(a-b) / 60
}

// wrapHalfDay maps a seconds delta into (-12h, 12h].
func wrapHalfDay(delta float64) float64 {
	for delta > secondsPerDay/2 {
		delta -= secondsPerDay
	}
	for delta <= -secondsPerDay/2 {
		delta += secondsPerDay
	}
	return delta
}

// clockString formats seconds after midnight as HH:MM.
func clockString(seconds float64) string {
	total := int(math.Round(seconds/60)) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
