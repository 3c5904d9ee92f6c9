package analysis

import (
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// Nap classification constants.
const (
	MinNapDuration = 15 * time.Minute
	MaxNapDuration = 3 * time.Hour

	// Canonical night-sleep window: 20:00 to 10:00 the next morning.
	nightWindowStartHour = 20
	nightWindowEndHour   = 10

	// IdealNapWindow is the recommended nap slot. Fixed for now; a
	// chronotype-personalized window is a possible extension.
	IdealNapWindow = "13:00 - 15:00"
)

// AnalyzeNaps filters the sessions that qualify as naps and returns one
// analysis per nap, in input order. Night sessions and sessions outside
// the nap duration bounds are dropped. loc resolves local time-of-day;
// nil means UTC.
func AnalyzeNaps(sessions []domain.SleepSession, loc *time.Location) []domain.NapAnalysis {
	if loc == nil {
		loc = time.UTC
	}

	var naps []domain.NapAnalysis
	for _, session := range sessions {
		if !IsNap(session, loc) {
			continue
		}
		naps = append(naps, analyzeNap(session, loc))
	}
	return naps
}

// IsNap reports whether the session is a daytime nap: duration within
// [15min, 3h] and both endpoints outside the canonical night window.
func IsNap(session domain.SleepSession, loc *time.Location) bool {
	duration := session.Duration()
	if duration < MinNapDuration || duration > MaxNapDuration {
		return false
	}
	return !inNightWindow(session.StartAt.In(loc)) && !inNightWindow(session.EndAt.In(loc))
}

func inNightWindow(t time.Time) bool {
	return t.Hour() >= nightWindowStartHour || t.Hour() < nightWindowEndHour
}

func analyzeNap(session domain.SleepSession, loc *time.Location) domain.NapAnalysis {
	start := session.StartAt.In(loc)
	duration := session.Duration()

	score := napDurationScore(duration) + napTimingScore(start)

	return domain.NapAnalysis{
		Session:         session.ToResponse(),
		Quality:         napQualityLabel(score),
		IdealWindow:     IdealNapWindow,
		Recommendations: napRecommendations(start, duration, score),
		NightImpact:     napNightImpact(start, duration),
	}
}

// napDurationScore rewards either a short power nap (20-30min) or one full
// sleep cycle (85-95min); lengths in between risk waking from deep sleep.
func napDurationScore(duration time.Duration) int {
	minutes := duration.Minutes()
	switch {
	case (minutes >= 20 && minutes <= 30) || (minutes >= 85 && minutes <= 95):
		return 3
	case (minutes >= 15 && minutes < 20) || (minutes > 30 && minutes <= 45):
		return 2
	case minutes > 45 && minutes < 85:
		return 1
	default:
		return 0
	}
}

// napTimingScore rewards the post-lunch circadian dip.
func napTimingScore(start time.Time) int {
	hour := start.Hour()
	switch {
	case hour >= 13 && hour < 15:
		return 3
	case hour >= 12 && hour < 16:
		return 2
	case hour >= 16 && hour < 18:
		return 1
	default:
		return 2
	}
}

func napQualityLabel(score int) string {
	switch {
	case score >= 5:
		return "Excelente"
	case score >= 3:
		return "Buena"
	case score >= 2:
		return "Regular"
	default:
		return "Mala"
	}
}

func napRecommendations(start time.Time, duration time.Duration, score int) []string {
	var recs []string

	minutes := duration.Minutes()
	if minutes > 95 {
		recs = append(recs, "La siesta fue demasiado larga. Limítala a 20-30 minutos, o a unos 90 minutos si buscas un ciclo completo.")
	} else if minutes < 20 {
		recs = append(recs, "Una siesta de 20 a 30 minutos aporta más descanso sin producir somnolencia al despertar.")
	} else if minutes > 45 && minutes < 85 {
		recs = append(recs, "Las siestas de 45 a 85 minutos suelen interrumpir el sueño profundo; acórtala o alárgala a un ciclo completo.")
	}
	if start.Hour() >= 16 {
		recs = append(recs, "Evita las siestas después de las 16:00; reducen la presión de sueño de la noche.")
	}

	if len(recs) == 0 {
		if score >= 5 {
			return []string{"Siesta bien planteada, en duración y horario. Sigue así."}
		}
		return []string{"Intenta concentrar tus siestas entre las 13:00 y las 15:00, la franja de mayor somnolencia natural."}
	}
	return recs
}

// napNightImpact estimates how the nap affects the following night.
func napNightImpact(start time.Time, duration time.Duration) string {
	switch {
	case start.Hour() >= 17 && duration > time.Hour:
		return "Esta siesta interfiere significativamente con el sueño nocturno por su hora y duración."
	case start.Hour() >= 16:
		return "Por su horario tardío, esta siesta tiende a retrasar el inicio del sueño nocturno."
	case duration > 2*time.Hour:
		return "Una siesta tan larga reduce la presión de sueño acumulada y puede fragmentar la noche."
	case duration <= 30*time.Minute && start.Hour() < 15:
		return "Siesta corta y temprana: riesgo bajo de afectar el sueño nocturno."
	default:
		return "Riesgo moderado de afectar el sueño nocturno; vigila cómo descansas esta noche."
	}
}
