package analysis

import (
	"math/rand"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// Named facts used by the priority selection in selectFact.
const (
	factHighREM   = "El sueño REM ocupa hasta un 25% de la noche y es cuando se consolidan la memoria y el aprendizaje."
	factHighDeep  = "Durante el sueño profundo el cuerpo libera la hormona del crecimiento y repara tejidos y músculos."
	factLowDeep   = "La mayor parte del sueño profundo ocurre en el primer tercio de la noche; acostarte antes lo favorece."
	factLowREM    = "El alcohol y algunos medicamentos suprimen el sueño REM aunque no reduzcan las horas totales de sueño."
	factOversleep = "Dormir habitualmente más de 9 horas se asocia con un descanso menos reparador, no con más energía."
	factShort     = "Dormir menos de 6 horas de forma crónica afecta la atención tanto como una noche entera sin dormir."
)

// generalFactPool feeds the fallback pick when no condition applies.
var generalFactPool = []string{
	"Un ciclo completo de sueño dura en torno a 90 minutos y se repite entre 4 y 6 veces por noche.",
	"La temperatura corporal baja de forma natural al dormir; una habitación fresca facilita conciliar el sueño.",
	"La luz azul de las pantallas retrasa la liberación de melatonina hasta en 90 minutos.",
	"Los adultos pasan aproximadamente un tercio de su vida durmiendo.",
	"La regularidad en los horarios de sueño importa tanto como la cantidad total de horas.",
}

// selectFact picks one scientific fact for the session following a fixed
// priority order, falling back to a random entry of the general pool.
func selectFact(session domain.SleepSession, duration time.Duration, rng *rand.Rand) string {
	switch {
	case session.REMSleepPct > 25:
		return factHighREM
	case session.DeepSleepPct > 25:
		return factHighDeep
	case session.DeepSleepPct > 0 && session.DeepSleepPct < 15:
		return factLowDeep
	case session.REMSleepPct > 0 && session.REMSleepPct < 15:
		return factLowREM
	case duration.Hours() > 9:
		return factOversleep
	case duration > 0 && duration.Hours() < 6:
		return factShort
	}

	if rng == nil {
		return generalFactPool[0]
	}
	return generalFactPool[rng.Intn(len(generalFactPool))]
}

// pickFact chooses one fact at random from the collected facts of the
// sub-analyses, or a generic fallback when none were produced.
func pickFact(facts []string, rng *rand.Rand) string {
	var nonEmpty []string
	for _, f := range facts {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	if len(nonEmpty) == 0 {
		return "El sueño de calidad es uno de los pilares de la salud, junto con la alimentación y el ejercicio."
	}
	if rng == nil {
		return nonEmpty[0]
	}
	return nonEmpty[rng.Intn(len(nonEmpty))]
}
