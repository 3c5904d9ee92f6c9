package analysis

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/sleep-analytics/internal/domain"
)

// Fallback schedule when no data is available at all.
const (
	DefaultIdealBedtime  = "22:30"
	DefaultIdealWakeTime = "06:30"

	minIdealSpanMinutes = 7 * 60
	maxIdealSpanMinutes = 8 * 60
)

// IdealSchedule is the single schedule-suggestion policy. It derives the
// suggested bedtime and wake time from trend averages when present
// (enforcing a 7-8h spacing), else from the last session's wake time, else
// from fixed defaults.
func IdealSchedule(trend *domain.SleepTrendAnalysis, last *domain.SleepSession, loc *time.Location) (bedtime, wakeTime string) {
	if loc == nil {
		loc = time.UTC
	}

	if trend != nil {
		bed, bedOK := parseClock(trend.AverageBedtime)
		wake, wakeOK := parseClock(trend.AverageWakeTime)
		if bedOK && wakeOK {
			span := wake - bed
			if span <= 0 {
				span += 24 * 60
			}
			if span < minIdealSpanMinutes {
				bed = wake - minIdealSpanMinutes
			} else if span > maxIdealSpanMinutes {
				bed = wake - maxIdealSpanMinutes
			}
			return minutesToClock(bed), minutesToClock(wake)
		}
	}

	if last != nil {
		end := last.EndAt.In(loc)
		wake := end.Hour()*60 + end.Minute()
		// Bedtime 16 hours of wakefulness after getting up.
		return minutesToClock(wake + 16*60), minutesToClock(wake)
	}

	return DefaultIdealBedtime, DefaultIdealWakeTime
}

// parseClock parses "HH:MM" into minutes after midnight.
func parseClock(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// minutesToClock formats minutes after midnight as HH:MM, wrapping into a
// single day.
func minutesToClock(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
