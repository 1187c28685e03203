package fertility

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultCycleLength  = 28
	earlyCycleDays      = 5
	lateCycleMarginDays = 5
	fertileDaysBefore   = 5
	fertileDaysAfter    = 1
)

// CycleDayEstimator is the calendar fallback: ovulation is assumed at the
// middle of an average cycle counted from the anchor date (cycle day 1).
type CycleDayEstimator struct{}

func (CycleDayEstimator) Estimate(anchor time.Time, averageCycleLength int, now time.Time) Result {
	if averageCycleLength <= 0 {
		averageCycleLength = DefaultCycleLength
	}

	cycleDay := daysBetween(now, anchor) + 1
	estimatedDay := int(math.Round(float64(averageCycleLength) * 0.5))
	daysUntil := estimatedDay - cycleDay
	fertileStart := max(1, estimatedDay-fertileDaysBefore)
	fertileEnd := min(averageCycleLength, estimatedDay+fertileDaysAfter)

	inMidCycle := cycleDay >= earlyCycleDays && cycleDay <= averageCycleLength-lateCycleMarginDays
	inFertileWindow := cycleDay >= fertileStart && cycleDay <= fertileEnd

	switch {
	case inMidCycle && inFertileWindow:
		return Result{
			Status:             cycleStatus(daysUntil),
			Confidence:         ConfidenceMedium,
			Method:             MethodCycleBased,
			DaysUntilOvulation: intPtr(daysUntil),
			PredictedDay:       intPtr(estimatedDay),
			FertileWindowStart: intPtr(fertileStart),
			FertileWindowEnd:   intPtr(fertileEnd),
			Message:            cycleMessage(daysUntil, estimatedDay),
		}
	case cycleDay < earlyCycleDays:
		return Result{
			Status:             StatusPreOvulation,
			Confidence:         ConfidenceLow,
			Method:             MethodCycleBased,
			DaysUntilOvulation: intPtr(daysUntil),
			PredictedDay:       intPtr(estimatedDay),
			FertileWindowStart: intPtr(fertileStart),
			FertileWindowEnd:   intPtr(fertileEnd),
			Message: fmt.Sprintf(
				"Early in the cycle (day %d). Estimated ovulation in %s.",
				cycleDay,
				pluralDays(daysUntil),
			),
		}
	default:
		return Result{
			Status:       StatusPostOvulation,
			Confidence:   ConfidenceLow,
			Method:       MethodCycleBased,
			PredictedDay: intPtr(estimatedDay),
			Message:      "Ovulation has likely passed for this cycle. A period may be due soon.",
		}
	}
}

// cycleStatus treats the estimated day itself as ovulation-likely rather than
// post-ovulation.
func cycleStatus(daysUntil int) Status {
	switch {
	case daysUntil > 0:
		return StatusPreOvulation
	case daysUntil == 0:
		return StatusOvulationLikely
	default:
		return StatusPostOvulation
	}
}

func cycleMessage(daysUntil int, estimatedDay int) string {
	switch {
	case daysUntil > 0:
		return fmt.Sprintf("Estimated ovulation in %s (cycle day %d).", pluralDays(daysUntil), estimatedDay)
	case daysUntil == 0:
		return fmt.Sprintf("Estimated ovulation today (cycle day %d).", estimatedDay)
	default:
		return fmt.Sprintf("Estimated ovulation was %s ago (cycle day %d).", pluralDays(daysUntil), estimatedDay)
	}
}
