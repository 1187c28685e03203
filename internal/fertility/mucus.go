package fertility

import "fmt"

const (
	minMucusReadings      = 3
	maxMucusTransitionAge = 5
)

// MucusTransitionDetector looks for egg-white mucus followed by creamy or
// sticky mucus on the next recorded day, which marks a recent ovulation.
type MucusTransitionDetector struct{}

func (MucusTransitionDetector) Name() string {
	return "mucus-transition"
}

func (MucusTransitionDetector) Detect(evidence Evidence) (Result, bool) {
	readings := withMucus(evidence.Recent)
	if len(readings) < minMucusReadings {
		return Result{}, false
	}

	for i := 0; i < len(readings)-1; i++ {
		current := readings[i]
		previous := readings[i+1]
		if previous.Mucus != MucusEggWhite || !current.Mucus.IsDrying() {
			continue
		}

		daysAgo := daysBetween(evidence.Now, previous.Date)
		if daysAgo > maxMucusTransitionAge {
			continue
		}

		return Result{
			OvulationDetected:  true,
			Status:             StatusPostOvulation,
			Confidence:         ConfidenceMedium,
			Method:             MethodMucusPattern,
			DaysUntilOvulation: intPtr(-daysAgo),
			Message:            fmt.Sprintf("Cervical mucus pattern suggests ovulation occurred ~%s ago.", pluralDays(daysAgo)),
		}, true
	}

	return Result{}, false
}
