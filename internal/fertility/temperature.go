package fertility

import "fmt"

const (
	maxTemperatureReadings = 10
	minTemperatureReadings = 6
	minTemperatureRise     = 0.2
	temperatureTolerance   = 1e-9
)

// TemperatureShiftDetector looks for a sustained basal temperature rise: the
// mean of three readings after a candidate day sits at least 0.2 degrees above
// the mean of the two readings before it.
type TemperatureShiftDetector struct{}

func (TemperatureShiftDetector) Name() string {
	return "temperature-shift"
}

func (TemperatureShiftDetector) Detect(evidence Evidence) (Result, bool) {
	readings := withTemperature(evidence.Temperatures, maxTemperatureReadings)
	if len(readings) < minTemperatureReadings {
		return Result{}, false
	}

	for i := 3; i < len(readings)-2; i++ {
		baseline := (*readings[i+1].Temperature + *readings[i+2].Temperature) / 2
		plateau := (*readings[i-1].Temperature + *readings[i-2].Temperature + *readings[i-3].Temperature) / 3
		rise := plateau - baseline
		if rise+temperatureTolerance < minTemperatureRise {
			continue
		}

		daysAgo := daysBetween(evidence.Now, readings[i].Date)
		return Result{
			OvulationDetected:  true,
			Status:             StatusPostOvulation,
			Confidence:         ConfidenceHigh,
			Method:             MethodTemperatureShift,
			DaysUntilOvulation: intPtr(-daysAgo),
			Message: fmt.Sprintf(
				"Basal temperature shift of %.2f° detected. Ovulation occurred ~%s ago.",
				rise,
				pluralDays(daysAgo),
			),
		}, true
	}

	return Result{}, false
}
