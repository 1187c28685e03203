package fertility

import "time"

// Evidence is what a Detector inspects. Recent is the RecentWindow of the
// input; Temperatures covers the longer temperature lookback. Both are sorted
// newest first and deduplicated per day.
type Evidence struct {
	Now          time.Time
	Recent       []Observation
	Temperatures []Observation
}

func newEvidence(observations []Observation, now time.Time) Evidence {
	return Evidence{
		Now:          now,
		Recent:       RecentWindow(observations, now),
		Temperatures: observationsWithin(observations, now, TemperatureLookbackDays),
	}
}

// Detector attempts one signal-based classification. It returns false when
// its signal is absent or inconclusive, and the next detector gets a turn.
type Detector interface {
	Name() string
	Detect(evidence Evidence) (Result, bool)
}

// DefaultDetectors returns the reliability ranking used by Predict: confirmed
// temperature shift, corroborated strip peak, mucus transition, then a bare
// strip reading.
func DefaultDetectors() []Detector {
	return []Detector{
		TemperatureShiftDetector{},
		CorroboratedPeakDetector{},
		MucusTransitionDetector{},
		TestStripFallbackDetector{},
	}
}
