package fertility

import (
	"fmt"
	"strings"
)

const (
	maxTestStripAgeDays  = 7
	mucusSupportDays     = 3
	ferningSupportDays   = 2
	freshPeakDays        = 2
	freshHighReadingDays = 1

	signalEggWhiteMucus = "egg-white mucus"
	signalMucusDrying   = "mucus drying after peak"
	signalFullFerning   = "full ferning"
)

// CorroboratedPeakDetector grades the most recent positive test strip by the
// mucus and ferning readings around it. Only a peak reading is conclusive.
type CorroboratedPeakDetector struct{}

func (CorroboratedPeakDetector) Name() string {
	return "corroborated-peak"
}

func (CorroboratedPeakDetector) Detect(evidence Evidence) (Result, bool) {
	strips := withPositiveTestStrip(evidence.Recent)
	if len(strips) == 0 {
		return Result{}, false
	}

	latest := strips[0]
	age := daysBetween(evidence.Now, latest.Date)
	if age > maxTestStripAgeDays || latest.TestStrip != TestStripPeak {
		return Result{}, false
	}

	signals := supportingSignals(latest, evidence.Recent)
	method := MethodPeakOnly
	if len(signals) > 0 {
		method = MethodPeakWithSupport
	}

	var message string
	if age == 0 {
		message = "Test strip peak detected"
		if len(signals) > 0 {
			message += " with " + strings.Join(signals, ", ")
		}
		message += ". Ovulation likely today."
	} else {
		message = fmt.Sprintf("Ovulation likely occurred %s ago", pluralDays(age))
		if len(signals) > 0 {
			message += " (" + strings.Join(signals, ", ") + ")"
		}
		message += "."
	}

	return Result{
		OvulationDetected:  true,
		Status:             statusForOffset(age),
		Confidence:         confidenceFromSupport(len(signals)),
		Method:             method,
		DaysUntilOvulation: intPtr(-age),
		Message:            message,
		SupportingSignals:  signals,
	}, true
}

// supportingSignals scores evidence relative to the strip's own date. The
// most recent mucus reading within 3 days and the most recent non-"none"
// ferning reading within 2 days are the only ones considered.
func supportingSignals(strip Observation, recent []Observation) []string {
	signals := make([]string, 0, 2)

	for _, observation := range withMucus(recent) {
		if absInt(daysBetween(strip.Date, observation.Date)) > mucusSupportDays {
			continue
		}
		switch {
		case observation.Mucus == MucusEggWhite:
			signals = append(signals, signalEggWhiteMucus)
		case observation.Mucus.IsDrying() && strip.TestStrip == TestStripPeak:
			signals = append(signals, signalMucusDrying)
		}
		break
	}

	for _, observation := range withFerning(recent) {
		if absInt(daysBetween(strip.Date, observation.Date)) > ferningSupportDays {
			continue
		}
		if observation.Ferning == FerningFull {
			signals = append(signals, signalFullFerning)
		}
		break
	}

	return signals
}

// TestStripFallbackDetector reads the latest positive strip on its own. It
// runs after the mucus detector so corroborated evidence always outranks it.
type TestStripFallbackDetector struct{}

func (TestStripFallbackDetector) Name() string {
	return "test-strip-fallback"
}

func (TestStripFallbackDetector) Detect(evidence Evidence) (Result, bool) {
	strips := withPositiveTestStrip(evidence.Recent)
	if len(strips) == 0 {
		return Result{}, false
	}

	latest := strips[0]
	age := daysBetween(evidence.Now, latest.Date)

	switch {
	case latest.TestStrip == TestStripPeak && age <= maxTestStripAgeDays:
		confidence := ConfidenceLow
		if age <= freshPeakDays {
			confidence = ConfidenceMedium
		}
		message := "Test strip peak detected. Ovulation likely today."
		if age > 0 {
			message = fmt.Sprintf("Test strip peak was %s ago. Ovulation likely occurred.", pluralDays(age))
		}
		return Result{
			OvulationDetected:  true,
			Status:             statusForOffset(age),
			Confidence:         confidence,
			Method:             MethodBasicPeak,
			DaysUntilOvulation: intPtr(-age),
			Message:            message,
		}, true
	case latest.TestStrip == TestStripHigh && age <= freshHighReadingDays:
		return Result{
			OvulationDetected:  true,
			Status:             StatusPreOvulation,
			Confidence:         ConfidenceLow,
			Method:             MethodBasicHigh,
			DaysUntilOvulation: intPtr(1),
			Message:            "High test strip reading. Ovulation may occur within 1-2 days.",
		}, true
	default:
		return Result{}, false
	}
}
