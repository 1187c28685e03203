package services

import (
	"time"

	"github.com/terraincognita07/fertilis/internal/models"
)

const (
	BaselineSourceNone     = ""
	BaselineSourceSettings = "settings"
	BaselineSourceDetected = "detected"
	BaselineSourceHistory  = "history"
	BaselineSourceDefault  = "default"
)

// CycleBaseline is what the calendar estimate needs for a user on a given
// day: the first day of the current cycle and the typical cycle length.
type CycleBaseline struct {
	Anchor             *time.Time
	AnchorSource       string
	AverageCycleLength int
	LengthSource       string
}

// CurrentCycleDay is 1 on the anchor itself and 0 when no anchor is known.
func (baseline CycleBaseline) CurrentCycleDay(today time.Time) int {
	if baseline.Anchor == nil {
		return 0
	}
	elapsed := daysBetween(today, *baseline.Anchor)
	if elapsed < 0 {
		return 0
	}
	return elapsed + 1
}

// ResolveCycleBaseline picks the more recent of the configured anchor and
// the latest cycle start detected from bleedingDays, ignoring both when
// they lie after today. The average is the median of the last six detected
// cycle lengths once at least two exist, then the configured length, then
// models.DefaultCycleLength.
func ResolveCycleBaseline(user models.User, bleedingDays []models.FertilityLog, today time.Time, location *time.Location) CycleBaseline {
	today = DateAtLocation(today, location)
	baseline := CycleBaseline{}

	if user.LastPeriodStart != nil {
		configured := calendarDateIn(*user.LastPeriodStart, location)
		if !configured.After(today) {
			baseline.Anchor = &configured
			baseline.AnchorSource = BaselineSourceSettings
		}
	}

	starts := DetectCycleStarts(bleedingDays)
	for index := len(starts) - 1; index >= 0; index-- {
		detected := calendarDateIn(starts[index], location)
		if detected.After(today) {
			continue
		}
		if baseline.Anchor == nil || detected.After(*baseline.Anchor) {
			baseline.Anchor = &detected
			baseline.AnchorSource = BaselineSourceDetected
		}
		break
	}

	lengths := CycleLengths(bleedingDays)
	switch {
	case len(lengths) >= 2:
		baseline.AverageCycleLength = medianInt(tailInts(lengths, recentCycleCount))
		baseline.LengthSource = BaselineSourceHistory
	case IsValidCycleLength(user.CycleLength):
		baseline.AverageCycleLength = user.CycleLength
		baseline.LengthSource = BaselineSourceSettings
	default:
		baseline.AverageCycleLength = models.DefaultCycleLength
		baseline.LengthSource = BaselineSourceDefault
	}

	return baseline
}

func IsValidCycleLength(value int) bool {
	return value >= models.MinCycleLength && value <= models.MaxCycleLength
}
