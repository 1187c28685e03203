// Package fertility classifies the current fertility phase from daily
// physiological observations. It is a pure rule cascade: every function takes
// the reference time explicitly and none of them read the clock or mutate
// caller-owned slices.
package fertility

import (
	"sort"
	"time"
)

// Observation holds one calendar day's readings. Zero values mean the signal
// was not recorded.
type Observation struct {
	Date        time.Time        `json:"date"`
	Flow        Flow             `json:"flow,omitempty"`
	TestStrip   TestStripReading `json:"test_strip,omitempty"`
	Temperature *float64         `json:"temperature,omitempty"`
	Mucus       MucusQuality     `json:"mucus,omitempty"`
	Ferning     Ferning          `json:"ferning,omitempty"`
}

func (observation Observation) HasTemperature() bool {
	return observation.Temperature != nil
}

func (observation Observation) HasMucus() bool {
	return observation.Mucus != MucusUnset
}

func (observation Observation) HasFerning() bool {
	return observation.Ferning != FerningUnset && observation.Ferning != FerningNone
}

// IsEmpty reports whether no signal was recorded for the day.
func (observation Observation) IsEmpty() bool {
	return observation.Flow == FlowUnset &&
		observation.TestStrip == TestStripUnset &&
		observation.Temperature == nil &&
		observation.Mucus == MucusUnset &&
		observation.Ferning == FerningUnset
}

// calendarDay drops the clock part while keeping the wall-clock date of value.
func calendarDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole calendar days from earlier to later.
func daysBetween(later time.Time, earlier time.Time) int {
	return int(calendarDay(later).Sub(calendarDay(earlier)).Hours() / 24)
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

// sortNewestFirst returns a sorted copy; ties keep their input order.
func sortNewestFirst(observations []Observation) []Observation {
	sorted := make([]Observation, 0, len(observations))
	sorted = append(sorted, observations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return calendarDay(sorted[i].Date).After(calendarDay(sorted[j].Date))
	})
	return sorted
}
