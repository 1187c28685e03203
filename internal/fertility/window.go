package fertility

import "time"

const (
	// RecentWindowDays bounds the signals the strip and mucus detectors see.
	RecentWindowDays = 7

	// TemperatureLookbackDays bounds the history the temperature detector
	// sees. It is wider than RecentWindowDays so a 2-reading baseline and a
	// 3-reading plateau fit around a shift that happened a week ago.
	TemperatureLookbackDays = 14
)

// RecentWindow returns the observations dated within the last
// RecentWindowDays days up to and including now, newest first.
func RecentWindow(observations []Observation, now time.Time) []Observation {
	return observationsWithin(observations, now, RecentWindowDays)
}

// observationsWithin keeps observations with now-lookbackDays <= date <= now,
// one per calendar day. When a day appears more than once the occurrence that
// comes later in the input wins.
func observationsWithin(observations []Observation, now time.Time, lookbackDays int) []Observation {
	indexByDay := make(map[time.Time]int, len(observations))
	kept := make([]Observation, 0, len(observations))
	for _, observation := range observations {
		age := daysBetween(now, observation.Date)
		if age < 0 || age > lookbackDays {
			continue
		}

		day := calendarDay(observation.Date)
		if index, seen := indexByDay[day]; seen {
			kept[index] = observation
			continue
		}
		indexByDay[day] = len(kept)
		kept = append(kept, observation)
	}
	return sortNewestFirst(kept)
}

func withTemperature(observations []Observation, limit int) []Observation {
	readings := make([]Observation, 0, limit)
	for _, observation := range observations {
		if !observation.HasTemperature() {
			continue
		}
		readings = append(readings, observation)
		if len(readings) == limit {
			break
		}
	}
	return readings
}

func withPositiveTestStrip(observations []Observation) []Observation {
	strips := make([]Observation, 0)
	for _, observation := range observations {
		if observation.TestStrip.IsPositive() {
			strips = append(strips, observation)
		}
	}
	return strips
}

func withMucus(observations []Observation) []Observation {
	readings := make([]Observation, 0)
	for _, observation := range observations {
		if observation.HasMucus() {
			readings = append(readings, observation)
		}
	}
	return readings
}

func withFerning(observations []Observation) []Observation {
	readings := make([]Observation, 0)
	for _, observation := range observations {
		if observation.HasFerning() {
			readings = append(readings, observation)
		}
	}
	return readings
}
