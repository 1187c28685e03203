package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
)

const (
	minGapBetweenPeriods = 5
	recentCycleCount     = 6
)

// DetectCycleStarts returns the first bleeding day of every period found in
// logs, oldest first. Bleeding days separated by at least
// minGapBetweenPeriods days without bleeding belong to different periods.
func DetectCycleStarts(logs []models.FertilityLog) []time.Time {
	days := make([]time.Time, 0, len(logs))
	for _, entry := range logs {
		if fertility.Flow(entry.Flow).IsBleeding() {
			days = append(days, dateOnly(entry.Date))
		}
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	starts := make([]time.Time, 0)
	var previous time.Time
	for _, day := range days {
		if previous.IsZero() || daysBetween(day, previous)-1 >= minGapBetweenPeriods {
			starts = append(starts, day)
		}
		previous = day
	}
	return starts
}

func CycleLengths(logs []models.FertilityLog) []int {
	starts := DetectCycleStarts(logs)
	if len(starts) < 2 {
		return nil
	}

	lengths := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		lengths = append(lengths, daysBetween(starts[i], starts[i-1]))
	}
	return lengths
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, 0, len(values))
	sorted = append(sorted, values...)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return int(float64(sorted[mid-1]+sorted[mid])/2 + 0.5)
}
