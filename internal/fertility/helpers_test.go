package fertility

import (
	"testing"
	"time"
)

var referenceNow = time.Date(2026, time.March, 20, 8, 30, 0, 0, time.UTC)

func daysAgo(count int) time.Time {
	return time.Date(2026, time.March, 20-count, 7, 15, 0, 0, time.UTC)
}

func temperature(value float64) *float64 {
	return &value
}

func assertOffset(t *testing.T, got *int, want int) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected days until ovulation %d, got nil", want)
	}
	if *got != want {
		t.Fatalf("expected days until ovulation %d, got %d", want, *got)
	}
}

func assertNilInt(t *testing.T, name string, got *int) {
	t.Helper()
	if got != nil {
		t.Fatalf("expected %s to be nil, got %d", name, *got)
	}
}

func temperatureSeries(values ...float64) []Observation {
	observations := make([]Observation, 0, len(values))
	for index, value := range values {
		observations = append(observations, Observation{
			Date:        daysAgo(index),
			Temperature: temperature(value),
		})
	}
	return observations
}
