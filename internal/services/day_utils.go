package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// LookbackRange covers the given number of calendar days ending with (and
// including) value.
func LookbackRange(value time.Time, days int, location *time.Location) (time.Time, time.Time) {
	start, end := DayRange(value, location)
	if days > 1 {
		start = start.AddDate(0, 0, -(days - 1))
	}
	return start, end
}

// calendarDateIn keeps the wall-clock date of value and moves it to midnight
// in location. Stored dates already carry the right calendar day.
func calendarDateIn(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func daysBetween(later time.Time, earlier time.Time) int {
	return int(dateOnly(later).Sub(dateOnly(earlier)).Hours() / 24)
}

func dateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
