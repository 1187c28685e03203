package services

import (
	"errors"
	"strings"
	"time"
)

// MaxCycleStartAgeDays bounds how far back a configured period start may lie.
const MaxCycleStartAgeDays = 365

var (
	ErrSettingsCycleLengthOutOfRange = errors.New("settings cycle length out of range")
	ErrSettingsCycleStartDateInvalid = errors.New("settings cycle start date invalid")
)

type CycleSettingsInput struct {
	CycleLength        int
	LastPeriodStartRaw string
	LastPeriodStartSet bool
}

type CycleSettingsUpdate struct {
	CycleLength        int
	LastPeriodStartSet bool
	LastPeriodStart    *time.Time
}

// ValidateCycleSettings parses the optional period start. An explicit empty
// value clears it; an absent one leaves the stored value alone.
func ValidateCycleSettings(input CycleSettingsInput, now time.Time, location *time.Location) (CycleSettingsUpdate, error) {
	if !IsValidCycleLength(input.CycleLength) {
		return CycleSettingsUpdate{}, ErrSettingsCycleLengthOutOfRange
	}

	update := CycleSettingsUpdate{
		CycleLength:        input.CycleLength,
		LastPeriodStartSet: input.LastPeriodStartSet,
	}
	rawDate := strings.TrimSpace(input.LastPeriodStartRaw)
	if !input.LastPeriodStartSet || rawDate == "" {
		return update, nil
	}

	if location == nil {
		location = time.UTC
	}
	parsedDay, err := time.ParseInLocation("2006-01-02", rawDate, location)
	if err != nil {
		return CycleSettingsUpdate{}, ErrSettingsCycleStartDateInvalid
	}

	minCycleStart, today := SettingsCycleStartDateBounds(now, location)
	if parsedDay.Before(minCycleStart) || parsedDay.After(today) {
		return CycleSettingsUpdate{}, ErrSettingsCycleStartDateInvalid
	}

	update.LastPeriodStart = &parsedDay
	return update, nil
}

func SettingsCycleStartDateBounds(now time.Time, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	today := DateAtLocation(now, location)
	return today.AddDate(0, 0, -MaxCycleStartAgeDays), today
}
