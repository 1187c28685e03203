package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
)

var ErrInvalidDayInput = errors.New("invalid day input")

// DayEntryInput is one day's raw signals as submitted by a client.
type DayEntryInput struct {
	Flow        string
	TestStrip   string
	Temperature *float64
	Mucus       string
	Ferning     string
	Notes       string
}

// NormalizeDayEntryInput canonicalizes every categorical value and validates
// the temperature. Errors wrap both ErrInvalidDayInput and the fertility
// sentinel for the offending field.
func NormalizeDayEntryInput(input DayEntryInput) (DayEntryInput, error) {
	flow, err := fertility.ParseFlow(input.Flow)
	if err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDayInput, err)
	}
	testStrip, err := fertility.ParseTestStrip(input.TestStrip)
	if err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDayInput, err)
	}
	mucus, err := fertility.ParseMucus(input.Mucus)
	if err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDayInput, err)
	}
	ferning, err := fertility.ParseFerning(input.Ferning)
	if err != nil {
		return input, fmt.Errorf("%w: %w", ErrInvalidDayInput, err)
	}
	if input.Temperature != nil {
		if err := fertility.ValidateTemperature(*input.Temperature); err != nil {
			return input, fmt.Errorf("%w: %w", ErrInvalidDayInput, err)
		}
		value := *input.Temperature
		input.Temperature = &value
	}

	input.Flow = string(flow)
	input.TestStrip = string(testStrip)
	input.Mucus = string(mucus)
	input.Ferning = string(ferning)
	input.Notes = TrimDayNotes(input.Notes)
	return input, nil
}

func TrimDayNotes(value string) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if len(runes) <= models.MaxNotesLength {
		return value
	}
	return string(runes[:models.MaxNotesLength])
}
