package api

import (
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
	"github.com/terraincognita07/fertilis/internal/services"
)

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

type dayPayload struct {
	Flow        string   `json:"flow"`
	TestStrip   string   `json:"test_strip"`
	Temperature *float64 `json:"temperature"`
	Mucus       string   `json:"mucus"`
	Ferning     string   `json:"ferning"`
	Notes       string   `json:"notes"`
}

func (payload dayPayload) toInput() services.DayEntryInput {
	return services.DayEntryInput{
		Flow:        payload.Flow,
		TestStrip:   payload.TestStrip,
		Temperature: payload.Temperature,
		Mucus:       payload.Mucus,
		Ferning:     payload.Ferning,
		Notes:       payload.Notes,
	}
}

// cycleSettingsInput treats a missing or null last_period_start as "keep"
// and an empty string as "clear".
type cycleSettingsInput struct {
	CycleLength     int     `json:"cycle_length"`
	LastPeriodStart *string `json:"last_period_start"`
}

type userResponse struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"must_change_password"`
}

type sessionResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type dayResponse struct {
	Date        string   `json:"date"`
	Flow        string   `json:"flow"`
	TestStrip   string   `json:"test_strip"`
	Temperature *float64 `json:"temperature"`
	Mucus       string   `json:"mucus"`
	Ferning     string   `json:"ferning"`
	Notes       string   `json:"notes"`
	HasData     bool     `json:"has_data"`
}

type baselineResponse struct {
	Anchor             *string `json:"anchor"`
	AnchorSource       string  `json:"anchor_source"`
	AverageCycleLength int     `json:"average_cycle_length"`
	LengthSource       string  `json:"length_source"`
}

type predictionResponse struct {
	Date     string           `json:"date"`
	CycleDay int              `json:"cycle_day"`
	Detector string           `json:"detector,omitempty"`
	Result   fertility.Result `json:"result"`
	Baseline baselineResponse `json:"baseline"`
}

type cycleSummaryResponse struct {
	Date                         string           `json:"date"`
	TotalEntries                 int              `json:"total_entries"`
	EntriesWithFlow              int              `json:"entries_with_flow"`
	EntriesWithTemperature       int              `json:"entries_with_temperature"`
	EntriesWithPositiveTestStrip int              `json:"entries_with_positive_test_strip"`
	EntriesWithMucus             int              `json:"entries_with_mucus"`
	EntriesWithNotes             int              `json:"entries_with_notes"`
	CurrentCycleDay              int              `json:"current_cycle_day"`
	Baseline                     baselineResponse `json:"baseline"`
}

type cycleSettingsResponse struct {
	CycleLength     int     `json:"cycle_length"`
	LastPeriodStart *string `json:"last_period_start"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{ID: user.ID, Email: user.Email, MustChangePassword: user.MustChangePassword}
}

func newDayResponse(entry models.FertilityLog, location *time.Location) dayResponse {
	return dayResponse{
		Date:        formatDay(services.DateAtLocation(entry.Date, location)),
		Flow:        entry.Flow,
		TestStrip:   entry.TestStrip,
		Temperature: entry.Temperature,
		Mucus:       entry.Mucus,
		Ferning:     entry.Ferning,
		Notes:       entry.Notes,
		HasData:     entry.HasData(),
	}
}

func newBaselineResponse(baseline services.CycleBaseline) baselineResponse {
	return baselineResponse{
		Anchor:             formatOptionalDay(baseline.Anchor),
		AnchorSource:       baseline.AnchorSource,
		AverageCycleLength: baseline.AverageCycleLength,
		LengthSource:       baseline.LengthSource,
	}
}
