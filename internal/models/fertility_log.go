package models

import (
	"strings"
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
)

const MaxNotesLength = 2000

// FertilityLog is one stored day of observations. Categorical columns hold
// the normalized values accepted by the fertility Parse functions.
type FertilityLog struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_fertility_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_fertility_user_date"`
	Flow        string    `gorm:"not null;default:''"`
	TestStrip   string    `gorm:"not null;default:''"`
	Temperature *float64
	Mucus       string `gorm:"not null;default:''"`
	Ferning     string `gorm:"not null;default:''"`
	Notes       string `gorm:"not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (entry FertilityLog) Observation() fertility.Observation {
	return fertility.Observation{
		Date:        entry.Date,
		Flow:        fertility.Flow(entry.Flow),
		TestStrip:   fertility.TestStripReading(entry.TestStrip),
		Temperature: entry.Temperature,
		Mucus:       fertility.MucusQuality(entry.Mucus),
		Ferning:     fertility.Ferning(entry.Ferning),
	}
}

func (entry FertilityLog) HasData() bool {
	return !entry.Observation().IsEmpty() || strings.TrimSpace(entry.Notes) != ""
}

func Observations(entries []FertilityLog) []fertility.Observation {
	observations := make([]fertility.Observation, 0, len(entries))
	for _, entry := range entries {
		observations = append(observations, entry.Observation())
	}
	return observations
}
