package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/fertilis/internal/models"
)

var (
	ErrDayEntryLoadFailed   = errors.New("load day entry failed")
	ErrDayEntryCreateFailed = errors.New("create day entry failed")
	ErrDayEntryUpdateFailed = errors.New("update day entry failed")
	ErrDeleteDayFailed      = errors.New("delete day failed")
)

type DayLogRepository interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.FertilityLog, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.FertilityLog, bool, error)
	Create(entry *models.FertilityLog) error
	Save(entry *models.FertilityLog) error
	DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error)
}

type DayService struct {
	logs DayLogRepository
}

func NewDayService(logs DayLogRepository) *DayService {
	return &DayService{logs: logs}
}

func (service *DayService) FetchLogsForUser(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.FertilityLog, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return service.logs.ListByUserRange(userID, &fromStart, &toEnd)
}

// FetchLogByDate returns an unsaved empty entry when nothing was logged.
func (service *DayService) FetchLogByDate(userID uint, day time.Time, location *time.Location) (models.FertilityLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.FertilityLog{}, err
	}
	if !found {
		return models.FertilityLog{UserID: userID, Date: dayStart}, nil
	}
	return entry, nil
}

// UpsertDayEntry validates input and replaces every signal stored for the
// day. The bool result reports whether a new row was created.
func (service *DayService) UpsertDayEntry(userID uint, day time.Time, input DayEntryInput, location *time.Location) (models.FertilityLog, bool, error) {
	normalized, err := NormalizeDayEntryInput(input)
	if err != nil {
		return models.FertilityLog{}, false, err
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.logs.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.FertilityLog{}, false, ErrDayEntryLoadFailed
	}

	if !found {
		entry = models.FertilityLog{UserID: userID, Date: dayStart}
	}
	entry.Flow = normalized.Flow
	entry.TestStrip = normalized.TestStrip
	entry.Temperature = normalized.Temperature
	entry.Mucus = normalized.Mucus
	entry.Ferning = normalized.Ferning
	entry.Notes = normalized.Notes

	if found {
		if err := service.logs.Save(&entry); err != nil {
			return models.FertilityLog{}, false, ErrDayEntryUpdateFailed
		}
		return entry, false, nil
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.FertilityLog{}, false, ErrDayEntryCreateFailed
	}
	return entry, true, nil
}

func (service *DayService) DeleteDay(userID uint, day time.Time, location *time.Location) (bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	deleted, err := service.logs.DeleteByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return false, ErrDeleteDayFailed
	}
	return deleted > 0, nil
}
