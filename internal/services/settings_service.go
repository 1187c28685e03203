package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/fertilis/internal/models"
)

var (
	ErrSettingsLoadFailed = errors.New("settings load failed")
	ErrSettingsSaveFailed = errors.New("settings save failed")
)

type SettingsUserRepository interface {
	LoadCycleSettings(userID uint) (models.User, error)
	SaveCycleSettings(userID uint, cycleLength int, lastPeriodStart *time.Time) error
}

type SettingsService struct {
	users SettingsUserRepository
}

func NewSettingsService(users SettingsUserRepository) *SettingsService {
	return &SettingsService{users: users}
}

func (service *SettingsService) LoadSettings(userID uint) (models.User, error) {
	user, err := service.users.LoadCycleSettings(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSettingsLoadFailed, err)
	}
	return user, nil
}

// SaveCycleSettings validates input and returns the stored settings.
func (service *SettingsService) SaveCycleSettings(userID uint, input CycleSettingsInput, now time.Time, location *time.Location) (models.User, error) {
	update, err := ValidateCycleSettings(input, now, location)
	if err != nil {
		return models.User{}, err
	}

	current, err := service.LoadSettings(userID)
	if err != nil {
		return models.User{}, err
	}

	lastPeriodStart := current.LastPeriodStart
	if update.LastPeriodStartSet {
		lastPeriodStart = update.LastPeriodStart
	}
	if err := service.users.SaveCycleSettings(userID, update.CycleLength, lastPeriodStart); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSettingsSaveFailed, err)
	}

	current.CycleLength = update.CycleLength
	current.LastPeriodStart = lastPeriodStart
	return current, nil
}
