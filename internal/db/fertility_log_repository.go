package db

import (
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
	"gorm.io/gorm"
)

var bleedingFlows = []string{
	string(fertility.FlowLight),
	string(fertility.FlowMedium),
	string(fertility.FlowHeavy),
}

type FertilityLogRepository struct {
	database *gorm.DB
}

func NewFertilityLogRepository(database *gorm.DB) *FertilityLogRepository {
	return &FertilityLogRepository{database: database}
}

func (repo *FertilityLogRepository) ListByUser(userID uint) ([]models.FertilityLog, error) {
	logs := make([]models.FertilityLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FertilityLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.FertilityLog, error) {
	query := repo.database.Model(&models.FertilityLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.FertilityLog, 0)
	if err := query.Order("date ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListBleedingDays returns only the date and flow of days with period flow,
// which is all cycle-start detection needs.
func (repo *FertilityLogRepository) ListBleedingDays(userID uint, before time.Time) ([]models.FertilityLog, error) {
	logs := make([]models.FertilityLog, 0)
	if err := repo.database.
		Select("date", "flow").
		Where("user_id = ? AND date < ? AND flow IN ?", userID, before, bleedingFlows).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *FertilityLogRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.FertilityLog, bool, error) {
	entry := models.FertilityLog{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.FertilityLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FertilityLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *FertilityLogRepository) Create(entry *models.FertilityLog) error {
	return repo.database.Create(entry).Error
}

func (repo *FertilityLogRepository) Save(entry *models.FertilityLog) error {
	return repo.database.Save(entry).Error
}

func (repo *FertilityLogRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Delete(&models.FertilityLog{})
	return result.RowsAffected, result.Error
}
