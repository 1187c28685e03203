package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/terraincognita07/fertilis/internal/fertility"
	"github.com/terraincognita07/fertilis/internal/models"
	"gorm.io/gorm"
)

var errStorageUnavailable = errors.New("storage unavailable")

type fertilityLogRepositoryStub struct {
	entries   map[string]models.FertilityLog
	nextID    uint
	listErr   error
	findErr   error
	createErr error
	saveErr   error
	deleteErr error
}

func newFertilityLogRepositoryStub(entries ...models.FertilityLog) *fertilityLogRepositoryStub {
	stub := &fertilityLogRepositoryStub{
		entries: make(map[string]models.FertilityLog),
		nextID:  1,
	}
	for _, entry := range entries {
		entry := entry
		_ = stub.Create(&entry)
	}
	return stub
}

func (stub *fertilityLogRepositoryStub) dayKey(userID uint, value time.Time) string {
	return fmt.Sprintf("%d/%s", userID, value.Format("2006-01-02"))
}

func (stub *fertilityLogRepositoryStub) sorted(filter func(models.FertilityLog) bool) []models.FertilityLog {
	logs := make([]models.FertilityLog, 0)
	for _, entry := range stub.entries {
		if filter(entry) {
			logs = append(logs, entry)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs
}

func (stub *fertilityLogRepositoryStub) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.FertilityLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.sorted(func(entry models.FertilityLog) bool {
		if entry.UserID != userID {
			return false
		}
		if fromStart != nil && entry.Date.Before(*fromStart) {
			return false
		}
		return toEnd == nil || entry.Date.Before(*toEnd)
	}), nil
}

func (stub *fertilityLogRepositoryStub) ListBleedingDays(userID uint, before time.Time) ([]models.FertilityLog, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.sorted(func(entry models.FertilityLog) bool {
		return entry.UserID == userID && entry.Date.Before(before) && fertility.Flow(entry.Flow).IsBleeding()
	}), nil
}

func (stub *fertilityLogRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.FertilityLog, bool, error) {
	if stub.findErr != nil {
		return models.FertilityLog{}, false, stub.findErr
	}
	entry, ok := stub.entries[stub.dayKey(userID, dayStart)]
	if !ok || entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
		return models.FertilityLog{}, false, nil
	}
	return entry, true, nil
}

func (stub *fertilityLogRepositoryStub) Create(entry *models.FertilityLog) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	if entry.ID == 0 {
		entry.ID = stub.nextID
		stub.nextID++
	}
	stub.entries[stub.dayKey(entry.UserID, entry.Date)] = *entry
	return nil
}

func (stub *fertilityLogRepositoryStub) Save(entry *models.FertilityLog) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.entries[stub.dayKey(entry.UserID, entry.Date)] = *entry
	return nil
}

func (stub *fertilityLogRepositoryStub) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	if stub.deleteErr != nil {
		return 0, stub.deleteErr
	}
	var deleted int64
	for key, entry := range stub.entries {
		if entry.UserID != userID || entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		delete(stub.entries, key)
		deleted++
	}
	return deleted, nil
}

type userRepositoryStub struct {
	users   map[uint]models.User
	nextID  uint
	loadErr error
	saveErr error
}

func newUserRepositoryStub(users ...models.User) *userRepositoryStub {
	stub := &userRepositoryStub{users: make(map[uint]models.User), nextID: 1}
	for _, user := range users {
		user := user
		_ = stub.Create(&user)
	}
	return stub
}

func (stub *userRepositoryStub) ExistsByNormalizedEmail(email string) (bool, error) {
	if stub.loadErr != nil {
		return false, stub.loadErr
	}
	_, err := stub.FindByNormalizedEmail(email)
	return err == nil, nil
}

func (stub *userRepositoryStub) FindByNormalizedEmail(email string) (models.User, error) {
	if stub.loadErr != nil {
		return models.User{}, stub.loadErr
	}
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *userRepositoryStub) FindByID(userID uint) (models.User, error) {
	if stub.loadErr != nil {
		return models.User{}, stub.loadErr
	}
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *userRepositoryStub) Create(user *models.User) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	if user.ID == 0 {
		user.ID = stub.nextID
		stub.nextID++
	}
	stub.users[user.ID] = *user
	return nil
}

func (stub *userRepositoryStub) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	user := stub.users[userID]
	user.PasswordHash = passwordHash
	user.MustChangePassword = mustChangePassword
	stub.users[userID] = user
	return nil
}

func (stub *userRepositoryStub) LoadCycleSettings(userID uint) (models.User, error) {
	return stub.FindByID(userID)
}

func (stub *userRepositoryStub) SaveCycleSettings(userID uint, cycleLength int, lastPeriodStart *time.Time) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	user := stub.users[userID]
	user.CycleLength = cycleLength
	user.LastPeriodStart = lastPeriodStart
	stub.users[userID] = user
	return nil
}

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func dayPtr(raw string) *time.Time {
	day := mustParseDay(raw)
	return &day
}

func bleedingLog(userID uint, raw string) models.FertilityLog {
	return models.FertilityLog{UserID: userID, Date: mustParseDay(raw), Flow: string(fertility.FlowMedium)}
}
