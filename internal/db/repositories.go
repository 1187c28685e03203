package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	FertilityLogs *FertilityLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		FertilityLogs: NewFertilityLogRepository(database),
	}
}
