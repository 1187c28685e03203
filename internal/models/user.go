package models

import "time"

const (
	DefaultCycleLength = 28
	MinCycleLength     = 15
	MaxCycleLength     = 90
)

type User struct {
	ID                 uint       `gorm:"primaryKey"`
	Email              string     `gorm:"uniqueIndex;not null"`
	PasswordHash       string     `gorm:"not null"`
	MustChangePassword bool       `gorm:"not null;default:false"`
	CycleLength        int        `gorm:"not null;default:28"`
	LastPeriodStart    *time.Time `gorm:"type:date"`
	CreatedAt          time.Time  `gorm:"not null"`
}
