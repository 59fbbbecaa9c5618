package entity

import (
	"time"

	"gorm.io/gorm"
)

// User - account record; Coins and Streak are the gamification counters
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Coins        int            `gorm:"default:0" json:"coins"`
	Streak       int            `gorm:"default:0" json:"streak"`
	LastQuizAt   *time.Time     `json:"last_quiz_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
