package entity

import (
	"time"

	"gorm.io/gorm"
)

// QuizResult - append-only log of completed quizzes, one row per submission.
type QuizResult struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Learner   string         `gorm:"size:255;not null;index" json:"learner"`
	Category  string         `gorm:"size:50;not null;index" json:"category"`
	Score     int            `gorm:"not null" json:"score"`
	Total     int            `gorm:"not null" json:"total"`
	TakenAt   time.Time      `gorm:"autoCreateTime" json:"taken_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
