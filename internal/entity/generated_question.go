package entity

import (
	"time"

	"gorm.io/gorm"
)

// GeneratedQuestion - a question served to a learner, whether produced by the
// external generator or resolved from the static bank. Immutable once created
// except for the one-way used transition.
type GeneratedQuestion struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	QuestionID    string         `gorm:"uniqueIndex;size:100;not null" json:"question_id"`
	Learner       string         `gorm:"size:255;not null;index:idx_genq_learner_category" json:"learner"`
	Category      string         `gorm:"size:50;not null;index:idx_genq_learner_category" json:"category"`
	Topic         string         `gorm:"size:100;not null" json:"topic"`
	Difficulty    string         `gorm:"size:20;not null;index" json:"difficulty"`
	QuestionText  string         `gorm:"type:text;not null" json:"question_text"`
	Options       string         `gorm:"type:text;not null" json:"options"` // JSON array of exactly 4 strings
	CorrectAnswer string         `gorm:"size:255;not null" json:"correct_answer"`
	Explanation   string         `gorm:"type:text" json:"explanation"`
	GeneratedBy   string         `gorm:"size:30;not null" json:"generated_by"` // external-generator, intelligent-fallback
	Used          bool           `gorm:"default:false;index" json:"used"`
	WasCorrect    *bool          `json:"was_correct,omitempty"`
	TimeSpent     int            `gorm:"default:0" json:"time_spent"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GeneratedQuestion) TableName() string {
	return "generated_questions"
}
