package entity

import (
	"time"

	"gorm.io/gorm"
)

// PerformanceRecord - per-(learner, category) skill aggregate. Topic sets and
// the bounded question history are stored as JSON text columns and decoded by
// the mapper package.
type PerformanceRecord struct {
	ID               uint           `gorm:"primarykey" json:"id"`
	Learner          string         `gorm:"size:255;not null;index:idx_perf_learner_category,unique" json:"learner"`
	Category         string         `gorm:"size:50;not null;index:idx_perf_learner_category,unique" json:"category"`
	Level            string         `gorm:"size:20;not null;default:beginner" json:"level"`
	Accuracy         float64        `gorm:"default:0" json:"accuracy"`
	WeakTopics       string         `gorm:"type:text" json:"weak_topics"`       // JSON array of topic names
	StrongTopics     string         `gorm:"type:text" json:"strong_topics"`     // JSON array of topic names
	CommonMistakes   string         `gorm:"type:text" json:"common_mistakes"`   // JSON array, grows monotonically
	MasteredConcepts string         `gorm:"type:text" json:"mastered_concepts"` // JSON array, grows monotonically
	QuestionHistory  string         `gorm:"type:text" json:"question_history"`  // JSON array, capped at 50 entries
	QuizzesTaken     int            `gorm:"default:0" json:"quizzes_taken"`
	TotalQuestions   int            `gorm:"default:0" json:"total_questions"`
	CorrectAnswers   int            `gorm:"default:0" json:"correct_answers"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PerformanceRecord) TableName() string {
	return "performance_records"
}
