package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

type (
	QuestionRepository interface {
		Create(db *gorm.DB, question *entity.GeneratedQuestion) error
		FindByQuestionID(db *gorm.DB, questionID string) (*entity.GeneratedQuestion, error)
		// FindTextsByLearnerCategory returns the question texts already served
		// to a learner in a category, for deduplication.
		FindTextsByLearnerCategory(db *gorm.DB, learner, category string) ([]string, error)
		// MarkUsed transitions a question to used with the learner's recorded
		// outcome. The transition is one-way: already-used rows are untouched.
		MarkUsed(db *gorm.DB, questionID string, wasCorrect bool, timeSpent int) error
	}

	questionRepository struct {
		db *gorm.DB
	}
)

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(db *gorm.DB, question *entity.GeneratedQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *questionRepository) FindByQuestionID(db *gorm.DB, questionID string) (*entity.GeneratedQuestion, error) {
	if db == nil {
		db = r.db
	}
	var question entity.GeneratedQuestion
	err := db.Where("question_id = ?", questionID).First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindTextsByLearnerCategory(db *gorm.DB, learner, category string) ([]string, error) {
	if db == nil {
		db = r.db
	}
	var texts []string
	err := db.Model(&entity.GeneratedQuestion{}).
		Where("learner = ? AND category = ?", learner, category).
		Pluck("question_text", &texts).Error
	return texts, err
}

func (r *questionRepository) MarkUsed(db *gorm.DB, questionID string, wasCorrect bool, timeSpent int) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.GeneratedQuestion{}).
		Where("question_id = ? AND used = ?", questionID, false).
		Updates(map[string]any{
			"used":        true,
			"was_correct": wasCorrect,
			"time_spent":  timeSpent,
		}).Error
}
