package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

type (
	PerformanceRepository interface {
		FindByLearnerCategory(db *gorm.DB, learner, category string) (*entity.PerformanceRecord, error)
		Create(db *gorm.DB, record *entity.PerformanceRecord) error
		Save(db *gorm.DB, record *entity.PerformanceRecord) error
	}

	performanceRepository struct {
		db *gorm.DB
	}
)

func NewPerformanceRepository(db *gorm.DB) PerformanceRepository {
	return &performanceRepository{db: db}
}

// FindByLearnerCategory returns (nil, nil) when no record exists; creation is
// the usecase's call.
func (r *performanceRepository) FindByLearnerCategory(db *gorm.DB, learner, category string) (*entity.PerformanceRecord, error) {
	if db == nil {
		db = r.db
	}
	var record entity.PerformanceRecord
	err := db.Where("learner = ? AND category = ?", learner, category).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *performanceRepository) Create(db *gorm.DB, record *entity.PerformanceRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Create(record).Error
}

// Save writes the full record back. Concurrent writers for the same key are
// last-write-wins; the low-stakes domain accepts that.
func (r *performanceRepository) Save(db *gorm.DB, record *entity.PerformanceRecord) error {
	if db == nil {
		db = r.db
	}
	return db.Save(record).Error
}
