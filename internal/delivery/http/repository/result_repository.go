package repository

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

// LeaderboardRow is one aggregated leaderboard line before ranking.
type LeaderboardRow struct {
	Email        string
	Name         string
	Coins        int
	QuizzesTaken int
	Score        int
	Total        int
}

type (
	ResultRepository interface {
		Create(db *gorm.DB, result *entity.QuizResult) error
		// Leaderboard aggregates the append-only result log joined with user
		// coin balances, ordered by coins then accuracy.
		Leaderboard(db *gorm.DB, offset, limit int) ([]LeaderboardRow, int64, error)
	}

	resultRepository struct {
		db *gorm.DB
	}
)

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(db *gorm.DB, result *entity.QuizResult) error {
	if db == nil {
		db = r.db
	}
	return db.Create(result).Error
}

func (r *resultRepository) Leaderboard(db *gorm.DB, offset, limit int) ([]LeaderboardRow, int64, error) {
	if db == nil {
		db = r.db
	}

	var total int64
	if err := db.Model(&entity.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []LeaderboardRow
	err := db.Model(&entity.User{}).
		Select(`users.email,
			users.name,
			users.coins,
			COUNT(quiz_results.id) AS quizzes_taken,
			COALESCE(SUM(quiz_results.score), 0) AS score,
			COALESCE(SUM(quiz_results.total), 0) AS total`).
		Joins("LEFT JOIN quiz_results ON quiz_results.learner = users.email AND quiz_results.deleted_at IS NULL").
		Group("users.id").
		Order("users.coins DESC, CASE WHEN COALESCE(SUM(quiz_results.total), 0) = 0 THEN 0 ELSE CAST(COALESCE(SUM(quiz_results.score), 0) AS FLOAT) / SUM(quiz_results.total) END DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}
