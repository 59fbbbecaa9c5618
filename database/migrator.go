package database

import (
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.PerformanceRecord{},
		&entity.GeneratedQuestion{},
		&entity.QuizResult{},
		&entity.ShopItem{},
		&entity.CoinLedger{},
	)
}
