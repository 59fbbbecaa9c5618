package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/entity"
)

type (
	UserRepository interface {
		Create(db *gorm.DB, user *entity.User) error
		FindByEmail(db *gorm.DB, email string) (*entity.User, error)
		EmailExists(db *gorm.DB, email string) (bool, error)
		AddCoins(db *gorm.DB, email string, amount int) error
		// DeductCoins subtracts only when the balance covers the amount;
		// returns gorm.ErrRecordNotFound semantics via affected-row count.
		DeductCoins(db *gorm.DB, email string, amount int) (bool, error)
		UpdateStreak(db *gorm.DB, email string, streak int, lastQuizAt time.Time) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	if db == nil {
		db = r.db
	}
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) EmailExists(db *gorm.DB, email string) (bool, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) AddCoins(db *gorm.DB, email string, amount int) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.User{}).
		Where("email = ?", email).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount)).Error
}

func (r *userRepository) DeductCoins(db *gorm.DB, email string, amount int) (bool, error) {
	if db == nil {
		db = r.db
	}
	res := db.Model(&entity.User{}).
		Where("email = ? AND coins >= ?", email, amount).
		UpdateColumn("coins", gorm.Expr("coins - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) UpdateStreak(db *gorm.DB, email string, streak int, lastQuizAt time.Time) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"streak":       streak,
			"last_quiz_at": lastQuizAt,
		}).Error
}
