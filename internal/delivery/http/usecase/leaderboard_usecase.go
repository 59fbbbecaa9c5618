package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/entity"
	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
)

type LeaderboardUsecase interface {
	GetLeaderboard(ctx context.Context, page, perPage int) ([]entity.LeaderboardEntry, *entity.PaginationMeta, error)
}

type LeaderboardConfig struct {
	DB      *gorm.DB
	Log     *logrus.Logger
	Results repository.ResultRepository
}

type leaderboardUsecase struct {
	cfg LeaderboardConfig
}

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

func NewLeaderboardUsecase(cfg LeaderboardConfig) LeaderboardUsecase {
	return &leaderboardUsecase{cfg: cfg}
}

func (u *leaderboardUsecase) GetLeaderboard(ctx context.Context, page, perPage int) ([]entity.LeaderboardEntry, *entity.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	offset := (page - 1) * perPage

	rows, total, err := u.cfg.Results.Leaderboard(u.cfg.DB, offset, perPage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		accuracy := 0.0
		if row.Total > 0 {
			accuracy = float64(row.Score) / float64(row.Total)
		}
		entries = append(entries, entity.LeaderboardEntry{
			Rank:         offset + i + 1,
			Name:         row.Name,
			Email:        row.Email,
			Coins:        row.Coins,
			QuizzesTaken: row.QuizzesTaken,
			Accuracy:     accuracy,
		})
	}

	meta := &entity.PaginationMeta{
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}
	return entries, meta, nil
}
