package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/quizforge/quizforge-be/internal/delivery/http/repository"
	internalEntity "github.com/quizforge/quizforge-be/internal/entity"
)

type fakeLeaderboard struct {
	rows      []repository.LeaderboardRow
	total     int64
	gotOffset int
	gotLimit  int
}

func (f *fakeLeaderboard) Create(db *gorm.DB, result *internalEntity.QuizResult) error { return nil }

func (f *fakeLeaderboard) Leaderboard(db *gorm.DB, offset, limit int) ([]repository.LeaderboardRow, int64, error) {
	f.gotOffset = offset
	f.gotLimit = limit
	return f.rows, f.total, nil
}

func newLeaderboardFixture(rows []repository.LeaderboardRow, total int64) (LeaderboardUsecase, *fakeLeaderboard) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	repo := &fakeLeaderboard{rows: rows, total: total}
	return NewLeaderboardUsecase(LeaderboardConfig{Log: log, Results: repo}), repo
}

func TestGetLeaderboardRanksFromOffset(t *testing.T) {
	uc, repo := newLeaderboardFixture([]repository.LeaderboardRow{
		{Email: "a@example.com", Name: "A", Coins: 90, QuizzesTaken: 4, Score: 16, Total: 20},
		{Email: "b@example.com", Name: "B", Coins: 80, QuizzesTaken: 2, Score: 5, Total: 10},
	}, 12)

	entries, meta, err := uc.GetLeaderboard(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, repo.gotOffset)
	assert.Equal(t, 10, repo.gotLimit)

	require.Len(t, entries, 2)
	assert.Equal(t, 11, entries[0].Rank)
	assert.Equal(t, 12, entries[1].Rank)
	assert.InDelta(t, 0.8, entries[0].Accuracy, 1e-9)
	assert.InDelta(t, 0.5, entries[1].Accuracy, 1e-9)

	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(12), meta.Total)
}

func TestGetLeaderboardClampsPagination(t *testing.T) {
	uc, repo := newLeaderboardFixture(nil, 0)

	_, meta, err := uc.GetLeaderboard(context.Background(), -3, 5000)
	require.NoError(t, err)

	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, maxPerPage, repo.gotLimit)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, maxPerPage, meta.PerPage)
}

func TestGetLeaderboardZeroTotalAccuracy(t *testing.T) {
	uc, _ := newLeaderboardFixture([]repository.LeaderboardRow{
		{Email: "a@example.com", Name: "A", Coins: 0, QuizzesTaken: 0, Score: 0, Total: 0},
	}, 1)

	entries, _, err := uc.GetLeaderboard(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Accuracy)
}
