package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/quizforge/quizforge-be/internal/delivery/http/domain"
	"github.com/quizforge/quizforge-be/internal/delivery/http/usecase"
	"github.com/quizforge/quizforge-be/internal/pkg/response"
)

type (
	LeaderboardHandler interface {
		Get(ctx *fiber.Ctx) error
	}

	leaderboardHandler struct {
		logger  *logrus.Logger
		usecase usecase.LeaderboardUsecase
	}
)

func NewLeaderboardHandler(logger *logrus.Logger, usecase usecase.LeaderboardUsecase) LeaderboardHandler {
	return &leaderboardHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /leaderboard?page=1&per_page=10
func (h *leaderboardHandler) Get(ctx *fiber.Ctx) error {
	page := queryInt(ctx, "page", 1)
	perPage := queryInt(ctx, "per_page", 10)

	entries, meta, err := h.usecase.GetLeaderboard(ctx.UserContext(), page, perPage)
	if err != nil {
		return response.NewFailed(domain.LEADERBOARD_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.LEADERBOARD_SUCCESS, entries, meta).Send(ctx)
}

func queryInt(ctx *fiber.Ctx, key string, fallback int) int {
	if v := ctx.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
