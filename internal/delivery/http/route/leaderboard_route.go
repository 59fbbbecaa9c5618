package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
)

func SetupLeaderboardRoute(api *fiber.App, handler handler.LeaderboardHandler, m *middleware.Middleware) {
	router := api.Group("/leaderboard")
	{
		router.Get("/", handler.Get)
	}
}
