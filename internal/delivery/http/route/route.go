package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
)

type RouteConfig struct {
	Api                *fiber.App
	Middleware         *middleware.Middleware
	QuizHandler        handler.QuizHandler
	AuthHandler        handler.AuthHandler
	ShopHandler        handler.ShopHandler
	LeaderboardHandler handler.LeaderboardHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupQuizRoute(c.Api, c.QuizHandler, c.Middleware)
	SetupAuthRoute(c.Api, c.AuthHandler, c.Middleware)
	SetupShopRoute(c.Api, c.ShopHandler, c.Middleware)
	SetupLeaderboardRoute(c.Api, c.LeaderboardHandler, c.Middleware)

	c.Api.Static("/", "./public")
}
