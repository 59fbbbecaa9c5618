package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
)

func SetupAuthRoute(api *fiber.App, handler handler.AuthHandler, m *middleware.Middleware) {
	router := api.Group("/auth")
	{
		router.Post("/register", handler.Register)
		router.Post("/login", handler.Login)
	}
}
