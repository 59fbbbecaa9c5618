package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
)

func SetupQuizRoute(api *fiber.App, handler handler.QuizHandler, m *middleware.Middleware) {
	router := api.Group("/quiz")
	{
		router.Post("/next-question", handler.NextQuestion)
		router.Post("/submit", handler.Submit)
		router.Get("/personalization", handler.Personalization)
	}
}
