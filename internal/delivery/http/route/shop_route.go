package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge-be/internal/delivery/http/handler"
	"github.com/quizforge/quizforge-be/internal/delivery/http/middleware"
)

func SetupShopRoute(api *fiber.App, handler handler.ShopHandler, m *middleware.Middleware) {
	router := api.Group("/shop")
	{
		router.Get("/items", handler.ListItems)
		router.Post("/purchase", m.RequireAuth(), handler.Purchase)
	}
}
