package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	allowCredentials := false
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
		// The fasthttp CORS layer rejects credentials with a wildcard origin.
		if allowOrigins != "*" {
			allowCredentials = m.Config.GetBool("api.cors.credentials")
		}
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowCredentials,
		ExposeHeaders:    "Content-Length, Content-Type",
	})
}
