package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const authEmailKey = "auth_email"

// RequireAuth validates a Bearer token and stores the subject email in locals.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		if len(m.jwtSecret) == 0 {
			return fiber.NewError(fiber.StatusInternalServerError, "auth is not configured")
		}

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token claims")
		}

		ctx.Locals(authEmailKey, claims.Subject)
		return ctx.Next()
	}
}

// AuthenticatedEmail returns the email set by RequireAuth, or empty.
func AuthenticatedEmail(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals(authEmailKey).(string); ok {
		return v
	}
	return ""
}
