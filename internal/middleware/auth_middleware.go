package middleware

import (
	"strings"

	"go-storefront-ws/pkg/jwt"
	"go-storefront-ws/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin validates the admin session token issued after the
// shared-secret login. There is a single admin identity; no further
// privilege model exists.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.JSONError(c, fiber.StatusUnauthorized, "Missing authorization token")
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return response.JSONError(c, fiber.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return response.JSONError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}
		if claims.Role != jwt.RoleAdmin {
			return response.JSONError(c, fiber.StatusForbidden, "Admin access required")
		}

		return c.Next()
	}
}
