package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/mujahidul282/Athlete360/pkg/utils"
)

// AuthRequired validates the bearer token and exposes the athlete identity
// to downstream handlers via locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing or malformed authorization header",
			})
		}

		claims, err := utils.ValidateToken(token, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("athlete_id", claims.UserID)
		c.Locals("role", claims.Role)
		return c.Next()
	}
}
