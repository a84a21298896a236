package middleware

import (
	"strings"

	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and stores the decoded identity in the
// request context. A missing header is 401, anything unverifiable is 403.
// Identity-vs-resource matching is left to the handlers.
func Auth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   true,
				"message": "Unauthorized access",
			})
		}

		// Accept both "Bearer <token>" and a bare token.
		tokenString := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   true,
				"message": "Forbidden access",
			})
		}

		// Store identity claims for the next handlers
		c.Locals("email", identity.Email)
		c.Locals("role", identity.Role)

		return c.Next()
	}
}
