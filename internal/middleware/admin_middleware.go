package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireAdmin ensures the caller's token carries the admin role. It must
// run after Auth, which puts the role claim into the request context.
func RequireAdmin(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   true,
			"message": "Forbidden access",
		})
	}
	return c.Next()
}
