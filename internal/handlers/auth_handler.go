package handlers

import (
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

var tokenService *services.TokenService

func InitAuthHandler(tokens *services.TokenService) {
	tokenService = tokens
}

// CreateTokenHandler issues a signed token for the supplied identity.
func CreateTokenHandler(c *fiber.Ctx) error {
	var identity services.Identity
	if err := c.BodyParser(&identity); err != nil || identity.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	token, err := tokenService.Issue(identity)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}
