package handlers

import (
	"errors"
	"log"

	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/arzan03/BistroAPI/internal/store"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps service failures onto the HTTP error taxonomy.
// Validation failures carry their message; anything unexpected is logged
// server-side and reported as a generic 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid ID"})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": true, "message": "Item not found"})
	case errors.Is(err, services.ErrInvalidPayment):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": err.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": true, "message": "Server error"})
	}
}
