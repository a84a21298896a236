package handlers

import (
	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

var cartService *services.CartService

func InitCartHandler(cart *services.CartService) {
	cartService = cart
}

func AddCartItemHandler(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil || item.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	result, err := cartService.AddItem(c.Context(), item)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

func DeleteCartItemHandler(c *fiber.Ctx) error {
	result, err := cartService.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

// ListCartHandler returns the cart for the addressed email. Only the owner
// of the token may read it.
func ListCartHandler(c *fiber.Ctx) error {
	email := c.Params("email")
	if c.Locals("email") != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": true, "message": "Forbidden access"})
	}

	items, err := cartService.ListByEmail(c.Context(), email)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}
