package handlers

import (
	"errors"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

var userService *services.UserService

func InitUserHandler(users *services.UserService) {
	userService = users
}

func ListUsersHandler(c *fiber.Ctx) error {
	users, err := userService.ListUsers(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

// CreateUserHandler registers a user, idempotently by email.
func CreateUserHandler(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil || user.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	result, err := userService.RegisterUser(c.Context(), user)
	if errors.Is(err, services.ErrUserExists) {
		return c.JSON(fiber.Map{"message": "User already exists"})
	}
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(result)
}

// CheckAdminHandler reports whether the caller is an admin. The token's
// email must match the path parameter; anyone else gets a flat denial.
func CheckAdminHandler(c *fiber.Ctx) error {
	email := c.Params("email")
	if c.Locals("email") != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"admin": false})
	}

	isAdmin, err := userService.IsAdmin(c.Context(), email)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"admin": isAdmin})
}

// PromoteAdminHandler sets role=admin on the addressed user.
func PromoteAdminHandler(c *fiber.Ctx) error {
	result, err := userService.PromoteAdmin(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}
