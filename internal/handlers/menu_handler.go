package handlers

import (
	"fmt"

	"github.com/arzan03/BistroAPI/internal/models"
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/arzan03/BistroAPI/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var menuService *services.MenuService

func InitMenuHandler(menu *services.MenuService) {
	menuService = menu
}

func ListMenuHandler(c *fiber.Ctx) error {
	items, err := menuService.ListMenu(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

func AddMenuItemHandler(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil || item.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Invalid request body"})
	}

	result, err := menuService.AddItem(c.Context(), item)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

func DeleteMenuItemHandler(c *fiber.Ctx) error {
	result, err := menuService.DeleteItem(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Item deleted successfully",
		"result":  result,
	})
}

// UploadMenuImageHandler stores a dish photo in object storage and returns
// the URL to embed in the menu item.
func UploadMenuImageHandler(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Missing image file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": true, "message": "Failed to open image file"})
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), fileHeader.Filename)
	url, err := storage.UploadMenuImage(c.Context(), objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"url": url})
}
