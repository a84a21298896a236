package handlers

import (
	"github.com/arzan03/BistroAPI/internal/services"
	"github.com/gofiber/fiber/v2"
)

var statsService *services.StatsService

func InitAdminHandler(stats *services.StatsService) {
	statsService = stats
}

// AdminStatsHandler serves the dashboard summary: collection counts plus
// total revenue.
func AdminStatsHandler(c *fiber.Ctx) error {
	stats, err := statsService.Collect(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}
