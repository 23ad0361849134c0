package dashboard

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStatsAPI returns the school-wide headline numbers: enrolment,
// open assessments, the 90-day pass rate and recent promotions
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch dashboard statistics",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
