package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/service"
)

// DashboardStats reports the aggregate counters for the dashboard view.
func DashboardStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Dashboard(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "stats not found")
		}
		return c.JSON(stats)
	}
}
