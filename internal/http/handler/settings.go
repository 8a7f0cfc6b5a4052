package handler

import (
	"github.com/gofiber/fiber/v2"

	"docuagent/internal/service"
)

// GetSettings returns the current application settings.
func GetSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.GetSettings())
	}
}

// UpdateSettings merges the request body over the current settings and echoes
// the result. Nothing is persisted.
func UpdateSettings(svc service.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch map[string]any
		if err := c.BodyParser(&patch); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}
		return c.JSON(svc.UpdateSettings(patch))
	}
}
