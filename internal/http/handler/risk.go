package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docuagent/internal/service"
)

// ListRisks returns the risk reports derived from flagged documents.
func ListRisks(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid limit")
		}

		reports, err := svc.ListRisks(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err, "risk report not found")
		}
		return c.JSON(reports)
	}
}

// GetRisk returns the report for one flagged document. Clean documents have
// no report and yield a 404.
func GetRisk(svc service.RiskService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		report, err := svc.GetRisk(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "risk report not found")
		}
		return c.JSON(report)
	}
}

// UpdateRiskStatus persists a new review status and returns the refreshed
// report.
func UpdateRiskStatus(svc service.RiskService) fiber.Handler {
	type statusBody struct {
		Status string `json:"status"`
	}
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		var body statusBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		report, err := svc.UpdateRiskStatus(c.UserContext(), id, body.Status)
		if err != nil {
			return writeServiceError(c, err, "risk report not found")
		}
		return c.JSON(report)
	}
}
