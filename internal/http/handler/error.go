package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docuagent/internal/http/middleware"
	"docuagent/internal/service"
)

// errorPayload is the standardized error response body. Clients key off the
// detail field.
type errorPayload struct {
	Detail    string `json:"detail"`
	RequestID string `json:"request_id,omitempty"`
}

// requestIDFromCtx extracts the request_id previously stored by
// middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors: detail is a safe, human-readable message.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(errorPayload{
		Detail:    detail,
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError translates service sentinels into HTTP responses.
// notFoundDetail covers the resource-specific 404 message.
func writeServiceError(c *fiber.Ctx, err error, notFoundDetail string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, notFoundDetail)
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "id is required")
	case errors.Is(err, service.ErrInvalidStatus):
		return writeError(c, fiber.StatusBadRequest, "invalid status")
	case errors.Is(err, service.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "uploaded file is empty")
	default:
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for errors escaping the handlers (unmatched routes included).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
