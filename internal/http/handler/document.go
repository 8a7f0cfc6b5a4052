package handler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"docuagent/internal/service"
)

// ProcessDocument runs the full intake pipeline for one multipart upload
// (field name: file) and returns the stored record.
func ProcessDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot read uploaded file")
		}

		doc, err := svc.Process(c.UserContext(), fh.Filename, content)
		if err != nil {
			return writeServiceError(c, err, "document not found")
		}
		return c.JSON(fiber.Map{
			"message": "Document processed successfully",
			"data":    doc,
		})
	}
}

// ListDocuments returns stored records newest-first. limit <= 0 returns all.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid limit")
		}

		docs, err := svc.List(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err, "document not found")
		}
		return c.JSON(docs)
	}
}

// GetDocument returns a single record by ID.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "document not found")
		}
		return c.JSON(doc)
	}
}

// DownloadDocument streams the original uploaded file back as an attachment.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		res, err := svc.Download(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err, "document not found")
		}

		c.Set(fiber.HeaderContentType, res.ContentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
		// fasthttp closes the stream after the body is written.
		return c.SendStream(res.Content, int(res.Size))
	}
}

// DeleteDocument removes the record and its stored blob.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err, "document not found")
		}
		return c.JSON(fiber.Map{"message": "Document deleted successfully"})
	}
}
