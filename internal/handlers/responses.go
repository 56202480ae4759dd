package handlers

import (
	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Response is the envelope of every successful response.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

func respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    items,
		Count:   &count,
	})
}

// paramID returns the :id route parameter, rejecting values that are not
// record IDs before they reach the database.
func paramID(c *fiber.Ctx) (string, error) {
	id := utils.CopyString(c.Params("id"))
	if !services.IsValidID(id) {
		return "", apperrors.BadRequest("Invalid ID format")
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		logger.Warn("error parsing request body", "path", c.Path(), "error", err)
		return apperrors.BadRequest("Invalid request body")
	}
	return nil
}
