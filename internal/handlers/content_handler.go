package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ContentHandler serves the editable static pages.
type ContentHandler struct {
	service *services.PageContentService
	protect fiber.Handler
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.PageContentService, protect fiber.Handler) *ContentHandler {
	return &ContentHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the page content routes with the Fiber app.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	contentRoutes := router.Group("/content")
	contentRoutes.Get("/:pageName", h.HandleGetContent)
	contentRoutes.Post("/:pageName", h.protect, middleware.RestrictTo(models.RoleAdmin, models.RoleEditor), h.HandleUpsertContent)
}

// HandleGetContent returns a page, creating it with default copy on first read.
func (h *ContentHandler) HandleGetContent(c *fiber.Ctx) error {
	page, err := h.service.Get(utils.CopyString(c.Params("pageName")))
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, page, "")
}

func (h *ContentHandler) HandleUpsertContent(c *fiber.Ctx) error {
	var input services.PageContentInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	page, err := h.service.Upsert(utils.CopyString(c.Params("pageName")), input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, page, "Page content updated successfully")
}
