package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the contact form and its admin read-out.
type ContactHandler struct {
	service *services.ContactService
	protect fiber.Handler
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService, protect fiber.Handler) *ContactHandler {
	return &ContactHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the contact routes with the Fiber app. Messages
// can be read by admins but never changed.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	admins := middleware.RestrictTo(models.RoleAdmin)

	contactRoutes := router.Group("/contact")
	contactRoutes.Post("/", h.HandleSubmit)
	contactRoutes.Get("/", h.protect, admins, h.HandleGetMessages)
	contactRoutes.Get("/:id", h.protect, admins, h.HandleGetMessage)
}

func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	msg, err := h.service.Submit(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, msg, "Message sent successfully. Thank you for reaching out!")
}

func (h *ContactHandler) HandleGetMessages(c *fiber.Ctx) error {
	msgs, err := h.service.List()
	if err != nil {
		return err
	}
	return respondList(c, msgs)
}

func (h *ContactHandler) HandleGetMessage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	msg, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, msg, "")
}
