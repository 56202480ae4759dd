package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ExperienceHandler handles HTTP requests for experience entries.
type ExperienceHandler struct {
	service *services.ExperienceService
	protect fiber.Handler
}

// NewExperienceHandler creates a new ExperienceHandler.
func NewExperienceHandler(service *services.ExperienceService, protect fiber.Handler) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the experience routes with the Fiber app.
func (h *ExperienceHandler) RegisterRoutes(router fiber.Router) {
	editors := middleware.RestrictTo(models.RoleAdmin, models.RoleEditor)

	expRoutes := router.Group("/experience")
	expRoutes.Get("/", h.HandleGetExperiences)
	expRoutes.Get("/:id", h.HandleGetExperience)
	expRoutes.Post("/", h.protect, editors, h.HandleCreateExperience)
	expRoutes.Put("/:id", h.protect, editors, h.HandleUpdateExperience)
	expRoutes.Delete("/:id", h.protect, middleware.RestrictTo(models.RoleAdmin), h.HandleDeleteExperience)
}

func (h *ExperienceHandler) HandleGetExperiences(c *fiber.Ctx) error {
	entries, err := h.service.List()
	if err != nil {
		return err
	}
	return respondList(c, entries)
}

func (h *ExperienceHandler) HandleGetExperience(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	exp, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, exp, "")
}

func (h *ExperienceHandler) HandleCreateExperience(c *fiber.Ctx) error {
	var input services.ExperienceInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	exp, err := h.service.Create(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, exp, "Experience created successfully")
}

func (h *ExperienceHandler) HandleUpdateExperience(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input services.ExperienceInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	exp, err := h.service.Update(id, input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, exp, "Experience updated successfully")
}

func (h *ExperienceHandler) HandleDeleteExperience(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"id": id}, "Experience deleted successfully")
}
