package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SkillHandler handles HTTP requests for skills.
type SkillHandler struct {
	service *services.SkillService
	protect fiber.Handler
}

// NewSkillHandler creates a new SkillHandler. protect guards the write routes.
func NewSkillHandler(service *services.SkillService, protect fiber.Handler) *SkillHandler {
	return &SkillHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the skill routes with the Fiber app.
func (h *SkillHandler) RegisterRoutes(router fiber.Router) {
	editors := middleware.RestrictTo(models.RoleAdmin, models.RoleEditor)
	admins := middleware.RestrictTo(models.RoleAdmin)

	skillRoutes := router.Group("/skills")
	skillRoutes.Get("/", h.HandleGetSkills)
	skillRoutes.Get("/:id", h.HandleGetSkill)
	skillRoutes.Post("/", h.protect, editors, h.HandleCreateSkill)
	skillRoutes.Put("/:id", h.protect, editors, h.HandleUpdateSkill)
	skillRoutes.Delete("/:id", h.protect, admins, h.HandleDeleteSkill)
}

func (h *SkillHandler) HandleGetSkills(c *fiber.Ctx) error {
	skills, err := h.service.List()
	if err != nil {
		return err
	}
	return respondList(c, skills)
}

func (h *SkillHandler) HandleGetSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	skill, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, skill, "")
}

func (h *SkillHandler) HandleCreateSkill(c *fiber.Ctx) error {
	var input services.SkillInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	skill, err := h.service.Create(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, skill, "Skill created successfully")
}

func (h *SkillHandler) HandleUpdateSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input services.SkillInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	skill, err := h.service.Update(id, input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, skill, "Skill updated successfully")
}

func (h *SkillHandler) HandleDeleteSkill(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"id": id}, "Skill deleted successfully")
}
