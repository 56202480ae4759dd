package handlers

import (
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// HomepageHandler serves the landing page aggregate and the owner profile.
type HomepageHandler struct {
	service *services.HomepageService
	protect fiber.Handler
}

// NewHomepageHandler creates a new HomepageHandler.
func NewHomepageHandler(service *services.HomepageService, protect fiber.Handler) *HomepageHandler {
	return &HomepageHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the homepage routes with the Fiber app.
func (h *HomepageHandler) RegisterRoutes(router fiber.Router) {
	editors := middleware.RestrictTo(models.RoleAdmin, models.RoleEditor)

	homeRoutes := router.Group("/homepage")
	homeRoutes.Get("/", h.HandleGetHomepage)
	homeRoutes.Post("/", h.protect, editors, h.HandleUpdateProfile)
	homeRoutes.Put("/featured", h.protect, editors, h.HandleSetFeatured)
}

func (h *HomepageHandler) HandleGetHomepage(c *fiber.Ctx) error {
	view, err := h.service.Get()
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, view, "")
}

func (h *HomepageHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var input services.ProfileInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	user, err := h.service.UpdateProfile(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, user, "Profile updated successfully")
}

func (h *HomepageHandler) HandleSetFeatured(c *fiber.Ctx) error {
	var input services.FeaturedInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	view, err := h.service.SetFeatured(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, view, "Featured content updated successfully")
}
