package handlers

import (
	"fmt"

	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service *services.ProjectService
	protect fiber.Handler
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService, protect fiber.Handler) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		protect: protect,
	}
}

// RegisterRoutes registers the project routes with the Fiber app.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router) {
	editors := middleware.RestrictTo(models.RoleAdmin, models.RoleEditor)

	projectRoutes := router.Group("/projects")
	projectRoutes.Get("/", h.HandleGetProjects)
	// Registered before /:id so "featured" is not taken for an ID.
	projectRoutes.Get("/featured", h.HandleGetFeatured)
	projectRoutes.Get("/:id", h.HandleGetProject)
	projectRoutes.Post("/", h.protect, editors, h.HandleCreateProject)
	projectRoutes.Put("/:id", h.protect, editors, h.HandleUpdateProject)
	projectRoutes.Delete("/:id", h.protect, middleware.RestrictTo(models.RoleAdmin), h.HandleDeleteProject)
}

func (h *ProjectHandler) HandleGetProjects(c *fiber.Ctx) error {
	projects, err := h.service.List()
	if err != nil {
		return err
	}
	return respondList(c, projects)
}

func (h *ProjectHandler) HandleGetFeatured(c *fiber.Ctx) error {
	projects, err := h.service.Featured()
	if err != nil {
		return err
	}
	return respondList(c, projects)
}

func (h *ProjectHandler) HandleGetProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	project, err := h.service.Get(id)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, project, fmt.Sprintf("Project %s retrieved successfully", id))
}

func (h *ProjectHandler) HandleCreateProject(c *fiber.Ctx) error {
	var input services.ProjectInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	project, err := h.service.Create(input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, project, "Project created successfully")
}

func (h *ProjectHandler) HandleUpdateProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var input services.ProjectInput
	if err := parseBody(c, &input); err != nil {
		return err
	}
	project, err := h.service.Update(id, input)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, project, "Project updated successfully")
}

func (h *ProjectHandler) HandleDeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(id); err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, fiber.Map{"id": id}, "Project deleted successfully")
}
