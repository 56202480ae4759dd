package handlers

import (
	"time"

	"portfolio/internal/docs"
	"portfolio/internal/logger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SystemHandler serves the health check, the API welcome and the docs.
type SystemHandler struct {
	db   *gorm.DB
	spec []byte
}

// NewSystemHandler creates a new SystemHandler. spec is the OpenAPI JSON
// document served at /api-docs.json.
func NewSystemHandler(db *gorm.DB, spec []byte) *SystemHandler {
	return &SystemHandler{db: db, spec: spec}
}

// RegisterRoutes registers the routes that live outside /api.
func (h *SystemHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/health", h.HandleHealth)
	app.Get("/api", h.HandleWelcome)
	app.Get("/api-docs.json", h.HandleSpec)
	app.Get("/api-docs", h.HandleSwaggerUI)
}

// HandleHealth reports liveness and database reachability.
func (h *SystemHandler) HandleHealth(c *fiber.Ctx) error {
	status := fiber.StatusOK
	body := fiber.Map{
		"status":   "healthy",
		"time":     time.Now().Format(time.RFC3339),
		"database": "connected",
	}

	if err := h.pingDB(); err != nil {
		logger.Error("health check failed", "error", err)
		status = fiber.StatusServiceUnavailable
		body["status"] = "unhealthy"
		body["database"] = "unreachable"
	}
	return c.Status(status).JSON(body)
}

func (h *SystemHandler) pingDB() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (h *SystemHandler) HandleWelcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to the Portfolio API!",
		"status":  "running",
	})
}

func (h *SystemHandler) HandleSpec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(h.spec)
}

func (h *SystemHandler) HandleSwaggerUI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(docs.SwaggerUI("/api-docs.json"))
}
