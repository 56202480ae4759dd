package app

import (
	"fmt"
	"io"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/docs"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dependencies are the resources the HTTP application is built from.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	// Publisher announces new contact messages. Nil disables events.
	Publisher services.MessagePublisher
	// LimiterStorage backs the rate limiter. Nil keeps counters in memory.
	LimiterStorage fiber.Storage
	// Cache serves public reads. Nil disables caching.
	Cache *cache.Cache
	// AccessLog receives the request log. Nil means stdout.
	AccessLog io.Writer
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Dependencies) (*fiber.App, error) {
	cfg := deps.Config

	spec, err := docs.Spec(cfg.SwaggerServer)
	if err != nil {
		return nil, fmt.Errorf("failed to build API docs: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Portfolio API",
		ErrorHandler:          middleware.ErrorHandler(cfg.IsProduction()),
		DisableStartupMessage: true,
	})

	middleware.Register(app, middleware.Options{
		Production:      cfg.IsProduction(),
		AllowedOrigins:  cfg.AllowedOrigins(),
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		LimiterStorage:  deps.LimiterStorage,
		AccessLog:       deps.AccessLog,
	})

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	skillRepo := repositories.NewGORMSkillRepository(deps.DB)
	projectRepo := repositories.NewGORMProjectRepository(deps.DB)
	experienceRepo := repositories.NewGORMExperienceRepository(deps.DB)
	messageRepo := repositories.NewGORMMessageRepository(deps.DB)
	pageRepo := repositories.NewGORMPageContentRepository(deps.DB)
	homepageRepo := repositories.NewGORMHomepageRepository(deps.DB)

	// --- Services ---
	authService := services.NewAuthService(userRepo, services.TokenConfig{
		AccessSecret:  cfg.JWTSecret,
		AccessTTL:     cfg.JWTExpiresIn,
		RefreshSecret: cfg.JWTRefreshSecret,
		RefreshTTL:    cfg.JWTRefreshExpiresIn,
	})
	contactService := services.NewContactService(messageRepo, deps.Publisher)
	skillService := services.NewSkillService(skillRepo, deps.Cache)
	experienceService := services.NewExperienceService(experienceRepo, deps.Cache)
	projectService := services.NewProjectService(projectRepo, skillRepo, deps.Cache)
	pageService := services.NewPageContentService(pageRepo)
	homepageService := services.NewHomepageService(homepageRepo, userRepo, skillRepo, projectRepo, deps.Cache)

	// --- Handlers ---
	protect := middleware.Protect(authService)

	handlers.NewSystemHandler(deps.DB, spec).RegisterRoutes(app)

	api := app.Group("/api")
	handlers.NewAuthHandler(authService, handlers.CookieConfig{
		Secure:      cfg.IsProduction(),
		AccessDays:  cfg.JWTCookieExpiresDays,
		RefreshDays: cfg.JWTRefreshCookieExpDays,
	}).RegisterRoutes(api)
	handlers.NewContactHandler(contactService, protect).RegisterRoutes(api)
	handlers.NewExperienceHandler(experienceService, protect).RegisterRoutes(api)
	handlers.NewHomepageHandler(homepageService, protect).RegisterRoutes(api)
	handlers.NewContentHandler(pageService, protect).RegisterRoutes(api)
	handlers.NewProjectHandler(projectService, protect).RegisterRoutes(api)
	handlers.NewSkillHandler(skillService, protect).RegisterRoutes(api)

	return app, nil
}
