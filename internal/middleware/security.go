package middleware

import (
	"io"
	"os"
	"strings"
	"time"

	"portfolio/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Options configures the global middleware chain.
type Options struct {
	Production      bool
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	// LimiterStorage shares rate-limit counters between instances. Nil keeps
	// them in memory.
	LimiterStorage fiber.Storage
	// AccessLog receives one line per request. Nil means stdout.
	AccessLog io.Writer
}

// Register installs recover, request id, access log, CORS, security headers
// and rate limiting on app, in that order.
func Register(app *fiber.App, opts Options) {
	app.Use(recover.New(recover.Config{EnableStackTrace: !opts.Production}))
	app.Use(requestid.New())
	app.Use(AccessLog(opts.AccessLog))
	app.Use(CORS(opts.AllowedOrigins))
	app.Use(helmet.New(helmet.Config{
		// The Swagger UI page pulls its assets from a CDN.
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(RateLimiter(opts.RateLimitMax, opts.RateLimitWindow, opts.LimiterStorage))
}

// AccessLog writes a line per request tagged with the request id.
func AccessLog(w io.Writer) fiber.Handler {
	if w == nil {
		w = os.Stdout
	}
	return fiberlogger.New(fiberlogger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		TimeFormat: time.RFC3339,
		Output:     w,
	})
}

// CORS allows credentialed requests from the configured origins. With no
// origin configured every origin is allowed, without credentials.
func CORS(origins []string) fiber.Handler {
	cfg := cors.Config{
		AllowMethods: "GET,HEAD,PUT,PATCH,POST,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	if len(origins) > 0 {
		cfg.AllowOrigins = strings.Join(origins, ",")
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

// RateLimiter caps each client IP at max requests per sliding window.
func RateLimiter(max int, window time.Duration, storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return apperrors.TooManyRequests("Too many requests from this IP, please try again later")
		},
		Storage:           storage,
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
