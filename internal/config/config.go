package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds every runtime setting of the API.
type Config struct {
	Env     string
	AppPort string

	DBDriver string
	DBDSN    string

	JWTSecret               string
	JWTExpiresIn            time.Duration
	JWTRefreshSecret        string
	JWTRefreshExpiresIn     time.Duration
	JWTCookieExpiresDays    int
	JWTRefreshCookieExpDays int

	ClientURLDev  string
	ClientURLProd string

	RateLimitMax    int
	RateLimitWindow time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitMQURL string

	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFrom        string
	ContactNotifyTo string

	CacheTTL time.Duration

	SwaggerServer string
}

// Load reads .env.<APP_ENV> and .env (both optional) and then resolves every
// key from the environment, falling back to defaults.
func Load() (*Config, error) {
	env := strings.TrimSpace(strings.ToLower(lookupEnv("APP_ENV", EnvDevelopment)))
	// Missing files are fine, the process environment always wins.
	_ = godotenv.Load(".env." + env)
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Env:                     strings.ToLower(v.GetString("APP_ENV")),
		AppPort:                 v.GetString("APP_PORT"),
		DBDriver:                strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:                   v.GetString("DATABASE_DSN"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTRefreshSecret:        v.GetString("JWT_REFRESH_SECRET"),
		JWTCookieExpiresDays:    v.GetInt("JWT_COOKIE_EXPIRES_IN"),
		JWTRefreshCookieExpDays: v.GetInt("JWT_REFRESH_COOKIE_EXPIRES_IN"),
		ClientURLDev:            v.GetString("CLIENT_URL_DEV"),
		ClientURLProd:           v.GetString("CLIENT_URL_PROD"),
		RateLimitMax:            v.GetInt("RATE_LIMIT_MAX"),
		RedisAddr:               v.GetString("REDIS_ADDR"),
		RedisPassword:           v.GetString("REDIS_PASSWORD"),
		RedisDB:                 v.GetInt("REDIS_DB"),
		RabbitMQURL:             v.GetString("RABBITMQ_URL"),
		SMTPHost:                v.GetString("SMTP_HOST"),
		SMTPPort:                v.GetInt("SMTP_PORT"),
		SMTPUsername:            v.GetString("SMTP_USERNAME"),
		SMTPPassword:            v.GetString("SMTP_PASSWORD"),
		MailFrom:                v.GetString("MAIL_FROM"),
		ContactNotifyTo:         v.GetString("CONTACT_NOTIFY_TO"),
		SwaggerServer:           v.GetString("SWAGGER_SERVER"),
	}

	durations := map[string]*time.Duration{
		"JWT_EXPIRES_IN":         &cfg.JWTExpiresIn,
		"JWT_REFRESH_EXPIRES_IN": &cfg.JWTRefreshExpiresIn,
		"RATE_LIMIT_WINDOW":      &cfg.RateLimitWindow,
		"CACHE_TTL":              &cfg.CacheTTL,
	}
	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		*dst = d
	}

	if cfg.SwaggerServer == "" {
		cfg.SwaggerServer = "http://localhost" + cfg.AppPort
	}

	switch cfg.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return nil, fmt.Errorf("unknown APP_ENV %q", cfg.Env)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "portfolio.db")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("JWT_EXPIRES_IN", "1h")
	v.SetDefault("JWT_REFRESH_SECRET", "change-me-too")
	v.SetDefault("JWT_REFRESH_EXPIRES_IN", "168h")
	v.SetDefault("JWT_COOKIE_EXPIRES_IN", 1)
	v.SetDefault("JWT_REFRESH_COOKIE_EXPIRES_IN", 7)
	v.SetDefault("CLIENT_URL_DEV", "http://localhost:5173")
	v.SetDefault("CLIENT_URL_PROD", "")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("MAIL_FROM", "")
	v.SetDefault("CONTACT_NOTIFY_TO", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("SWAGGER_SERVER", "")
}

// IsProduction reports whether the API runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// AllowedOrigins returns the CORS origins for the current environment.
func (c *Config) AllowedOrigins() []string {
	var candidates []string
	switch c.Env {
	case EnvProduction:
		candidates = []string{c.ClientURLProd}
	case EnvStaging:
		candidates = []string{c.ClientURLProd, c.ClientURLDev}
	default:
		candidates = []string{c.ClientURLDev}
	}

	origins := make([]string, 0, len(candidates))
	for _, o := range candidates {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MailerEnabled reports whether SMTP settings are complete enough to send mail.
func (c *Config) MailerEnabled() bool {
	return c.SMTPHost != "" && c.MailFrom != "" && c.ContactNotifyTo != ""
}

func lookupEnv(key, def string) string {
	v := viper.New()
	v.SetDefault(key, def)
	v.AutomaticEnv()
	return v.GetString(key)
}
