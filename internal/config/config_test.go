package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiresIn)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "http://localhost:8080", cfg.SwaggerServer)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.MailerEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", ":9000")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("CLIENT_URL_PROD", "https://portfolio.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9000", cfg.AppPort)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"https://portfolio.example.com"}, cfg.AllowedOrigins())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnknownEnv(t *testing.T) {
	t.Setenv("APP_ENV", "qa")

	_, err := Load()
	assert.Error(t, err)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{ClientURLDev: "http://localhost:5173", ClientURLProd: "https://site.example.com"}

	cfg.Env = EnvDevelopment
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins())

	cfg.Env = EnvStaging
	assert.Equal(t, []string{"https://site.example.com", "http://localhost:5173"}, cfg.AllowedOrigins())

	cfg.Env = EnvProduction
	cfg.ClientURLProd = ""
	assert.Empty(t, cfg.AllowedOrigins())
}
