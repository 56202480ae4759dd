package handlers

import (
	"time"

	"portfolio/internal/logger"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RefreshCookie is the cookie carrying the refresh token.
const RefreshCookie = "refresh_token"

const loggedOutValue = "loggedout"

// CookieConfig controls the auth cookies.
type CookieConfig struct {
	Secure      bool
	AccessDays  int
	RefreshDays int
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	cookies     CookieConfig
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/logout", h.HandleLogout)
	authRoutes.Get("/me", middleware.Protect(h.authService), h.HandleMe)
	authRoutes.Post("/refresh-token", h.HandleRefresh)
}

type authData struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return err
	}

	user, pair, err := h.authService.Register(input)
	if err != nil {
		return err
	}

	h.setTokenCookies(c, pair)
	return respond(c, fiber.StatusCreated, authData{
		User:         user,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "User registered successfully")
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin checks the credentials and issues a token pair.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, pair, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setTokenCookies(c, pair)
	return respond(c, fiber.StatusOK, authData{
		User:         user,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Login successful")
}

// HandleLogout overwrites both auth cookies with a short-lived placeholder.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	expires := time.Now().Add(10 * time.Second)
	c.Cookie(h.cookie(middleware.TokenCookie, loggedOutValue, expires))
	c.Cookie(h.cookie(RefreshCookie, loggedOutValue, expires))
	return respond(c, fiber.StatusOK, nil, "Logged out successfully")
}

// HandleMe returns the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, fiber.Map{"user": middleware.CurrentUser(c)}, "")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// HandleRefresh issues a new access token from the refresh_token cookie, or
// from the request body when the cookie is absent.
func (h *AuthHandler) HandleRefresh(c *fiber.Ctx) error {
	token := c.Cookies(RefreshCookie)
	if token == "" || token == loggedOutValue {
		var req refreshRequest
		if len(c.Body()) > 0 {
			if err := parseBody(c, &req); err != nil {
				return err
			}
		}
		token = req.RefreshToken
	}

	access, err := h.authService.Refresh(token)
	if err != nil {
		return err
	}

	c.Cookie(h.cookie(middleware.TokenCookie, access, h.expiry(h.cookies.AccessDays)))
	logger.Debug("access token refreshed")
	return respond(c, fiber.StatusOK, fiber.Map{"token": access}, "")
}

func (h *AuthHandler) setTokenCookies(c *fiber.Ctx, pair *services.TokenPair) {
	c.Cookie(h.cookie(middleware.TokenCookie, pair.AccessToken, h.expiry(h.cookies.AccessDays)))
	c.Cookie(h.cookie(RefreshCookie, pair.RefreshToken, h.expiry(h.cookies.RefreshDays)))
}

func (h *AuthHandler) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (h *AuthHandler) expiry(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour)
}
