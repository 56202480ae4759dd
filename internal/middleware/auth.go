package middleware

import (
	"errors"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TokenCookie is the cookie carrying the access token.
const TokenCookie = "jwt"

const userLocalsKey = "user"

// Protect resolves the access token from the Authorization header or the
// jwt cookie and stores the authenticated user in the request locals.
func Protect(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authService.Authenticate(tokenFromRequest(c))
		if err != nil {
			logger.Warn("authentication failed", "path", c.Path(), "error", err)
			return err
		}

		c.Locals(userLocalsKey, user)
		logger.Debug("user authenticated", "user_id", user.ID, "email", user.Email)
		return c.Next()
	}
}

// RestrictTo allows the request through only for the given roles. It must
// run after Protect.
func RestrictTo(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return apperrors.Internal(errors.New("RestrictTo used without Protect"))
		}
		if !allowed[user.Role] {
			logger.Warn("access denied", "user_id", user.ID, "role", user.Role, "path", c.Path())
			return apperrors.Forbidden("You do not have permission to perform this action")
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by Protect, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

// tokenFromRequest prefers "Authorization: Bearer <token>" over the cookie.
func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return c.Cookies(TokenCookie)
}
