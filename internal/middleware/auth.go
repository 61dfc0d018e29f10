package middleware

import (
	"strings"

	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "auth_claims"

// tokenFromRequest checks the session cookie first, then a bearer
// header, so both the web client and API callers work.
func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies("token"); cookie != "" {
		return cookie
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a valid session token.
func RequireAuth(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := tokenFromRequest(c)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to continue")
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in to continue")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and lets
// the request through either way.
func OptionalAuth(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := tokenFromRequest(c); token != "" {
			if claims, err := auth.ParseToken(token); err == nil {
				c.Locals(claimsKey, claims)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the claims set by RequireAuth/OptionalAuth, or nil.
func CurrentUser(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}
