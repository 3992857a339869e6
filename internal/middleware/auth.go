package middleware

import (
	"strings"

	"github.com/cufit/cufit-backend/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// AuthScheme is the only scheme accepted in the Authorization header.
const AuthScheme = "Bearer"

// AuthRequired rejects requests without a valid bearer token and stores the
// caller in Locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		tokenString, ok := BearerToken(authHeader)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		SetCaller(c, claims)
		return c.Next()
	}
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || scheme != AuthScheme || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

// SetCaller exposes the authenticated user to later handlers.
func SetCaller(c *fiber.Ctx, claims *utils.Claims) {
	c.Locals("user_id", claims.UserID)
	c.Locals("username", claims.Username)
}

// Deprecated marks a compat alias and points clients at its replacement.
func Deprecated(successor string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Deprecation", "true")
		c.Set("Link", "<"+successor+`>; rel="successor-version"`)
		return c.Next()
	}
}
