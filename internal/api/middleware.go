package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyra/internal/security"
)

// AuthRequired verifies the bearer token and stashes the claims for the
// handlers downstream.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return unauthorized(c)
	}

	claims, err := security.ParseToken(handler.secretKey, strings.TrimSpace(token))
	if err != nil {
		return unauthorized(c)
	}

	c.Locals(contextClaimsKey, claims)
	return c.Next()
}

func (handler *Handler) requestClaims(c *fiber.Ctx) (security.AuthClaims, bool) {
	claims, ok := c.Locals(contextClaimsKey).(security.AuthClaims)
	return claims, ok
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}
