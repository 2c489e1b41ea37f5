package middleware

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/models"
)

// UIDFromLocals pulls the verified user id the JWT middleware stored.
func UIDFromLocals(c *fiber.Ctx) (string, error) {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return "", fiber.ErrUnauthorized
	}
	return uid, nil
}

// IsAdmin reports whether the verified principal carries the admin role.
func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == models.RoleAdmin
}

// RequireAdmin gates admin-only routes.
func RequireAdmin(c *fiber.Ctx) error {
	if _, err := UIDFromLocals(c); err != nil {
		return err
	}
	if !IsAdmin(c) {
		return fiber.NewError(fiber.StatusForbidden, "admin only")
	}
	return c.Next()
}
