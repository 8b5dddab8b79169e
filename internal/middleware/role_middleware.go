package middleware

import "github.com/gofiber/fiber/v2"

// RequireRoles guards a whole route group: the session role must be one of
// the allowed roles. Ownership-scoped checks stay in the handlers via authz.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := SessionFrom(c)
		if s == nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: no session"})
		}

		for _, role := range allowedRoles {
			if role == s.Role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: insufficient role"})
	}
}
