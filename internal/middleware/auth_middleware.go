package middleware

import (
	"strings"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// Auth parses the bearer token, resolves it against the session manager and
// injects the live *session.Session into the request context. A token whose
// session was destroyed (sign-out, deactivation) is refused even though its
// signature still verifies.
func Auth(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Take the token from the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
		}
		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

		// 2. Parse and validate the signature
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return config.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		// 3. Resolve the token ID to a live session
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}
		jti, _ := claims["jti"].(string)
		s, err := sessions.Get(jti)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session is no longer active"})
		}

		c.Locals(sessionKey, s)
		return c.Next()
	}
}

// SessionFrom returns the session injected by Auth. Nil when the route is not
// behind the Auth middleware.
func SessionFrom(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionKey).(*session.Session)
	return s
}
