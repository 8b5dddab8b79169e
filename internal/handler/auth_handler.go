package handler

import (
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Request DTOs across the package are validated with this instance before any
// DB call.
var validate = validator.New()

type AuthHandler struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	sessions *session.Manager
}

func NewAuthHandler(users repository.UserRepository, profiles repository.ProfileRepository, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, profiles: profiles, sessions: sessions}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// 1. Find the login identity
	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email or password"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is deactivated"})
	}

	// 2. Check the password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong email or password"})
	}
	if user.Profile == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No profile linked to this account"})
	}

	// 3. Create the session and issue the token bound to it
	now := time.Now()
	s := &session.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ProfileID: user.Profile.ID,
		Role:      user.Profile.Role,
		FullName:  user.Profile.FullName,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Duration(config.GetEnvAsInt("SESSION_TTL_HOURS", 12)) * time.Hour),
	}

	token, err := signToken(s)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}
	h.sessions.Create(s)

	return c.JSON(fiber.Map{
		"message": "Signed in",
		"token":   token,
		"data": fiber.Map{
			"profile_id": s.ProfileID,
			"full_name":  s.FullName,
			"role":       s.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	h.sessions.Destroy(s.ID)
	return c.JSON(fiber.Map{"message": "Signed out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	profile, err := h.profiles.FindByUserID(s.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(fiber.Map{"message": "Profile fetched", "data": profile})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := h.users.FindByID(s.UserID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password is wrong"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := h.users.UpdatePassword(user.ID, string(hash)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Password changed"})
}

// signToken issues the HS256 JWT whose jti points at the live session. All
// identity data lives on the session; the token only carries the reference.
func signToken(s *session.Session) (string, error) {
	claims := jwt.MapClaims{
		"jti": s.ID,
		"sub": s.UserID,
		"iat": s.IssuedAt.Unix(),
		"exp": s.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

// hashPassword is shared by the admin user-creation flow.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hash), err
}
