package handler

import (
	"strings"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/mailer"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler carries the privileged account operations that were hosted
// remote procedures in the original backend: user creation with a generated
// password, the employee directory and activation toggling.
type AdminHandler struct {
	users    repository.UserRepository
	profiles repository.ProfileRepository
	sessions *session.Manager
	mail     *mailer.Mailer
}

func NewAdminHandler(users repository.UserRepository, profiles repository.ProfileRepository, sessions *session.Manager, mail *mailer.Mailer) *AdminHandler {
	return &AdminHandler{users: users, profiles: profiles, sessions: sessions, mail: mail}
}

type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	FullName     string `json:"full_name" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=admin hr employee"`
	EmployeeCode string `json:"employee_code" validate:"required"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	JoinDate     string `json:"join_date" validate:"omitempty,datetime=2006-01-02"`
}

// CreateUser provisions login + profile in one transaction, generates a
// temporary password and mails it to the new account.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	if !authz.CanManageUsers(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// First 12 chars of a uuid are enough for a one-time password.
	tempPassword := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	hash, err := hashPassword(tempPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &model.User{Email: req.Email, Password: hash, IsActive: true}
	profile := &model.Profile{
		FullName:     req.FullName,
		Role:         req.Role,
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		Position:     req.Position,
		Phone:        req.Phone,
		JoinDate:     req.JoinDate,
	}
	if err := h.users.CreateWithProfile(user, profile); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email or employee code already in use"})
	}

	h.mail.SendWelcome(user.Email, profile.FullName, tempPassword)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"data": fiber.Map{
			"user_id":    user.ID,
			"profile_id": profile.ID,
			// Returned once so an admin can hand it over when mail is off.
			"temp_password": tempPassword,
		},
	})
}

func (h *AdminHandler) Employees(c *fiber.Ctx) error {
	if role := c.Query("role"); role != "" {
		profiles, err := h.profiles.GetByRole(role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Employee directory", "data": profiles})
	}

	profiles, err := h.profiles.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Employee directory", "data": profiles})
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name"`
	Role       string `json:"role" validate:"omitempty,oneof=admin hr employee"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Phone      string `json:"phone"`
}

func (h *AdminHandler) UpdateEmployee(c *fiber.Ctx) error {
	profile, err := h.profiles.FindByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Role != "" {
		profile.Role = req.Role
	}
	if req.Department != "" {
		profile.Department = req.Department
	}
	if req.Position != "" {
		profile.Position = req.Position
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if err := h.profiles.Update(profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Employee updated", "data": profile})
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive toggles the login. Deactivation also destroys the user's live
// sessions so an issued token stops working immediately.
func (h *AdminHandler) SetActive(c *fiber.Ctx) error {
	if !authz.CanManageUsers(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	profile, err := h.profiles.FindByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}

	var req SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.users.SetActive(profile.UserID, req.Active); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.Active {
		h.sessions.DestroyUser(profile.UserID)
	}

	msg := "Account activated"
	if !req.Active {
		msg = "Account deactivated"
	}
	return c.JSON(fiber.Map{"message": msg})
}
