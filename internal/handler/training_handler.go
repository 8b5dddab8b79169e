package handler

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type TrainingHandler struct {
	training repository.TrainingRepository
}

func NewTrainingHandler(training repository.TrainingRepository) *TrainingHandler {
	return &TrainingHandler{training: training}
}

type TrainingSessionInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Trainer     string `json:"trainer"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Capacity    int    `json:"capacity" validate:"gt=0"`
	Location    string `json:"location"`
}

func (h *TrainingHandler) Create(c *fiber.Ctx) error {
	if !authz.CanManageTraining(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req TrainingSessionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session := &model.TrainingSession{
		Title:       req.Title,
		Description: req.Description,
		Trainer:     req.Trainer,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Capacity:    req.Capacity,
		Location:    req.Location,
	}
	if err := h.training.CreateSession(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Training session created", "data": session})
}

func (h *TrainingHandler) List(c *fiber.Ctx) error {
	sessions, err := h.training.GetAllSessions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Training sessions", "data": sessions})
}

func (h *TrainingHandler) Update(c *fiber.Ctx) error {
	session, err := h.training.GetSessionByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	}

	var req TrainingSessionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	session.Title = req.Title
	session.Description = req.Description
	session.Trainer = req.Trainer
	session.Category = req.Category
	session.StartDate = req.StartDate
	session.EndDate = req.EndDate
	session.Capacity = req.Capacity
	session.Location = req.Location
	if err := h.training.UpdateSession(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Training session updated", "data": session})
}

func (h *TrainingHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.training.GetSessionByID(uint(paramID(c))); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	}
	if err := h.training.DeleteSession(uint(paramID(c))); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Training session deleted"})
}

// Enroll signs the caller up for a session, capacity permitting. The unique
// index on (session, profile) rejects a double enrollment.
func (h *TrainingHandler) Enroll(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	session, err := h.training.GetSessionByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training session not found"})
	}

	count, err := h.training.CountEnrollments(session.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if session.Capacity > 0 && count >= int64(session.Capacity) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Training session is full"})
	}

	enrollment := &model.TrainingEnrollment{
		TrainingSessionID: session.ID,
		ProfileID:         s.ProfileID,
		Status:            model.EnrollmentEnrolled,
	}
	if err := h.training.Enroll(enrollment); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Already enrolled in this session"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Enrolled", "data": enrollment})
}

type EnrollmentUpdateRequest struct {
	Status string   `json:"status" validate:"required,oneof=ENROLLED COMPLETED DROPPED"`
	Score  *float64 `json:"score" validate:"omitempty,gte=0,lte=100"`
}

func (h *TrainingHandler) UpdateEnrollment(c *fiber.Ctx) error {
	if !authz.CanManageTraining(middleware.SessionFrom(c)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	enrollment, err := h.training.GetEnrollmentByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	var req EnrollmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrollment.Status = req.Status
	if req.Score != nil {
		enrollment.Score = req.Score
	}
	if err := h.training.UpdateEnrollment(enrollment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Enrollment updated", "data": enrollment})
}

// Mine lists the caller's enrollments with their sessions.
func (h *TrainingHandler) Mine(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	enrollments, err := h.training.GetEnrollmentsByProfile(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "My trainings", "data": enrollments})
}

// Summary is the admin aggregate: enrollment and completion counts per
// session.
func (h *TrainingHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.training.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Training summary", "data": summary})
}
