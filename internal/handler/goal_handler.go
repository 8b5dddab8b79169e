package handler

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type GoalHandler struct {
	goals repository.GoalRepository
}

func NewGoalHandler(goals repository.GoalRepository) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type GoalInput struct {
	ProfileID   uint           `json:"profile_id"` // empty = self
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	TargetDate  string         `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Milestones  datatypes.JSON `json:"milestones"`
}

// Create adds a goal for the caller, or for someone else when the caller is
// admin/HR.
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	var req GoalInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	profileID := req.ProfileID
	if profileID == 0 {
		profileID = s.ProfileID
	}
	if !authz.CanWriteOwned(s, profileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	goal := &model.Goal{
		ProfileID:   profileID,
		CreatedBy:   s.ProfileID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		TargetDate:  req.TargetDate,
		Status:      model.GoalActive,
		Milestones:  req.Milestones,
	}
	if err := h.goals.Create(goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Goal created", "data": goal})
}

func (h *GoalHandler) Mine(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	goals, err := h.goals.GetByProfile(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "My goals", "data": goals})
}

func (h *GoalHandler) All(c *fiber.Ctx) error {
	goals, err := h.goals.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "All goals", "data": goals})
}

type GoalProgressRequest struct {
	Progress int    `json:"progress" validate:"gte=0,lte=100"`
	Note     string `json:"note"`
}

// UpdateProgress appends a journal row and moves the goal; reaching 100
// completes it.
func (h *GoalHandler) UpdateProgress(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	goal, err := h.goals.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	if !authz.CanWriteOwned(s, goal.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	if goal.Status != model.GoalActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Goal is not active"})
	}

	var req GoalProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goal.Progress = req.Progress
	if goal.Progress >= 100 {
		goal.Progress = 100
		goal.Status = model.GoalCompleted
	}
	if err := h.goals.Update(goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	update := &model.GoalUpdate{
		GoalID:    goal.ID,
		ProfileID: s.ProfileID,
		Progress:  goal.Progress,
		Note:      req.Note,
	}
	if err := h.goals.AddUpdate(update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Goal progress updated", "data": goal})
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	goal, err := h.goals.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	if !authz.CanWriteOwned(s, goal.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req GoalInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Category = req.Category
	goal.TargetDate = req.TargetDate
	if len(req.Milestones) > 0 {
		goal.Milestones = req.Milestones
	}
	if err := h.goals.Update(goal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Goal updated", "data": goal})
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	goal, err := h.goals.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	if !authz.CanWriteOwned(s, goal.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	if err := h.goals.Delete(goal.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Goal deleted"})
}

// Summary is the admin aggregate over all goals.
func (h *GoalHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.goals.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Goal summary", "data": summary})
}
