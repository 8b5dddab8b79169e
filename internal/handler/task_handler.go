package handler

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	tasks repository.TaskRepository
}

func NewTaskHandler(tasks repository.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

type TaskInput struct {
	ProfileID   uint   `json:"profile_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Priority    string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	if !authz.CanAssignTask(s) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req TaskInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task := &model.Task{
		ProfileID:   req.ProfileID,
		AssignedBy:  s.ProfileID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    defaultStr(req.Priority, model.PriorityMedium),
		Status:      model.TaskTodo,
	}
	if err := h.tasks.Create(task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Task assigned", "data": task})
}

// Mine lists the caller's own tasks.
func (h *TaskHandler) Mine(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	tasks, err := h.tasks.GetByProfile(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "My tasks", "data": tasks})
}

func (h *TaskHandler) All(c *fiber.Ctx) error {
	tasks, err := h.tasks.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "All tasks", "data": tasks})
}

type TaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// UpdateStatus moves a task through its states. The assignee may move their
// own task; admin/HR may move any.
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	task, err := h.tasks.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	if !authz.CanUpdateTaskStatus(s, task.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	var req TaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task.Status = req.Status
	if err := h.tasks.Update(task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Task status updated", "data": task})
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	task, err := h.tasks.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var req TaskInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task.ProfileID = req.ProfileID
	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	task.Priority = defaultStr(req.Priority, task.Priority)
	if err := h.tasks.Update(task); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Task updated", "data": task})
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.tasks.GetByID(uint(paramID(c))); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	if err := h.tasks.Delete(uint(paramID(c))); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
