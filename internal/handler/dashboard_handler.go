package handler

import (
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/attendance"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler aggregates the role-scoped landing pages from the feature
// repositories; it owns no tables of its own.
type DashboardHandler struct {
	tracker  *attendance.Tracker
	sessions *session.Manager
	records  repository.AttendanceRepository
	leaves   repository.LeaveRepository
	tasks    repository.TaskRepository
	goals    repository.GoalRepository
	profiles repository.ProfileRepository
	payroll  repository.PayrollRepository
	training repository.TrainingRepository
}

func NewDashboardHandler(
	tracker *attendance.Tracker,
	sessions *session.Manager,
	records repository.AttendanceRepository,
	leaves repository.LeaveRepository,
	tasks repository.TaskRepository,
	goals repository.GoalRepository,
	profiles repository.ProfileRepository,
	payroll repository.PayrollRepository,
	training repository.TrainingRepository,
) *DashboardHandler {
	return &DashboardHandler{
		tracker:  tracker,
		sessions: sessions,
		records:  records,
		leaves:   leaves,
		tasks:    tasks,
		goals:    goals,
		profiles: profiles,
		payroll:  payroll,
		training: training,
	}
}

// Employee is the self-service landing page: today's cycle state, the month's
// attendance, leave counts, open tasks and goal progress. Any failing
// aggregate fails the page; partial zeros would read as real figures.
func (h *DashboardHandler) Employee(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	now := time.Now()

	status, err := h.tracker.Status(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	monthRecords, err := h.records.GetByMonth(s.ProfileID, now.Format("01"), now.Format("2006"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	pendingLeaves, err := h.leaves.CountByProfileAndStatus(s.ProfileID, model.LeavePending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	approvedLeaves, err := h.leaves.CountByProfileAndStatus(s.ProfileID, model.LeaveApproved)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	openTasks, err := h.tasks.CountOpenByProfile(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	goalProgress, err := h.goals.AverageProgress(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Employee dashboard",
		"data": fiber.Map{
			"today":           status,
			"month_days":      len(monthRecords),
			"pending_leaves":  pendingLeaves,
			"approved_leaves": approvedLeaves,
			"open_tasks":      openTasks,
			"goal_progress":   goalProgress,
		},
	})
}

// Admin is the org-wide landing page for admin/HR.
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	now := time.Now()
	today := now.Format("2006-01-02")

	headcount, err := h.profiles.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	employees, err := h.profiles.CountByRole(model.RoleEmployee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	checkedIn, err := h.records.CountByDateAndStatus(today, model.AttendanceCheckedIn)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	completed, err := h.records.CountByDateAndStatus(today, model.AttendanceCompleted)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	pendingLeave, err := h.leaves.CountPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	payrollTotal, err := h.payroll.SumNetPay(now.Format("01"), now.Format("2006"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	trainingSummary, err := h.training.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	goalSummary, err := h.goals.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Admin dashboard",
		"data": fiber.Map{
			"headcount":        headcount,
			"employees":        employees,
			"today_checked_in": checkedIn,
			"today_completed":  completed,
			"pending_leave":    pendingLeave,
			"payroll_month":    payrollTotal,
			"training":         trainingSummary,
			"goals":            goalSummary,
			"active_sessions":  h.sessions.Count(),
		},
	})
}
