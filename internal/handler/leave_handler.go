package handler

import (
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/mailer"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	leaves   repository.LeaveRepository
	profiles repository.ProfileRepository
	mail     *mailer.Mailer
}

func NewLeaveHandler(leaves repository.LeaveRepository, profiles repository.ProfileRepository, mail *mailer.Mailer) *LeaveHandler {
	return &LeaveHandler{leaves: leaves, profiles: profiles, mail: mail}
}

type LeaveRequestInput struct {
	LeaveType string `json:"leave_type" validate:"required,oneof=CASUAL SICK EARNED UNPAID"`
	FromDate  string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	var req LeaveRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	days, err := inclusiveDays(req.FromDate, req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to_date is before from_date"})
	}

	leave := &model.LeaveRequest{
		ProfileID: s.ProfileID,
		LeaveType: req.LeaveType,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		TotalDays: days,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}
	if err := h.leaves.Create(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Leave request submitted", "data": leave})
}

func (h *LeaveHandler) History(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	leaves, err := h.leaves.GetByProfile(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Leave history", "data": leaves})
}

// Update edits the caller's own request while it is still pending.
func (h *LeaveHandler) Update(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	leave, err := h.leaves.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.ProfileID != s.ProfileID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	if leave.Status != model.LeavePending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending requests can be edited"})
	}

	var req LeaveRequestInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	days, err := inclusiveDays(req.FromDate, req.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to_date is before from_date"})
	}

	leave.LeaveType = req.LeaveType
	leave.FromDate = req.FromDate
	leave.ToDate = req.ToDate
	leave.TotalDays = days
	leave.Reason = req.Reason
	if err := h.leaves.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Leave request updated", "data": leave})
}

// Cancel withdraws the caller's own pending request.
func (h *LeaveHandler) Cancel(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	leave, err := h.leaves.GetByID(uint(paramID(c)))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if leave.ProfileID != s.ProfileID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	if leave.Status != model.LeavePending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending requests can be cancelled"})
	}

	leave.Status = model.LeaveCancelled
	if err := h.leaves.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Leave request cancelled", "data": leave})
}

func (h *LeaveHandler) Pending(c *fiber.Ctx) error {
	leaves, err := h.leaves.GetPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Pending leave requests", "data": leaves})
}

type LeaveDecisionRequest struct {
	LeaveID    uint   `json:"leave_id" validate:"required"`
	Decision   string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	ReviewNote string `json:"review_note"`
}

// Decide approves or rejects a pending request and mails the requester.
// Deciders never rule on their own requests.
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	var req LeaveDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	leave, err := h.leaves.GetByID(req.LeaveID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Leave request not found"})
	}
	if !authz.CanDecideLeave(s, leave.ProfileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You cannot decide this request"})
	}
	if leave.Status != model.LeavePending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Request was already decided"})
	}

	leave.Status = req.Decision
	leave.ReviewedBy = &s.ProfileID
	leave.ReviewNote = req.ReviewNote
	if err := h.leaves.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Notify the requester; mail failures only log, the decision stands.
	if profile, err := h.profiles.FindByID(leave.ProfileID); err == nil && profile.User.Email != "" {
		h.mail.SendLeaveDecision(profile.User.Email, profile.FullName, leave.Status, leave.ReviewNote)
	}

	return c.JSON(fiber.Map{"message": "Leave request " + leave.Status, "data": leave})
}

// inclusiveDays counts calendar days from from to to, both ends included.
func inclusiveDays(from, to string) (int, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return 0, err
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return 0, err
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 0, fiber.ErrBadRequest
	}
	return days, nil
}

// paramID reads the :id route param as an integer; 0 when absent or invalid.
func paramID(c *fiber.Ctx) int {
	id, _ := c.ParamsInt("id")
	return id
}
