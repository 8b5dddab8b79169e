package handler

import (
	"errors"
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/attendance"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/authz"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	tracker    *attendance.Tracker
	records    repository.AttendanceRepository
	timesheets repository.TimesheetRepository
}

func NewAttendanceHandler(tracker *attendance.Tracker, records repository.AttendanceRepository, timesheets repository.TimesheetRepository) *AttendanceHandler {
	return &AttendanceHandler{tracker: tracker, records: records, timesheets: timesheets}
}

// Status re-reads today's record so the reply converges with changes made
// from another session (the focus-regain resync of the original client).
func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	view, err := h.tracker.Status(s.ProfileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Attendance status", "data": view})
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	profileID, ok := cycleProfile(c, s)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot check in for another profile"})
	}
	record, err := h.tracker.CheckIn(profileID, c.IP())
	if err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checked in", "data": record})
}

func (h *AttendanceHandler) CheckoutForm(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	form, err := h.tracker.Form(s.ProfileID)
	if err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checkout form", "data": form})
}

type CheckOutRequest struct {
	Entries []attendance.EntryInput `json:"entries"`
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	var req CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	profileID, ok := cycleProfile(c, s)
	if !ok {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot check out for another profile"})
	}
	record, err := h.tracker.SubmitCheckOut(profileID, c.IP(), req.Entries)
	if err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Checked out", "data": record})
}

// cycleProfile resolves the profile a cycle mutation targets. The daily cycle
// is strictly the owner's: a profile_id naming anyone else is refused, for
// admin and HR too.
func cycleProfile(c *fiber.Ctx, s *session.Session) (uint, bool) {
	profileID := s.ProfileID
	if id := uint(c.QueryInt("profile_id")); id != 0 {
		profileID = id
	}
	return profileID, authz.CanCheckAttendance(s, profileID)
}

// History lists the caller's own records for a month; defaults to the current
// one.
func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	month, year := monthYearQuery(c)

	records, err := h.records.GetByMonth(s.ProfileID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Attendance history", "data": records})
}

// Timesheet returns one day's captured entries. Owner or admin/HR.
func (h *AttendanceHandler) Timesheet(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)

	date := c.Query("date", time.Now().Format("2006-01-02"))
	profileID := s.ProfileID
	if id := uint(c.QueryInt("profile_id")); id != 0 {
		profileID = id
	}
	if !authz.CanReadOwned(s, profileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	sheet, err := h.timesheets.GetByDate(profileID, date)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No timesheet for that day"})
	}
	return c.JSON(fiber.Map{"message": "Timesheet", "data": sheet})
}

// Timesheets lists a month of captured sheets with their entries. Owner or
// admin/HR.
func (h *AttendanceHandler) Timesheets(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	month, year := monthYearQuery(c)

	profileID := s.ProfileID
	if id := uint(c.QueryInt("profile_id")); id != 0 {
		profileID = id
	}
	if !authz.CanReadOwned(s, profileID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	sheets, err := h.timesheets.GetByMonth(profileID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Timesheets", "data": sheets})
}

// Records is the admin/HR listing: all records for a date, or one profile's
// month.
func (h *AttendanceHandler) Records(c *fiber.Ctx) error {
	if profileID := uint(c.QueryInt("profile_id")); profileID != 0 {
		month, year := monthYearQuery(c)
		records, err := h.records.GetByMonth(profileID, month, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Attendance records", "data": records})
	}

	date := c.Query("date", time.Now().Format("2006-01-02"))
	records, err := h.records.ListByDate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Attendance records", "data": records})
}

// attendanceError maps the cycle's sentinel errors to status codes:
// validation as 400, the daily-uniqueness conflict as 409, everything else
// surfaced verbatim as 500 with no retry.
func attendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, attendance.ErrNoCompleteEntry),
		errors.Is(err, attendance.ErrTooManyEntries),
		errors.Is(err, attendance.ErrNotCheckedIn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrAlreadyCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// monthYearQuery reads month/year query params, zero-padding the month and
// defaulting both to the current date.
func monthYearQuery(c *fiber.Ctx) (string, string) {
	now := time.Now()
	month := c.Query("month", now.Format("01"))
	if len(month) == 1 {
		month = "0" + month
	}
	year := c.Query("year", now.Format("2006"))
	return month, year
}
