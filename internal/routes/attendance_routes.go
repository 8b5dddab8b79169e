package routes

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/attendance"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/handler"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager, tracker *attendance.Tracker) {
	records := repository.NewAttendanceRepository(db)
	timesheets := repository.NewTimesheetRepository(db)
	hdl := handler.NewAttendanceHandler(tracker, records, timesheets)

	api := app.Group("/api/attendance", middleware.Auth(sessions))

	api.Get("/status", hdl.Status)
	api.Post("/checkin", hdl.CheckIn)
	api.Get("/checkout-form", hdl.CheckoutForm)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/history", hdl.History)
	api.Get("/timesheet", hdl.Timesheet)
	api.Get("/timesheets", hdl.Timesheets)

	// Scoped listing for admin/HR.
	api.Get("/records", middleware.RequireRoles(model.RoleAdmin, model.RoleHR), hdl.Records)
}
