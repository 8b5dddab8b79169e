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

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager, tracker *attendance.Tracker) {
	hdl := handler.NewDashboardHandler(
		tracker,
		sessions,
		repository.NewAttendanceRepository(db),
		repository.NewLeaveRepository(db),
		repository.NewTaskRepository(db),
		repository.NewGoalRepository(db),
		repository.NewProfileRepository(db),
		repository.NewPayrollRepository(db),
		repository.NewTrainingRepository(db),
	)

	api := app.Group("/api/dashboard", middleware.Auth(sessions))

	api.Get("/employee", hdl.Employee)
	api.Get("/admin", middleware.RequireRoles(model.RoleAdmin, model.RoleHR), hdl.Admin)
}
