package routes

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/handler"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	records := repository.NewAttendanceRepository(db)
	hdl := handler.NewReportHandler(records)

	api := app.Group("/api/reports", middleware.Auth(sessions), middleware.RequireRoles(model.RoleAdmin, model.RoleHR))

	api.Get("/attendance.xlsx", hdl.AttendanceXLSX)
}
