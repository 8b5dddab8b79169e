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

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	payroll := repository.NewPayrollRepository(db)
	leaves := repository.NewLeaveRepository(db)
	hdl := handler.NewPayrollHandler(payroll, leaves)

	api := app.Group("/api/payroll", middleware.Auth(sessions))

	// Owner-or-admin-or-HR reads.
	api.Get("/my", hdl.Mine)
	api.Get("/payslip/:id", hdl.Payslip)
	api.Get("/structure/:id", hdl.Structure)

	manage := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	manage.Put("/structure/:id", hdl.UpsertStructure)
	manage.Get("/structures", hdl.Structures)
	manage.Post("/generate", hdl.Generate)
	manage.Get("/payslips", hdl.Payslips)

	api.Post("/payslips/:id/paid", middleware.RequireRoles(model.RoleAdmin), hdl.MarkPaid)
}
