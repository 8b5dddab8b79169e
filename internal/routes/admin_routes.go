package routes

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/handler"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/mailer"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager, mail *mailer.Mailer) {
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	hdl := handler.NewAdminHandler(users, profiles, sessions, mail)

	api := app.Group("/api/admin", middleware.Auth(sessions))

	// The directory is admin/HR; account provisioning stays admin-only.
	directory := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	directory.Get("/employees", hdl.Employees)
	directory.Put("/employees/:id", hdl.UpdateEmployee)

	admin := api.Group("", middleware.RequireRoles(model.RoleAdmin))
	admin.Post("/users", hdl.CreateUser)
	admin.Put("/employees/:id/active", hdl.SetActive)
}
