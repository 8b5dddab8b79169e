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

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager, mail *mailer.Mailer) {
	leaves := repository.NewLeaveRepository(db)
	profiles := repository.NewProfileRepository(db)
	hdl := handler.NewLeaveHandler(leaves, profiles, mail)

	api := app.Group("/api/leave", middleware.Auth(sessions))

	api.Post("/", hdl.Create)
	api.Get("/history", hdl.History)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Cancel)

	review := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	review.Get("/pending", hdl.Pending)
	review.Post("/decision", hdl.Decide)
}
