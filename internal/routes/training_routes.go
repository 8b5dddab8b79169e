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

func SetupTrainingRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	training := repository.NewTrainingRepository(db)
	hdl := handler.NewTrainingHandler(training)

	api := app.Group("/api/training", middleware.Auth(sessions))

	api.Get("/", hdl.List)
	api.Get("/my", hdl.Mine)
	api.Post("/:id/enroll", hdl.Enroll)

	manage := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	manage.Post("/", hdl.Create)
	manage.Put("/enrollments/:id", hdl.UpdateEnrollment)
	manage.Get("/summary", hdl.Summary)
	manage.Put("/:id", hdl.Update)
	manage.Delete("/:id", hdl.Delete)
}
