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

func SetupGoalRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	goals := repository.NewGoalRepository(db)
	hdl := handler.NewGoalHandler(goals)

	api := app.Group("/api/goals", middleware.Auth(sessions))

	api.Post("/", hdl.Create)
	api.Get("/", hdl.Mine)
	api.Put("/:id/progress", hdl.UpdateProgress)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)

	manage := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	manage.Get("/all", hdl.All)
	manage.Get("/summary", hdl.Summary)
}
