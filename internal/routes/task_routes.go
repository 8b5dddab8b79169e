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

func SetupTaskRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	tasks := repository.NewTaskRepository(db)
	hdl := handler.NewTaskHandler(tasks)

	api := app.Group("/api/tasks", middleware.Auth(sessions))

	api.Get("/", hdl.Mine)
	api.Put("/:id/status", hdl.UpdateStatus)

	manage := api.Group("", middleware.RequireRoles(model.RoleAdmin, model.RoleHR))
	manage.Post("/", hdl.Create)
	manage.Get("/all", hdl.All)
	manage.Put("/:id", hdl.Update)
	manage.Delete("/:id", hdl.Delete)
}
