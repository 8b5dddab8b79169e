package routes

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/handler"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/middleware"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, sessions *session.Manager) {
	users := repository.NewUserRepository(db)
	profiles := repository.NewProfileRepository(db)
	hdl := handler.NewAuthHandler(users, profiles, sessions)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)

	authed := api.Group("", middleware.Auth(sessions))
	authed.Post("/logout", hdl.Logout)
	authed.Get("/me", hdl.Me)
	authed.Put("/password", hdl.ChangePassword)
}
