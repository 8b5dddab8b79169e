package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/attendance"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/mailer"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/routes"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/scheduler"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Starting up... loading .env")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables.")
	}

	fmt.Println("2. Connecting to database...")
	config.ConnectDB()

	loc, err := time.LoadLocation(config.GetEnv("APP_TIMEZONE", "Local"))
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
		// The check-in address stamp must see the real client behind a proxy.
		ProxyHeader: fiber.HeaderXForwardedFor,
	})

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Explicit session lifecycle: created at sign-in, torn down at sign-out.
	sessions := session.NewManager()
	mail := mailer.NewFromEnv()

	// The attendance cycle tracker and its midnight rollover.
	tracker := attendance.NewTracker(repository.NewAttendanceRepository(config.DB), loc)
	midnight := scheduler.NewMidnight(loc, tracker.ResetDay)
	midnight.Start()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	fmt.Println("3. Database connected, registering routes...")
	routes.SetupAuthRoutes(app, config.DB, sessions)
	routes.SetupAttendanceRoutes(app, config.DB, sessions, tracker)
	routes.SetupLeaveRoutes(app, config.DB, sessions, mail)
	routes.SetupTaskRoutes(app, config.DB, sessions)
	routes.SetupPayrollRoutes(app, config.DB, sessions)
	routes.SetupTrainingRoutes(app, config.DB, sessions)
	routes.SetupGoalRoutes(app, config.DB, sessions)
	routes.SetupDashboardRoutes(app, config.DB, sessions, tracker)
	routes.SetupAdminRoutes(app, config.DB, sessions, mail)
	routes.SetupReportRoutes(app, config.DB, sessions)

	port := config.GetEnv("PORT", "3000")
	go func() {
		fmt.Printf("4. Server ready, listening on :%s\n", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown: stop the midnight timer, drain the server, close the
	// pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	midnight.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
