package config

import (
	"fmt"
	"log"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	driver := GetEnv("DB_DRIVER", "postgres")

	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			GetEnv("DB_USER", "root"),
			GetEnv("DB_PASSWORD", ""),
			GetEnv("DB_HOST", "127.0.0.1"),
			GetEnv("DB_PORT", "3306"),
			GetEnv("DB_NAME", "hrms"),
		)
		dialector = mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			GetEnv("DB_HOST", "127.0.0.1"),
			GetEnv("DB_USER", "postgres"),
			GetEnv("DB_PASSWORD", ""),
			GetEnv("DB_NAME", "hrms"),
			GetEnv("DB_PORT", "5432"),
			GetEnv("DB_SSLMODE", "disable"),
			GetEnv("DB_TIMEZONE", "Asia/Kolkata"),
		)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database: " + err.Error())
	}

	log.Printf("Database connected (driver=%s)", driver)

	if err := Migrate(db); err != nil {
		panic("Auto migration failed: " + err.Error())
	}

	DB = db
}

// Migrate creates/updates tables for every registered model. Called on connect
// and reused by the test helpers against their own database handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.AttendanceRecord{},
		&model.Timesheet{},
		&model.TimesheetEntry{},
		&model.LeaveRequest{},
		&model.Task{},
		&model.SalaryStructure{},
		&model.Payslip{},
		&model.TrainingSession{},
		&model.TrainingEnrollment{},
		&model.Goal{},
		&model.GoalUpdate{},
	)
}
