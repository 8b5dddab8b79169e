package database

import (
	"log"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll creates the first accounts (one per role) and a bit of demo data.
// Every insert is FirstOrCreate, so running the seeder twice is harmless.
func SeedAll(db *gorm.DB) {
	// 1. Seed one account per role
	seedAccount(db, "admin@hrms.local", "Asha Verma", model.RoleAdmin, "EMP-0001", "Management", "Administrator")
	seedAccount(db, "hr@hrms.local", "Rahul Nair", model.RoleHR, "EMP-0002", "Human Resources", "HR Manager")
	employee := seedAccount(db, "employee@hrms.local", "Divya Pillai", model.RoleEmployee, "EMP-0003", "Engineering", "Software Engineer")

	// 2. Seed a salary structure for the demo employee
	if employee != nil {
		structure := model.SalaryStructure{
			ProfileID:  employee.ID,
			Basic:      50000,
			HRA:        20000,
			Allowances: 10000,
			Deductions: 5000,
		}
		db.FirstOrCreate(&structure, model.SalaryStructure{ProfileID: employee.ID})
	}

	// 3. Seed a training session
	training := model.TrainingSession{
		Title:     "Workplace Safety Basics",
		Trainer:   "External",
		Category:  "Compliance",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Capacity:  30,
		Location:  "Online",
	}
	db.FirstOrCreate(&training, model.TrainingSession{Title: training.Title})

	log.Println("[SEED] done")
}

func seedAccount(db *gorm.DB, email, name, role, code, department, position string) *model.Profile {
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		var profile model.Profile
		if db.Where("user_id = ?", user.ID).First(&profile).Error == nil {
			return &profile
		}
	}

	// Default password for seeded accounts; change on first sign-in.
	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] hash failed for %s: %v", email, err)
		return nil
	}

	user = model.User{Email: email, Password: string(hash), IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[SEED] user %s: %v", email, err)
		return nil
	}

	profile := model.Profile{
		UserID:       user.ID,
		FullName:     name,
		Role:         role,
		EmployeeCode: code,
		Department:   department,
		Position:     position,
		JoinDate:     "2026-01-01",
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Printf("[SEED] profile %s: %v", email, err)
		return nil
	}

	log.Printf("[SEED] account %s (%s)", email, role)
	return &profile
}
