package main

import (
	"fmt"
	"log"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Starting database seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables.")
	}

	config.ConnectDB()

	database.SeedAll(config.DB)

	fmt.Println("Seeding finished.")
}
