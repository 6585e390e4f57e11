package main

import (
	"log"

	"hr-management-backend/config"
	"hr-management-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("seeding database")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env not found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.ConnectDB(cfg.Database, cfg.IsProduction())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	if err := database.SeedAll(db, config.GetEnv("ADMIN_PASSWORD", "admin123")); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seeding done")
}
