package main

import (
	"log"

	"safariq-api/internal/config"
	"safariq-api/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	log.Printf("Migrating %s database", cfg.Database.Driver)
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("✅ Schema is up to date")
}
