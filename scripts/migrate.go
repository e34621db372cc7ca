package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/lib/pq"

	"safariq-api/internal/config"
)

// Applies migrations/*.sql to postgres in file-name order, once each.
func main() {
	dir := flag.String("dir", "migrations", "directory holding .sql migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("SQL migrations target postgres, DB_DRIVER is %q", cfg.Database.Driver)
	}

	// Connect to database
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Connected to database successfully")

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		name       VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		log.Fatalf("Failed to create schema_migrations: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		log.Fatalf("Failed to list migrations: %v", err)
	}
	sort.Strings(files)

	applied := 0
	for _, file := range files {
		name := filepath.Base(file)

		var exists bool
		if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists); err != nil {
			log.Fatalf("Failed to check migration %s: %v", name, err)
		}
		if exists {
			continue
		}

		if err := apply(db, file, name); err != nil {
			log.Fatalf("Failed to apply %s: %v", name, err)
		}
		log.Printf("Applied migration: %s", name)
		applied++
	}

	log.Printf("✅ Migrations complete (%d applied, %d total)", applied, len(files))
}

func apply(db *sql.DB, file, name string) error {
	migrationSQL, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}
