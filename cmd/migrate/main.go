package main

import (
	"resume_service/internal/config" // Custom import path (Config)
	"resume_service/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	if cfg.DBName == "" {
		logrus.Fatal("DB_NAME is required")
	}

	conn, err := db.Open(cfg.DSN()) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
}
