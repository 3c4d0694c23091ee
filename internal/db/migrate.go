package db

import (
	"school_system/internal/config" // Custom package for configuration
	"school_system/internal/store"  // Table definitions

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Migrate performs automatic migration for the database schema
func Migrate(cfg *config.Config) {
	db, err := Open(cfg) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer Close(db)
	// AutoMigrate will create tables, missing columns and indexes
	if err := store.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
