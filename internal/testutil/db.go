package testutil

import (
	"path/filepath"
	"testing"

	"school_system/internal/config"
	"school_system/internal/db"
	"school_system/internal/store"

	"gorm.io/gorm"
)

// PrepareDB opens a migrated SQLite database that lives for the duration of the test
func PrepareDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "school.db"),
	}
	gdb, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("PrepareDB() failed: %v", err)
	}
	if err := store.Migrate(gdb); err != nil {
		t.Fatalf("PrepareDB() migrate failed: %v", err)
	}
	t.Cleanup(func() { db.Close(gdb) })
	return gdb
}
