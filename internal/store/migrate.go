package store

import "gorm.io/gorm"

// Migrate creates or updates the tables of every entity
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&userRow{}, &studentRow{}, &staffRow{}, &incidentRow{})
}
