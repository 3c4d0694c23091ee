package db

import (
	"time" // Slow query threshold

	"school_system/internal/config" // Custom package for configuration

	"github.com/pkg/errors"          // Error wrapping
	"github.com/sirupsen/logrus"     // Logrus for structured logging
	"gorm.io/driver/mysql"           // MySQL driver for GORM
	"gorm.io/driver/postgres"        // PostgreSQL driver for GORM
	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM library
	gormlogger "gorm.io/gorm/logger" // GORM logger adapter
)

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true, // Surface duplicate keys as gorm.ErrDuplicatedKey
		Logger:         newLogger(cfg),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", cfg.DBDriver)
	}
	if cfg.DBDriver == config.DriverSQLite {
		// SQLite allows one writer; a single connection keeps requests from tripping over the lock
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "getting sql.DB")
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// newLogger routes GORM's warnings through logrus
func newLogger(cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.IsProd {
		level = gormlogger.Error
	}
	return gormlogger.New(logrus.StandardLogger(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true, // Misses are answered with a 404 page
	})
}

// Close releases the connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("failed to get sql.DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("failed to close DB: %v", err)
	}
}
