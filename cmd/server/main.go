package main

import (
	"context" // context package is needed for Redis operations

	"school_system/internal/api"    // Custom package for HTTP handlers
	"school_system/internal/cache"  // Incident list cache
	"school_system/internal/config" // Custom package for configuration
	"school_system/internal/db"     // Database connection
	"school_system/internal/store"  // Table definitions
	"school_system/web"             // Embedded views

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown LOG_LEVEL %q, keeping %s", cfg.LogLevel, logrus.GetLevel())
	}

	// Connect to the database and make sure the tables exist
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer db.Close(gdb)
	if err := store.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	// Redis is optional; without it incident lists are read from the database every time
	var incidentCache cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		incidentCache = cache.NewRedis(redisClient)
	}

	views, err := web.Templates()
	if err != nil {
		logrus.Fatalf("failed to parse templates: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(gdb, views, api.IncidentLists{Cache: incidentCache, TTL: cfg.CacheTTL})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
