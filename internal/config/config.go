package config

import (
	"fmt"  // DSN formatting
	"time" // Cache TTL

	"github.com/joho/godotenv" // For loading .env files
	"github.com/spf13/viper"   // Environment lookup with defaults
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBDriver   string        // mysql, postgres or sqlite
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	DBPath     string        // SQLite database file
	RedisAddr  string        // Redis server address, empty disables the cache
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	CacheTTL   time.Duration // Lifetime of cached incident lists
	LogLevel   string        // logrus level name
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from the environment and an optional .env file
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "school")
	v.SetDefault("DB_PATH", "school.db")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", 60*time.Second)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IS_PROD", false)
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppPort:    v.GetString("APP_PORT"),
		DBDriver:   v.GetString("DB_DRIVER"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBName:     v.GetString("DB_NAME"),
		DBPath:     v.GetString("DB_PATH"),
		RedisAddr:  v.GetString("REDIS_ADDR"),
		RedisPass:  v.GetString("REDIS_PASS"),
		RedisDB:    v.GetInt("REDIS_DB"),
		CacheTTL:   v.GetDuration("CACHE_TTL"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		IsProd:     v.GetBool("IS_PROD"),
	}
}

// DSN builds the Data Source Name for the configured driver
func (c *Config) DSN() (string, error) {
	switch c.DBDriver {
	case DriverMySQL:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true", nil
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
		), nil
	case DriverSQLite:
		return c.DBPath + "?_busy_timeout=5000&_foreign_keys=on", nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}
