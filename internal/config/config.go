package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds the connection settings of the document-management database.
type DatabaseConfig struct {
	// Driver selects the SQL dialect: "mysql" or "postgres".
	Driver             string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for archived reports.
// An empty Endpoint disables report archiving.
type MinIOConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	LinkExpirySec int
}

// SessionConfig bounds the per-session snapshot cache.
type SessionConfig struct {
	CacheSize int
	TTLSec    int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	Timezone    string
	ReportTitle string
	Database    DatabaseConfig
	MinIO       MinIOConfig
	Session     SessionConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
		ReportTitle: getEnv("REPORT_TITLE", "DMS Analytics Report"),
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", "mysql"),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "3306"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:      getEnv("MINIO_ENDPOINT", ""),
			AccessKey:     getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:     getEnv("MINIO_SECRET_KEY", ""),
			Bucket:        getEnv("MINIO_BUCKET", ""),
			UseSSL:        getEnvBool("MINIO_USE_SSL", false),
			LinkExpirySec: getEnvInt("REPORT_LINK_TTL_SEC", 900),
		},
		Session: SessionConfig{
			CacheSize: getEnvInt("SESSION_CACHE_SIZE", 128),
			TTLSec:    getEnvInt("SESSION_TTL_SEC", 1800),
		},
	}
}

// Location resolves Timezone, falling back to the local zone when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// StorageEnabled reports whether report archiving is configured.
func (c MinIOConfig) StorageEnabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
