// Package config reads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Missions MissionConfig
	Geocoder GeocoderConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type AdminConfig struct {
	Username string
	Password string
}

type MissionConfig struct {
	// CatalogPath optionally replaces the built-in mission list with a
	// YAML file.
	CatalogPath   string
	DailyCount    int
	ResetHour     int
	CheckInterval time.Duration
}

type GeocoderConfig struct {
	BaseURL         string
	Timeout         time.Duration
	FallbackAddress string
}

type LoggingConfig struct {
	Level string
}

// Load reads configuration from environment variables with defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./ecoquest.db"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "dev-secret-key"),
			Expiration: parseDuration(getEnv("JWT_EXPIRATION", "24h"), 24*time.Hour),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Missions: MissionConfig{
			CatalogPath:   getEnv("MISSION_CATALOG_PATH", ""),
			DailyCount:    parseInt(getEnv("DAILY_MISSION_COUNT", "4"), 4),
			ResetHour:     parseInt(getEnv("MISSION_RESET_HOUR", "3"), 3),
			CheckInterval: parseDuration(getEnv("MISSION_CHECK_INTERVAL", "60s"), 60*time.Second),
		},
		Geocoder: GeocoderConfig{
			BaseURL:         getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			Timeout:         parseDuration(getEnv("GEOCODER_TIMEOUT", "5s"), 5*time.Second),
			FallbackAddress: getEnv("GEOCODER_FALLBACK", "Default location (Jakarta)"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	if i, err := strconv.Atoi(s); err == nil {
		return time.Duration(i) * time.Second
	}
	return defaultValue
}
