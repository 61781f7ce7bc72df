package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv          string
	LogLevel        slog.Level
	ApiServicePort  string
	MaxFileSize     int64
	UploadDir       string
	PostgreSQLHost  string
	PostgreSQLPort  int64
	PostgreSQLUser  string
	PostgreSQLPass  string
	PostgreSQLDB    string
	JWTSecret       string
	TokenExpiration int64 // seconds
	AdminSecretKey  string
	RedisHost       string
	RedisPort       int64
	RedisPassword   string
	RedisDB         int64
	LoginRateLimit  int64 // attempts per window, 0 disables
	LoginRateWindow int64 // seconds
}

func LoadConfig() *Config {
	return &Config{
		AppEnv:          getEnv("APP_ENV", "development"),             // Default development
		LogLevel:        getLogLevel(),                                // Default INFO
		ApiServicePort:  getEnv("API_SERVICE_PORT", "5001"),           // Default 5001
		MaxFileSize:     getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // Default 10 MiB
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),              // Default ./uploads
		PostgreSQLHost:  getEnv("POSTGRESQL_HOST", "db"),
		PostgreSQLPort:  getEnvAsInt64("POSTGRESQL_PORT", 5432),
		PostgreSQLUser:  getEnv("POSTGRESQL_USER", "diary_user"),
		PostgreSQLPass:  getEnv("POSTGRESQL_PASSWORD", "diary_password"),
		PostgreSQLDB:    getEnv("POSTGRESQL_DATABASE", "diary_db"),
		JWTSecret:       getEnv("JWT_SECRET", "fallback-secret"),
		TokenExpiration: getEnvAsInt64("TOKEN_EXPIRATION", 30*24*3600), // Default 30 days
		AdminSecretKey:  getEnv("ADMIN_SECRET_KEY", ""),                // No default: admin routes stay closed
		RedisHost:       getEnv("REDIS_HOST", "redis"),
		RedisPort:       getEnvAsInt64("REDIS_PORT", 6379),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsInt64("REDIS_DATABASE", 0),
		LoginRateLimit:  getEnvAsInt64("LOGIN_RATE_LIMIT", 30),  // Default 30 attempts
		LoginRateWindow: getEnvAsInt64("LOGIN_RATE_WINDOW", 60), // Default 60 seconds
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
