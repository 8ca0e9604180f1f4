package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort          string
	AppMode          string
	DBHost           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBPort           string
	SessionSecret    string
	SessionTTLHours  int
	UploadDir        string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	LoginRateLimit   int
	LoginRateWindow  int
	AuditPageSize    int
	CORSOrigins      []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		AppMode:         getEnv("APP_MODE", "debug"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "clubhub"),
		DBPort:          getEnv("DB_PORT", "5432"),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me"),
		SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		RedisHost:       getEnv("REDIS_HOST", ""),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		LoginRateLimit:  getEnvAsInt("LOGIN_RATE_LIMIT", 5),
		LoginRateWindow: getEnvAsInt("LOGIN_RATE_WINDOW_SEC", 60),
		AuditPageSize:   getEnvAsInt("AUDIT_PAGE_SIZE", 20),
		CORSOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
