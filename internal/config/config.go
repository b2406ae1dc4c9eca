package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Backend struct {
	BaseURL string
	Timeout time.Duration
}

type Log struct {
	Level string
	File  string
}

type Config struct {
	Backend       Backend
	Log           Log
	MaxUploadSize int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseDuration accepts a Go duration ("15s") or a bare number of seconds.
// Empty, negative and unparsable values mean no client timeout; the last two
// are reported.
func parseDuration(key, value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		seconds, convErr := strconv.ParseInt(value, 10, 64)
		if convErr != nil {
			log.Printf("Warning: %s=%q is not a duration, using no timeout", key, value)
			return 0
		}
		duration = time.Duration(seconds) * time.Second
	}
	if duration < 0 {
		log.Printf("Warning: %s=%q is negative, using no timeout", key, value)
		return 0
	}
	return duration
}

// NormalizeBaseURL accepts either a bare host ("api:8000") or a full URL and
// always returns a URL with a scheme and without a trailing slash.
func NormalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimRight(raw, "/")
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	return raw
}

func LoadBackend() Backend {
	return Backend{
		BaseURL: NormalizeBaseURL(getEnv("WEBSITE_BASE_URL", "localhost:8000")),
		Timeout: parseDuration("HTTP_TIMEOUT", getEnv("HTTP_TIMEOUT", "")),
	}
}

func LoadLog() Log {
	return Log{
		Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		File:  getEnv("LOG_FILE", "simplesocial.log"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Backend:       LoadBackend(),
		Log:           LoadLog(),
		MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 50*1024*1024),
	}
}
