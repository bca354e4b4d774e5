package app

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIURL     string        // Required: base URL of the club platform API
	StateFile  string        // Optional: path to the local SQLite state file (default: ./clubdesk.db)
	Passphrase string        // Optional: passphrase sealing the stored credential
	TOTPSecret string        // Optional: stored second-factor secret for MFA logins
	SessionTTL time.Duration // Optional: credential lifetime when the token carries no expiry (default: 12h)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	return Config{
		APIURL:     getEnvOrDefault("CLUBDESK_API_URL", "http://localhost:8081/api"),
		StateFile:  getEnvOrDefault("CLUBDESK_STATE_FILE", "clubdesk.db"),
		Passphrase: os.Getenv("CLUBDESK_PASSPHRASE"),
		TOTPSecret: os.Getenv("CLUBDESK_TOTP_SECRET"),
		SessionTTL: getEnvDurationOrDefault("CLUBDESK_SESSION_TTL", 12*time.Hour),
		Env:        getEnvOrDefault("ENV", "dev"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:  getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
