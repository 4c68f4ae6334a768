package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// Backend API Configuration
	APIBaseURL        string
	APITimeoutSeconds int
	// Notification Polling Configuration
	PollIntervalSeconds int
	// Redis Configuration (sessions + notification cooldowns)
	RedisURL      string
	RedisPassword string
	// Session Cookie Configuration
	CookieName   string
	CookieSecure bool
	SessionTTL   time.Duration
	// Template/Asset Paths
	TemplatesGlob string
	StaticDir     string
}

func LoadConfig() (*Config, error) {
	// Load .env file (local only; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:    getEnv("PORT", "3000"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// Strip trailing slash to prevent double slashes when joining paths
		APIBaseURL:        strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8080/api"), "/"),
		APITimeoutSeconds: getEnvInt("API_TIMEOUT_SECONDS", 15),
		// Status polling cadence for the notification engine
		PollIntervalSeconds: getEnvInt("POLL_INTERVAL_SECONDS", 30),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Session Cookie Configuration
		CookieName:   getEnv("SESSION_COOKIE_NAME", "jobboard_session"),
		CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		SessionTTL:   time.Duration(getEnvInt("SESSION_TTL_MINUTES", 12*60)) * time.Minute,
		// Template/Asset Paths
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "web/templates/*.tmpl"),
		StaticDir:     getEnv("STATIC_DIR", "web/static"),
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Sessions and notification cooldowns will use in-memory fallback.")
	}

	return cfg, nil
}

// PollInterval returns the notification poll cadence as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// APITimeout returns the backend request timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.APITimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
