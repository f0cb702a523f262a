package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./endotrace.db)
	PepperFile   string // Optional: path to pepper file for password hashing (default: ./pepper)

	AdminUsername string // Bootstrap admin username for an empty database (default: admin)
	AdminPassword string // Bootstrap admin password; required only on first start

	SMTPHost      string // Optional: alerts are disabled when empty
	SMTPPort      int    // SMTP port (default: 587)
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string // Sender address (default: SMTPUser)
	SMTPRecipient string // Alert recipient; alerts are disabled when empty

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile: getEnvOrDefault("ENDOTRACE_DATABASE_FILE", "endotrace.db"),
		PepperFile:   getEnvOrDefault("ENDOTRACE_PEPPER_FILE", "pepper"),

		AdminUsername: getEnvOrDefault("ENDOTRACE_ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ENDOTRACE_ADMIN_PASSWORD"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		SMTPRecipient: os.Getenv("SMTP_RECIPIENT"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
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

	// Bare integers are read as minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
