package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
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

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AgentConfig selects and configures the analysis agent backend.
// Backend is either "llm" (OpenAI-compatible chat API) or "heuristic"
// (local regex/keyword/chunking strategies, no network calls).
type AgentConfig struct {
	Backend    string
	BaseURL    string
	APIKey     string
	Model      string
	TimeoutSec int
}

// NotifyConfig holds chat-webhook notification settings.
// An empty WebhookURL disables notifications entirely.
type NotifyConfig struct {
	WebhookURL string
	TimeoutSec int
}

// SettingsDefaults are the env-derived values served by the settings
// endpoints. They have no backing store; PUT merges over these.
type SettingsDefaults struct {
	Endpoint             string
	NotificationsEnabled bool
	RiskThreshold        float64
	RetentionDays        int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Agent    AgentConfig
	Notify   NotifyConfig
	Settings SettingsDefaults
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "documents"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Agent: AgentConfig{
			Backend:    getEnv("AGENT_BACKEND", "heuristic"),
			BaseURL:    getEnv("AGENT_BASE_URL", ""),
			APIKey:     getEnv("AGENT_API_KEY", ""),
			Model:      getEnv("AGENT_MODEL", "gpt-4o-mini"),
			TimeoutSec: getEnvInt("AGENT_TIMEOUT_SEC", 60),
		},
		Notify: NotifyConfig{
			WebhookURL: getEnv("TEAMS_WEBHOOK_URL", ""),
			TimeoutSec: getEnvInt("WEBHOOK_TIMEOUT_SEC", 10),
		},
		Settings: SettingsDefaults{
			Endpoint:             getEnv("SETTINGS_ENDPOINT", "http://localhost:8080"),
			NotificationsEnabled: getEnvBool("SETTINGS_NOTIFICATIONS_ENABLED", true),
			RiskThreshold:        getEnvFloat("SETTINGS_RISK_THRESHOLD", 0.4),
			RetentionDays:        getEnvInt("SETTINGS_RETENTION_DAYS", 90),
		},
	}
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

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
