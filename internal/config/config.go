package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every externally tunable setting. Values come from the
// environment, optionally seeded from configs/.env.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Notify   NotifyConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type NotifyConfig struct {
	// AdminEmail receives new-idea notifications.
	AdminEmail string
	// FrontendBaseURL is the base for password-reset links.
	FrontendBaseURL string
}

type LogConfig struct {
	Level    string
	Format   string // "console" or "json"
	FilePath string // empty means stdout only
}

// DSN assembles the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

// Configured reports whether SMTP delivery can be attempted.
func (s SMTPConfig) Configured() bool {
	return s.Host != ""
}

// Load reads configs/.env if present, then the environment.
func Load() (*Config, error) {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load("configs/.env")

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", ""),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "postgres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", os.Getenv("SMTP_USER")),
		},
		Notify: NotifyConfig{
			AdminEmail:      os.Getenv("NOTIFY_ADMIN_EMAIL"),
			FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Format:   getEnv("LOG_FORMAT", "console"),
			FilePath: os.Getenv("LOG_FILE"),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.Server.GinMode == "release" {
			return nil, errors.New("JWT_SECRET is required in release mode")
		}
		cfg.JWT.Secret = "default_super_secret_key" // development fallback, never set in release mode
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
