package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// defaultAdminPassword keeps a fresh checkout usable without any
// configuration. Production deployments must set ADMIN_PASSWORD.
const defaultAdminPassword = "admin123"

type Config struct {
	Port           string
	Env            string
	PublicBaseURL  string
	AdminPassword  string
	DatabaseDriver string
	DatabaseURL    string
	S3Bucket       string
	AWSRegion      string
	S3Endpoint     string
	RabbitMQURL    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Default().Warn("loading .env failed", "error", err)
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "development"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		DatabaseDriver: getEnv("DATABASE_DRIVER", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		S3Endpoint:     getEnv("S3_ENDPOINT", ""),
		RabbitMQURL:    getEnv("RABBITMQ_URL", ""),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
