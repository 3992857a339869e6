package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DBUrl               string
	JWTSecret           string
	JWTTTL              time.Duration
	AppEnv              string
	AutoMigrate         bool
	EnableDocs          bool
	CORSOrigins         string
	StripeSecretKey     string
	StripeWebhookSecret string
	BillingSuccessURL   string
	BillingCancelURL    string
	GeminiAPIKey        string
	GeminiModel         string
	ResendAPIKey        string
	FromEmail           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:                getEnv("PORT", "8000"),
		DBUrl:               getEnv("DB_URL", ""),
		JWTSecret:           jwtSecret,
		JWTTTL:              time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		AppEnv:              normalizeEnv(getEnv("APP_ENV", "production")),
		AutoMigrate:         getEnvBool("AUTO_MIGRATE", false),
		EnableDocs:          getEnvBool("ENABLE_API_DOCS", false),
		CORSOrigins:         getEnv("CORS_ORIGINS", "http://localhost:3000"),
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		BillingSuccessURL:   getEnv("BILLING_SUCCESS_URL", "http://localhost:3000/dashboard"),
		BillingCancelURL:    getEnv("BILLING_CANCEL_URL", "http://localhost:3000/subscription"),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		FromEmail:           getEnv("FROM_EMAIL", "CU-FIT <onboarding@resend.dev>"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) IsDevelopment() bool {
	return c != nil && c.AppEnv == "development"
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}

func (c *Config) BillingEnabled() bool {
	return c != nil && c.StripeSecretKey != ""
}

func (c *Config) ChatbotEnabled() bool {
	return c != nil && c.GeminiAPIKey != ""
}
