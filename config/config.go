package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ImageStaging selects how uploaded images are made retrievable for
// fulfillment. Exactly one strategy is active per deployment.
const (
	StagingProdigi = "prodigi" // pre-upload to the Prodigi assets endpoint
	StagingLocal   = "local"   // buffer in the image store until fulfillment
)

type Config struct {
	Port                string
	Env                 string
	StripeSecretKey     string
	StripeWebhookSecret string
	ProdigiAPIKey       string
	ProdigiBaseURL      string
	ImageStaging        string
	RedisURL            string // optional; empty means in-memory image store
	ImageTTL            time.Duration
	AllowedOrigins      []string
	ProductImageURL     string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "3001"),
		Env:                 getEnv("APP_ENV", "development"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		ProdigiAPIKey:       os.Getenv("PRODIGI_API_KEY"),
		ProdigiBaseURL:      getEnv("PRODIGI_BASE_URL", "https://api.prodigi.com"),
		ImageStaging:        getEnv("IMAGE_STAGING", StagingProdigi),
		RedisURL:            os.Getenv("REDIS_URL"),
		ProductImageURL:     os.Getenv("PRODUCT_IMAGE_URL"),
	}

	if cfg.StripeSecretKey == "" || cfg.StripeWebhookSecret == "" || cfg.ProdigiAPIKey == "" {
		return nil, fmt.Errorf("missing required environment variables (STRIPE_SECRET_KEY, STRIPE_WEBHOOK_SECRET, PRODIGI_API_KEY)")
	}

	if cfg.ImageStaging != StagingProdigi && cfg.ImageStaging != StagingLocal {
		return nil, fmt.Errorf("invalid IMAGE_STAGING %q (want %q or %q)", cfg.ImageStaging, StagingProdigi, StagingLocal)
	}

	ttl, err := time.ParseDuration(getEnv("IMAGE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMAGE_TTL: %w", err)
	}
	cfg.ImageTTL = ttl

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(strings.TrimSuffix(o, "/")))
		}
	} else {
		cfg.AllowedOrigins = []string{
			"https://baroque-mirror-production.up.railway.app",
			"https://baroque-dance-production.up.railway.app",
			"http://localhost:3000",
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
