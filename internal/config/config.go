package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	DBDSN         string `mapstructure:"DB_DSN"`
	APIBaseURL    string `mapstructure:"API_BASE_URL"`
	ProviderToken string `mapstructure:"PAYMENT_PROVIDER_TOKEN"`
	Environment   string `mapstructure:"ENV"`

	// NotifyInterval is how often the notifier polls the backend feed.
	NotifyInterval time.Duration
}

func Load() (*Config, error) {
	// Load .env if present; a missing file just means plain env vars
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBDSN:         os.Getenv("DB_DSN"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		ProviderToken: os.Getenv("PAYMENT_PROVIDER_TOKEN"),
		Environment:   os.Getenv("ENV"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	cfg.NotifyInterval = 2 * time.Minute
	if raw := os.Getenv("NOTIFY_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse NOTIFY_INTERVAL: %w", err)
		}
		cfg.NotifyInterval = interval
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}
