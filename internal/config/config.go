package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppEnv        string
	CatalogPath   string
	ShippingDelay time.Duration
	SessionTTL    time.Duration
}

const (
	defaultAppPort       = "8080"
	defaultShippingDelay = time.Second
	defaultSessionTTL    = 30 * time.Minute
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       os.Getenv("APP_PORT"),
		AppEnv:        os.Getenv("APP_ENV"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		ShippingDelay: defaultShippingDelay,
		SessionTTL:    defaultSessionTTL,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = defaultAppPort
	}

	if raw := os.Getenv("SHIPPING_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			log.Fatalf("invalid SHIPPING_DELAY_MS: %q", raw)
		}
		cfg.ShippingDelay = time.Duration(ms) * time.Millisecond
	}

	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil || min <= 0 {
			log.Fatalf("invalid SESSION_TTL_MINUTES: %q", raw)
		}
		cfg.SessionTTL = time.Duration(min) * time.Minute
	}

	return cfg
}
