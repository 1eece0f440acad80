// Package config reads service settings from the environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const minSecretLength = 32

var ErrSessionSecret = errors.New("SESSION_SECRET must be at least 32 characters long")

type Config struct {
	Env           string
	HTTPAddr      string
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaGroup    string
	SessionSecret string
	SessionTTL    time.Duration
	TaxRate       decimal.Decimal
	Currency      string
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		KafkaBrokers:  splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "analytics-events"),
		KafkaGroup:    getEnv("KAFKA_GROUP", "analytics-tracker"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Currency:      strings.ToUpper(getEnv("CURRENCY", "USD")),
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.1"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAX_RATE: %w", err)
	}
	if taxRate.IsNegative() {
		return nil, fmt.Errorf("invalid TAX_RATE: %s is negative", taxRate)
	}
	cfg.TaxRate = taxRate

	return cfg, nil
}

// ValidateSession checks the settings needed to issue session tokens.
func (c *Config) ValidateSession() error {
	if len(c.SessionSecret) < minSecretLength {
		return ErrSessionSecret
	}
	return nil
}

// PublishEnabled reports whether analytics events should go to Kafka.
func (c *Config) PublishEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
