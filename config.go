package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string
	RedisURL string

	// Postgres backs the coupon store. When the host is empty the service
	// falls back to the built-in static coupon table.
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	TaxRate     float64
	ShippingFee float64
	CartTTL     time.Duration
	PendingTTL  time.Duration
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGODB_DB", "play-cards-store"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		TaxRate:          0.08,
		ShippingFee:      5.99,
		CartTTL:          time.Hour * 24 * 7,
		PendingTTL:       time.Hour,
	}

	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("invalid TAX_RATE %q", v)
		}
		cfg.TaxRate = rate
	}
	if v := os.Getenv("SHIPPING_FEE"); v != "" {
		fee, err := strconv.ParseFloat(v, 64)
		if err != nil || fee < 0 {
			return nil, fmt.Errorf("invalid SHIPPING_FEE %q", v)
		}
		cfg.ShippingFee = fee
	}

	return cfg, nil
}

// PostgresEnabled reports whether a coupon database was configured.
func (c *Config) PostgresEnabled() bool {
	return c.PostgresHost != "" && c.PostgresUser != "" && c.PostgresDB != ""
}

// PostgresDSN builds the gorm connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
