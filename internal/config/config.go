// Package config loads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	BackendURL string
	CatalogURL string
	WebhookURL string

	KafkaBrokers  []string
	ConsumerGroup string

	PurchasePageSize int
	OrderPageSize    int
}

// Load reads the environment after merging in a .env file when one exists.
// Missing keys fall back to local-development defaults, except KafkaBrokers:
// an unset KAFKA_BROKERS means no broker, which disables event publishing in
// the console and is a startup error for the worker.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("PORT", "8080"),
		BackendURL:       getEnv("BACKEND_SERVICE_URL", "http://localhost:8081"),
		CatalogURL:       getEnv("CATALOG_SERVICE_URL", "http://localhost:8082"),
		WebhookURL:       getEnv("NOTIFIER_SERVICE_URL", "http://localhost:8083"),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		ConsumerGroup:    getEnv("KAFKA_CONSUMER_GROUP", "ordena-worker"),
		PurchasePageSize: getEnvInt("PURCHASE_PAGE_SIZE", 6),
		OrderPageSize:    getEnvInt("ORDER_PAGE_SIZE", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
