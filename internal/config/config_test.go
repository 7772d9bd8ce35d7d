package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("uses defaults when the environment is empty", func(t *testing.T) {
		cfg := Load()
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.PurchasePageSize != 6 || cfg.OrderPageSize != 5 {
			t.Errorf("unexpected page sizes: %d, %d", cfg.PurchasePageSize, cfg.OrderPageSize)
		}
		if len(cfg.KafkaBrokers) != 0 {
			t.Errorf("expected no brokers without KAFKA_BROKERS, got %v", cfg.KafkaBrokers)
		}
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
		t.Setenv("ORDER_PAGE_SIZE", "10")

		cfg := Load()
		if cfg.Port != "9999" {
			t.Errorf("expected port 9999, got %s", cfg.Port)
		}
		if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "kafka-2:9092" {
			t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
		}
		if cfg.OrderPageSize != 10 {
			t.Errorf("expected order page size 10, got %d", cfg.OrderPageSize)
		}
	})

	t.Run("rejects a non-positive page size", func(t *testing.T) {
		t.Setenv("ORDER_PAGE_SIZE", "0")
		cfg := Load()
		if cfg.OrderPageSize != 5 {
			t.Errorf("expected fallback page size 5, got %d", cfg.OrderPageSize)
		}
	})
}
