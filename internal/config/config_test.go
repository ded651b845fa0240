package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "bellavista-api", cfg.ServiceName)
	assert.Equal(t, 4, cfg.KitchenWorkers)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,,k3:9092")
	t.Setenv("KITCHEN_WORKERS", "8")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092", "k3:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 8, cfg.KitchenWorkers)
}

func TestKitchenWorkersInvalid(t *testing.T) {
	for _, v := range []string{"zero", "-2", "0"} {
		t.Setenv("KITCHEN_WORKERS", v)
		assert.Equal(t, 4, Load().KitchenWorkers, "value %q", v)
	}
}
