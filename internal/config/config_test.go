package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gungnir/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("")

	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers)
	assert.Equal(t, "orders", cfg.OrdersTopic)
	assert.Equal(t, "trades", cfg.TradesTopic)
	assert.Equal(t, "gungnir-exchange", cfg.Group)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GUNGNIR_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("GUNGNIR_ORDERS_TOPIC", "orders.test")
	t.Setenv("GUNGNIR_LOG_LEVEL", "debug")

	cfg := config.Load("")

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers)
	assert.Equal(t, "orders.test", cfg.OrdersTopic)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "trades", cfg.TradesTopic)
}
