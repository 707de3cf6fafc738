package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Brokers     []string // Kafka bootstrap brokers
	OrdersTopic string   // inbound order events
	TradesTopic string   // outbound trade events
	Group       string   // consumer group of the matching pipeline
	LogLevel    string
}

func Default() Config {
	return Config{
		Brokers:     []string{"localhost:9092"},
		OrdersTopic: "orders",
		TradesTopic: "trades",
		Group:       "gungnir-exchange",
		LogLevel:    "info",
	}
}

// Load reads configuration from a .env file (if one exists) and environment
// variables. Priority: ENV > .env file > defaults.
func Load(envPath string) Config {
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	cfg := Default()
	if v := os.Getenv("GUNGNIR_BROKERS"); v != "" {
		cfg.Brokers = splitList(v)
	}
	if v := os.Getenv("GUNGNIR_ORDERS_TOPIC"); v != "" {
		cfg.OrdersTopic = v
	}
	if v := os.Getenv("GUNGNIR_TRADES_TOPIC"); v != "" {
		cfg.TradesTopic = v
	}
	if v := os.Getenv("GUNGNIR_GROUP"); v != "" {
		cfg.Group = v
	}
	if v := os.Getenv("GUNGNIR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
