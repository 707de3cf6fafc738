package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gungnir/internal/config"
	"gungnir/internal/engine"
	"gungnir/internal/mq"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	cfg := config.Load("")
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	publisher, err := mq.NewTradePublisher(cfg.Brokers, cfg.TradesTopic)
	if err != nil {
		log.Error().Err(err).Strs("brokers", cfg.Brokers).Msg("unable to connect trade publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	// Setup the matching pipeline: one engine, one sequential consumer.
	eng := engine.New(engine.NewRegistry())
	consumer := mq.NewConsumer(cfg.Brokers, cfg.OrdersTopic, cfg.Group, eng, publisher)
	defer consumer.Close()

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("orders", cfg.OrdersTopic).
		Str("trades", cfg.TradesTopic).
		Msg("exchange running, waiting for orders")

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("matching pipeline failed")
		os.Exit(1)
	}
	log.Info().Msg("exchange shut down")
}
