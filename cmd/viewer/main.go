package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"gungnir/internal/config"
	"gungnir/internal/mq"
)

// Tails the trades topic and renders a live trade tape plus the last traded
// price per symbol.
func main() {
	cfg := config.Load("")
	brokers := flag.String("brokers", strings.Join(cfg.Brokers, ","), "Comma-separated Kafka brokers")
	topic := flag.String("topic", cfg.TradesTopic, "Topic carrying trade events")
	flag.Parse()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// A fresh group per run so every viewer sees the full stream.
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(*brokers, ","),
		GroupID:  "gungnir-viewer-" + uuid.New().String(),
		Topic:    *topic,
		MinBytes: 1,
		MaxBytes: 10 << 20,
	})
	defer reader.Close()

	fmt.Printf("%-8s %12s %8s  %-16s %-16s\n", "SYMBOL", "PRICE", "QTY", "BUYER", "SELLER")

	lastPrices := make(map[string]float64)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("reading trade event")
				os.Exit(1)
			}
			break
		}

		var trade mq.TradeMessage
		if err := json.Unmarshal(msg.Value, &trade); err != nil {
			log.Warn().Err(err).Msg("skipping undecodable trade event")
			continue
		}

		lastPrices[trade.Symbol] = trade.Price
		fmt.Printf("%-8s %12.2f %8d  %-16s %-16s\n",
			trade.Symbol, trade.Price, trade.Quantity, trade.Buyer, trade.Seller)
	}

	printLastPrices(lastPrices)
}

func printLastPrices(lastPrices map[string]float64) {
	if len(lastPrices) == 0 {
		return
	}

	symbols := make([]string, 0, len(lastPrices))
	for symbol := range lastPrices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	fmt.Println("\nLast prices:")
	for _, symbol := range symbols {
		fmt.Printf("  %-8s %12.2f\n", symbol, lastPrices[symbol])
	}
}
