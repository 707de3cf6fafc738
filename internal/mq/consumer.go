package mq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	tomb "gopkg.in/tomb.v2"

	"gungnir/internal/engine"
)

const progressInterval = 30 * time.Second

// TradeSink receives every trade the engine produces.
type TradeSink interface {
	Publish(trade engine.Trade) error
}

// Consumer is the single sequential pipeline feeding the matching engine:
// fetch an order event, decode it, run the match, publish the trades, then
// commit the event. Dropped events (malformed or invalid) are committed all
// the same so they are never redelivered.
type Consumer struct {
	reader *kafka.Reader
	engine *engine.Engine
	sink   TradeSink

	ordersSeen     atomic.Uint64
	ordersDropped  atomic.Uint64
	tradesExecuted atomic.Uint64
}

func NewConsumer(brokers []string, topic, group string, eng *engine.Engine, sink TradeSink) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  group,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10 << 20,
		}),
		engine: eng,
		sink:   sink,
	}
}

// Run consumes order events until the context is cancelled. Any error other
// than cancellation is fatal to the pipeline: resuming after a failed trade
// publish would either drop or replay trades.
func (c *Consumer) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)
	t.Go(func() error {
		return c.consume(ctx)
	})
	t.Go(func() error {
		return c.progress(ctx)
	})
	// Cancellation is the one clean way out of the pipeline.
	if err := t.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c *Consumer) consume(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("fetching order event: %w", err)
		}

		if err := c.handle(msg.Value); err != nil {
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("committing order event: %w", err)
		}
	}
}

func (c *Consumer) handle(payload []byte) error {
	order, err := DecodeOrder(payload)
	if err != nil {
		c.ordersDropped.Add(1)
		if Malformed(err) {
			log.Warn().Err(err).Msg("dropping undecodable order event")
		} else {
			log.Warn().Err(err).Msg("dropping invalid order")
		}
		return nil
	}

	c.ordersSeen.Add(1)
	log.Info().
		Str("uuid", order.UUID).
		Str("owner", order.Owner).
		Str("symbol", order.Symbol).
		Str("side", order.Side.String()).
		Float64("price", order.Price).
		Uint64("quantity", order.Quantity).
		Msg("order received")

	trades := c.engine.Process(order)
	for _, trade := range trades {
		if err := c.sink.Publish(trade); err != nil {
			return fmt.Errorf("publishing trade %s: %w", trade, err)
		}
		log.Info().
			Str("symbol", trade.Symbol).
			Str("buyer", trade.Buyer).
			Str("seller", trade.Seller).
			Float64("price", trade.Price).
			Uint64("quantity", trade.Quantity).
			Msg("trade executed")
	}
	c.tradesExecuted.Add(uint64(len(trades)))

	if len(trades) == 0 {
		log.Debug().Stringer("order", order).Msg("no match, order resting")
	}
	return nil
}

// progress periodically reports pipeline counters.
func (c *Consumer) progress(ctx context.Context) error {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			log.Info().
				Uint64("orders", c.ordersSeen.Load()).
				Uint64("dropped", c.ordersDropped.Load()).
				Uint64("trades", c.tradesExecuted.Load()).
				Msg("pipeline progress")
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
