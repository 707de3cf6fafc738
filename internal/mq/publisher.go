package mq

import (
	"fmt"

	"github.com/IBM/sarama"

	"gungnir/internal/engine"
)

// TradePublisher pushes executed trades onto the trades topic. It uses a
// synchronous producer with full acks so a trade is confirmed before the
// order event that produced it is committed.
type TradePublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewTradePublisher(brokers []string, topic string) (*TradePublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting trade producer: %w", err)
	}

	return &TradePublisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// Publish sends one trade event. Keying by symbol keeps trades of a symbol
// in one partition, preserving their execution order for consumers.
func (p *TradePublisher) Publish(trade engine.Trade) error {
	payload, err := EncodeTrade(trade)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(trade.Symbol),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *TradePublisher) Close() error {
	return p.producer.Close()
}
