package mq

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"gungnir/internal/engine"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrMissingField     = errors.New("missing field")
	ErrInvalidPrice     = errors.New("price must be a positive number")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
)

// OrderMessage is the inbound order event contract.
type OrderMessage struct {
	Username string  `json:"username"`
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

// TradeMessage is the outbound trade event contract, one message per trade.
type TradeMessage struct {
	Symbol   string  `json:"symbol"`
	Buyer    string  `json:"buyer"`
	Seller   string  `json:"seller"`
	Price    float64 `json:"price"`
	Quantity uint64  `json:"quantity"`
}

// DecodeOrder turns an inbound payload into a validated engine order. The
// two failure classes are kept apart so the boundary can apply different
// policies: an undecodable payload wraps ErrMalformedPayload, a decodable
// payload with bad field values wraps the matching validation error.
func DecodeOrder(payload []byte) (engine.Order, error) {
	var msg OrderMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return engine.Order{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return msg.Order()
}

// Malformed reports whether a DecodeOrder failure was an undecodable payload
// rather than a well-formed but semantically invalid order.
func Malformed(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

// Order validates the message fields and builds the engine order, assigning
// its uuid and arrival timestamp. Orders that fail validation are rejected
// outright, never clamped.
func (m OrderMessage) Order() (engine.Order, error) {
	if m.Username == "" {
		return engine.Order{}, fmt.Errorf("%w: username", ErrMissingField)
	}
	if m.Symbol == "" {
		return engine.Order{}, fmt.Errorf("%w: symbol", ErrMissingField)
	}
	side, err := engine.ParseSide(m.Side)
	if err != nil {
		return engine.Order{}, fmt.Errorf("%w: %q", err, m.Side)
	}
	// NaN fails every comparison, so check it explicitly.
	if m.Price <= 0 || math.IsNaN(m.Price) || math.IsInf(m.Price, 0) {
		return engine.Order{}, fmt.Errorf("%w: got %v", ErrInvalidPrice, m.Price)
	}
	if m.Quantity <= 0 {
		return engine.Order{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, m.Quantity)
	}

	return engine.Order{
		UUID:      uuid.New().String(),
		Owner:     m.Username,
		Symbol:    m.Symbol,
		Side:      side,
		Price:     m.Price,
		Quantity:  uint64(m.Quantity),
		Timestamp: time.Now(),
	}, nil
}

// EncodeTrade serializes a trade for the trades topic.
func EncodeTrade(trade engine.Trade) ([]byte, error) {
	return json.Marshal(TradeMessage{
		Symbol:   trade.Symbol,
		Buyer:    trade.Buyer,
		Seller:   trade.Seller,
		Price:    trade.Price,
		Quantity: trade.Quantity,
	})
}
