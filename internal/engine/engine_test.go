package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gungnir/internal/engine"
)

func TestProcess_RoutesBySymbol(t *testing.T) {
	eng := engine.New(engine.NewRegistry())

	// Orders on different symbols never match each other.
	assert.Empty(t, eng.Process(newOrder("alice", engine.Sell, "MSFT", 50.0, 10)))
	assert.Empty(t, eng.Process(newOrder("bob", engine.Buy, "AAPL", 50.0, 10)))

	trades := eng.Process(newOrder("carol", engine.Buy, "MSFT", 50.0, 10))
	assert.Equal(t, []engine.Trade{
		{Symbol: "MSFT", Buyer: "carol", Seller: "alice", Price: 50.0, Quantity: 10},
	}, stripTimes(trades))

	assert.Empty(t, eng.Registry().BookFor("MSFT").Asks())
	assert.Len(t, eng.Registry().BookFor("AAPL").Bids(), 1)
}

func TestProcess_TradesInArrivalOrder(t *testing.T) {
	eng := engine.New(engine.NewRegistry())

	assert.Empty(t, eng.Process(newOrder("m1", engine.Sell, "AAPL", 100.0, 5)))
	assert.Empty(t, eng.Process(newOrder("m2", engine.Sell, "AAPL", 99.0, 5)))

	trades := eng.Process(newOrder("taker", engine.Buy, "AAPL", 100.0, 7))
	assert.Equal(t, []engine.Trade{
		{Symbol: "AAPL", Buyer: "taker", Seller: "m2", Price: 99.0, Quantity: 5},
		{Symbol: "AAPL", Buyer: "taker", Seller: "m1", Price: 100.0, Quantity: 2},
	}, stripTimes(trades))
}

// Quantity is conserved: for each side, traded plus resting equals submitted.
func TestProcess_ConservesQuantity(t *testing.T) {
	eng := engine.New(engine.NewRegistry())

	orders := []engine.Order{
		newOrder("a", engine.Buy, "AAPL", 101.0, 30),
		newOrder("b", engine.Sell, "AAPL", 100.0, 12),
		newOrder("c", engine.Sell, "AAPL", 102.0, 40),
		newOrder("d", engine.Buy, "AAPL", 102.0, 25),
		newOrder("e", engine.Sell, "AAPL", 99.0, 60),
		newOrder("f", engine.Buy, "AAPL", 98.0, 10),
	}

	var submitted, traded [2]uint64
	for _, order := range orders {
		submitted[order.Side] += order.Quantity
		for _, trade := range eng.Process(order) {
			traded[engine.Buy] += trade.Quantity
			traded[engine.Sell] += trade.Quantity
		}
	}

	var resting [2]uint64
	book := eng.Registry().BookFor("AAPL")
	for _, level := range book.Bids() {
		for _, order := range level.Orders {
			assert.Positive(t, order.Quantity)
			resting[engine.Buy] += order.Quantity
		}
	}
	for _, level := range book.Asks() {
		for _, order := range level.Orders {
			assert.Positive(t, order.Quantity)
			resting[engine.Sell] += order.Quantity
		}
	}

	assert.Equal(t, submitted[engine.Buy], traded[engine.Buy]+resting[engine.Buy])
	assert.Equal(t, submitted[engine.Sell], traded[engine.Sell]+resting[engine.Sell])
}
