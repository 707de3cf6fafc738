package engine

import (
	"github.com/tidwall/btree"
)

type PriceLevel struct {
	priceLevel float64
	orders     []*Order
}

type PriceLevels = btree.BTreeG[*PriceLevel]

// OrderBook holds the resting orders of a single symbol. Price levels are
// kept sorted by the btree comparators; orders inside a level are kept in
// arrival order as they are always push-back'd.
type OrderBook struct {
	bids *PriceLevels
	asks *PriceLevels
}

func NewOrderBook() *OrderBook {
	// Sorted greatest first.
	bids := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.priceLevel > b.priceLevel
	})
	// Sorted least first.
	asks := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.priceLevel < b.priceLevel
	})
	return &OrderBook{
		bids: bids,
		asks: asks,
	}
}

// Submit matches an incoming order against the opposite side of the book and
// rests any unmatched remainder on its own side. It returns the trades
// produced, in execution order.
//
// The caller is expected to have validated the order already: Quantity > 0
// and Price > 0. Submit performs no validation of its own.
func (book *OrderBook) Submit(order Order) []Trade {
	var trades []Trade

	opposite, same := book.asks, book.bids
	crosses := func(restingPrice float64) bool { return restingPrice <= order.Price }
	if order.Side == Sell {
		opposite, same = book.bids, book.asks
		crosses = func(restingPrice float64) bool { return restingPrice >= order.Price }
	}

	// Sweep the opposite side from its best level. Min here accounts for
	// bids and asks being in inverse order, based on their comparators.
	// Once the best level fails to cross, nothing behind it can either.
	remaining := order.Quantity
	for remaining > 0 {
		level, ok := opposite.MinMut()
		if !ok || !crosses(level.priceLevel) {
			break
		}

		for remaining > 0 && len(level.orders) > 0 {
			maker := level.orders[0]
			matchQty := min(remaining, maker.Quantity)
			maker.Quantity -= matchQty
			remaining -= matchQty

			// Trade price comes from the resting order.
			trades = append(trades, newTrade(order, maker, level.priceLevel, matchQty))

			if maker.Quantity == 0 {
				level.orders[0] = nil
				level.orders = level.orders[1:]
			}
		}

		if len(level.orders) == 0 {
			opposite.Delete(level)
		}
	}

	// Rest the remainder. Appending onto the level keeps arrival order, so
	// price-time priority holds without re-sorting.
	if remaining > 0 {
		resting := order
		resting.Quantity = remaining
		if level, ok := same.GetMut(&PriceLevel{priceLevel: order.Price}); ok {
			level.orders = append(level.orders, &resting)
		} else {
			same.Set(&PriceLevel{
				priceLevel: order.Price,
				orders:     []*Order{&resting},
			})
		}
	}

	return trades
}

// BestBid returns the highest resting bid price, or false when the bid side
// is empty.
func (book *OrderBook) BestBid() (float64, bool) {
	level, ok := book.bids.Min()
	if !ok {
		return 0, false
	}
	return level.priceLevel, true
}

// BestAsk returns the lowest resting ask price, or false when the ask side
// is empty.
func (book *OrderBook) BestAsk() (float64, bool) {
	level, ok := book.asks.Min()
	if !ok {
		return 0, false
	}
	return level.priceLevel, true
}

// FlatPriceLevel is an exported view of a price level for inspection and
// tests.
type FlatPriceLevel struct {
	PriceLevel float64
	Orders     []*Order
}

// Bids returns the bid side flattened best-first.
func (book *OrderBook) Bids() []FlatPriceLevel {
	return flattenLevels(book.bids)
}

// Asks returns the ask side flattened best-first.
func (book *OrderBook) Asks() []FlatPriceLevel {
	return flattenLevels(book.asks)
}

func flattenLevels(levels *PriceLevels) []FlatPriceLevel {
	flat := make([]FlatPriceLevel, 0, levels.Len())
	levels.Scan(func(level *PriceLevel) bool {
		flat = append(flat, FlatPriceLevel{
			PriceLevel: level.priceLevel,
			Orders:     level.orders,
		})
		return true
	})
	return flat
}
