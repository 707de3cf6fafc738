package engine

import (
	"fmt"
	"time"
)

// Trade records one match between an incoming order and a resting order.
// Price is always the resting (maker) order's price.
type Trade struct {
	Symbol    string
	Buyer     string
	Seller    string
	Price     float64
	Quantity  uint64
	Timestamp time.Time
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %d @ %.2f (%s -> %s)",
		t.Symbol,
		t.Quantity,
		t.Price,
		t.Seller,
		t.Buyer,
	)
}

// newTrade assigns buyer and seller according to which side the taker is on.
func newTrade(taker Order, maker *Order, price float64, quantity uint64) Trade {
	buyer, seller := taker.Owner, maker.Owner
	if taker.Side == Sell {
		buyer, seller = maker.Owner, taker.Owner
	}
	return Trade{
		Symbol:    taker.Symbol,
		Buyer:     buyer,
		Seller:    seller,
		Price:     price,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
}
