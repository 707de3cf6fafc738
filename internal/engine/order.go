package engine

import (
	"fmt"
	"time"
)

type Order struct {
	UUID      string    // Order tracked uuid
	Owner     string    // Who owns this order
	Symbol    string    // Specific asset identifier
	Side      Side      // Order side
	Price     float64   // Limit price
	Quantity  uint64    // Remaining quantity
	Timestamp time.Time // Time of arrival of order
}

func (order Order) String() string {
	return fmt.Sprintf("[%s] %s %s %d @ %.2f (%s)",
		order.UUID,
		order.Side,
		order.Symbol,
		order.Quantity,
		order.Price,
		order.Owner,
	)
}
