package core

import (
	"fmt"
	"strings"
)

// OrderType is the book side or order direction as the exchange spells it.
type OrderType string

// Order type constants accepted by the book and orders/create endpoints.
const (
	// OrderTypeBuy selects bids / places a buy order.
	OrderTypeBuy OrderType = "buy"
	// OrderTypeSell selects asks / places a sell order.
	OrderTypeSell OrderType = "sell"
)

func (t OrderType) String() string {
	return string(t)
}

// ParseOrderType accepts "buy" or "sell" in any case.
func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return OrderTypeBuy, nil
	case "sell":
		return OrderTypeSell, nil
	default:
		return "", fmt.Errorf("invalid order type: %q", s)
	}
}
