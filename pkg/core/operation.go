package core

// Operation represents an endpoint call that can be performed against the exchange.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpGetMarkets lists the tradable markets.
	OpGetMarkets Operation = iota
	// OpGetTicker retrieves current ticker data.
	OpGetTicker
	// OpGetBook retrieves one side of a market's order book.
	OpGetBook
	// OpGetTrades retrieves executed trades for a market.
	OpGetTrades
	// OpGetBalance retrieves account balances.
	OpGetBalance
	// OpGetActiveOrders retrieves the account's open orders.
	OpGetActiveOrders
	// OpGetExecutedOrders retrieves the account's filled orders.
	OpGetExecutedOrders
	// OpCreateOrder submits a new order.
	OpCreateOrder
	// OpCancelOrder cancels an existing order.
	OpCancelOrder
	// OpGetOrderStatus retrieves details of a specific order.
	OpGetOrderStatus
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	names := [...]string{
		"GET_MARKETS",
		"GET_TICKER",
		"GET_BOOK",
		"GET_TRADES",
		"GET_BALANCE",
		"GET_ACTIVE_ORDERS",
		"GET_EXECUTED_ORDERS",
		"CREATE_ORDER",
		"CANCEL_ORDER",
		"GET_ORDER_STATUS",
	}
	if o < 0 || int(o) >= len(names) {
		return "UNKNOWN"
	}
	return names[o]
}

// IsPrivate reports whether the operation needs signed authentication headers.
func (o Operation) IsPrivate() bool {
	switch o {
	case OpGetBalance, OpGetActiveOrders, OpGetExecutedOrders,
		OpCreateOrder, OpCancelOrder, OpGetOrderStatus:
		return true
	default:
		return false
	}
}
