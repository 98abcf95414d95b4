package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want string
	}{
		{"get_markets", OpGetMarkets, "GET_MARKETS"},
		{"get_ticker", OpGetTicker, "GET_TICKER"},
		{"get_book", OpGetBook, "GET_BOOK"},
		{"get_trades", OpGetTrades, "GET_TRADES"},
		{"get_balance", OpGetBalance, "GET_BALANCE"},
		{"get_active_orders", OpGetActiveOrders, "GET_ACTIVE_ORDERS"},
		{"get_executed_orders", OpGetExecutedOrders, "GET_EXECUTED_ORDERS"},
		{"create_order", OpCreateOrder, "CREATE_ORDER"},
		{"cancel_order", OpCancelOrder, "CANCEL_ORDER"},
		{"get_order_status", OpGetOrderStatus, "GET_ORDER_STATUS"},
		{"out_of_range", Operation(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}

func TestOperation_IsPrivate(t *testing.T) {
	public := []Operation{OpGetMarkets, OpGetTicker, OpGetBook, OpGetTrades}
	private := []Operation{
		OpGetBalance,
		OpGetActiveOrders,
		OpGetExecutedOrders,
		OpCreateOrder,
		OpCancelOrder,
		OpGetOrderStatus,
	}

	for _, op := range public {
		assert.False(t, op.IsPrivate(), op.String())
	}
	for _, op := range private {
		assert.True(t, op.IsPrivate(), op.String())
	}
}
