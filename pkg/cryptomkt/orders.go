package cryptomkt

import (
	"context"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"

	"cryptomkt/pkg/core"
)

// OrdersService groups the private order endpoints. It holds a reference to
// the client it was obtained from.
type OrdersService struct {
	client *Client
}

// CreateOrderRequest contains the parameters required to place a new order.
type CreateOrderRequest struct {
	Market string         `validate:"required"`
	Type   core.OrderType `validate:"required,oneof=buy sell"`
	Amount apd.Decimal
	Price  apd.Decimal
}

var validate = validator.New()

// Validate checks the request locally; amount and price must be positive.
func (r *CreateOrderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if r.Price.Sign() <= 0 {
		return fmt.Errorf("price must be positive")
	}
	return nil
}

// Active retrieves open orders for market. Page and limit default to 0 and 20.
func (s *OrdersService) Active(ctx context.Context, market string, opts ...Option) (any, error) {
	params := ApplyOptions(opts...).apply(core.Params{"market": market})
	return s.client.call(ctx, core.OpGetActiveOrders, params)
}

// Executed retrieves filled orders for market. Page and limit default to 0 and 20.
func (s *OrdersService) Executed(ctx context.Context, market string, opts ...Option) (any, error) {
	params := ApplyOptions(opts...).apply(core.Params{"market": market})
	return s.client.call(ctx, core.OpGetExecutedOrders, params)
}

// Create places a limit order.
func (s *OrdersService) Create(ctx context.Context, req *CreateOrderRequest) (any, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate order: %w", err)
	}

	params := core.Params{
		"market": req.Market,
		"type":   req.Type,
		"amount": &req.Amount,
		"price":  &req.Price,
	}
	return s.client.call(ctx, core.OpCreateOrder, params)
}

// Cancel cancels the order with the given id.
func (s *OrdersService) Cancel(ctx context.Context, orderID string) (any, error) {
	return s.client.call(ctx, core.OpCancelOrder, core.Params{"id": orderID})
}

// Status retrieves a single order by id.
func (s *OrdersService) Status(ctx context.Context, orderID string) (any, error) {
	return s.client.call(ctx, core.OpGetOrderStatus, core.Params{"id": orderID})
}
