package cryptomkt

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"cryptomkt/pkg/auth"
	"cryptomkt/pkg/core"
)

// Endpoint paths relative to the version segment.
const (
	EndpointMarkets        = "market"
	EndpointTicker         = "ticker"
	EndpointBook           = "book"
	EndpointTrades         = "trades"
	EndpointBalance        = "balance"
	EndpointOrdersActive   = "orders/active"
	EndpointOrdersExecuted = "orders/executed"
	EndpointOrdersCreate   = "orders/create"
	EndpointOrdersCancel   = "orders/cancel"
	EndpointOrdersStatus   = "orders/status"
)

const (
	defaultPage  = 0
	defaultLimit = 20
)

// Protocol maps operations onto CryptoMarket requests and signs private ones.
type Protocol struct {
	version string
}

// NewProtocol creates a protocol for the v1 API.
func NewProtocol() *Protocol {
	return &Protocol{version: core.APIVersion}
}

// Name returns the protocol identifier "cryptomkt".
func (p *Protocol) Name() string {
	return "cryptomkt"
}

// Version returns the API version segment.
func (p *Protocol) Version() string {
	return p.version
}

// URLPath returns the request path including the version segment.
func (p *Protocol) URLPath(req *core.Request) string {
	return "/" + p.version + "/" + req.Path
}

// SupportedOperations returns the fixed endpoint catalog.
func (p *Protocol) SupportedOperations() []core.Operation {
	return []core.Operation{
		core.OpGetMarkets,
		core.OpGetTicker,
		core.OpGetBook,
		core.OpGetTrades,
		core.OpGetBalance,
		core.OpGetActiveOrders,
		core.OpGetExecutedOrders,
		core.OpCreateOrder,
		core.OpCancelOrder,
		core.OpGetOrderStatus,
	}
}

// BuildRequest constructs the request for op. Missing page and limit
// parameters take their defaults; optional parameters are omitted entirely.
// Private operations come back with RequireAuth set.
func (p *Protocol) BuildRequest(op core.Operation, params core.Params) (*core.Request, error) {
	req, err := p.buildRequest(op, params)
	if err != nil {
		return nil, err
	}
	return req.SetRequireAuth(op.IsPrivate()), nil
}

func (p *Protocol) buildRequest(op core.Operation, params core.Params) (*core.Request, error) {
	switch op {
	case core.OpGetMarkets:
		return core.NewRequest(http.MethodGet, EndpointMarkets), nil
	case core.OpGetTicker:
		return core.NewRequest(http.MethodGet, EndpointTicker), nil
	case core.OpGetBook:
		return p.buildBookRequest(params)
	case core.OpGetTrades:
		return p.buildTradesRequest(params)
	case core.OpGetBalance:
		return core.NewRequest(http.MethodGet, EndpointBalance), nil
	case core.OpGetActiveOrders:
		return p.buildOrderListRequest(EndpointOrdersActive, params)
	case core.OpGetExecutedOrders:
		return p.buildOrderListRequest(EndpointOrdersExecuted, params)
	case core.OpCreateOrder:
		return p.buildCreateOrderRequest(params)
	case core.OpCancelOrder:
		return p.buildCancelOrderRequest(params)
	case core.OpGetOrderStatus:
		return p.buildOrderStatusRequest(params)
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedOperation, op)
	}
}

// SignRequest attaches the authentication headers to req. GET requests sign an
// empty body; POST requests sign the canonical form of req.Form while the form
// itself goes on the wire unchanged.
func (p *Protocol) SignRequest(req *core.Request, signer *auth.Signer) error {
	body := ""
	if req.Method == http.MethodPost {
		body = auth.CanonicalBody(req.Form)
	}

	headers, err := signer.Sign(req.Path, body)
	if err != nil {
		return err
	}

	req.SetHeaders(headers.Map())
	return nil
}

func (p *Protocol) buildBookRequest(params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}

	orderType, err := getOrderTypeParam(params)
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, EndpointBook)
	req.SetQuery("market", market)
	req.SetQuery("type", orderType.String())
	if err := setPaging(req, params); err != nil {
		return nil, err
	}

	return req, nil
}

func (p *Protocol) buildTradesRequest(params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, EndpointTrades)
	req.SetQuery("market", market)
	if err := setPaging(req, params); err != nil {
		return nil, err
	}

	if start, ok := params["start"]; ok && start != nil {
		req.SetQuery("start", start)
	}

	if end, ok := params["end"]; ok && end != nil {
		req.SetQuery("end", end)
	}

	return req, nil
}

func (p *Protocol) buildOrderListRequest(endpoint string, params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, endpoint)
	req.SetQuery("market", market)
	if err := setPaging(req, params); err != nil {
		return nil, err
	}

	return req, nil
}

func (p *Protocol) buildCreateOrderRequest(params core.Params) (*core.Request, error) {
	market, err := getRequiredStringParam(params, "market")
	if err != nil {
		return nil, err
	}

	orderType, err := getOrderTypeParam(params)
	if err != nil {
		return nil, err
	}

	amount, err := getRequiredParam(params, "amount")
	if err != nil {
		return nil, err
	}

	price, err := getRequiredParam(params, "price")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, EndpointOrdersCreate)
	req.SetForm("market", market)
	req.SetForm("type", orderType.String())
	req.SetForm("amount", amount)
	req.SetForm("price", price)

	return req, nil
}

func (p *Protocol) buildCancelOrderRequest(params core.Params) (*core.Request, error) {
	id, err := getRequiredStringParam(params, "id")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodPost, EndpointOrdersCancel)
	req.SetForm("id", id)

	return req, nil
}

func (p *Protocol) buildOrderStatusRequest(params core.Params) (*core.Request, error) {
	id, err := getRequiredStringParam(params, "id")
	if err != nil {
		return nil, err
	}

	req := core.NewRequest(http.MethodGet, EndpointOrdersStatus)
	req.SetQuery("id", id)

	return req, nil
}

func getRequiredParam(params core.Params, key string) (any, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return nil, fmt.Errorf("missing required parameter: %s", key)
	}
	return val, nil
}

func getRequiredStringParam(params core.Params, key string) (string, error) {
	val, err := getRequiredParam(params, key)
	if err != nil {
		return "", err
	}

	str := core.FormatParam(val)
	if str == "" {
		return "", fmt.Errorf("parameter %s cannot be empty", key)
	}

	return str, nil
}

func getOrderTypeParam(params core.Params) (core.OrderType, error) {
	raw, err := getRequiredStringParam(params, "type")
	if err != nil {
		return "", err
	}
	return core.ParseOrderType(raw)
}

func setPaging(req *core.Request, params core.Params) error {
	page, err := getIntParamWithDefault(params, "page", defaultPage)
	if err != nil {
		return err
	}

	limit, err := getIntParamWithDefault(params, "limit", defaultLimit)
	if err != nil {
		return err
	}

	req.SetQuery("page", page)
	req.SetQuery("limit", limit)
	return nil
}

func getIntParamWithDefault(params core.Params, key string, def int) (int, error) {
	val, ok := params[key]
	if !ok || val == nil {
		return def, nil
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i, nil
		}
	}
	return 0, fmt.Errorf("parameter %s must be an integer, got %v", key, val)
}
