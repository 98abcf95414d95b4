package cryptomkt

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	httpClient "cryptomkt/internal/http"
	"cryptomkt/pkg/auth"
	"cryptomkt/pkg/core"
)

// Client is a CryptoMarket REST client. The credential pair is copied at
// construction and never changes; calls share no other mutable state.
type Client struct {
	httpClient *httpClient.Client
	protocol   *Protocol
	signer     *auth.Signer
	logger     zerolog.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*ClientOptions)

// ClientOptions holds configuration options for the Client.
type ClientOptions struct {
	Logger zerolog.Logger
	Clock  func() time.Time
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(o *ClientOptions) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces the clock used for signature timestamps.
func WithClock(now func() time.Time) ClientOption {
	return func(o *ClientOptions) {
		o.Clock = now
	}
}

// New creates a Client from config. Credentials are optional; without them only
// public endpoints succeed.
func New(config *core.Config, opts ...ClientOption) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	options := &ClientOptions{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		logger = logger.Level(level)
	}
	logger = logger.With().Str("exchange", "cryptomkt").Logger()

	hc, err := httpClient.NewClient(&httpClient.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	protocol := &Protocol{version: config.Version}

	return &Client{
		httpClient: hc,
		protocol:   protocol,
		signer:     auth.NewSigner(config.Credentials, auth.WithClock(options.Clock), auth.WithVersion(config.Version)),
		logger:     logger,
	}, nil
}

// Name returns the exchange identifier "cryptomkt".
func (c *Client) Name() string {
	return c.protocol.Name()
}

// Version returns the API version segment.
func (c *Client) Version() string {
	return c.protocol.Version()
}

// Close releases resources used by the client, including the HTTP client.
func (c *Client) Close() error {
	if c.httpClient != nil {
		return c.httpClient.Close()
	}
	return nil
}

// Orders returns the private orders service bound to this client.
func (c *Client) Orders() *OrdersService {
	return &OrdersService{client: c}
}

// Markets lists the available markets.
func (c *Client) Markets(ctx context.Context) (any, error) {
	return c.call(ctx, core.OpGetMarkets, nil)
}

// Ticker retrieves the ticker of every market.
func (c *Client) Ticker(ctx context.Context) (any, error) {
	return c.call(ctx, core.OpGetTicker, nil)
}

// Book retrieves one side of a market's order book. Page and limit default to 0 and 20.
func (c *Client) Book(ctx context.Context, market string, orderType core.OrderType, opts ...Option) (any, error) {
	params := ApplyOptions(opts...).apply(core.Params{
		"market": market,
		"type":   orderType,
	})
	return c.call(ctx, core.OpGetBook, params)
}

// Trades retrieves executed trades. Start and end are sent only when supplied.
func (c *Client) Trades(ctx context.Context, market string, opts ...Option) (any, error) {
	params := ApplyOptions(opts...).apply(core.Params{
		"market": market,
	})
	return c.call(ctx, core.OpGetTrades, params)
}

// Balance retrieves the account balances.
func (c *Client) Balance(ctx context.Context) (any, error) {
	return c.call(ctx, core.OpGetBalance, nil)
}

func (c *Client) call(ctx context.Context, op core.Operation, params core.Params) (any, error) {
	req, err := c.protocol.BuildRequest(op, params)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if req.RequireAuth {
		if err := c.protocol.SignRequest(req, c.signer); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("op", op.String()).
		Str("path", req.Path).
		Bool("auth", req.RequireAuth).
		Msg("dispatch")

	return c.doRequest(ctx, req)
}

func (c *Client) doRequest(ctx context.Context, req *core.Request) (any, error) {
	url := c.protocol.URLPath(req)

	var resp *resty.Response
	var err error

	switch req.Method {
	case http.MethodGet:
		resp, err = c.httpClient.Get(ctx, url, c.buildRequestOptions(req)...)
	case http.MethodPost:
		resp, err = c.httpClient.Post(ctx, url, c.buildRequestOptions(req)...)
	default:
		return nil, fmt.Errorf("unsupported method: %s", req.Method)
	}

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	result, err := httpClient.DecodeJSON(resp)
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return result, nil
}

func (c *Client) buildRequestOptions(req *core.Request) []httpClient.RequestOption {
	var opts []httpClient.RequestOption

	if len(req.Headers) > 0 {
		opts = append(opts, httpClient.WithExactHeaders(req.Headers))
	}

	if len(req.Query) > 0 {
		opts = append(opts, httpClient.WithQueryParams(req.Query.StringMap()))
	}

	if len(req.Form) > 0 {
		opts = append(opts, httpClient.WithFormData(req.Form.StringMap()))
	}

	return opts
}
