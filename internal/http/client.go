package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"cryptomkt/pkg/core"
)

// Client is the transport used by the exchange client: GET with query
// parameters, POST with a form-encoded body. It never retries.
type Client struct {
	client *resty.Client
	mu     sync.RWMutex
	closed bool
}

type Config struct {
	BaseURL string         `validate:"required,url"`
	Timeout time.Duration  `validate:"min=1ms"`
	Logger  zerolog.Logger `validate:"-"`
}

type RequestOption func(*resty.Request)

var validate = validator.New()

func NewClient(config *Config) (*Client, error) {
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)

	logger := config.Logger

	c := &Client{
		client: client,
	}

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return c, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}

func (c *Client) Get(ctx context.Context, url string, opts ...RequestOption) (*resty.Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	req := c.client.R().SetContext(ctx)
	for _, opt := range opts {
		opt(req)
	}
	return req.Get(url)
}

// Post sends the form data set through WithFormData as
// application/x-www-form-urlencoded.
func (c *Client) Post(ctx context.Context, url string, opts ...RequestOption) (*resty.Response, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	req := c.client.R().SetContext(ctx)
	for _, opt := range opts {
		opt(req)
	}
	return req.Post(url)
}

// DecodeJSON parses the response body regardless of the status code.
func DecodeJSON(resp *resty.Response) (any, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil response")
	}
	var v any
	if err := sonic.Unmarshal(resp.Bytes(), &v); err != nil {
		return nil, fmt.Errorf("decode json (status %d): %w", resp.StatusCode(), err)
	}
	return v, nil
}

func WithQueryParams(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

func WithFormData(data map[string]string) RequestOption {
	return func(r *resty.Request) {
		r.SetFormData(data)
	}
}

// WithExactHeaders sets headers without canonicalizing their names, for
// servers that expect a fixed casing such as X-MKT-APIKEY.
func WithExactHeaders(headers map[string]string) RequestOption {
	return func(r *resty.Request) {
		if r.Header == nil {
			r.Header = make(map[string][]string)
		}
		for k, v := range headers {
			r.Header[k] = []string{v}
		}
	}
}
