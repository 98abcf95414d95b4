package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ProductionURL is the CryptoMarket REST API host.
	ProductionURL = "https://api.cryptomkt.com"
	// APIVersion is the version segment prefixed to every endpoint path.
	APIVersion = "v1"
)

// Config contains all configuration options for a CryptoMarket client.
type Config struct {
	BaseURL     string       `json:"base_url" validate:"required,url"`
	Version     string       `json:"version" validate:"required"`
	Credentials *Credentials `json:"credentials,omitempty"`

	// Timeout is the maximum duration for HTTP requests.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config targeting the production API without credentials.
// Default values: v1 API, 10s timeout, info log level.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  ProductionURL,
		Version:  APIVersion,
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the API host and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}
