package core

import "fmt"

// Credentials holds the API key pair used to sign private requests.
// An empty field is treated as absent.
type Credentials struct {
	// APIKey is the public API key identifier sent in X-MKT-APIKEY.
	APIKey string `json:"api_key"`
	// APISecret is the private key used as the HMAC secret.
	APISecret string `json:"api_secret"`
}

// Check reports the first missing credential field, key before secret.
func (c *Credentials) Check() error {
	if c == nil || c.APIKey == "" {
		return &MissingCredentialError{Field: FieldAPIKey}
	}
	if c.APISecret == "" {
		return &MissingCredentialError{Field: FieldAPISecret}
	}
	return nil
}

func (c *Credentials) String() string {
	if c == nil {
		return "Credentials{}"
	}
	return fmt.Sprintf("Credentials{APIKey:%s}", maskKey(c.APIKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}
