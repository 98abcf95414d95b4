package core

import (
	"errors"
	"fmt"
)

// Credential field names reported by MissingCredentialError.
const (
	FieldAPIKey    = "api_key"
	FieldAPISecret = "api_secret"
)

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrNoCredentials matches any MissingCredentialError through errors.Is.
	ErrNoCredentials = errors.New("no credentials configured")
	// ErrUnsupportedOperation is returned for operations the protocol cannot build.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// MissingCredentialError is returned before any network call when a private
// operation is attempted without both the API key and the API secret.
type MissingCredentialError struct {
	// Field is either FieldAPIKey or FieldAPISecret.
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s is required", e.Field)
}

// Is lets errors.Is(err, ErrNoCredentials) match any missing field.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrNoCredentials
}

// IsMissingCredential returns true if err is or wraps a MissingCredentialError.
func IsMissingCredential(err error) bool {
	var mc *MissingCredentialError
	return errors.As(err, &mc)
}
