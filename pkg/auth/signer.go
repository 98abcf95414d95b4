package auth

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"cryptomkt/pkg/core"
)

// Header names fixed by the remote contract.
const (
	HeaderAPIKey    = "X-MKT-APIKEY"
	HeaderSignature = "X-MKT-SIGNATURE"
	HeaderTimestamp = "X-MKT-TIMESTAMP"
)

// Headers holds the authentication values for a single private request.
type Headers struct {
	APIKey    string
	Signature string
	Timestamp string
}

// Map returns the headers keyed by their wire names.
func (h Headers) Map() map[string]string {
	return map[string]string{
		HeaderAPIKey:    h.APIKey,
		HeaderSignature: h.Signature,
		HeaderTimestamp: h.Timestamp,
	}
}

// Signer produces authentication headers from an immutable credential pair.
// It is safe for concurrent use.
type Signer struct {
	creds   core.Credentials
	version string
	now     func() time.Time
}

type SignerOption func(*Signer)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) SignerOption {
	return func(s *Signer) {
		s.now = now
	}
}

// WithVersion overrides the API version segment of the signed payload.
func WithVersion(version string) SignerOption {
	return func(s *Signer) {
		s.version = version
	}
}

// NewSigner copies creds; later changes to the caller's value have no effect.
// A nil creds yields a signer whose every Sign call fails the credential check.
func NewSigner(creds *core.Credentials, opts ...SignerOption) *Signer {
	s := &Signer{
		version: core.APIVersion,
		now:     time.Now,
	}
	if creds != nil {
		s.creds = *creds
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckCredentials reports the first missing credential, key before secret.
func (s *Signer) CheckCredentials() error {
	return s.creds.Check()
}

// Sign computes the authentication headers for endpoint and canonicalBody.
// The timestamp is read once and used for both the payload and the header.
func (s *Signer) Sign(endpoint, canonicalBody string) (Headers, error) {
	if err := s.creds.Check(); err != nil {
		return Headers{}, err
	}

	ts := FormatTimestamp(s.now())
	payload := Payload(ts, s.version, endpoint, canonicalBody)

	return Headers{
		APIKey:    s.creds.APIKey,
		Signature: SignPayload(payload, s.creds.APISecret),
		Timestamp: ts,
	}, nil
}

// FormatTimestamp renders t as seconds since the epoch with microsecond
// resolution. Whole seconds keep a ".0" suffix, e.g. "1600000000.0".
func FormatTimestamp(t time.Time) string {
	sec := float64(t.UnixMicro()) / 1e6
	s := strconv.FormatFloat(sec, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Payload builds the string that gets signed.
func Payload(timestamp, version, endpoint, canonicalBody string) string {
	return timestamp + "/" + version + "/" + endpoint + canonicalBody
}

// SignPayload returns the lowercase hex HMAC-SHA384 of payload keyed by secret.
func SignPayload(payload, secret string) string {
	h := hmac.New(sha512.New384, []byte(secret))
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}
