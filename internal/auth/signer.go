package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/iyzisub/client-go/internal/apierrors"
)

// AuthPrefix is the scheme tag the API expects in the Authorization header.
const AuthPrefix = "IYZWSv2 "

// Entropy bounds for the random key suffix.
const (
	entropyMin  = 100000
	entropySpan = 900000
)

// Headers carries the authentication headers for one request attempt.
type Headers struct {
	// Authorization is the complete header value, including the IYZWSv2 prefix.
	Authorization string
	// RandomKey is the nonce the signature was computed over.
	RandomKey string
	// Signature is the hex-encoded HMAC-SHA256 digest.
	Signature string
}

// Signer generates request authentication headers. A single Signer is safe
// for concurrent use. The zero value is not usable; construct with NewSigner.
type Signer struct {
	now     func() time.Time
	entropy func() int
}

// Option configures a Signer.
type Option func(*Signer)

// WithClock overrides the time source used for random key generation.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// WithEntropy overrides the entropy source. The function must return values
// in [100000, 999999].
func WithEntropy(fn func() int) Option {
	return func(s *Signer) {
		s.entropy = fn
	}
}

// NewSigner creates a Signer with the given options.
func NewSigner(opts ...Option) *Signer {
	s := &Signer{
		now: time.Now,
		entropy: func() int {
			return entropyMin + rand.Intn(entropySpan)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces the authentication headers for one request attempt.
// The path must exclude the query string; callers strip it before signing.
// A fresh random key is generated per call, so retrying a request re-signs
// it with new headers.
func (s *Signer) Generate(apiKey, secretKey, path, body string) (*Headers, error) {
	if apiKey == "" {
		return nil, &apierrors.ConfigError{Field: "apiKey", Message: "API key is required for signing"}
	}
	if secretKey == "" {
		return nil, &apierrors.ConfigError{Field: "secretKey", Message: "secret key is required for signing"}
	}
	if !strings.HasPrefix(path, "/") {
		return nil, &apierrors.ConfigError{Field: "path", Message: "request path must start with /"}
	}
	if strings.Contains(path, "?") {
		return nil, &apierrors.ConfigError{Field: "path", Message: "request path must not contain a query string"}
	}

	randomKey := s.randomKey()
	signature := Sign(secretKey, randomKey, path, body)
	authString := "apiKey:" + apiKey + "&randomKey:" + randomKey + "&signature:" + signature

	return &Headers{
		Authorization: AuthPrefix + base64.StdEncoding.EncodeToString([]byte(authString)),
		RandomKey:     randomKey,
		Signature:     signature,
	}, nil
}

// randomKey builds the per-request nonce: epoch milliseconds followed by a
// six digit entropy suffix.
func (s *Signer) randomKey() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10) + strconv.Itoa(s.entropy())
}

// Sign computes the hex-encoded HMAC-SHA256 digest over the concatenation of
// randomKey, path and body, keyed with the secret key.
func Sign(secretKey, randomKey, path, body string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(randomKey))
	mac.Write([]byte(path))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}
