package iyzisub

import (
	"net/http"
	"time"
)

// API origins by mode.
const (
	// DefaultBaseURL is the production API origin.
	DefaultBaseURL = "https://api.iyzipay.com"
	// SandboxBaseURL is the sandbox API origin, selected automatically when
	// sandbox mode is enabled.
	SandboxBaseURL = "https://sandbox-api.iyzipay.com"
)

// Logger receives client events as structured fields. Sensitive values are
// redacted before the logger is called.
type Logger func(event string, fields map[string]interface{})

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL          string
	sandbox          bool
	sandboxAPIKey    string
	sandboxSecretKey string
	timeout          time.Duration
	maxRetries       int
	disableRetries   bool
	retryOn          []int
	jitter           float64
	httpClient       *http.Client
	debug            bool
	logger           Logger
	userAgent        string
	defaultHeaders   map[string]string
	locale           Locale
	conversationID   func() string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL. Without it the client uses
// DefaultBaseURL, or SandboxBaseURL in sandbox mode.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithSandbox enables sandbox mode. Sandbox credentials must be supplied
// with WithSandboxCredentials.
func WithSandbox() Option {
	return func(c *clientConfig) {
		c.sandbox = true
	}
}

// WithSandboxCredentials sets the credential pair used in sandbox mode.
func WithSandboxCredentials(apiKey, secretKey string) Option {
	return func(c *clientConfig) {
		c.sandboxAPIKey = apiKey
		c.sandboxSecretKey = secretKey
	}
}

// WithTimeout sets the per-attempt request timeout. Default: 30 seconds,
// minimum 1 second.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the retry budget for transient failures, from 0 to 10.
// Passing 0 disables retries. Default: 3.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		if count == 0 {
			c.disableRetries = true
			return
		}
		c.maxRetries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: any 5xx, plus 408 and 429.
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithRetryJitter adds randomization (0.0 to 1.0) to retry backoff delays.
// Default: 0, so the backoff schedule is exact.
func WithRetryJitter(jitter float64) Option {
	return func(c *clientConfig) {
		c.jitter = jitter
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithDebug enables event logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *clientConfig) {
		c.debug = debug
	}
}

// WithLogger sets the event sink used in debug mode. Default: the standard
// library logger.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithDefaultHeaders adds headers to every request.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.defaultHeaders == nil {
			c.defaultHeaders = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithLocale sets the default locale injected into requests that do not
// specify one. Without it the API's own default applies.
func WithLocale(locale Locale) Option {
	return func(c *clientConfig) {
		c.locale = locale
	}
}

// WithConversationIDGenerator sets the generator for default conversation
// IDs. Passing nil disables injection, leaving requests without an explicit
// ConversationID unset.
func WithConversationIDGenerator(generate func() string) Option {
	return func(c *clientConfig) {
		c.conversationID = generate
	}
}

const (
	defaultWaitTimeout  = 2 * time.Minute
	defaultPollInterval = 3 * time.Second
)

// waitConfig holds configuration for waiting on a subscription status.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

// WaitOption configures status waiting.
type WaitOption func(*waitConfig)

// WithWaitTimeout sets the timeout for waiting. Default: 2 minutes.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the polling interval. Default: 3 seconds.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}
