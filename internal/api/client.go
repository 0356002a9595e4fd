package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iyzisub/client-go/internal/apierrors"
	"github.com/iyzisub/client-go/internal/auth"
)

// Version is the SDK version reported in the x-iyzi-client-version header.
const Version = "0.4.0"

const clientVersion = "iyzisub-go-" + Version

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	// DefaultTimeout bounds each request attempt.
	DefaultTimeout = 30 * time.Second
	// MinTimeout is the smallest accepted per-attempt timeout.
	MinTimeout = time.Second
	// DefaultMaxRetries is the retry budget for transient failures.
	DefaultMaxRetries = 3
	// MaxRetriesLimit is the largest accepted retry budget.
	MaxRetriesLimit = 10
	// DefaultRetryDelay is the base backoff delay.
	DefaultRetryDelay = time.Second
)

// Header names used on every request.
const (
	headerRandomKey     = "x-iyzi-rnd"
	headerClientVersion = "x-iyzi-client-version"
	headerRequestID     = "X-Request-ID"
)

// Config configures an API client. Optional fields select their documented
// defaults when left at the zero value.
type Config struct {
	// BaseURL is the API origin. Required.
	BaseURL string

	// APIKey and SecretKey are the production credentials.
	APIKey    string
	SecretKey string

	// SandboxAPIKey and SandboxSecretKey are used instead when Sandbox is set.
	SandboxAPIKey    string
	SandboxSecretKey string

	// Sandbox selects the sandbox credential pair and enables detection of
	// sandbox limitation responses on subscription routes.
	Sandbox bool

	// Timeout bounds each request attempt. Zero selects DefaultTimeout.
	Timeout time.Duration

	// MaxRetries is the retry budget for transient failures. Zero selects
	// DefaultMaxRetries; set DisableRetries for an explicit zero budget.
	MaxRetries int

	// DisableRetries forces a zero retry budget.
	DisableRetries bool

	// RetryDelay is the base backoff delay. Zero selects DefaultRetryDelay.
	RetryDelay time.Duration

	// RetryOn overrides the status codes that trigger a retry.
	RetryOn []int

	// Jitter adds randomization (0.0 to 1.0) to backoff delays.
	Jitter float64

	// Debug enables event logging through Logger.
	Debug bool

	// Logger receives client events when Debug is set. Defaults to the
	// standard library logger.
	Logger Logger

	// HTTPClient overrides the underlying HTTP client.
	HTTPClient *http.Client

	// UserAgent is sent as the User-Agent header when set.
	UserAgent string

	// DefaultHeaders are added to every request.
	DefaultHeaders map[string]string

	// Signer overrides the signature engine.
	Signer *auth.Signer
}

// Client is the signed HTTP transport for the iyzico API. A Client is safe
// for concurrent use; its configuration is immutable after construction.
type Client struct {
	baseURL          string
	apiKey           string
	secretKey        string
	sandboxAPIKey    string
	sandboxSecretKey string
	sandbox          bool
	timeout          time.Duration
	retry            *RetryConfig
	debug            bool
	logger           Logger
	userAgent        string
	defaultHeaders   map[string]string
	httpClient       *http.Client
	signer           *auth.Signer

	// newRequestID is swapped in tests for deterministic IDs.
	newRequestID func() string
}

// NewClient creates an API client from explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Sandbox {
		if cfg.SandboxAPIKey == "" {
			return nil, &apierrors.ConfigError{Field: "sandboxApiKey", Message: "sandbox API key is required in sandbox mode"}
		}
		if cfg.SandboxSecretKey == "" {
			return nil, &apierrors.ConfigError{Field: "sandboxSecretKey", Message: "sandbox secret key is required in sandbox mode"}
		}
	} else {
		if cfg.APIKey == "" {
			return nil, &apierrors.ConfigError{Field: "apiKey", Message: "API key is required"}
		}
		if cfg.SecretKey == "" {
			return nil, &apierrors.ConfigError{Field: "secretKey", Message: "secret key is required"}
		}
	}

	if cfg.BaseURL == "" {
		return nil, &apierrors.ConfigError{Field: "baseUrl", Message: "base URL is required"}
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return nil, &apierrors.ConfigError{Field: "baseUrl", Message: fmt.Sprintf("%q is not an absolute URL", cfg.BaseURL)}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < MinTimeout {
		return nil, &apierrors.ConfigError{Field: "timeout", Message: fmt.Sprintf("timeout %v is below the minimum %v", timeout, MinTimeout)}
	}

	maxRetries := cfg.MaxRetries
	switch {
	case cfg.DisableRetries:
		maxRetries = 0
	case maxRetries == 0:
		maxRetries = DefaultMaxRetries
	}
	if maxRetries < 0 || maxRetries > MaxRetriesLimit {
		return nil, &apierrors.ConfigError{Field: "maxRetries", Message: fmt.Sprintf("retry budget %d is outside 0..%d", cfg.MaxRetries, MaxRetriesLimit)}
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = maxRetries
	retry.BaseDelay = retryDelay
	retry.Jitter = cfg.Jitter
	if len(cfg.RetryOn) > 0 {
		codes := make(map[int]struct{}, len(cfg.RetryOn))
		for _, code := range cfg.RetryOn {
			codes[code] = struct{}{}
		}
		retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if cfg.Debug && logger == nil {
		logger = stdLogger
	}

	signer := cfg.Signer
	if signer == nil {
		signer = auth.NewSigner()
	}

	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		secretKey:        cfg.SecretKey,
		sandboxAPIKey:    cfg.SandboxAPIKey,
		sandboxSecretKey: cfg.SandboxSecretKey,
		sandbox:          cfg.Sandbox,
		timeout:          timeout,
		retry:            retry,
		debug:            cfg.Debug,
		logger:           logger,
		userAgent:        cfg.UserAgent,
		defaultHeaders:   cfg.DefaultHeaders,
		httpClient:       httpClient,
		signer:           signer,
		newRequestID:     newRequestID,
	}, nil
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the API origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithSandbox toggles sandbox mode.
func WithSandbox(sandbox bool) Option {
	return func(c *Config) {
		c.Sandbox = sandbox
	}
}

// WithSandboxCredentials sets the credential pair used in sandbox mode.
func WithSandboxCredentials(apiKey, secretKey string) Option {
	return func(c *Config) {
		c.SandboxAPIKey = apiKey
		c.SandboxSecretKey = secretKey
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithRetries sets the retry budget. Zero disables retries.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries == 0 {
			c.DisableRetries = true
			return
		}
		c.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: any 5xx, plus 408 and 429.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Config) {
		c.RetryOn = statusCodes
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithDebug enables event logging.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithLogger sets the event sink used when debug mode is enabled.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Config) {
		if c.DefaultHeaders == nil {
			c.DefaultHeaders = make(map[string]string)
		}
		c.DefaultHeaders[key] = value
	}
}

// WithSigner overrides the signature engine. Used in tests to pin the
// random key.
func WithSigner(signer *auth.Signer) Option {
	return func(c *Config) {
		c.Signer = signer
	}
}

// New creates an API client for the given production credentials using
// functional options.
func New(apiKey, secretKey string, opts ...Option) (*Client, error) {
	cfg := Config{
		APIKey:    apiKey,
		SecretKey: secretKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Sandbox reports whether sandbox mode is active.
func (c *Client) Sandbox() bool {
	return c.sandbox
}

// Timeout returns the per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// MaxRetries returns the retry budget.
func (c *Client) MaxRetries() int {
	return c.retry.MaxRetries
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client. Call before the client is shared
// between goroutines.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// ActiveAPIKey returns the API key matching the configured mode.
func (c *Client) ActiveAPIKey() string {
	if c.sandbox {
		return c.sandboxAPIKey
	}
	return c.apiKey
}

// ActiveSecretKey returns the secret key matching the configured mode.
func (c *Client) ActiveSecretKey() string {
	if c.sandbox {
		return c.sandboxSecretKey
	}
	return c.secretKey
}

// credentials returns the credential pair for the active mode. The pair is
// re-checked on every call so a misconfigured client fails fast instead of
// sending unsigned requests.
func (c *Client) credentials() (string, string, error) {
	if c.sandbox {
		if c.sandboxAPIKey == "" || c.sandboxSecretKey == "" {
			return "", "", &apierrors.ConfigError{Field: "sandboxApiKey", Message: "sandbox credentials are not configured"}
		}
		return c.sandboxAPIKey, c.sandboxSecretKey, nil
	}
	if c.apiKey == "" || c.secretKey == "" {
		return "", "", &apierrors.ConfigError{Field: "apiKey", Message: "credentials are not configured"}
	}
	return c.apiKey, c.secretKey, nil
}

func (c *Client) isRetryable(statusCode int) bool {
	return c.retry.RetryableOn(statusCode)
}

// Do executes one logical API call: it signs the request, sends it, retries
// transient failures within the retry budget, and decodes the response into
// result. GET and DELETE requests never send a body even when one is given.
// Each attempt is signed fresh and carries its own request ID.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	apiKey, secretKey, err := c.credentials()
	if err != nil {
		return err
	}

	payload := ""
	if body != nil && method != http.MethodGet && method != http.MethodDelete {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = string(data)
	}

	// Query parameters travel on the wire but are excluded from the
	// signature payload.
	signPath := path
	if i := strings.IndexByte(signPath, '?'); i >= 0 {
		signPath = signPath[:i]
	}

	fullURL := c.baseURL + path

	for attempt := 0; ; attempt++ {
		headers, err := c.signer.Generate(apiKey, secretKey, signPath, payload)
		if err != nil {
			return err
		}
		requestID := c.newRequestID()

		statusCode, respBody, contentType, err := c.send(ctx, method, fullURL, payload, headers, requestID)
		if err != nil {
			var netErr *apierrors.NetworkError
			if errors.As(err, &netErr) {
				netErr.Attempt = attempt
				c.logEvent("request_failed", netErr.LogFields())
			}
			return err
		}

		if statusCode >= 200 && statusCode < 300 {
			return c.decodeResult(contentType, respBody, result, fullURL, requestID)
		}

		if c.retry.ShouldRetry(attempt, statusCode) {
			c.logEvent("retrying", map[string]interface{}{
				"method":      method,
				"path":        path,
				"status_code": statusCode,
				"attempt":     attempt,
				"request_id":  requestID,
			})
			if err := c.retry.Wait(ctx, attempt); err != nil {
				return &apierrors.NetworkError{
					Err:       err,
					URL:       fullURL,
					RequestID: requestID,
					Attempt:   attempt,
					Timeout:   errors.Is(err, context.DeadlineExceeded),
				}
			}
			continue
		}

		apiErr := buildAPIError(statusCode, contentType, respBody, requestID, fullURL, method)
		var finalErr error = apiErr
		if apierrors.IsSandboxLimitation(apiErr, c.sandbox, signPath) {
			finalErr = apierrors.NewSandboxLimitationError(apiErr)
		}
		fields := apiErr.LogFields()
		fields["attempt"] = attempt
		c.logEvent("request_failed", fields)
		return finalErr
	}
}

// send performs a single signed attempt and returns the raw response.
// Transport failures come back as *apierrors.NetworkError.
func (c *Client) send(ctx context.Context, method, fullURL, payload string, headers *auth.Headers, requestID string) (int, []byte, string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != "" {
		bodyReader = strings.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, "", fmt.Errorf("create request: %w", err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", headers.Authorization)
	req.Header.Set(headerRandomKey, headers.RandomKey)
	req.Header.Set(headerClientVersion, clientVersion)
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, "", &apierrors.NetworkError{
			Err:       err,
			URL:       fullURL,
			RequestID: requestID,
			Timeout:   isTimeout(err),
		}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, "", &apierrors.NetworkError{
			Err:       fmt.Errorf("read response body: %w", err),
			URL:       fullURL,
			RequestID: requestID,
			Timeout:   isTimeout(err),
		}
	}

	return resp.StatusCode, data, resp.Header.Get("Content-Type"), nil
}

// decodeResult decodes a success response into result. Non-JSON bodies are
// wrapped under a rawResponse key; malformed JSON is reported as a
// NetworkError since the payload arrived corrupted.
func (c *Client) decodeResult(contentType string, body []byte, result interface{}, fullURL, requestID string) error {
	if result == nil || len(body) == 0 {
		return nil
	}

	data := body
	if !strings.Contains(contentType, "application/json") {
		// Marshal of a string map cannot fail.
		data, _ = json.Marshal(map[string]string{"rawResponse": string(body)})
	}

	if err := json.Unmarshal(data, result); err != nil {
		return &apierrors.NetworkError{
			Err:       fmt.Errorf("decode response: %w", err),
			URL:       fullURL,
			RequestID: requestID,
		}
	}
	return nil
}

// buildAPIError assembles an APIError from an error response. Field lookups
// cover both envelope generations the API uses: errorMessage/message,
// errorCode/code and errorGroup/type.
func buildAPIError(statusCode int, contentType string, body []byte, requestID, fullURL, method string) *apierrors.APIError {
	parsed := parseResponseBody(contentType, body)

	message := stringField(parsed, "errorMessage", "message")
	if message == "" {
		message = fmt.Sprintf("HTTP %d", statusCode)
	}

	return &apierrors.APIError{
		StatusCode: statusCode,
		Message:    message,
		ErrorCode:  stringField(parsed, "errorCode", "code"),
		ErrorGroup: stringField(parsed, "errorGroup", "type"),
		RequestID:  requestID,
		URL:        fullURL,
		Method:     method,
		Body:       parsed,
	}
}

// parseResponseBody decodes a response body into a generic map. Non-JSON
// bodies are wrapped under a rawResponse key so callers always receive a
// structured value.
func parseResponseBody(contentType string, body []byte) map[string]interface{} {
	if len(body) == 0 {
		return map[string]interface{}{}
	}
	if strings.Contains(contentType, "application/json") {
		var parsed map[string]interface{}
		if err := json.Unmarshal(body, &parsed); err == nil {
			return parsed
		}
	}
	return map[string]interface{}{"rawResponse": string(body)}
}

// stringField returns the first present key as a string. Numeric JSON
// values are stringified so error code comparisons stay stable.
func stringField(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// isTimeout reports whether a transport error was caused by a timeout or an
// expired deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
