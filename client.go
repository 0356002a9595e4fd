package iyzisub

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iyzisub/client-go/internal/api"
)

// Version is the SDK version.
const Version = api.Version

// Client is the iyzico subscription API client. Resource services hang off
// the client; all of them share one signed transport. A Client is safe for
// concurrent use.
type Client struct {
	apiClient      *api.Client
	locale         Locale
	conversationID func() string

	// Resource services.
	Products      *ProductsService
	PricingPlans  *PricingPlansService
	CheckoutForms *CheckoutFormService
	Subscriptions *SubscriptionsService
	Customers     *CustomersService
	Health        *HealthService
}

// New creates an iyzico client for the given credential pair.
//
// In sandbox mode (WithSandbox) the client signs with the sandbox
// credentials from WithSandboxCredentials and targets SandboxBaseURL; the
// production pair may then be empty.
func New(apiKey, secretKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		conversationID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := cfg.baseURL
	if baseURL == "" {
		if cfg.sandbox {
			baseURL = SandboxBaseURL
		} else {
			baseURL = DefaultBaseURL
		}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:          baseURL,
		APIKey:           apiKey,
		SecretKey:        secretKey,
		SandboxAPIKey:    cfg.sandboxAPIKey,
		SandboxSecretKey: cfg.sandboxSecretKey,
		Sandbox:          cfg.sandbox,
		Timeout:          cfg.timeout,
		MaxRetries:       cfg.maxRetries,
		DisableRetries:   cfg.disableRetries,
		RetryOn:          cfg.retryOn,
		Jitter:           cfg.jitter,
		Debug:            cfg.debug,
		Logger:           api.Logger(cfg.logger),
		HTTPClient:       cfg.httpClient,
		UserAgent:        cfg.userAgent,
		DefaultHeaders:   cfg.defaultHeaders,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{
		apiClient:      apiClient,
		locale:         cfg.locale,
		conversationID: cfg.conversationID,
	}
	c.Products = &ProductsService{client: c}
	c.PricingPlans = &PricingPlansService{client: c}
	c.CheckoutForms = &CheckoutFormService{client: c}
	c.Subscriptions = &SubscriptionsService{client: c}
	c.Customers = &CustomersService{client: c}
	c.Health = &HealthService{client: c}

	return c, nil
}

// Do executes a signed API call. It is the escape hatch for endpoints the
// resource services do not wrap: body is JSON-serialized (omitted on GET and
// DELETE), the response body is decoded into result, and failures come back
// as typed errors from this package.
func (c *Client) Do(ctx context.Context, method, path string, body, result interface{}) error {
	return c.apiClient.Do(ctx, method, path, body, result)
}

// prepare fills a request's empty envelope fields with the client defaults.
func (c *Client) prepare(opts *RequestOptions) {
	opts.applyDefaults(c.locale, c.conversationID)
}

// ConfigSnapshot is a redacted view of the client configuration, safe to
// log. It exposes only the API key for the active mode, masked, and never a
// secret key.
type ConfigSnapshot struct {
	BaseURL    string
	Sandbox    bool
	Timeout    time.Duration
	MaxRetries int
	APIKey     string
}

// Config returns a redacted snapshot of the client configuration.
// Successive calls return equal snapshots.
func (c *Client) Config() ConfigSnapshot {
	return ConfigSnapshot{
		BaseURL:    c.apiClient.BaseURL(),
		Sandbox:    c.apiClient.Sandbox(),
		Timeout:    c.apiClient.Timeout(),
		MaxRetries: c.apiClient.MaxRetries(),
		APIKey:     maskKey(c.apiClient.ActiveAPIKey()),
	}
}

// maskKey keeps a short identifying prefix and hides the rest.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
