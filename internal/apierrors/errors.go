// Package apierrors provides shared error types for the iyzico client.
package apierrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingSecretKey is returned when no secret key is configured.
	ErrMissingSecretKey = errors.New("secret key is required")

	// ErrMissingSandboxCredentials is returned when sandbox mode is enabled
	// without a sandbox API key and sandbox secret key.
	ErrMissingSandboxCredentials = errors.New("sandbox credentials are required in sandbox mode")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("base URL must be an absolute URL")

	// ErrUnauthorized is returned when the API rejects the credentials.
	ErrUnauthorized = errors.New("invalid or expired API credentials")

	// ErrForbidden is returned when the credentials lack permission for an operation.
	ErrForbidden = errors.New("access denied for this operation")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrSandboxLimitation is returned when the sandbox environment does not
	// provision the requested subscription operation.
	ErrSandboxLimitation = errors.New("operation not supported in sandbox")
)

// subscriptionRouteMarker identifies subscription API routes in request paths.
const subscriptionRouteMarker = "/v2/subscription"

// Fixed values the API uses to report a sandbox-side gap.
const (
	sandboxLimitationStatus = 422
	sandboxLimitationCode   = "100001"
	sandboxLimitationGroup  = "SANDBOX_LIMITATION"
)

// Category groups an API error by the kind of failure it reports.
type Category string

const (
	CategoryAuthentication Category = "authentication"
	CategoryAuthorization  Category = "authorization"
	CategoryRateLimit      Category = "rate_limit"
	CategorySubscription   Category = "subscription"
	CategoryPayment        Category = "payment"
	CategoryValidation     Category = "validation"
	CategoryServer         Category = "server"
	CategoryConfiguration  Category = "configuration"
	CategoryUnknown        Category = "unknown"
)

// Severity ranks how urgently an API error needs attention.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// APIError represents an HTTP error response from the iyzico API.
type APIError struct {
	StatusCode int
	Message    string
	ErrorCode  string
	ErrorGroup string
	RequestID  string
	URL        string
	Method     string

	// Body holds the parsed response body, if any.
	Body map[string]interface{}
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %d", e.StatusCode)
	if e.ErrorCode != "" {
		msg += fmt.Sprintf(" [%s]", e.ErrorCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request_id: %s)", e.RequestID)
	}
	return msg
}

// IyzicoError implements the IyzicoError interface.
func (e *APIError) IyzicoError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401:
		return target == ErrUnauthorized
	case 403:
		return target == ErrForbidden
	case 404:
		// Business-constraint rejections reuse the 404 status and must not
		// match the not-found sentinel.
		return target == ErrNotFound && !e.IsBusinessConstraint()
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// IsRetryable reports whether retrying the same request may succeed.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// IsClientError reports whether the error is a 4xx response.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// IsServerError reports whether the error is a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// IsBusinessConstraint reports whether the API rejected an operation on an
// existing resource because of a business rule. The API signals this with a
// 404 status carrying error code "1", most commonly when deleting a pricing
// plan that has ever had subscriptions.
func (e *APIError) IsBusinessConstraint() bool {
	return e.StatusCode == 404 && e.ErrorCode == "1"
}

// IsNotFound reports whether the resource genuinely does not exist, as
// opposed to a business-constraint rejection that shares the 404 status.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404 && e.ErrorCode != "1"
}

// Category classifies the error from its status code and error code.
func (e *APIError) Category() Category {
	switch {
	case e.StatusCode == 401:
		return CategoryAuthentication
	case e.StatusCode == 403:
		return CategoryAuthorization
	case e.StatusCode == 429:
		return CategoryRateLimit
	case e.StatusCode >= 500:
		return CategoryServer
	}

	hint := strings.ToLower(e.ErrorCode + " " + e.ErrorGroup + " " + e.Message)
	switch {
	case strings.Contains(hint, "subscription") || strings.Contains(hint, "pricing plan") || strings.Contains(hint, "plan"):
		return CategorySubscription
	case strings.Contains(hint, "payment") || strings.Contains(hint, "card") || strings.Contains(hint, "bin"):
		return CategoryPayment
	case e.StatusCode == 400 || e.StatusCode == 422:
		return CategoryValidation
	}
	return CategoryUnknown
}

// Severity ranks the error. Fraud and security related codes are always
// critical regardless of status code.
func (e *APIError) Severity() Severity {
	hint := strings.ToLower(e.ErrorCode + " " + e.ErrorGroup + " " + e.Message)
	for _, marker := range []string{"fraud", "security", "stolen", "lost card"} {
		if strings.Contains(hint, marker) {
			return SeverityCritical
		}
	}

	switch {
	case e.StatusCode >= 500:
		return SeverityHigh
	case e.StatusCode == 401 || e.StatusCode == 403:
		return SeverityHigh
	case e.StatusCode == 429:
		return SeverityMedium
	case e.IsBusinessConstraint():
		return SeverityMedium
	}
	return SeverityLow
}

// ContextualMessage returns a human-readable description of the failure with
// enough context to act on it. The two 404 shapes produce different guidance.
func (e *APIError) ContextualMessage() string {
	base := e.Message
	if base == "" {
		base = fmt.Sprintf("HTTP %d", e.StatusCode)
	}

	switch {
	case e.IsBusinessConstraint():
		return base + ": the resource exists but the operation is blocked by a business rule. " +
			"For delete operations this usually means dependent records, such as subscriptions " +
			"on a pricing plan, must be cancelled first."
	case e.IsNotFound():
		return base + ": no resource matched the given reference code. Verify the code and the " +
			"environment; sandbox and production reference codes are not interchangeable."
	}

	switch e.Category() {
	case CategoryAuthentication:
		return base + ": authentication failed. Check that the API key and secret key belong " +
			"to the configured environment."
	case CategoryAuthorization:
		return base + ": the credentials lack permission for this operation."
	case CategoryRateLimit:
		return base + ": the request rate limit was exceeded."
	case CategoryServer:
		return base + ": the API reported an internal failure. The request may succeed on retry."
	case CategoryValidation:
		return base + ": the request was rejected as invalid."
	}
	return base
}

// Suggestion returns a short actionable hint for resolving the error, or an
// empty string when there is nothing specific to suggest.
func (e *APIError) Suggestion() string {
	switch {
	case e.IsBusinessConstraint():
		return "Cancel or detach dependent records, then retry the operation."
	case e.IsNotFound():
		return "Double-check the reference code for typos and environment mismatches."
	}

	switch e.Category() {
	case CategoryAuthentication:
		return "Verify the API key and secret key pair."
	case CategoryAuthorization:
		return "Request the missing permission for this merchant account."
	case CategoryRateLimit:
		return "Throttle request frequency or raise the retry budget."
	case CategoryServer:
		return "Retry with backoff; contact support if the failure persists."
	case CategoryValidation:
		return "Correct the rejected fields and resend the request."
	}
	return ""
}

// LogFields returns the error as structured logging fields with sensitive
// values redacted.
func (e *APIError) LogFields() map[string]interface{} {
	fields := map[string]interface{}{
		"status_code": e.StatusCode,
		"message":     e.Message,
		"error_code":  e.ErrorCode,
		"error_group": e.ErrorGroup,
		"request_id":  e.RequestID,
		"url":         e.URL,
		"method":      e.Method,
		"category":    string(e.Category()),
		"severity":    string(e.Severity()),
		"retryable":   e.IsRetryable(),
	}
	if e.Body != nil {
		fields["response_body"] = e.Body
	}
	return Redact(fields)
}

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response.
type NetworkError struct {
	Err       error
	URL       string
	RequestID string
	Attempt   int

	// Timeout is true when the failure was a timeout or deadline expiry.
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IyzicoError implements the IyzicoError interface.
func (e *NetworkError) IyzicoError() {}

// LogFields returns the error as structured logging fields with sensitive
// values redacted.
func (e *NetworkError) LogFields() map[string]interface{} {
	return Redact(map[string]interface{}{
		"error":      fmt.Sprint(e.Err),
		"url":        e.URL,
		"request_id": e.RequestID,
		"attempt":    e.Attempt,
		"timeout":    e.Timeout,
	})
}

// ConfigError represents invalid client configuration detected before any
// request is sent.
type ConfigError struct {
	Message string
	Field   string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid client configuration: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid client configuration: %s", e.Message)
}

// IyzicoError implements the IyzicoError interface.
func (e *ConfigError) IyzicoError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigError) Is(target error) bool {
	switch e.Field {
	case "apiKey":
		return target == ErrMissingAPIKey
	case "secretKey":
		return target == ErrMissingSecretKey
	case "sandboxApiKey", "sandboxSecretKey":
		return target == ErrMissingSandboxCredentials
	case "baseUrl":
		return target == ErrInvalidBaseURL
	}
	return false
}

// LogFields returns the error as structured logging fields.
func (e *ConfigError) LogFields() map[string]interface{} {
	return map[string]interface{}{
		"field":   e.Field,
		"message": e.Message,
	}
}

// SandboxLimitationError reports that the sandbox environment does not
// provision the requested subscription operation. It wraps the underlying
// APIError, so errors.As keeps working for *APIError.
type SandboxLimitationError struct {
	APIError
}

// NewSandboxLimitationError builds a SandboxLimitationError from the API
// response that triggered it. Status code, error code and error group are
// normalized to the fixed values the API uses for this condition.
func NewSandboxLimitationError(base *APIError) *SandboxLimitationError {
	e := &SandboxLimitationError{}
	if base != nil {
		e.APIError = *base
	}
	e.StatusCode = sandboxLimitationStatus
	e.ErrorCode = sandboxLimitationCode
	e.ErrorGroup = sandboxLimitationGroup
	if e.Message == "" {
		e.Message = "subscription operation is not provisioned in the sandbox environment"
	}
	return e
}

func (e *SandboxLimitationError) Error() string {
	return "sandbox limitation: " + e.Message
}

// Unwrap exposes the underlying APIError for errors.As chains.
func (e *SandboxLimitationError) Unwrap() error {
	return &e.APIError
}

// Is implements errors.Is for sentinel error matching.
func (e *SandboxLimitationError) Is(target error) bool {
	return target == ErrSandboxLimitation
}

// IsRetryable always reports false: the sandbox gap does not heal on retry.
func (e *SandboxLimitationError) IsRetryable() bool {
	return false
}

// Category always reports configuration: the fix is switching environments,
// not changing the request.
func (e *SandboxLimitationError) Category() Category {
	return CategoryConfiguration
}

// Suggestion returns the standard remediation for sandbox gaps.
func (e *SandboxLimitationError) Suggestion() string {
	return "Run this operation against production credentials; the sandbox does not provision it."
}

// IsSandboxLimitation reports whether err matches the sandbox limitation
// signature: sandbox mode, a 422 with error code "100001", on a subscription
// route. The path argument is the request path when known; the error URL is
// consulted as a fallback.
func IsSandboxLimitation(err error, sandbox bool, path string) bool {
	if !sandbox {
		return false
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.StatusCode != sandboxLimitationStatus || apiErr.ErrorCode != sandboxLimitationCode {
		return false
	}
	return strings.Contains(path, subscriptionRouteMarker) ||
		strings.Contains(apiErr.URL, subscriptionRouteMarker)
}
