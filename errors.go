package iyzisub

import (
	"errors"

	"github.com/iyzisub/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingSecretKey is returned when no secret key is provided.
	ErrMissingSecretKey = apierrors.ErrMissingSecretKey

	// ErrMissingSandboxCredentials is returned when sandbox mode is enabled
	// without a sandbox credential pair.
	ErrMissingSandboxCredentials = apierrors.ErrMissingSandboxCredentials

	// ErrInvalidBaseURL is returned when the configured base URL is not an
	// absolute URL.
	ErrInvalidBaseURL = apierrors.ErrInvalidBaseURL

	// ErrUnauthorized is returned when the API rejects the credentials (401).
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrForbidden is returned when the credentials lack access (403).
	ErrForbidden = apierrors.ErrForbidden

	// ErrNotFound is returned when the requested resource does not exist (404).
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded (429).
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrSandboxLimitation is returned when the sandbox environment does not
	// provision the requested subscription operation.
	ErrSandboxLimitation = apierrors.ErrSandboxLimitation
)

// IyzicoError is implemented by all SDK errors.
type IyzicoError interface {
	error
	IyzicoError() // marker method
}

// APIError represents a non-2xx HTTP response from the iyzico API.
type APIError = apierrors.APIError

// NetworkError represents a transport-level failure: the request never
// produced an HTTP response.
type NetworkError = apierrors.NetworkError

// ConfigError represents invalid client configuration.
type ConfigError = apierrors.ConfigError

// SandboxLimitationError reports that the sandbox environment does not
// provision the requested subscription operation. It wraps the underlying
// *APIError, reachable through errors.As.
type SandboxLimitationError = apierrors.SandboxLimitationError

// Category buckets API errors by the kind of fix they need.
type Category = apierrors.Category

// Error categories reported by APIError.Category.
const (
	CategoryAuthentication = apierrors.CategoryAuthentication
	CategoryAuthorization  = apierrors.CategoryAuthorization
	CategoryRateLimit      = apierrors.CategoryRateLimit
	CategorySubscription   = apierrors.CategorySubscription
	CategoryPayment        = apierrors.CategoryPayment
	CategoryValidation     = apierrors.CategoryValidation
	CategoryServer         = apierrors.CategoryServer
	CategoryConfiguration  = apierrors.CategoryConfiguration
	CategoryUnknown        = apierrors.CategoryUnknown
)

// Severity grades API errors by operational urgency.
type Severity = apierrors.Severity

// Error severities reported by APIError.Severity.
const (
	SeverityLow      = apierrors.SeverityLow
	SeverityMedium   = apierrors.SeverityMedium
	SeverityHigh     = apierrors.SeverityHigh
	SeverityCritical = apierrors.SeverityCritical
)

// IsRetryable reports whether the failure is transient: server errors, rate
// limiting, or transport failures. Sandbox limitations are never retryable.
func IsRetryable(err error) bool {
	var sandboxErr *SandboxLimitationError
	if errors.As(err, &sandboxErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsRetryable()
	}
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsTimeout reports whether the failure was a timeout or an expired deadline.
func IsTimeout(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.Timeout
}

// IsNotFound reports whether the API answered 404 for a genuinely missing
// resource. A 404 carrying error code "1" is a business constraint, not a
// missing resource; see IsBusinessConstraint.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

// IsBusinessConstraint reports whether the API refused the operation because
// of dependent resources, such as deleting a product that still has plans.
// The API shapes this refusal as a 404 with error code "1".
func IsBusinessConstraint(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsBusinessConstraint()
}

// IsSandboxLimitation reports whether the failure is a sandbox environment
// gap rather than a request problem.
func IsSandboxLimitation(err error) bool {
	return errors.Is(err, ErrSandboxLimitation)
}
