// Package api provides the signed HTTP transport for the iyzico
// subscription API. It handles request signing, serialization, automatic
// retry with exponential backoff, and translation of API failures into the
// shared error taxonomy.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require a credential pair and a base URL. Every request carries an
// IYZWSv2 Authorization header computed from the credentials, the request
// path and the serialized body; see the auth package for the scheme.
//
// # Request Signing
//
// Each attempt is signed independently: the random key, the signature and
// the X-Request-ID header are regenerated before every send, including
// retries. Query parameters are sent on the wire but excluded from the
// signature payload. GET and DELETE requests are signed and sent with an
// empty body.
//
// # Retry Behavior
//
// The client retries failed requests with exponential backoff. By default,
// requests are retried up to 3 times for any 5xx status plus:
//
//   - 408 Request Timeout
//   - 429 Too Many Requests
//
// The delay doubles with each attempt (1s, 2s, 4s, ...) and is capped at
// 10s. Configure retry behavior using [Config.MaxRetries],
// [Config.RetryDelay], and [Config.RetryOn]. Transport-level failures such
// as connection refusals are not retried; they surface immediately as
// network errors.
//
// # Error Handling
//
// Non-2xx responses become typed errors from the apierrors package:
// apierrors.APIError for HTTP failures, apierrors.NetworkError for
// transport problems, and apierrors.SandboxLimitationError when a sandbox
// client hits a feature the sandbox environment does not implement.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
