// Package auth implements request signing for the iyzico API (IYZWSv2 scheme).
//
// # Signature Scheme
//
// Every request carries an Authorization header of the form:
//
//	IYZWSv2 base64("apiKey:<key>&randomKey:<nonce>&signature:<hex>")
//
// where the signature is an HMAC-SHA256 digest, keyed with the merchant
// secret key, computed over the plain concatenation of three values:
//
//	randomKey + path + body
//
// The path excludes any query string; query parameters are transported on
// the wire but never signed. GET and DELETE requests sign an empty body.
//
// # Random Key
//
// The random key is the current epoch time in milliseconds followed by a six
// digit entropy suffix in [100000, 999999]. It doubles as a freshness nonce:
// the server rejects signatures whose timestamp drifts too far from its own
// clock. The raw random key also travels in the x-iyzi-rnd header.
//
// # Determinism
//
// Time and entropy sources are injectable via [WithClock] and [WithEntropy],
// making header generation fully deterministic under test.
package auth
