package iyzisub

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// WebhookEventType identifies what a webhook notification reports.
type WebhookEventType string

const (
	// WebhookEventOrderSuccess is sent when a billing period is charged.
	WebhookEventOrderSuccess WebhookEventType = "subscription.order.success"
	// WebhookEventOrderFailure is sent when a charge attempt fails.
	WebhookEventOrderFailure WebhookEventType = "subscription.order.failure"
)

// WebhookSignatureHeader carries the payload signature on webhook requests.
const WebhookSignatureHeader = "X-Iyz-Signature-V3"

// WebhookEvent is the notification body posted to the merchant's registered
// webhook URL when a subscription order settles. The webhook URL is
// configured on the merchant panel, not through this API.
type WebhookEvent struct {
	EventType     WebhookEventType `json:"iyziEventType"`
	EventTime     int64            `json:"iyziEventTime"`
	ReferenceCode string           `json:"iyziReferenceCode"`

	SubscriptionReferenceCode string             `json:"subscriptionReferenceCode"`
	CustomerReferenceCode     string             `json:"customerReferenceCode,omitempty"`
	OrderReferenceCode        string             `json:"orderReferenceCode,omitempty"`
	SubscriptionStatus        SubscriptionStatus `json:"subscriptionStatus,omitempty"`
}

// ParseWebhookEvent decodes a webhook notification body. It does not check
// the signature; pair it with VerifyWebhookSignature, or use
// Client.VerifyWebhook which does both.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("parse webhook payload: %w", err)
	}
	if event.EventType == "" {
		return nil, fmt.Errorf("webhook payload has no iyziEventType")
	}
	return &event, nil
}

// SignWebhookPayload computes the signature for a webhook body: the
// hex-encoded HMAC-SHA256 of the raw body keyed with the merchant secret.
// Exported so test servers can produce valid notifications.
func SignWebhookPayload(secretKey string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature reports whether signature matches the body under
// the merchant secret. The comparison is constant time.
func VerifyWebhookSignature(secretKey string, body []byte, signature string) bool {
	if secretKey == "" || signature == "" {
		return false
	}
	expected := SignWebhookPayload(secretKey, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhook checks the signature against the client's active secret key
// and decodes the payload. Pass the raw request body and the value of the
// X-Iyz-Signature-V3 header.
func (c *Client) VerifyWebhook(body []byte, signature string) (*WebhookEvent, error) {
	if !VerifyWebhookSignature(c.apiClient.ActiveSecretKey(), body, signature) {
		return nil, fmt.Errorf("webhook signature mismatch")
	}
	return ParseWebhookEvent(body)
}
