package iyzisub

import (
	"net/url"
	"strconv"
)

// Locale selects the language of API response messages.
type Locale string

const (
	LocaleTR Locale = "tr"
	LocaleEN Locale = "en"
)

// Currency is an ISO 4217 currency code accepted by the API.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// PaymentInterval is the billing cycle of a pricing plan.
type PaymentInterval string

const (
	PaymentIntervalDaily   PaymentInterval = "DAILY"
	PaymentIntervalWeekly  PaymentInterval = "WEEKLY"
	PaymentIntervalMonthly PaymentInterval = "MONTHLY"
	PaymentIntervalYearly  PaymentInterval = "YEARLY"
)

// PlanPaymentType is the charging model of a pricing plan.
type PlanPaymentType string

const (
	PlanPaymentTypeRecurring PlanPaymentType = "RECURRING"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "PENDING"
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusUnpaid    SubscriptionStatus = "UNPAID"
	SubscriptionStatusUpgraded  SubscriptionStatus = "UPGRADED"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELED"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
)

// Envelope status values reported by the API.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Response is the standard API envelope: metadata plus a typed payload
// under the data key.
type Response[T any] struct {
	Status         string `json:"status"`
	SystemTime     int64  `json:"systemTime"`
	ConversationID string `json:"conversationId,omitempty"`
	Locale         Locale `json:"locale,omitempty"`
	Data           *T     `json:"data,omitempty"`
}

// Page is one page of a paginated listing.
type Page[T any] struct {
	TotalCount  int64 `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	PageCount   int   `json:"pageCount"`
	Items       []T   `json:"items"`
}

// ListOptions selects a page of a listing. The zero value requests the
// API's default page.
type ListOptions struct {
	// Page is 1-based.
	Page int
	// Count is the page size.
	Count int
}

// query renders the options as a URL query string, including the leading
// question mark. Empty options render as an empty string.
func (o *ListOptions) query() string {
	if o == nil {
		return ""
	}
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.Count > 0 {
		values.Set("count", strconv.Itoa(o.Count))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// RequestOptions carries the envelope fields shared by every request.
// Embed it in request structs; the client fills empty fields with its
// configured defaults before sending, so the generated conversation ID is
// readable from the request struct after the call returns.
type RequestOptions struct {
	// ConversationID correlates a request with its response. When empty, the
	// client's conversation ID generator supplies one.
	ConversationID string `json:"conversationId,omitempty"`

	// Locale overrides the client's default response language.
	Locale Locale `json:"locale,omitempty"`
}

func (o *RequestOptions) applyDefaults(locale Locale, generate func() string) {
	if o.ConversationID == "" && generate != nil {
		o.ConversationID = generate()
	}
	if o.Locale == "" {
		o.Locale = locale
	}
}
