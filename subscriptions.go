package iyzisub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PaymentCard carries the card a subscription charges. Provide either the
// raw card fields or a stored-card token set, not both.
type PaymentCard struct {
	CardHolderName       string `json:"cardHolderName,omitempty"`
	CardNumber           string `json:"cardNumber,omitempty"`
	ExpireMonth          string `json:"expireMonth,omitempty"`
	ExpireYear           string `json:"expireYear,omitempty"`
	CVC                  string `json:"cvc,omitempty"`
	RegisterConsumerCard bool   `json:"registerConsumerCard,omitempty"`

	// Stored-card alternative to the raw fields.
	UCSToken      string `json:"ucsToken,omitempty"`
	CardToken     string `json:"cardToken,omitempty"`
	ConsumerToken string `json:"consumerToken,omitempty"`
}

// SubscriptionOrder is one billing period's charge.
type SubscriptionOrder struct {
	ReferenceCode string   `json:"referenceCode"`
	Price         float64  `json:"price"`
	CurrencyCode  Currency `json:"currencyCode"`
	StartPeriod   int64    `json:"startPeriod"`
	EndPeriod     int64    `json:"endPeriod"`
	OrderStatus   string   `json:"orderStatus"`
}

// Subscription is an active billing relationship between a customer and a
// pricing plan.
type Subscription struct {
	ReferenceCode            string              `json:"referenceCode"`
	ParentReferenceCode      string              `json:"parentReferenceCode,omitempty"`
	PricingPlanReferenceCode string              `json:"pricingPlanReferenceCode"`
	PricingPlanName          string              `json:"pricingPlanName,omitempty"`
	ProductReferenceCode     string              `json:"productReferenceCode,omitempty"`
	ProductName              string              `json:"productName,omitempty"`
	CustomerReferenceCode    string              `json:"customerReferenceCode"`
	CustomerEmail            string              `json:"customerEmail,omitempty"`
	SubscriptionStatus       SubscriptionStatus  `json:"subscriptionStatus"`
	TrialDays                int                 `json:"trialDays,omitempty"`
	TrialStartDate           int64               `json:"trialStartDate,omitempty"`
	TrialEndDate             int64               `json:"trialEndDate,omitempty"`
	CreatedDate              int64               `json:"createdDate"`
	StartDate                int64               `json:"startDate"`
	EndDate                  int64               `json:"endDate,omitempty"`
	Orders                   []SubscriptionOrder `json:"orders,omitempty"`
}

// InitializeSubscriptionRequest starts a subscription by charging the card
// directly, without a hosted checkout form.
type InitializeSubscriptionRequest struct {
	RequestOptions
	PricingPlanReferenceCode string `json:"pricingPlanReferenceCode"`
	// SubscriptionInitialStatus is PENDING or ACTIVE. PENDING defers the
	// first charge until the subscription is activated.
	SubscriptionInitialStatus SubscriptionStatus `json:"subscriptionInitialStatus,omitempty"`
	Customer                  *Customer          `json:"customer"`
	PaymentCard               *PaymentCard       `json:"paymentCard"`
}

// UpgradeSubscriptionRequest moves a subscription to another pricing plan
// of the same product.
type UpgradeSubscriptionRequest struct {
	RequestOptions
	NewPricingPlanReferenceCode string `json:"newPricingPlanReferenceCode"`
	// UpgradePeriod is when the switch takes effect. The API currently
	// accepts only "NOW".
	UpgradePeriod        string `json:"upgradePeriod,omitempty"`
	UseTrial             bool   `json:"useTrial,omitempty"`
	ResetRecurrenceCount bool   `json:"resetRecurrenceCount,omitempty"`
}

// RetryPaymentRequest charges a failed subscription order again.
type RetryPaymentRequest struct {
	RequestOptions
	// ReferenceCode identifies the failed order, not the subscription.
	ReferenceCode string `json:"referenceCode"`
}

// SearchSubscriptionsOptions filters a subscription search. Zero-value
// fields are omitted from the query.
type SearchSubscriptionsOptions struct {
	Page  int
	Count int

	SubscriptionReferenceCode string
	ParentReferenceCode       string
	CustomerReferenceCode     string
	PricingPlanReferenceCode  string
	SubscriptionStatus        SubscriptionStatus
	// StartDate and EndDate bound the creation date, formatted yyyy-MM-dd.
	StartDate string
	EndDate   string
}

func (o *SearchSubscriptionsOptions) query() string {
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
	if o.SubscriptionReferenceCode != "" {
		values.Set("subscriptionReferenceCode", o.SubscriptionReferenceCode)
	}
	if o.ParentReferenceCode != "" {
		values.Set("parentReferenceCode", o.ParentReferenceCode)
	}
	if o.CustomerReferenceCode != "" {
		values.Set("customerReferenceCode", o.CustomerReferenceCode)
	}
	if o.PricingPlanReferenceCode != "" {
		values.Set("pricingPlanReferenceCode", o.PricingPlanReferenceCode)
	}
	if o.SubscriptionStatus != "" {
		values.Set("subscriptionStatus", string(o.SubscriptionStatus))
	}
	if o.StartDate != "" {
		values.Set("startDate", o.StartDate)
	}
	if o.EndDate != "" {
		values.Set("endDate", o.EndDate)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// SubscriptionsService manages subscription lifecycles.
type SubscriptionsService struct {
	client *Client
}

// Initialize starts a subscription by charging the given card. For the
// hosted-payment-page flow use CheckoutFormService instead.
func (s *SubscriptionsService) Initialize(ctx context.Context, req *InitializeSubscriptionRequest) (*Subscription, error) {
	if req == nil {
		return nil, fmt.Errorf("initialize subscription request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	var resp Response[Subscription]
	if err := s.client.Do(ctx, http.MethodPost, "/v2/subscription/initialize", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Retrieve fetches a subscription, including its order history.
func (s *SubscriptionsService) Retrieve(ctx context.Context, subscriptionReferenceCode string) (*Subscription, error) {
	if subscriptionReferenceCode == "" {
		return nil, fmt.Errorf("subscription reference code is required")
	}
	path := "/v2/subscription/subscriptions/" + url.PathEscape(subscriptionReferenceCode)
	var resp Response[Subscription]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Search fetches a page of subscriptions matching the filters.
func (s *SubscriptionsService) Search(ctx context.Context, opts *SearchSubscriptionsOptions) (*Page[Subscription], error) {
	var resp Response[Page[Subscription]]
	if err := s.client.Do(ctx, http.MethodGet, "/v2/subscription/subscriptions"+opts.query(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Activate starts billing a subscription created in PENDING state.
func (s *SubscriptionsService) Activate(ctx context.Context, subscriptionReferenceCode string) error {
	if subscriptionReferenceCode == "" {
		return fmt.Errorf("subscription reference code is required")
	}
	path := "/v2/subscription/subscriptions/" + url.PathEscape(subscriptionReferenceCode) + "/activate"
	return s.client.Do(ctx, http.MethodPost, path, nil, nil)
}

// Cancel stops a subscription at the end of the paid period.
func (s *SubscriptionsService) Cancel(ctx context.Context, subscriptionReferenceCode string) error {
	if subscriptionReferenceCode == "" {
		return fmt.Errorf("subscription reference code is required")
	}
	path := "/v2/subscription/subscriptions/" + url.PathEscape(subscriptionReferenceCode) + "/cancel"
	return s.client.Do(ctx, http.MethodPost, path, nil, nil)
}

// Upgrade moves the subscription to another pricing plan of the same
// product. The current subscription ends UPGRADED and a child subscription
// carries on under the new plan.
func (s *SubscriptionsService) Upgrade(ctx context.Context, subscriptionReferenceCode string, req *UpgradeSubscriptionRequest) (*Subscription, error) {
	if subscriptionReferenceCode == "" {
		return nil, fmt.Errorf("subscription reference code is required")
	}
	if req == nil {
		return nil, fmt.Errorf("upgrade subscription request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	path := "/v2/subscription/subscriptions/" + url.PathEscape(subscriptionReferenceCode) + "/upgrade"
	var resp Response[Subscription]
	if err := s.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// RetryPayment charges a failed subscription order again.
func (s *SubscriptionsService) RetryPayment(ctx context.Context, req *RetryPaymentRequest) error {
	if req == nil {
		return fmt.Errorf("retry payment request is nil")
	}
	if req.ReferenceCode == "" {
		return fmt.Errorf("order reference code is required")
	}
	s.client.prepare(&req.RequestOptions)

	return s.client.Do(ctx, http.MethodPost, "/v2/subscription/operation/retry", req, nil)
}
