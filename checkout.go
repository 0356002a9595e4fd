package iyzisub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CheckoutForm is a hosted payment page. Render CheckoutFormContent in the
// browser; after the shopper pays, reconcile the outcome with Retrieve
// using the token before TokenExpireTime.
type CheckoutForm struct {
	Token               string `json:"token"`
	CheckoutFormContent string `json:"checkoutFormContent"`
	TokenExpireTime     int64  `json:"tokenExpireTime"`
}

// InitializeCheckoutFormRequest starts a hosted checkout flow for a
// subscription.
type InitializeCheckoutFormRequest struct {
	RequestOptions
	// CallbackURL receives the browser redirect after payment, carrying the
	// form token.
	CallbackURL              string `json:"callbackUrl"`
	PricingPlanReferenceCode string `json:"pricingPlanReferenceCode"`
	// SubscriptionInitialStatus is PENDING or ACTIVE.
	SubscriptionInitialStatus SubscriptionStatus `json:"subscriptionInitialStatus,omitempty"`
	Customer                  *Customer          `json:"customer"`
}

// InitializeCardUpdateRequest starts a hosted form for replacing the stored
// card. Identify the target with either the subscription or the customer
// reference code.
type InitializeCardUpdateRequest struct {
	RequestOptions
	CallbackURL               string `json:"callbackUrl"`
	SubscriptionReferenceCode string `json:"subscriptionReferenceCode,omitempty"`
	CustomerReferenceCode     string `json:"customerReferenceCode,omitempty"`
}

// CheckoutFormService manages hosted payment pages for subscriptions.
type CheckoutFormService struct {
	client *Client
}

// Initialize creates a hosted checkout form for starting a subscription.
func (s *CheckoutFormService) Initialize(ctx context.Context, req *InitializeCheckoutFormRequest) (*CheckoutForm, error) {
	if req == nil {
		return nil, fmt.Errorf("initialize checkout form request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	var resp Response[CheckoutForm]
	if err := s.client.Do(ctx, http.MethodPost, "/v2/subscription/checkoutform/initialize", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Retrieve reconciles a completed checkout form by token and returns the
// subscription it created.
func (s *CheckoutFormService) Retrieve(ctx context.Context, token string) (*Subscription, error) {
	if token == "" {
		return nil, fmt.Errorf("checkout form token is required")
	}
	path := "/v2/subscription/checkoutform/" + url.PathEscape(token)
	var resp Response[Subscription]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// InitializeCardUpdate creates a hosted form for replacing the card a
// subscription charges.
func (s *CheckoutFormService) InitializeCardUpdate(ctx context.Context, req *InitializeCardUpdateRequest) (*CheckoutForm, error) {
	if req == nil {
		return nil, fmt.Errorf("initialize card update request is nil")
	}
	if req.SubscriptionReferenceCode == "" && req.CustomerReferenceCode == "" {
		return nil, fmt.Errorf("subscription or customer reference code is required")
	}
	s.client.prepare(&req.RequestOptions)

	var resp Response[CheckoutForm]
	if err := s.client.Do(ctx, http.MethodPost, "/v2/subscription/card-update/checkoutform/initialize", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
