package iyzisub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PricingPlan defines how a product is billed: price, currency, interval,
// and optional trial.
type PricingPlan struct {
	ReferenceCode        string          `json:"referenceCode"`
	CreatedDate          int64           `json:"createdDate"`
	Name                 string          `json:"name"`
	Price                float64         `json:"price"`
	CurrencyCode         Currency        `json:"currencyCode"`
	PaymentInterval      PaymentInterval `json:"paymentInterval"`
	PaymentIntervalCount int             `json:"paymentIntervalCount"`
	TrialPeriodDays      int             `json:"trialPeriodDays,omitempty"`
	RecurrenceCount      int             `json:"recurrenceCount,omitempty"`
	PlanPaymentType      PlanPaymentType `json:"planPaymentType"`
	ProductReferenceCode string          `json:"productReferenceCode"`
	Status               string          `json:"status"`
}

// CreatePricingPlanRequest creates a pricing plan under a product.
type CreatePricingPlanRequest struct {
	RequestOptions
	Name                 string          `json:"name"`
	Price                float64         `json:"price"`
	CurrencyCode         Currency        `json:"currencyCode"`
	PaymentInterval      PaymentInterval `json:"paymentInterval"`
	PaymentIntervalCount int             `json:"paymentIntervalCount,omitempty"`
	TrialPeriodDays      int             `json:"trialPeriodDays,omitempty"`
	// RecurrenceCount limits how many times the plan bills. Zero means the
	// plan renews until cancelled.
	RecurrenceCount int             `json:"recurrenceCount,omitempty"`
	PlanPaymentType PlanPaymentType `json:"planPaymentType,omitempty"`
}

// UpdatePricingPlanRequest renames a pricing plan and adjusts its trial.
// Price and interval are immutable once the plan exists.
type UpdatePricingPlanRequest struct {
	RequestOptions
	Name            string `json:"name"`
	TrialPeriodDays int    `json:"trialPeriodDays,omitempty"`
}

// PricingPlansService manages the pricing plans of subscription products.
type PricingPlansService struct {
	client *Client
}

// Create creates a pricing plan under the given product.
func (s *PricingPlansService) Create(ctx context.Context, productReferenceCode string, req *CreatePricingPlanRequest) (*PricingPlan, error) {
	if productReferenceCode == "" {
		return nil, fmt.Errorf("product reference code is required")
	}
	if req == nil {
		return nil, fmt.Errorf("create pricing plan request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	path := "/v2/subscription/products/" + url.PathEscape(productReferenceCode) + "/pricing-plans"
	var resp Response[PricingPlan]
	if err := s.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update renames the pricing plan.
func (s *PricingPlansService) Update(ctx context.Context, pricingPlanReferenceCode string, req *UpdatePricingPlanRequest) (*PricingPlan, error) {
	if pricingPlanReferenceCode == "" {
		return nil, fmt.Errorf("pricing plan reference code is required")
	}
	if req == nil {
		return nil, fmt.Errorf("update pricing plan request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	path := "/v2/subscription/pricing-plans/" + url.PathEscape(pricingPlanReferenceCode)
	var resp Response[PricingPlan]
	if err := s.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete deletes a pricing plan. The live API is known to answer with a
// business-constraint-shaped 404 (error code "1") even for valid targets;
// the error is passed through unchanged, so check IsBusinessConstraint
// before treating it as a missing plan.
func (s *PricingPlansService) Delete(ctx context.Context, pricingPlanReferenceCode string) error {
	if pricingPlanReferenceCode == "" {
		return fmt.Errorf("pricing plan reference code is required")
	}
	path := "/v2/subscription/pricing-plans/" + url.PathEscape(pricingPlanReferenceCode)
	return s.client.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Retrieve fetches a pricing plan by reference code.
func (s *PricingPlansService) Retrieve(ctx context.Context, pricingPlanReferenceCode string) (*PricingPlan, error) {
	if pricingPlanReferenceCode == "" {
		return nil, fmt.Errorf("pricing plan reference code is required")
	}
	path := "/v2/subscription/pricing-plans/" + url.PathEscape(pricingPlanReferenceCode)
	var resp Response[PricingPlan]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// List fetches a page of the product's pricing plans.
func (s *PricingPlansService) List(ctx context.Context, productReferenceCode string, opts *ListOptions) (*Page[PricingPlan], error) {
	if productReferenceCode == "" {
		return nil, fmt.Errorf("product reference code is required")
	}
	path := "/v2/subscription/products/" + url.PathEscape(productReferenceCode) + "/pricing-plans" + opts.query()
	var resp Response[Page[PricingPlan]]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
