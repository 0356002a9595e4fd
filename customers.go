package iyzisub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Address is a billing or shipping address.
type Address struct {
	ContactName string `json:"contactName"`
	Country     string `json:"country"`
	City        string `json:"city"`
	District    string `json:"district,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Address     string `json:"address"`
}

// Customer is the subscriber a subscription bills.
type Customer struct {
	ReferenceCode   string   `json:"referenceCode,omitempty"`
	CreatedDate     int64    `json:"createdDate,omitempty"`
	Status          string   `json:"status,omitempty"`
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	Email           string   `json:"email"`
	GSMNumber       string   `json:"gsmNumber,omitempty"`
	IdentityNumber  string   `json:"identityNumber,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

// CreateCustomerRequest creates a customer.
type CreateCustomerRequest struct {
	RequestOptions
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	Email           string   `json:"email"`
	GSMNumber       string   `json:"gsmNumber,omitempty"`
	IdentityNumber  string   `json:"identityNumber,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

// UpdateCustomerRequest replaces a customer's details. The email address is
// immutable once the customer exists.
type UpdateCustomerRequest struct {
	RequestOptions
	Name            string   `json:"name"`
	Surname         string   `json:"surname"`
	GSMNumber       string   `json:"gsmNumber,omitempty"`
	IdentityNumber  string   `json:"identityNumber,omitempty"`
	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

// CustomersService manages subscription customers.
type CustomersService struct {
	client *Client
}

// Create creates a customer.
func (s *CustomersService) Create(ctx context.Context, req *CreateCustomerRequest) (*Customer, error) {
	if req == nil {
		return nil, fmt.Errorf("create customer request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	var resp Response[Customer]
	if err := s.client.Do(ctx, http.MethodPost, "/v2/subscription/customers", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update replaces the customer's details.
func (s *CustomersService) Update(ctx context.Context, customerReferenceCode string, req *UpdateCustomerRequest) (*Customer, error) {
	if customerReferenceCode == "" {
		return nil, fmt.Errorf("customer reference code is required")
	}
	if req == nil {
		return nil, fmt.Errorf("update customer request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	path := "/v2/subscription/customers/" + url.PathEscape(customerReferenceCode)
	var resp Response[Customer]
	if err := s.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Retrieve fetches a customer by reference code.
func (s *CustomersService) Retrieve(ctx context.Context, customerReferenceCode string) (*Customer, error) {
	if customerReferenceCode == "" {
		return nil, fmt.Errorf("customer reference code is required")
	}
	path := "/v2/subscription/customers/" + url.PathEscape(customerReferenceCode)
	var resp Response[Customer]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// List fetches a page of customers.
func (s *CustomersService) List(ctx context.Context, opts *ListOptions) (*Page[Customer], error) {
	var resp Response[Page[Customer]]
	if err := s.client.Do(ctx, http.MethodGet, "/v2/subscription/customers"+opts.query(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
