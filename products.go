package iyzisub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Product is a sellable item that pricing plans attach to.
type Product struct {
	ReferenceCode string        `json:"referenceCode"`
	CreatedDate   int64         `json:"createdDate"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Status        string        `json:"status"`
	PricingPlans  []PricingPlan `json:"pricingPlans,omitempty"`
}

// CreateProductRequest creates a product.
type CreateProductRequest struct {
	RequestOptions
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest replaces a product's name and description.
type UpdateProductRequest struct {
	RequestOptions
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProductsService manages subscription products.
type ProductsService struct {
	client *Client
}

// Create creates a product.
func (s *ProductsService) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if req == nil {
		return nil, fmt.Errorf("create product request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	var resp Response[Product]
	if err := s.client.Do(ctx, http.MethodPost, "/v2/subscription/products", req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Update replaces the product's name and description.
func (s *ProductsService) Update(ctx context.Context, productReferenceCode string, req *UpdateProductRequest) (*Product, error) {
	if productReferenceCode == "" {
		return nil, fmt.Errorf("product reference code is required")
	}
	if req == nil {
		return nil, fmt.Errorf("update product request is nil")
	}
	s.client.prepare(&req.RequestOptions)

	path := "/v2/subscription/products/" + url.PathEscape(productReferenceCode)
	var resp Response[Product]
	if err := s.client.Do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete deletes a product. The API refuses with a business constraint
// (see IsBusinessConstraint) while the product still has pricing plans.
func (s *ProductsService) Delete(ctx context.Context, productReferenceCode string) error {
	if productReferenceCode == "" {
		return fmt.Errorf("product reference code is required")
	}
	path := "/v2/subscription/products/" + url.PathEscape(productReferenceCode)
	return s.client.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Retrieve fetches a product by reference code.
func (s *ProductsService) Retrieve(ctx context.Context, productReferenceCode string) (*Product, error) {
	if productReferenceCode == "" {
		return nil, fmt.Errorf("product reference code is required")
	}
	path := "/v2/subscription/products/" + url.PathEscape(productReferenceCode)
	var resp Response[Product]
	if err := s.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// List fetches a page of products.
func (s *ProductsService) List(ctx context.Context, opts *ListOptions) (*Page[Product], error) {
	var resp Response[Page[Product]]
	if err := s.client.Do(ctx, http.MethodGet, "/v2/subscription/products"+opts.query(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
