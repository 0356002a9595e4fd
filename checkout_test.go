package iyzisub

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestCheckoutForm_Initialize(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"token": "tok-123",
				"checkoutFormContent": "<script type=\"text/javascript\">...</script>",
				"tokenExpireTime": 1800
			}
		}`))
	})

	form, err := client.CheckoutForms.Initialize(context.Background(), &InitializeCheckoutFormRequest{
		CallbackURL:              "https://merchant.example.com/callback",
		PricingPlanReferenceCode: "plan-1",
		Customer: &Customer{
			Name:    "Ayse",
			Surname: "Yilmaz",
			Email:   "ayse@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/v2/subscription/checkoutform/initialize" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody["callbackUrl"] != "https://merchant.example.com/callback" {
		t.Errorf("callbackUrl = %v", gotBody["callbackUrl"])
	}
	if gotBody["pricingPlanReferenceCode"] != "plan-1" {
		t.Errorf("pricingPlanReferenceCode = %v", gotBody["pricingPlanReferenceCode"])
	}
	if form.Token != "tok-123" || form.TokenExpireTime != 1800 {
		t.Errorf("form = %+v", form)
	}
	if form.CheckoutFormContent == "" {
		t.Error("CheckoutFormContent is empty")
	}
}

func TestCheckoutForm_Initialize_NilRequest(t *testing.T) {
	var calls int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	if _, err := client.CheckoutForms.Initialize(context.Background(), nil); err == nil {
		t.Error("Initialize(nil) did not return an error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("nil request reached the server")
	}
}

func TestCheckoutForm_Retrieve(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"referenceCode": "sub-1",
				"pricingPlanReferenceCode": "plan-1",
				"customerReferenceCode": "cust-1",
				"subscriptionStatus": "ACTIVE"
			}
		}`))
	})

	sub, err := client.CheckoutForms.Retrieve(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if gotMethod != http.MethodGet {
		t.Errorf("method = %s, want GET", gotMethod)
	}
	if gotPath != "/v2/subscription/checkoutform/tok-123" {
		t.Errorf("path = %s", gotPath)
	}
	if sub.ReferenceCode != "sub-1" || sub.SubscriptionStatus != SubscriptionStatusActive {
		t.Errorf("subscription = %+v", sub)
	}
}

func TestCheckoutForm_Retrieve_RequiresToken(t *testing.T) {
	var calls int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	if _, err := client.CheckoutForms.Retrieve(context.Background(), ""); err == nil {
		t.Error("empty token did not return an error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("invalid request reached the server")
	}
}

func TestCheckoutForm_InitializeCardUpdate(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"token":"upd-1","tokenExpireTime":1800}}`))
	})

	form, err := client.CheckoutForms.InitializeCardUpdate(context.Background(), &InitializeCardUpdateRequest{
		CallbackURL:               "https://merchant.example.com/card-callback",
		SubscriptionReferenceCode: "sub-1",
	})
	if err != nil {
		t.Fatalf("InitializeCardUpdate() error = %v", err)
	}
	if gotPath != "/v2/subscription/card-update/checkoutform/initialize" {
		t.Errorf("path = %s", gotPath)
	}
	if gotBody["subscriptionReferenceCode"] != "sub-1" {
		t.Errorf("request body = %v", gotBody)
	}
	if form.Token != "upd-1" {
		t.Errorf("Token = %q, want upd-1", form.Token)
	}
}

func TestCheckoutForm_InitializeCardUpdate_ByCustomer(t *testing.T) {
	var gotBody map[string]interface{}
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","data":{"token":"upd-2"}}`))
	})

	_, err := client.CheckoutForms.InitializeCardUpdate(context.Background(), &InitializeCardUpdateRequest{
		CallbackURL:           "https://merchant.example.com/card-callback",
		CustomerReferenceCode: "cust-1",
	})
	if err != nil {
		t.Fatalf("InitializeCardUpdate() error = %v", err)
	}
	if gotBody["customerReferenceCode"] != "cust-1" {
		t.Errorf("request body = %v", gotBody)
	}
	if _, ok := gotBody["subscriptionReferenceCode"]; ok {
		t.Error("request carried an empty subscriptionReferenceCode")
	}
}

func TestCheckoutForm_InitializeCardUpdate_RequiresReference(t *testing.T) {
	var calls int32
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := client.CheckoutForms.InitializeCardUpdate(context.Background(), &InitializeCardUpdateRequest{
		CallbackURL: "https://merchant.example.com/card-callback",
	})
	if err == nil {
		t.Error("missing references did not return an error")
	}
	if _, err := client.CheckoutForms.InitializeCardUpdate(context.Background(), nil); err == nil {
		t.Error("nil request did not return an error")
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Error("invalid request reached the server")
	}
}
