package iyzisub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// testClient builds a client against the given handler. The server is torn
// down with the test.
func testClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	base := []Option{WithBaseURL(server.URL)}
	client, err := New("test-api-key", "test-secret-key", append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// jsonHandler responds with the given body as application/json.
func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	if _, err := New("", "secret"); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("New() error = %v, want ErrMissingAPIKey", err)
	}
	if _, err := New("key", ""); !errors.Is(err, ErrMissingSecretKey) {
		t.Errorf("New() error = %v, want ErrMissingSecretKey", err)
	}
}

func TestNew_SandboxRequiresSandboxCredentials(t *testing.T) {
	_, err := New("key", "secret", WithSandbox())
	if !errors.Is(err, ErrMissingSandboxCredentials) {
		t.Errorf("New() error = %v, want ErrMissingSandboxCredentials", err)
	}
}

func TestNew_DefaultBaseURLByMode(t *testing.T) {
	production, err := New("key", "secret")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := production.Config().BaseURL; got != DefaultBaseURL {
		t.Errorf("BaseURL = %s, want %s", got, DefaultBaseURL)
	}

	sandbox, err := New("", "",
		WithSandbox(),
		WithSandboxCredentials("sandbox-key", "sandbox-secret"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := sandbox.Config().BaseURL; got != SandboxBaseURL {
		t.Errorf("BaseURL = %s, want %s", got, SandboxBaseURL)
	}
}

func TestNew_ExplicitBaseURLWins(t *testing.T) {
	client, err := New("", "",
		WithSandbox(),
		WithSandboxCredentials("sandbox-key", "sandbox-secret"),
		WithBaseURL("https://mock.example.com"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := client.Config().BaseURL; got != "https://mock.example.com" {
		t.Errorf("BaseURL = %s, want https://mock.example.com", got)
	}
}

func TestNew_WiresAllServices(t *testing.T) {
	client, err := New("key", "secret")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.Products == nil {
		t.Error("Products service is nil")
	}
	if client.PricingPlans == nil {
		t.Error("PricingPlans service is nil")
	}
	if client.CheckoutForms == nil {
		t.Error("CheckoutForms service is nil")
	}
	if client.Subscriptions == nil {
		t.Error("Subscriptions service is nil")
	}
	if client.Customers == nil {
		t.Error("Customers service is nil")
	}
	if client.Health == nil {
		t.Error("Health service is nil")
	}
}

func TestClient_Config_Redacted(t *testing.T) {
	client, err := New("prod-key-1234567890", "prod-secret",
		WithTimeout(45*time.Second),
		WithMaxRetries(5),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap := client.Config()
	if snap.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", snap.Timeout)
	}
	if snap.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", snap.MaxRetries)
	}
	if snap.Sandbox {
		t.Error("Sandbox = true, want false")
	}
	if snap.APIKey != "prod***************" {
		t.Errorf("APIKey = %q, not masked as expected", snap.APIKey)
	}
	if strings.Contains(snap.APIKey, "1234567890") {
		t.Error("APIKey leaks the key body")
	}

	if second := client.Config(); second != snap {
		t.Errorf("successive snapshots differ: %+v vs %+v", second, snap)
	}
}

func TestClient_Config_SandboxExposesActiveKeyOnly(t *testing.T) {
	client, err := New("production-key", "production-secret",
		WithSandbox(),
		WithSandboxCredentials("sandbox-key-123", "sandbox-secret"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	snap := client.Config()
	if !snap.Sandbox {
		t.Error("Sandbox = false, want true")
	}
	if !strings.HasPrefix(snap.APIKey, "sand") {
		t.Errorf("APIKey = %q, want the sandbox key, masked", snap.APIKey)
	}
	if strings.Contains(snap.APIKey, "production") {
		t.Error("snapshot exposes the inactive production key")
	}
}

func TestClient_Do_EscapeHatch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/subscription/unwrapped" {
			t.Errorf("path = %s, want /v2/subscription/unwrapped", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "IYZWSv2 ") {
			t.Errorf("Authorization = %q, want IYZWSv2 prefix", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	})

	var result struct {
		Status string `json:"status"`
	}
	if err := client.Do(context.Background(), http.MethodGet, "/v2/subscription/unwrapped", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if result.Status != "success" {
		t.Errorf("Status = %s, want success", result.Status)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"ab", "**"},
		{"abcd", "****"},
		{"abcdef", "abcd**"},
		{"sandbox-key", "sand*******"},
	}

	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
