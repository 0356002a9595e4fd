package apierrors

import "testing"

func TestRedact(t *testing.T) {
	fields := map[string]interface{}{
		"method":        "POST",
		"apiKey":        "prod-key",
		"api_key":       "prod-key",
		"secretKey":     "prod-secret",
		"Authorization": "IYZWSv2 abc",
		"cardNumber":    "5528790000000008",
		"cvc":           "123",
		"cardToken":     "tok_123",
		"status_code":   422,
	}

	out := Redact(fields)

	redacted := []string{"apiKey", "api_key", "secretKey", "Authorization", "cardNumber", "cvc", "cardToken"}
	for _, key := range redacted {
		if out[key] != redactedValue {
			t.Errorf("%s = %v, want %q", key, out[key], redactedValue)
		}
	}
	if out["method"] != "POST" {
		t.Errorf("method = %v, want POST", out["method"])
	}
	if out["status_code"] != 422 {
		t.Errorf("status_code = %v, want 422", out["status_code"])
	}
}

func TestRedact_Nested(t *testing.T) {
	fields := map[string]interface{}{
		"request": map[string]interface{}{
			"paymentCard": map[string]interface{}{
				"cardHolderName": "Jane Doe",
				"cardNumber":     "5528790000000008",
				"cvc":            "123",
			},
		},
		"items": []interface{}{
			map[string]interface{}{"secretKey": "s", "name": "plan"},
		},
	}

	out := Redact(fields)

	card := out["request"].(map[string]interface{})["paymentCard"].(map[string]interface{})
	if card["cardNumber"] != redactedValue {
		t.Errorf("nested cardNumber = %v, want redacted", card["cardNumber"])
	}
	if card["cardHolderName"] != "Jane Doe" {
		t.Errorf("cardHolderName = %v, want original", card["cardHolderName"])
	}

	item := out["items"].([]interface{})[0].(map[string]interface{})
	if item["secretKey"] != redactedValue {
		t.Errorf("slice secretKey = %v, want redacted", item["secretKey"])
	}
	if item["name"] != "plan" {
		t.Errorf("slice name = %v, want original", item["name"])
	}
}

func TestRedact_DoesNotMutateInput(t *testing.T) {
	fields := map[string]interface{}{
		"apiKey": "prod-key",
		"nested": map[string]interface{}{"cvc": "123"},
	}

	Redact(fields)

	if fields["apiKey"] != "prod-key" {
		t.Error("input map was mutated")
	}
	if fields["nested"].(map[string]interface{})["cvc"] != "123" {
		t.Error("nested input map was mutated")
	}
}

func TestRedact_Nil(t *testing.T) {
	if Redact(nil) != nil {
		t.Error("Redact(nil) should return nil")
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"apiKey", true},
		{"api-key", true},
		{"API_KEY", true},
		{"sandboxApiKey", true},
		{"secretKey", true},
		{"sandbox_secret_key", true},
		{"authorization", true},
		{"Authorization", true},
		{"cardNumber", true},
		{"card_number", true},
		{"cvc", true},
		{"cvv", true},
		{"password", true},
		{"checkoutFormToken", true},
		{"conversationId", false},
		{"requestId", false},
		{"status", false},
		{"errorCode", false},
		{"cardHolderName", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := isSensitiveKey(tt.key); got != tt.expected {
				t.Errorf("isSensitiveKey(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}
