package iyzisub

import (
	"encoding/json"
	"testing"
)

func TestListOptions_Query(t *testing.T) {
	tests := []struct {
		name string
		opts *ListOptions
		want string
	}{
		{"nil", nil, ""},
		{"zero value", &ListOptions{}, ""},
		{"page only", &ListOptions{Page: 3}, "?page=3"},
		{"count only", &ListOptions{Count: 25}, "?count=25"},
		// url.Values encodes keys in sorted order.
		{"page and count", &ListOptions{Page: 2, Count: 10}, "?count=10&page=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.query(); got != tt.want {
				t.Errorf("query() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestOptions_ApplyDefaults(t *testing.T) {
	t.Run("fills empty fields", func(t *testing.T) {
		opts := RequestOptions{}
		opts.applyDefaults(LocaleEN, func() string { return "generated-id" })

		if opts.ConversationID != "generated-id" {
			t.Errorf("ConversationID = %q, want generated-id", opts.ConversationID)
		}
		if opts.Locale != LocaleEN {
			t.Errorf("Locale = %q, want en", opts.Locale)
		}
	})

	t.Run("keeps caller values", func(t *testing.T) {
		opts := RequestOptions{ConversationID: "mine", Locale: LocaleTR}
		opts.applyDefaults(LocaleEN, func() string { return "generated-id" })

		if opts.ConversationID != "mine" {
			t.Errorf("ConversationID = %q, want mine", opts.ConversationID)
		}
		if opts.Locale != LocaleTR {
			t.Errorf("Locale = %q, want tr", opts.Locale)
		}
	})

	t.Run("nil generator leaves conversation ID empty", func(t *testing.T) {
		opts := RequestOptions{}
		opts.applyDefaults(LocaleTR, nil)

		if opts.ConversationID != "" {
			t.Errorf("ConversationID = %q, want empty", opts.ConversationID)
		}
		if opts.Locale != LocaleTR {
			t.Errorf("Locale = %q, want tr", opts.Locale)
		}
	})
}

func TestResponse_Decode(t *testing.T) {
	raw := `{
		"status": "success",
		"systemTime": 1700000000000,
		"conversationId": "conv-42",
		"locale": "tr",
		"data": {
			"referenceCode": "prod-1",
			"name": "Streaming",
			"status": "ACTIVE"
		}
	}`

	var resp Response[Product]
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if resp.Status != StatusSuccess {
		t.Errorf("Status = %q, want success", resp.Status)
	}
	if resp.SystemTime != 1700000000000 {
		t.Errorf("SystemTime = %d, want 1700000000000", resp.SystemTime)
	}
	if resp.ConversationID != "conv-42" {
		t.Errorf("ConversationID = %q, want conv-42", resp.ConversationID)
	}
	if resp.Locale != LocaleTR {
		t.Errorf("Locale = %q, want tr", resp.Locale)
	}
	if resp.Data == nil {
		t.Fatal("Data is nil")
	}
	if resp.Data.ReferenceCode != "prod-1" || resp.Data.Name != "Streaming" {
		t.Errorf("Data = %+v", resp.Data)
	}
}

func TestResponse_DecodeWithoutData(t *testing.T) {
	var resp Response[Product]
	if err := json.Unmarshal([]byte(`{"status":"success","systemTime":1}`), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Data != nil {
		t.Errorf("Data = %+v, want nil", resp.Data)
	}
}

func TestPage_Decode(t *testing.T) {
	raw := `{
		"status": "success",
		"systemTime": 1700000000000,
		"data": {
			"totalCount": 12,
			"currentPage": 2,
			"pageCount": 3,
			"items": [
				{"referenceCode": "prod-1"},
				{"referenceCode": "prod-2"}
			]
		}
	}`

	var resp Response[Page[Product]]
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	page := resp.Data
	if page == nil {
		t.Fatal("Data is nil")
	}
	if page.TotalCount != 12 || page.CurrentPage != 2 || page.PageCount != 3 {
		t.Errorf("page metadata = %+v", page)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.Items[1].ReferenceCode != "prod-2" {
		t.Errorf("Items[1].ReferenceCode = %q, want prod-2", page.Items[1].ReferenceCode)
	}
}
